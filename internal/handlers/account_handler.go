package handlers

import (
	"studiofit_backend/internal/dto"
	"studiofit_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AccountHandler covers the authenticated profile view and the admin account
// lifecycle: provisioning, listing, approval and disapproval.
type AccountHandler struct {
	*BaseHandler
	accountService *services.AccountService
	linkingService *services.LinkingService
	authService    *services.AuthService
}

func NewAccountHandler(
	base *BaseHandler,
	accountService *services.AccountService,
	linkingService *services.LinkingService,
	authService *services.AuthService,
) *AccountHandler {
	return &AccountHandler{
		BaseHandler:    base,
		accountService: accountService,
		linkingService: linkingService,
		authService:    authService,
	}
}

func (h *AccountHandler) RegisterRoutes(r *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	profile := r.Group("/profile")
	profile.Use(authMW)
	{
		profile.GET("", h.Profile)
	}

	admin := r.Group("/admin/accounts")
	admin.Use(adminMW)
	{
		admin.POST("", h.Provision)
		admin.GET("", h.List)
		admin.POST("/:accountId/approve", h.Approve)
		admin.POST("/:accountId/disapprove", h.Disapprove)
		admin.PUT("/:accountId/password", h.SetPassword)
	}
}

func (h *AccountHandler) Profile(c *gin.Context) {
	account, ok := h.GetAuthorizedAccount(c)
	if !ok {
		return
	}

	view, err := h.accountService.Profile(account)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, view)
}

func (h *AccountHandler) Provision(c *gin.Context) {
	var req dto.ProvisionAccountRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	account, err := h.accountService.Provision(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, account)
}

func (h *AccountHandler) List(c *gin.Context) {
	limit, offset := ParsePagination(c)

	accounts, total, err := h.accountService.List(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"accounts": accounts, "total": total})
}

func (h *AccountHandler) Approve(c *gin.Context) {
	accountID := c.Param("accountId")

	if err := h.linkingService.ApproveAccount(accountID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Message(c, "Account approved")
}

func (h *AccountHandler) SetPassword(c *gin.Context) {
	accountID := c.Param("accountId")

	var req dto.SetPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.SetPassword(accountID, req.Password); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Message(c, "Password updated")
}

func (h *AccountHandler) Disapprove(c *gin.Context) {
	accountID := c.Param("accountId")

	if err := h.linkingService.DisapproveAccount(accountID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Message(c, "Account disapproved")
}
