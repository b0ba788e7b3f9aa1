package handlers

import (
	"studiofit_backend/internal/dto"
	"studiofit_backend/internal/models"
	"studiofit_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// MemberHandler is the admin surface for member records and for the
// account<->member link.
type MemberHandler struct {
	*BaseHandler
	memberService  *services.MemberService
	linkingService *services.LinkingService
}

func NewMemberHandler(
	base *BaseHandler,
	memberService *services.MemberService,
	linkingService *services.LinkingService,
) *MemberHandler {
	return &MemberHandler{
		BaseHandler:    base,
		memberService:  memberService,
		linkingService: linkingService,
	}
}

func (h *MemberHandler) RegisterRoutes(r *gin.RouterGroup, adminMW gin.HandlerFunc) {
	admin := r.Group("/admin/members")
	admin.Use(adminMW)
	{
		admin.POST("", h.Create)
		admin.GET("", h.List)
		admin.GET("/:memberId", h.Get)
		admin.PUT("/:memberId/status", h.UpdateStatus)
		admin.POST("/:memberId/link", h.Link)
		admin.DELETE("/:memberId/link", h.Unlink)
	}
}

func (h *MemberHandler) Create(c *gin.Context) {
	var req dto.CreateMemberRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	member, err := h.memberService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, member)
}

func (h *MemberHandler) List(c *gin.Context) {
	limit, offset := ParsePagination(c)

	members, total, err := h.memberService.List(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"members": members, "total": total})
}

func (h *MemberHandler) Get(c *gin.Context) {
	member, err := h.memberService.FindByID(c.Param("memberId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, member)
}

func (h *MemberHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateMemberStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	member, err := h.memberService.UpdateStatus(c.Param("memberId"), models.MemberStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, member)
}

func (h *MemberHandler) Link(c *gin.Context) {
	var req dto.LinkAccountRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.linkingService.LinkAccountToMember(req.AccountID, c.Param("memberId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Message(c, "Account linked to member")
}

func (h *MemberHandler) Unlink(c *gin.Context) {
	actor, ok := h.GetAuthorizedAccount(c)
	if !ok {
		return
	}

	if err := h.linkingService.UnlinkAccountFromMember(actor.ID, c.Param("memberId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Message(c, "Account unlinked from member")
}
