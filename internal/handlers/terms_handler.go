package handlers

import (
	"studiofit_backend/internal/dto"
	"studiofit_backend/internal/models"
	"studiofit_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type TermsHandler struct {
	*BaseHandler
	termsService *services.TermsService
}

func NewTermsHandler(base *BaseHandler, termsService *services.TermsService) *TermsHandler {
	return &TermsHandler{BaseHandler: base, termsService: termsService}
}

func (h *TermsHandler) RegisterRoutes(r *gin.RouterGroup, adminMW gin.HandlerFunc) {
	// The active version is public: it must be readable before signup.
	r.GET("/terms/active", h.Active)

	admin := r.Group("/admin/terms")
	admin.Use(adminMW)
	{
		admin.POST("", h.Create)
		admin.GET("", h.List)
		admin.POST("/:termsId/activate", h.Activate)
	}
}

func (h *TermsHandler) Active(c *gin.Context) {
	termType := models.TermType(c.DefaultQuery("type", string(models.TermTypeTerms)))

	active, err := h.termsService.ActiveVersion(termType)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, active)
}

func (h *TermsHandler) Create(c *gin.Context) {
	var req dto.CreateTermsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	terms, err := h.termsService.CreateVersion(req.Version, models.TermType(req.TermType), req.Content)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, terms)
}

func (h *TermsHandler) List(c *gin.Context) {
	limit, offset := ParsePagination(c)

	versions, err := h.termsService.ListVersions(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"versions": versions, "total": len(versions)})
}

func (h *TermsHandler) Activate(c *gin.Context) {
	activated, err := h.termsService.ActivateVersion(c.Param("termsId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, activated)
}
