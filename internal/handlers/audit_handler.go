package handlers

import (
	"studiofit_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	*BaseHandler
	auditService *services.AuditService
}

func NewAuditHandler(base *BaseHandler, auditService *services.AuditService) *AuditHandler {
	return &AuditHandler{BaseHandler: base, auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(r *gin.RouterGroup, adminMW gin.HandlerFunc) {
	admin := r.Group("/admin/audit")
	admin.Use(adminMW)
	{
		admin.GET("", h.List)
		admin.GET("/records/:recordId", h.ForRecord)
	}
}

func (h *AuditHandler) List(c *gin.Context) {
	limit, offset := ParsePagination(c)

	entries, err := h.auditService.List(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"entries": entries, "total": len(entries)})
}

func (h *AuditHandler) ForRecord(c *gin.Context) {
	entries, err := h.auditService.ForRecord(c.Param("recordId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"entries": entries, "total": len(entries)})
}
