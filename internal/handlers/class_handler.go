package handlers

import (
	"time"

	"studiofit_backend/internal/dto"
	"studiofit_backend/internal/metrics"
	"studiofit_backend/internal/models"
	"studiofit_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ClassHandler serves the class schedule to members and session management
// to admins. The absent sweep is exposed as an admin endpoint so an external
// scheduler can drive it in addition to the built-in worker.
type ClassHandler struct {
	*BaseHandler
	classService      *services.ClassService
	onboardingService *services.OnboardingService
	absentGrace       time.Duration
}

func NewClassHandler(
	base *BaseHandler,
	classService *services.ClassService,
	onboardingService *services.OnboardingService,
	absentGrace time.Duration,
) *ClassHandler {
	return &ClassHandler{
		BaseHandler:       base,
		classService:      classService,
		onboardingService: onboardingService,
		absentGrace:       absentGrace,
	}
}

func (h *ClassHandler) RegisterRoutes(r *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	classes := r.Group("/classes")
	classes.Use(authMW)
	{
		classes.GET("", h.List)
		classes.POST("/:sessionId/register", h.Register)
		classes.DELETE("/:sessionId/register", h.Cancel)
		classes.POST("/:sessionId/check-in", h.CheckIn)
	}

	admin := r.Group("/admin/classes")
	admin.Use(adminMW)
	{
		admin.POST("", h.CreateSession)
		admin.POST("/sweep-absent", h.SweepAbsent)
	}
}

func (h *ClassHandler) List(c *gin.Context) {
	limit, offset := ParsePagination(c)

	sessions, err := h.classService.ListSessions(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"sessions": sessions, "total": len(sessions)})
}

func (h *ClassHandler) Register(c *gin.Context) {
	member, ok := h.callerMember(c)
	if !ok {
		return
	}

	reg, err := h.classService.Register(member.ID, c.Param("sessionId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, reg)
}

func (h *ClassHandler) Cancel(c *gin.Context) {
	member, ok := h.callerMember(c)
	if !ok {
		return
	}

	if err := h.classService.Cancel(member.ID, c.Param("sessionId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Message(c, "Registration cancelled")
}

func (h *ClassHandler) CheckIn(c *gin.Context) {
	member, ok := h.callerMember(c)
	if !ok {
		return
	}

	reg, err := h.classService.CheckIn(member.ID, c.Param("sessionId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, reg)
}

func (h *ClassHandler) CreateSession(c *gin.Context) {
	var req dto.CreateSessionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	session, err := h.classService.CreateSession(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, session)
}

func (h *ClassHandler) SweepAbsent(c *gin.Context) {
	marked, err := h.classService.MarkAbsentees(time.Now(), h.absentGrace)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	metrics.ObserveAbsentSweep(marked)
	h.OK(c, gin.H{"marked_absent": marked})
}

func (h *ClassHandler) callerMember(c *gin.Context) (*models.Member, bool) {
	account, ok := h.GetAuthorizedAccount(c)
	if !ok {
		return nil, false
	}

	member, err := h.onboardingService.MemberForAccount(account.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return nil, false
	}
	return member, true
}
