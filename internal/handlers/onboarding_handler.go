package handlers

import (
	"studiofit_backend/internal/models"
	"studiofit_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// OnboardingHandler is the member-portal onboarding surface. Every route
// resolves the caller's member record through the linked account.
type OnboardingHandler struct {
	*BaseHandler
	onboardingService *services.OnboardingService
}

func NewOnboardingHandler(base *BaseHandler, onboardingService *services.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{BaseHandler: base, onboardingService: onboardingService}
}

func (h *OnboardingHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	onboarding := r.Group("/onboarding")
	onboarding.Use(authMW)
	{
		onboarding.GET("/status", h.Status)
		onboarding.POST("/personal-info", h.CompletePersonalInfo)
		onboarding.POST("/accept-terms", h.AcceptTerms)
	}
}

func (h *OnboardingHandler) Status(c *gin.Context) {
	member, ok := h.callerMember(c)
	if !ok {
		return
	}

	status, err := h.onboardingService.Status(member.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, status)
}

func (h *OnboardingHandler) CompletePersonalInfo(c *gin.Context) {
	member, ok := h.callerMember(c)
	if !ok {
		return
	}

	onboarding, err := h.onboardingService.CompletePersonalInfo(member.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, onboarding)
}

func (h *OnboardingHandler) AcceptTerms(c *gin.Context) {
	member, ok := h.callerMember(c)
	if !ok {
		return
	}

	onboarding, err := h.onboardingService.AcceptTerms(member.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, onboarding)
}

func (h *OnboardingHandler) callerMember(c *gin.Context) (*models.Member, bool) {
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
