package handlers

import (
	"studiofit_backend/internal/dto"
	"studiofit_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService    *services.PaymentService
	onboardingService *services.OnboardingService
}

func NewPaymentHandler(
	base *BaseHandler,
	paymentService *services.PaymentService,
	onboardingService *services.OnboardingService,
) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:       base,
		paymentService:    paymentService,
		onboardingService: onboardingService,
	}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	payments := r.Group("/payments")
	payments.Use(authMW)
	{
		payments.GET("", h.ListOwn)
	}

	admin := r.Group("/admin/members/:memberId/payments")
	admin.Use(adminMW)
	{
		admin.POST("", h.Record)
		admin.GET("", h.ListForMember)
	}
}

func (h *PaymentHandler) ListOwn(c *gin.Context) {
	account, ok := h.GetAuthorizedAccount(c)
	if !ok {
		return
	}

	member, err := h.onboardingService.MemberForAccount(account.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	limit, offset := ParsePagination(c)
	payments, err := h.paymentService.ListForMember(member.ID, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"payments": payments, "total": len(payments)})
}

func (h *PaymentHandler) Record(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.Record(c.Param("memberId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, payment)
}

func (h *PaymentHandler) ListForMember(c *gin.Context) {
	limit, offset := ParsePagination(c)

	payments, err := h.paymentService.ListForMember(c.Param("memberId"), limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"payments": payments, "total": len(payments)})
}
