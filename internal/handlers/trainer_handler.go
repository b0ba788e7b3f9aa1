package handlers

import (
	"studiofit_backend/internal/dto"
	"studiofit_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// TrainerHandler mirrors the member surface for trainer records.
type TrainerHandler struct {
	*BaseHandler
	trainerService *services.TrainerService
	linkingService *services.LinkingService
}

func NewTrainerHandler(
	base *BaseHandler,
	trainerService *services.TrainerService,
	linkingService *services.LinkingService,
) *TrainerHandler {
	return &TrainerHandler{
		BaseHandler:    base,
		trainerService: trainerService,
		linkingService: linkingService,
	}
}

func (h *TrainerHandler) RegisterRoutes(r *gin.RouterGroup, adminMW gin.HandlerFunc) {
	admin := r.Group("/admin/trainers")
	admin.Use(adminMW)
	{
		admin.POST("", h.Create)
		admin.GET("", h.List)
		admin.GET("/:trainerId", h.Get)
		admin.POST("/:trainerId/link", h.Link)
		admin.DELETE("/:trainerId/link", h.Unlink)
	}
}

func (h *TrainerHandler) Create(c *gin.Context) {
	var req dto.CreateTrainerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	trainer, err := h.trainerService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, trainer)
}

func (h *TrainerHandler) List(c *gin.Context) {
	limit, offset := ParsePagination(c)

	trainers, total, err := h.trainerService.List(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"trainers": trainers, "total": total})
}

func (h *TrainerHandler) Get(c *gin.Context) {
	trainer, err := h.trainerService.FindByID(c.Param("trainerId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, trainer)
}

func (h *TrainerHandler) Link(c *gin.Context) {
	var req dto.LinkAccountRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.linkingService.LinkAccountToTrainer(req.AccountID, c.Param("trainerId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Message(c, "Account linked to trainer")
}

func (h *TrainerHandler) Unlink(c *gin.Context) {
	actor, ok := h.GetAuthorizedAccount(c)
	if !ok {
		return
	}

	if err := h.linkingService.UnlinkAccountFromTrainer(actor.ID, c.Param("trainerId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Message(c, "Account unlinked from trainer")
}
