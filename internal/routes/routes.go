package routes

import (
	"net/http"

	"studiofit_backend/internal/handlers"
	"studiofit_backend/internal/metrics"
	"studiofit_backend/internal/middleware"
	"studiofit_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the full HTTP surface. All authenticated routes go
// through the gate middleware built here; admin routes use the strict
// variant.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	gate *services.GateService,
) {
	authMW := middleware.AuthMiddleware(gate)
	adminMW := middleware.AdminMiddleware(gate)

	ginRouter.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	ginRouter.GET("/metrics", metrics.Handler())

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.AccountHandler.RegisterRoutes(api, authMW, adminMW)
		appHandlers.MemberHandler.RegisterRoutes(api, adminMW)
		appHandlers.TrainerHandler.RegisterRoutes(api, adminMW)
		appHandlers.TermsHandler.RegisterRoutes(api, adminMW)
		appHandlers.OnboardingHandler.RegisterRoutes(api, authMW)
		appHandlers.ClassHandler.RegisterRoutes(api, authMW, adminMW)
		appHandlers.PaymentHandler.RegisterRoutes(api, authMW, adminMW)
		appHandlers.AuditHandler.RegisterRoutes(api, adminMW)
	}
}
