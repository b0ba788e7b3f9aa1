package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studiofit_backend/database"
	"studiofit_backend/internal/config"
	"studiofit_backend/internal/email"
	"studiofit_backend/internal/handlers"
	"studiofit_backend/internal/logger"
	"studiofit_backend/internal/metrics"
	"studiofit_backend/internal/middleware"
	"studiofit_backend/internal/models"
	"studiofit_backend/internal/repositories"
	"studiofit_backend/internal/routes"
	"studiofit_backend/internal/services"
	"studiofit_backend/internal/validator"
	"studiofit_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin account", "error", err)
	}

	ginRouter, serviceContainer := SetupRouter(cfg, gormDB)

	if cfg.Workers.AttendanceEnabled {
		worker := workers.NewAttendanceWorker(
			serviceContainer.ClassService,
			time.Duration(cfg.Workers.AbsentGraceMinutes)*time.Minute,
			time.Duration(cfg.Workers.SweepIntervalMin)*time.Minute,
		)
		worker.Start(context.Background())
		logger.Info("Attendance worker started",
			"grace_minutes", cfg.Workers.AbsentGraceMinutes,
			"interval_minutes", cfg.Workers.SweepIntervalMin)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full dependency graph and returns the configured
// engine together with the services, so callers (main and tests) can reach
// them.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *services.ServiceContainer) {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(cfg, serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers, serviceContainer.GateService)

	return ginRouter, serviceContainer
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var mailer email.Provider
	if cfg.Email.Enabled {
		mailer = email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
	} else {
		logger.Warn("Email delivery disabled, using mock provider")
		mailer = &email.MockProvider{}
	}

	accountRepo := repositories.NewAccountRepository(gormDB)
	memberRepo := repositories.NewMemberRepository(gormDB)
	trainerRepo := repositories.NewTrainerRepository(gormDB)
	onboardingRepo := repositories.NewOnboardingRepository(gormDB)
	termsRepo := repositories.NewTermsRepository(gormDB)
	auditRepo := repositories.NewAuditRepository(gormDB)
	classRepo := repositories.NewClassRepository(gormDB)
	paymentRepo := repositories.NewPaymentRepository(gormDB)

	tokenTTL := time.Duration(cfg.JWT.TTL) * time.Minute

	return &services.ServiceContainer{
		GateService:       services.NewGateService(accountRepo, cfg.JWT.Secret),
		AuthService:       services.NewAuthService(accountRepo, mailer, cfg.JWT.Secret, tokenTTL, cfg.App.PasswordResetURL),
		AccountService:    services.NewAccountService(accountRepo, memberRepo, trainerRepo),
		LinkingService:    services.NewLinkingService(accountRepo, memberRepo, trainerRepo, auditRepo, mailer),
		MemberService:     services.NewMemberService(memberRepo, accountRepo),
		TrainerService:    services.NewTrainerService(trainerRepo),
		TermsService:      services.NewTermsService(termsRepo),
		OnboardingService: services.NewOnboardingService(onboardingRepo, memberRepo, termsRepo),
		ClassService:      services.NewClassService(classRepo, memberRepo, trainerRepo),
		PaymentService:    services.NewPaymentService(paymentRepo, memberRepo),
		AuditService:      services.NewAuditService(auditRepo),
	}
}

func initializeHandlers(cfg *config.Config, sc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)
	absentGrace := time.Duration(cfg.Workers.AbsentGraceMinutes) * time.Minute

	return &handlers.AppHandlers{
		AuthHandler:       handlers.NewAuthHandler(baseHandler, sc.AuthService),
		AccountHandler:    handlers.NewAccountHandler(baseHandler, sc.AccountService, sc.LinkingService, sc.AuthService),
		MemberHandler:     handlers.NewMemberHandler(baseHandler, sc.MemberService, sc.LinkingService),
		TrainerHandler:    handlers.NewTrainerHandler(baseHandler, sc.TrainerService, sc.LinkingService),
		TermsHandler:      handlers.NewTermsHandler(baseHandler, sc.TermsService),
		OnboardingHandler: handlers.NewOnboardingHandler(baseHandler, sc.OnboardingService),
		ClassHandler:      handlers.NewClassHandler(baseHandler, sc.ClassService, sc.OnboardingService, absentGrace),
		PaymentHandler:    handlers.NewPaymentHandler(baseHandler, sc.PaymentService, sc.OnboardingService),
		AuditHandler:      handlers.NewAuditHandler(baseHandler, sc.AuditService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(metrics.Middleware())
	return router
}

// seedFirstAdmin creates the bootstrap admin account when configured and
// missing. Without it a fresh deployment has no way to reach the admin
// portal.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.Admin.FirstAdminEmail
	adminPassword := cfg.Admin.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("First admin credentials not configured, skipping admin seeding")
		return nil
	}

	var existing models.Account
	result := db.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin account already exists, skipping creation", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin account: %w", result.Error)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.Account{
		Email:             adminEmail,
		PasswordHash:      string(hashedPassword),
		IsAdmin:           true,
		AccessiblePortals: datatypes.NewJSONSlice([]string{models.PortalAdmin, models.PortalMember, models.PortalTrainer}),
		Status:            models.AccountStatusActive,
	}

	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info("Created first admin account", "email", adminEmail)
	return nil
}
