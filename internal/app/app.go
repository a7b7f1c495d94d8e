package app

import (
	"errors"
	"fmt"
	"time"

	"jobboard_backend/database"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
	"jobboard_backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	// TranslateError is required: the repositories depend on unique
	// violations surfacing as gorm.ErrDuplicatedKey.
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	hub := ws.NewHub()
	go hub.Run()
	wsHandler := ws.NewHandler(hub)

	serviceContainer := initializeServices(cfg, gormDB, hub)
	appHandlers := initializeHandlers(cfg, serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler, cfg.JWT.Secret)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, hub *ws.Hub) *services.ServiceContainer {
	emailProvider := newEmailProvider(cfg)
	notifier := services.NewWSNotifier(hub)

	userRepo := repositories.NewUserRepository(gormDB)
	companyRepo := repositories.NewCompanyRepository(gormDB)
	seekerRepo := repositories.NewJobSeekerRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)

	authService := services.NewAuthService(
		userRepo, companyRepo, seekerRepo, emailProvider,
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.TTL)*time.Hour,
		time.Duration(cfg.JWT.RememberTTL)*time.Hour,
		cfg.App.BaseURL,
	)
	userService := services.NewUserService(userRepo)
	companyService := services.NewCompanyService(companyRepo, notifier)
	jobSeekerService := services.NewJobSeekerService(seekerRepo)
	jobService := services.NewJobService(jobRepo, companyRepo, notifier)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo, companyRepo)

	return &services.ServiceContainer{
		AuthService:        authService,
		UserService:        userService,
		CompanyService:     companyService,
		JobSeekerService:   jobSeekerService,
		JobService:         jobService,
		ApplicationService: applicationService,
	}
}

func newEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured, password reset emails will only be logged")
		return email.NewLogProvider()
	}

	provider, err := email.NewSMTPProvider(email.Config{
		SMTPHost:  cfg.Email.SMTPHost,
		SMTPPort:  cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Fatal("Failed to initialize SMTP provider", "error", err)
	}
	return provider
}

func initializeHandlers(cfg *config.Config, container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	secureCookies := cfg.Server.Env == "production"
	jwtSecret := cfg.JWT.Secret

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, container.AuthService, jwtSecret, secureCookies),
		UserHandler:        handlers.NewUserHandler(baseHandler, container.UserService, jwtSecret),
		CompanyHandler:     handlers.NewCompanyHandler(baseHandler, container.CompanyService, jwtSecret),
		JobSeekerHandler:   handlers.NewJobSeekerHandler(baseHandler, container.JobSeekerService, jwtSecret),
		JobHandler:         handlers.NewJobHandler(baseHandler, container.JobService, jwtSecret),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, container.ApplicationService, jwtSecret),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.App.BaseURL))
	return router
}

// seedFirstAdmin creates the bootstrap admin account when the configured
// email does not exist yet. Admin accounts cannot be self-registered.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.Admin.Email
	adminPassword := cfg.Admin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("Admin email or password is not configured. Skipping admin seeding.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}

	if err := db.Create(admin).Error; err != nil {
		// Lost a race against a concurrent boot seeding the same admin.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Created first admin user", "email", adminEmail)
	return nil
}
