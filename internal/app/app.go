package app

import (
	"errors"
	"fmt"

	"recruivo_backend/database"
	"recruivo_backend/internal/auth"
	"recruivo_backend/internal/config"
	"recruivo_backend/internal/email"
	"recruivo_backend/internal/handlers"
	"recruivo_backend/internal/logger"
	"recruivo_backend/internal/middleware"
	"recruivo_backend/internal/models"
	"recruivo_backend/internal/repositories"
	"recruivo_backend/internal/routes"
	"recruivo_backend/internal/services"
	"recruivo_backend/internal/storage"
	"recruivo_backend/internal/validator"
	"recruivo_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
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

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	worker := workers.NewJobWorker(
		repositories.NewJobRepository(gormDB),
		repositories.NewRefreshTokenRepository(gormDB),
	)
	if err := worker.Start(); err != nil {
		logger.Fatal("Failed to start job worker", "error", err)
	}
	defer worker.Stop()

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the fully wired gin engine. Tests call it directly
// against their own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	store, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	emailProvider := newEmailProvider(cfg)

	serviceContainer := services.NewServiceContainer(gormDB, cfg, store, emailProvider)
	appHandlers := handlers.NewAppHandlers(serviceContainer, store, validator.New())

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func newEmailProvider(cfg *config.Config) email.Provider {
	if !cfg.Email.Enabled {
		logger.Info("Email delivery disabled, using noop provider")
		return email.NewNoopProvider()
	}
	provider, err := email.NewSMTPProvider(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize SMTP provider", "error", err)
	}
	return provider
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin creates the bootstrap admin account when configured and
// absent. Admins cannot self-register.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

	hashed, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: hashed,
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
