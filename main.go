package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"carcatalog-api/config"
	"carcatalog-api/database"
	"carcatalog-api/middleware"
	"carcatalog-api/repositories"
	"carcatalog-api/routes"
	"carcatalog-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	logger, err := newLogger()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Bootstrap import: load the bundled CSV when every table is empty
	importService := services.NewImportService(
		repositories.NewCarRepository(db),
		services.NewMakeService(repositories.NewMakeRepository(db), logger),
		services.NewModelService(repositories.NewModelRepository(db), logger),
		services.NewCategoryService(repositories.NewCategoryRepository(db), logger),
		logger,
	)
	if err := importService.Run(cfg.CSVPath); err != nil {
		logger.Warn("bootstrap import failed", zap.Error(err))
	}

	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.ValidateJSON())
	router.Use(middleware.RateLimit(cfg.RateLimitRPM, cfg.RateLimitBurst))

	// Setup routes
	routes.SetupRoutes(router, db, cfg, logger)

	logger.Info("starting car catalog API server", zap.String("port", cfg.Port))

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func newLogger() (*zap.Logger, error) {
	if gin.Mode() == gin.DebugMode {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
