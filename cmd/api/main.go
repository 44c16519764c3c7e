package main

import (
	"fmt"
	"os"

	"appraisal/internal/config"
	"appraisal/internal/database"
	"appraisal/internal/logger"
	"appraisal/internal/server"
	"appraisal/internal/services"
	"appraisal/internal/validator"

	"github.com/gin-gonic/gin"
)

// @title           Appraisal API
// @version         1.0
// @description     Appraisal values real estate by sales comparison, residual land value, discounted cash flow and the profits method, and archives every result.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	assumptions, err := config.LoadAssumptions(appConfig.AssumptionsFile)
	if err != nil {
		return fmt.Errorf("failed to load valuation assumptions: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Initialize services
	db := dbManager.DB()
	auditService := services.NewAuditService(db)
	valuationService := services.NewValuationService(db, assumptions, appConfig.BatchConcurrency)

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(db, valuationService, auditService)

	log.Infof("Starting appraisal server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
