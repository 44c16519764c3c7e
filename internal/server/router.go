// Package server assembles the HTTP router for the valuation API.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"appraisal/internal/handlers"
	"appraisal/internal/middleware"
	"appraisal/internal/services"

	_ "appraisal/internal/docs" // Import swagger docs
)

// NewRouter wires the handlers for the given services onto a gin engine.
// db is only used by the health check.
func NewRouter(db *gorm.DB, valuationService services.ValuationServicer, auditService services.AuditServicer) *gin.Engine {
	valuationHandler := handlers.NewValuationHandler(valuationService, auditService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Valuation routes
	valuations := v1.Group("/valuations")
	valuations.POST("/sales-comparison", valuationHandler.SalesComparison)
	valuations.POST("/residual", valuationHandler.Residual)
	valuations.POST("/dcf", valuationHandler.DCF)
	valuations.POST("/profits", valuationHandler.Profits)
	valuations.POST("/site-rent", valuationHandler.SiteRent)
	valuations.POST("/auto", valuationHandler.Auto)
	valuations.POST("/batch", valuationHandler.Batch)
	valuations.GET("", valuationHandler.GetValuations)
	valuations.GET("/:id", valuationHandler.GetValuation)

	// Method routes
	v1.GET("/methods/select", valuationHandler.SelectMethod)
	v1.GET("/assumptions", valuationHandler.GetAssumptions)

	return router
}
