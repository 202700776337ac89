package http

import (
	"github.com/gin-gonic/gin"
	"github.com/precoscan/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// Product registry
	router.POST("/produtos", handler.RegisterProduct)
	router.GET("/produtos", handler.ListProducts)

	// Price resolution
	router.GET("/precos", handler.BestPrices)
	router.GET("/precos/todos", handler.AllPrices)

	return router
}
