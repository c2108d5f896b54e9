package app

import (
	"net/http"

	"formation-suite-core/internal/app/config"
	"formation-suite-core/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, loggerMw *logger.LoggerMiddleware) *gin.Engine {
	configureGinMode(cfg.Environment)

	r := gin.New()

	r.Use(loggerMw.GinLogger())
	r.Use(loggerMw.GinRecovery())

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"status": "healthy",
			},
		})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"status": "ready",
			},
		})
	})

	// Les routes métier sont enregistrées par chaque module via fx.Invoke

	return r
}

// configureGinMode configure le mode Gin selon l'environnement
func configureGinMode(environment string) {
	switch environment {
	case "production", "staging":
		gin.SetMode(gin.ReleaseMode)
	case "development":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
}
