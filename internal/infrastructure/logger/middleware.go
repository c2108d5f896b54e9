package logger

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// LoggerMiddleware fournit la journalisation des requêtes et la récupération
// de panique du serveur HTTP
type LoggerMiddleware struct{}

// GinLogger journalise chaque requête, sondes de santé exclues
func (lm *LoggerMiddleware) GinLogger() gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: formatRequest,
		SkipPaths: []string{"/health", "/ready"},
	})
}

func formatRequest(param gin.LogFormatterParams) string {
	var statusColor, methodColor, resetColor string
	if param.IsOutputColor() {
		statusColor = param.StatusCodeColor()
		methodColor = param.MethodColor()
		resetColor = param.ResetColor()
	}

	latency := param.Latency
	if latency > time.Minute {
		latency = latency.Truncate(time.Second)
	}

	return fmt.Sprintf("[HTTP] %s |%s %3d %s|%s %-7s %s %s | %v | %s%s\n",
		param.TimeStamp.Format("2006/01/02 15:04:05"),
		statusColor, param.StatusCode, resetColor,
		methodColor, param.Method, resetColor,
		param.Path,
		latency,
		param.ClientIP,
		errorSuffix(param.ErrorMessage),
	)
}

func errorSuffix(message string) string {
	if message == "" {
		return ""
	}
	return " | " + message
}

// GinRecovery convertit une panique en réponse 500 sans interrompre le serveur
func (lm *LoggerMiddleware) GinRecovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		fmt.Printf("[HTTP] Panique interceptée sur %s %s: %v\n",
			c.Request.Method, c.Request.URL.Path, recovered)

		c.JSON(500, gin.H{
			"error": "Une erreur interne est survenue",
		})
	})
}
