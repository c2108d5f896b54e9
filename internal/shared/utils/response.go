package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"formation-suite-core/internal/shared/domain"
)

// RespondData envoie une réponse de succès enveloppée
func RespondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

// RespondError mappe une erreur service vers la réponse HTTP appropriée
func RespondError(c *gin.Context, err error) {
	svcErr := domain.AsServiceError(err)

	body := gin.H{"error": svcErr.Message}
	if svcErr.Details != nil {
		body["details"] = svcErr.Details
	}
	c.JSON(svcErr.HTTPStatus(), body)
}

// RespondValidationError répond à une erreur de binding Gin
func RespondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Données de requête invalides",
		"details": err.Error(),
	})
}
