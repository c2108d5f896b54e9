package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"formation-suite-core/internal/modules/auth/dto"
	"formation-suite-core/internal/modules/auth/services"
	authMiddleware "formation-suite-core/internal/shared/middleware/auth"
	"formation-suite-core/internal/shared/utils"
)

// AuthController expose les endpoints d'authentification
type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login - POST /api/v1/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	response, err := ctrl.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, response)
}

// Logout - POST /api/v1/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)
	token := c.GetString("session_token")

	if err := ctrl.authService.Logout(c.Request.Context(), token, principal.CompteID); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{"message": "Déconnexion réussie"})
}

// Me - GET /api/v1/auth/me
func (ctrl *AuthController) Me(c *gin.Context) {
	principal, ok := authMiddleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return
	}

	compte, err := ctrl.authService.Me(c.Request.Context(), principal.CompteID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, compte)
}
