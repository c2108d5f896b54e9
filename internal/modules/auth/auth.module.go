package auth

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"formation-suite-core/internal/modules/auth/controllers"
	"formation-suite-core/internal/modules/auth/services"
	authMiddleware "formation-suite-core/internal/shared/middleware/auth"
)

// Module regroupe tous les providers du domaine auth
var Module = fx.Options(
	fx.Provide(services.NewSessionService),
	fx.Provide(services.NewAuthService),
	fx.Provide(controllers.NewAuthController),
	fx.Invoke(RegisterAuthRoutes),
)

// RegisterAuthRoutes enregistre les routes d'authentification
func RegisterAuthRoutes(
	router *gin.Engine,
	authController *controllers.AuthController,
	sessionMw *authMiddleware.SessionMiddleware,
) {
	authGroup := router.Group("/api/v1/auth")
	{
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/logout", sessionMw.Handler(), authController.Logout)
		authGroup.GET("/me", sessionMw.Handler(), authController.Me)
	}
}
