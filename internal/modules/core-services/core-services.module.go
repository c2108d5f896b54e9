package coreservices

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"formation-suite-core/internal/modules/core-services/controllers"
	"formation-suite-core/internal/modules/core-services/services"
	authMiddleware "formation-suite-core/internal/shared/middleware/auth"
)

// Module regroupe les services transverses : résolution de périmètre,
// affectations, documents et notifications
var Module = fx.Options(
	fx.Provide(services.NewScopeService),
	fx.Provide(services.NewAffectationService),
	fx.Provide(services.NewDocumentService),
	fx.Provide(services.NewNotificationService),
	fx.Provide(controllers.NewDocumentController),
	fx.Invoke(RegisterCoreServicesRoutes),
)

// RegisterCoreServicesRoutes enregistre les routes des services transverses
func RegisterCoreServicesRoutes(
	router *gin.Engine,
	documentController *controllers.DocumentController,
	sessionMw *authMiddleware.SessionMiddleware,
) {
	documentsGroup := router.Group("/api/v1/documents")
	documentsGroup.Use(sessionMw.Handler())
	{
		documentsGroup.GET("/:reference", documentController.Download)
	}
}
