package offre

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"formation-suite-core/internal/modules/offre/controllers"
	"formation-suite-core/internal/modules/offre/services"
	authMiddleware "formation-suite-core/internal/shared/middleware/auth"
)

// Module regroupe tous les providers du domaine offre
var Module = fx.Options(
	fx.Provide(services.NewOffreService),
	fx.Provide(controllers.NewOffreController),
	fx.Invoke(RegisterOffreRoutes),
)

// RegisterOffreRoutes enregistre les routes des offres de formation
func RegisterOffreRoutes(
	router *gin.Engine,
	offreController *controllers.OffreController,
	sessionMw *authMiddleware.SessionMiddleware,
) {
	offresGroup := router.Group("/api/v1/offres")
	offresGroup.Use(sessionMw.Handler())
	{
		offresGroup.GET("", offreController.ListOwn)
		offresGroup.POST("", offreController.Create)
		offresGroup.POST("/:id/cloture", offreController.Close)
		offresGroup.GET("/ouvertes", offreController.ListOpen)
	}
}
