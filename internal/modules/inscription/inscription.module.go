package inscription

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"formation-suite-core/internal/modules/inscription/controllers"
	"formation-suite-core/internal/modules/inscription/services"
	authMiddleware "formation-suite-core/internal/shared/middleware/auth"
)

// Module regroupe tous les providers du domaine inscription
var Module = fx.Options(
	fx.Provide(services.NewInscriptionService),
	fx.Provide(controllers.NewInscriptionController),
	fx.Invoke(RegisterInscriptionRoutes),
)

// RegisterInscriptionRoutes enregistre les routes des inscriptions
func RegisterInscriptionRoutes(
	router *gin.Engine,
	inscriptionController *controllers.InscriptionController,
	sessionMw *authMiddleware.SessionMiddleware,
) {
	inscriptionsGroup := router.Group("/api/v1/inscriptions")
	inscriptionsGroup.Use(sessionMw.Handler())
	{
		inscriptionsGroup.POST("", inscriptionController.Create)
		inscriptionsGroup.POST("/:id/decision", inscriptionController.Decide)
		inscriptionsGroup.POST("/:id/annulation", inscriptionController.Cancel)
		inscriptionsGroup.GET("/offre/:offreId", inscriptionController.ListForOffer)
		inscriptionsGroup.GET("/miennes", inscriptionController.ListOwn)
	}
}
