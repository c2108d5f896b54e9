package affectation

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"formation-suite-core/internal/modules/affectation/controllers"
	"formation-suite-core/internal/modules/affectation/services"
	authMiddleware "formation-suite-core/internal/shared/middleware/auth"
)

// Module regroupe tous les providers du domaine affectation
var Module = fx.Options(
	fx.Provide(services.NewAffectationService),
	fx.Provide(controllers.NewAffectationController),
	fx.Invoke(RegisterAffectationRoutes),
)

// RegisterAffectationRoutes enregistre les routes d'affectation des modules
func RegisterAffectationRoutes(
	router *gin.Engine,
	affectationController *controllers.AffectationController,
	sessionMw *authMiddleware.SessionMiddleware,
) {
	affectationsGroup := router.Group("/api/v1/affectations")
	affectationsGroup.Use(sessionMw.Handler())
	{
		affectationsGroup.PUT("", affectationController.AssignModules)
		affectationsGroup.DELETE("", affectationController.RemoveAssignment)
		affectationsGroup.GET("/:enseignantId", affectationController.ListAssignments)
	}
}
