package cours

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"formation-suite-core/internal/modules/cours/controllers"
	"formation-suite-core/internal/modules/cours/services"
	authMiddleware "formation-suite-core/internal/shared/middleware/auth"
)

// Module regroupe tous les providers du domaine cours
var Module = fx.Options(
	fx.Provide(services.NewCoursService),
	fx.Provide(controllers.NewCoursController),
	fx.Invoke(RegisterCoursRoutes),
)

// RegisterCoursRoutes enregistre les routes du cycle de vie des cours
func RegisterCoursRoutes(
	router *gin.Engine,
	coursController *controllers.CoursController,
	sessionMw *authMiddleware.SessionMiddleware,
) {
	coursGroup := router.Group("/api/v1/cours")
	coursGroup.Use(sessionMw.Handler())
	{
		coursGroup.GET("", coursController.List)
		coursGroup.POST("", coursController.Create)
		coursGroup.PUT("/:id", coursController.Update)
		coursGroup.DELETE("/:id", coursController.Delete)
		coursGroup.POST("/:id/export", coursController.Export)
		coursGroup.POST("/:id/review", coursController.Review)
	}
}
