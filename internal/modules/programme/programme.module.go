package programme

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"formation-suite-core/internal/modules/programme/controllers"
	"formation-suite-core/internal/modules/programme/services"
	authMiddleware "formation-suite-core/internal/shared/middleware/auth"
)

// Module regroupe tous les providers du domaine programme
var Module = fx.Options(
	fx.Provide(services.NewProgrammeService),
	fx.Provide(controllers.NewProgrammeController),
	fx.Invoke(RegisterProgrammeRoutes),
)

// RegisterProgrammeRoutes enregistre les routes du cycle de vie des programmes
func RegisterProgrammeRoutes(
	router *gin.Engine,
	programmeController *controllers.ProgrammeController,
	sessionMw *authMiddleware.SessionMiddleware,
) {
	programmesGroup := router.Group("/api/v1/programmes")
	programmesGroup.Use(sessionMw.Handler())
	{
		programmesGroup.GET("", programmeController.ListForRegional)
		programmesGroup.POST("", programmeController.Create)
		programmesGroup.DELETE("/:id", programmeController.Delete)
		programmesGroup.POST("/:id/review", programmeController.Review)
		programmesGroup.GET("/enseignant", programmeController.ListForTeacher)
	}
}
