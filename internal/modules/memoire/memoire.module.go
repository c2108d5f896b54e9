package memoire

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"formation-suite-core/internal/modules/memoire/controllers"
	"formation-suite-core/internal/modules/memoire/services"
	authMiddleware "formation-suite-core/internal/shared/middleware/auth"
)

// Module regroupe tous les providers du domaine memoire
var Module = fx.Options(
	fx.Provide(services.NewMemoireService),
	fx.Provide(controllers.NewMemoireController),
	fx.Invoke(RegisterMemoireRoutes),
)

// RegisterMemoireRoutes enregistre les routes du cycle de vie des mémoires
func RegisterMemoireRoutes(
	router *gin.Engine,
	memoireController *controllers.MemoireController,
	sessionMw *authMiddleware.SessionMiddleware,
) {
	memoiresGroup := router.Group("/api/v1/memoires")
	memoiresGroup.Use(sessionMw.Handler())
	{
		memoiresGroup.POST("/supervision", memoireController.AssignSupervision)
		memoiresGroup.GET("/mien", memoireController.GetOwn)
		memoiresGroup.PUT("/mien", memoireController.UpdateContent)
		memoiresGroup.POST("/:id/validate", memoireController.Validate)
		memoiresGroup.GET("/collegues", memoireController.ListColleagues)
		memoiresGroup.GET("/encadres", memoireController.ListSupervised)
		memoiresGroup.GET("/etablissement", memoireController.ListForEstablishment)
	}
}
