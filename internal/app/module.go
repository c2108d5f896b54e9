package app

import (
	"go.uber.org/fx"

	"formation-suite-core/internal/app/bootstrap"
	"formation-suite-core/internal/app/config"
	"formation-suite-core/internal/infrastructure/database"
	"formation-suite-core/internal/infrastructure/logger"
	"formation-suite-core/internal/modules/affectation"
	"formation-suite-core/internal/modules/auth"
	coreservices "formation-suite-core/internal/modules/core-services"
	"formation-suite-core/internal/modules/cours"
	"formation-suite-core/internal/modules/inscription"
	"formation-suite-core/internal/modules/memoire"
	"formation-suite-core/internal/modules/offre"
	"formation-suite-core/internal/modules/programme"
	"formation-suite-core/internal/shared/middleware"
)

// AppModule assemble l'application complète : configuration, infrastructure,
// bootstrap, middlewares, modules métier et serveur HTTP
var AppModule = fx.Options(
	// Configuration
	fx.Provide(config.NewConfig),
	fx.Provide(config.NewPostgresConfig),
	fx.Provide(config.NewRedisConfig),
	fx.Provide(config.NewMongoConfig),

	// Infrastructure
	database.Module,
	logger.Module,

	// Bootstrap (extensions, schéma, seeding, index documents)
	fx.Provide(bootstrap.NewBootstrapExtensionManager),
	fx.Provide(bootstrap.NewBootstrapSchemaManager),
	fx.Provide(bootstrap.NewBootstrapSeedingManager),
	fx.Provide(bootstrap.NewBootstrapSystem),
	fx.Invoke(bootstrap.RegisterBootstrapLifecycle),

	// Middlewares partagés
	middleware.Module,

	// Routeur HTTP
	fx.Provide(NewRouter),

	// Modules métier
	coreservices.Module,
	auth.Module,
	offre.Module,
	inscription.Module,
	affectation.Module,
	cours.Module,
	memoire.Module,
	programme.Module,

	// Serveur HTTP
	fx.Provide(NewApplication),
	fx.Invoke((*Application).Start),
)
