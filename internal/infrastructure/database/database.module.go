package database

import (
	"go.uber.org/fx"

	"formation-suite-core/internal/infrastructure/database/mongodb"
	"formation-suite-core/internal/infrastructure/database/postgres"
	"formation-suite-core/internal/infrastructure/database/redis"
)

var Module = fx.Options(

	// Modules database
	postgres.Module,
	redis.Module,
	mongodb.Module,
)
