package middleware

import (
	"go.uber.org/fx"

	"formation-suite-core/internal/shared/middleware/auth"
)

// Module regroupe tous les providers des middlewares
var Module = fx.Options(
	fx.Provide(auth.NewSessionMiddleware),
)
