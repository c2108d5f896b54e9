package bootstrap

import (
	"context"
	"fmt"

	pgInfra "formation-suite-core/internal/infrastructure/database/postgres"
)

// ExtensionManager gère les extensions PostgreSQL requises au démarrage
type ExtensionManager struct {
	db *pgInfra.Client
}

func NewExtensionManager(db *pgInfra.Client) *ExtensionManager {
	return &ExtensionManager{db: db}
}

// EnsureUUIDExtension crée l'extension uuid-ossp si absente
func (em *ExtensionManager) EnsureUUIDExtension(ctx context.Context) error {
	if err := em.db.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`); err != nil {
		return fmt.Errorf("création extension uuid-ossp échouée: %w", err)
	}
	return nil
}
