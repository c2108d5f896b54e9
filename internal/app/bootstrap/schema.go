package bootstrap

import (
	"context"
	_ "embed"
	"fmt"

	pgInfra "formation-suite-core/internal/infrastructure/database/postgres"
)

//go:embed schema.sql
var schemaDDL string

// SchemaManager applique le schéma embarqué (DDL idempotent)
type SchemaManager struct {
	db *pgInfra.Client
}

func NewSchemaManager(db *pgInfra.Client) *SchemaManager {
	return &SchemaManager{db: db}
}

// EnsureSchema applique l'intégralité du DDL.
// Toutes les instructions sont en IF NOT EXISTS : rejouable à chaque démarrage.
func (sm *SchemaManager) EnsureSchema(ctx context.Context) error {
	if err := sm.db.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("application schéma échouée: %w", err)
	}
	return nil
}
