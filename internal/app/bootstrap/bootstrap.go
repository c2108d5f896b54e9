package bootstrap

import (
	"context"
	"fmt"
	"time"

	mongoInfra "formation-suite-core/internal/infrastructure/database/mongodb"
	pgInfra "formation-suite-core/internal/infrastructure/database/postgres"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// BootstrapSystem orchestre le processus de démarrage automatique :
// extensions PostgreSQL, schéma, données de référence, index MongoDB
type BootstrapSystem struct {
	extensionManager *ExtensionManager
	schemaManager    *SchemaManager
	seedingManager   *SeedingManager
	mongoClient      *mongoInfra.Client
	timeout          time.Duration
}

// PhaseResult contient le résultat d'une phase du bootstrap
type PhaseResult struct {
	Phase    string        `json:"phase"`
	Success  bool          `json:"success"`
	Duration time.Duration `json:"duration"`
	Error    string        `json:"error,omitempty"`
}

func NewBootstrapSystem(
	extensionManager *ExtensionManager,
	schemaManager *SchemaManager,
	seedingManager *SeedingManager,
	mongoClient *mongoInfra.Client,
) *BootstrapSystem {
	return &BootstrapSystem{
		extensionManager: extensionManager,
		schemaManager:    schemaManager,
		seedingManager:   seedingManager,
		mongoClient:      mongoClient,
		timeout:          5 * time.Minute,
	}
}

// Execute lance les phases séquentielles du bootstrap
func (bs *BootstrapSystem) Execute() error {
	ctx, cancel := context.WithTimeout(context.Background(), bs.timeout)
	defer cancel()

	fmt.Printf("[BOOTSTRAP] Démarrage BootstrapSystem (timeout: %v)\n", bs.timeout)

	phases := []struct {
		name string
		run  func(context.Context) error
	}{
		{"Phase 0: Extensions PostgreSQL", bs.extensionManager.EnsureUUIDExtension},
		{"Phase 1: Schéma PostgreSQL", bs.schemaManager.EnsureSchema},
		{"Phase 2: Seeding données de référence", bs.runSeeding},
		{"Phase 3: Index MongoDB documents", bs.ensureDocumentIndexes},
	}

	for _, phase := range phases {
		result := bs.executePhase(ctx, phase.name, phase.run)
		if !result.Success {
			return fmt.Errorf("bootstrap failed at %s: %s", result.Phase, result.Error)
		}
	}

	fmt.Printf("[BOOTSTRAP] BootstrapSystem terminé, application prête\n")
	return nil
}

func (bs *BootstrapSystem) executePhase(ctx context.Context, name string, run func(context.Context) error) PhaseResult {
	startTime := time.Now()

	fmt.Printf("[BOOTSTRAP] Démarrage %s\n", name)

	err := run(ctx)
	duration := time.Since(startTime)

	if err != nil {
		fmt.Printf("[BOOTSTRAP] %s échouée en %v: %v\n", name, duration, err)
		return PhaseResult{Phase: name, Success: false, Duration: duration, Error: err.Error()}
	}

	fmt.Printf("[BOOTSTRAP] %s terminée en %v\n", name, duration)
	return PhaseResult{Phase: name, Success: true, Duration: duration}
}

func (bs *BootstrapSystem) runSeeding(ctx context.Context) error {
	exists, err := bs.seedingManager.CheckSeedDataExists(ctx)
	if err != nil {
		return err
	}
	return bs.seedingManager.ApplySeeding(ctx, exists)
}

// ensureDocumentIndexes crée l'index unique sur la référence des documents PDF
func (bs *BootstrapSystem) ensureDocumentIndexes(ctx context.Context) error {
	unique := true
	return bs.mongoClient.CreateIndex(ctx, "documents",
		bson.D{{Key: "reference", Value: 1}},
		&options.IndexOptions{Unique: &unique},
	)
}

// Providers Fx pour le système de bootstrap

func NewBootstrapExtensionManager(pgClient *pgInfra.Client) *ExtensionManager {
	return NewExtensionManager(pgClient)
}

func NewBootstrapSchemaManager(pgClient *pgInfra.Client) *SchemaManager {
	return NewSchemaManager(pgClient)
}

func NewBootstrapSeedingManager(pgClient *pgInfra.Client) *SeedingManager {
	return NewSeedingManager(pgClient)
}

// RegisterBootstrapLifecycle enregistre le bootstrap AVANT le serveur HTTP
func RegisterBootstrapLifecycle(lc fx.Lifecycle, bootstrap *BootstrapSystem) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := bootstrap.Execute(); err != nil {
				return fmt.Errorf("bootstrap system failed: %w", err)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return nil
		},
	})
}
