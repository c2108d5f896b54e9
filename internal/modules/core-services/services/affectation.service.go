package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"formation-suite-core/internal/infrastructure/database/postgres"
	"formation-suite-core/internal/modules/core-services/queries"
	"formation-suite-core/internal/shared/domain"
)

// AffectationService résout les affectations de modules et les relations
// d'inscription (spécialités, établissements, collègues d'un stagiaire).
// Seules les inscriptions acceptées comptent pour toutes ces dérivations.
type AffectationService struct {
	db *postgres.Client
}

func NewAffectationService(db *postgres.Client) *AffectationService {
	return &AffectationService{db: db}
}

// ModulesTaughtBy retourne les ids des modules affectés à un enseignant.
// annee vide = toutes années scolaires confondues.
func (s *AffectationService) ModulesTaughtBy(ctx context.Context, enseignantID, annee string) ([]string, error) {
	var rows pgx.Rows
	var err error

	if annee == "" {
		rows, err = s.db.Query(ctx, queries.AffectationQueries.ModulesTaughtBy, enseignantID)
	} else {
		rows, err = s.db.Query(ctx, queries.AffectationQueries.ModulesTaughtByAnnee, enseignantID, annee)
	}
	if err != nil {
		return nil, domain.NewInternalError("Erreur lecture des affectations",
			fmt.Errorf("erreur lecture modules enseignant: %w", err))
	}

	return collectIDs(rows)
}

// SpecialtiesOf retourne les spécialités des offres du stagiaire
func (s *AffectationService) SpecialtiesOf(ctx context.Context, stagiaireID string) ([]string, error) {
	rows, err := s.db.Query(ctx, queries.AffectationQueries.SpecialtiesOf, stagiaireID)
	if err != nil {
		return nil, domain.NewInternalError("Erreur lecture des inscriptions",
			fmt.Errorf("erreur lecture spécialités stagiaire: %w", err))
	}

	return collectIDs(rows)
}

// EstablishmentsOf retourne les établissements de formation du stagiaire
func (s *AffectationService) EstablishmentsOf(ctx context.Context, stagiaireID string) ([]string, error) {
	rows, err := s.db.Query(ctx, queries.AffectationQueries.EstablishmentsOf, stagiaireID)
	if err != nil {
		return nil, domain.NewInternalError("Erreur lecture des inscriptions",
			fmt.Errorf("erreur lecture établissements stagiaire: %w", err))
	}

	return collectIDs(rows)
}

// ColleaguesOf retourne les stagiaires partageant au moins une offre,
// dédupliqués, le stagiaire lui-même exclu
func (s *AffectationService) ColleaguesOf(ctx context.Context, stagiaireID string) ([]string, error) {
	rows, err := s.db.Query(ctx, queries.AffectationQueries.ColleaguesOf, stagiaireID)
	if err != nil {
		return nil, domain.NewInternalError("Erreur lecture des inscriptions",
			fmt.Errorf("erreur lecture collègues stagiaire: %w", err))
	}

	return collectIDs(rows)
}

func collectIDs(rows pgx.Rows) ([]string, error) {
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, domain.NewInternalError("Erreur lecture des identifiants", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewInternalError("Erreur lecture des identifiants", err)
	}

	return ids, nil
}
