package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"formation-suite-core/internal/infrastructure/database/postgres"
	"formation-suite-core/internal/modules/core-services/dto"
	"formation-suite-core/internal/modules/core-services/queries"
	"formation-suite-core/internal/shared/domain"
)

// ScopeService résout le périmètre de visibilité d'un principal.
// Résolution pure par requête, aucun cache : le périmètre reflète toujours
// l'état courant des rattachements organisationnels.
type ScopeService struct {
	db *postgres.Client
}

func NewScopeService(db *postgres.Client) *ScopeService {
	return &ScopeService{db: db}
}

// ResolveScope dérive le ScopeSet du principal selon son rôle.
// Un profil métier absent pour le compte donne une erreur forbidden,
// jamais un périmètre vide.
func (s *ScopeService) ResolveScope(ctx context.Context, principal domain.Principal) (*dto.ScopeSet, error) {
	scope := &dto.ScopeSet{Role: principal.Role}

	switch principal.Role {
	case domain.RoleEnseignant:
		return s.resolveEnseignant(ctx, principal.CompteID, scope)
	case domain.RoleStagiaire:
		return s.resolveStagiaire(ctx, principal.CompteID, scope)
	case domain.RoleEtabFormation:
		return s.resolveEtabFormation(ctx, principal.CompteID, scope)
	case domain.RoleEtabRegionale:
		return s.resolveEtabRegionale(ctx, principal.CompteID, scope)
	case domain.RoleEtabNationale:
		return s.resolveEtabNationale(ctx, principal.CompteID, scope)
	default:
		return nil, domain.NewForbiddenError("Rôle non reconnu", map[string]interface{}{
			"role": string(principal.Role),
		})
	}
}

func (s *ScopeService) resolveEnseignant(ctx context.Context, compteID string, scope *dto.ScopeSet) (*dto.ScopeSet, error) {
	var (
		etabFormationID *string
		etabRegionaleID *string
	)

	err := s.db.QueryRow(ctx, queries.ScopeQueries.GetEnseignantScope, compteID).Scan(
		&scope.EnseignantID,
		&etabFormationID,
		&etabRegionaleID,
	)
	if err != nil {
		return nil, s.profileError("enseignant", err)
	}

	if etabFormationID != nil {
		scope.EtabFormationID = *etabFormationID
	}
	if etabRegionaleID != nil {
		scope.EtabRegionaleID = *etabRegionaleID
	}

	return scope, nil
}

func (s *ScopeService) resolveStagiaire(ctx context.Context, compteID string, scope *dto.ScopeSet) (*dto.ScopeSet, error) {
	err := s.db.QueryRow(ctx, queries.ScopeQueries.GetStagiaireScope, compteID).Scan(
		&scope.StagiaireID,
	)
	if err != nil {
		return nil, s.profileError("stagiaire", err)
	}

	return scope, nil
}

func (s *ScopeService) resolveEtabFormation(ctx context.Context, compteID string, scope *dto.ScopeSet) (*dto.ScopeSet, error) {
	err := s.db.QueryRow(ctx, queries.ScopeQueries.GetEtabFormationScope, compteID).Scan(
		&scope.EtabFormationID,
		&scope.EtabRegionaleID,
	)
	if err != nil {
		return nil, s.profileError("etablissement_formation", err)
	}

	return scope, nil
}

func (s *ScopeService) resolveEtabRegionale(ctx context.Context, compteID string, scope *dto.ScopeSet) (*dto.ScopeSet, error) {
	err := s.db.QueryRow(ctx, queries.ScopeQueries.GetEtabRegionaleScope, compteID).Scan(
		&scope.EtabRegionaleID,
	)
	if err != nil {
		return nil, s.profileError("etablissement_regionale", err)
	}

	rows, err := s.db.Query(ctx, queries.ScopeQueries.ListEtabFormationUnderEtab, scope.EtabRegionaleID)
	if err != nil {
		return nil, domain.NewInternalError("Erreur résolution du périmètre régional",
			fmt.Errorf("erreur lecture établissements sous tutelle: %w", err))
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, domain.NewInternalError("Erreur résolution du périmètre régional", err)
		}
		scope.EtabFormationIDs = append(scope.EtabFormationIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewInternalError("Erreur résolution du périmètre régional", err)
	}

	return scope, nil
}

func (s *ScopeService) resolveEtabNationale(ctx context.Context, compteID string, scope *dto.ScopeSet) (*dto.ScopeSet, error) {
	err := s.db.QueryRow(ctx, queries.ScopeQueries.GetEtabNationaleScope, compteID).Scan(
		&scope.EtabNationaleID,
	)
	if err != nil {
		return nil, s.profileError("etablissement_nationale", err)
	}

	return scope, nil
}

func (s *ScopeService) profileError(profil string, err error) error {
	if err == pgx.ErrNoRows {
		return domain.NewForbiddenError("Profil introuvable pour ce compte", map[string]interface{}{
			"profil": profil,
		})
	}
	return domain.NewInternalError("Erreur résolution du profil",
		fmt.Errorf("erreur lecture profil %s: %w", profil, err))
}
