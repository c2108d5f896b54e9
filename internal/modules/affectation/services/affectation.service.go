package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"formation-suite-core/internal/infrastructure/database/postgres"
	"formation-suite-core/internal/modules/affectation/dto"
	"formation-suite-core/internal/modules/affectation/queries"
	coredto "formation-suite-core/internal/modules/core-services/dto"
	coreservices "formation-suite-core/internal/modules/core-services/services"
	"formation-suite-core/internal/shared/domain"
)

// AffectationService gère les affectations de modules aux enseignants.
// Le remplacement en bloc est tout-ou-rien : un seul module hors périmètre
// fait échouer l'appel entier en listant tous les ids rejetés.
type AffectationService struct {
	db           *postgres.Client
	txManager    *postgres.TransactionManager
	scopeService *coreservices.ScopeService
}

func NewAffectationService(
	db *postgres.Client,
	txManager *postgres.TransactionManager,
	scopeService *coreservices.ScopeService,
) *AffectationService {
	return &AffectationService{
		db:           db,
		txManager:    txManager,
		scopeService: scopeService,
	}
}

// AssignModules remplace les affectations de l'enseignant pour l'année
// scolaire donnée. Chaque module doit relever d'une spécialité couverte par
// une offre de l'établissement. Delete et insertions dans une transaction
// unique : aucune fenêtre d'affectation vide n'est visible.
func (s *AffectationService) AssignModules(ctx context.Context, principal domain.Principal, req dto.AssignModulesRequest) error {
	scope, err := s.requireRole(ctx, principal, domain.RoleEtabFormation)
	if err != nil {
		return err
	}

	if err := s.checkEnseignantInEtab(ctx, req.IDEnseignant, scope.EtabFormationID); err != nil {
		return err
	}

	moduleIDs := dedupe(req.ModuleIDs)

	valides, err := s.validModules(ctx, scope.EtabFormationID, moduleIDs)
	if err != nil {
		return err
	}

	if rejetes := OffendingModules(moduleIDs, valides); len(rejetes) > 0 {
		return domain.NewValidationError("Modules hors du périmètre des offres de l'établissement", map[string]interface{}{
			"modules_rejetes": rejetes,
		})
	}

	err = s.txManager.WithTransaction(ctx, func(tx *postgres.Transaction) error {
		if err := tx.Exec(ctx, queries.AffectationQueries.DeleteForAnnee,
			req.IDEnseignant, req.AnneeScolaire); err != nil {
			return fmt.Errorf("erreur purge affectations: %w", err)
		}

		for _, moduleID := range moduleIDs {
			if err := tx.Exec(ctx, queries.AffectationQueries.Insert,
				req.IDEnseignant, moduleID, req.AnneeScolaire, req.Semestre); err != nil {
				return fmt.Errorf("erreur insertion affectation %s: %w", moduleID, err)
			}
		}

		return nil
	})
	if err != nil {
		return domain.NewInternalError("Erreur remplacement des affectations", err)
	}

	return nil
}

// RemoveAssignment retire l'affectation (enseignant, module, année)
func (s *AffectationService) RemoveAssignment(ctx context.Context, principal domain.Principal, req dto.RemoveAssignmentRequest) error {
	scope, err := s.requireRole(ctx, principal, domain.RoleEtabFormation)
	if err != nil {
		return err
	}

	if err := s.checkEnseignantInEtab(ctx, req.IDEnseignant, scope.EtabFormationID); err != nil {
		return err
	}

	affected, err := s.db.ExecAffected(ctx, queries.AffectationQueries.Remove,
		req.IDEnseignant, req.IDModule, req.AnneeScolaire)
	if err != nil {
		return domain.NewInternalError("Erreur retrait de l'affectation",
			fmt.Errorf("erreur delete affectation: %w", err))
	}
	if affected == 0 {
		return domain.NewNotFoundError("Affectation introuvable", nil)
	}

	return nil
}

// ListAssignments retourne les affectations d'un enseignant de l'établissement
func (s *AffectationService) ListAssignments(ctx context.Context, principal domain.Principal, enseignantID string) ([]dto.AffectationResponse, error) {
	scope, err := s.requireRole(ctx, principal, domain.RoleEtabFormation)
	if err != nil {
		return nil, err
	}

	if err := s.checkEnseignantInEtab(ctx, enseignantID, scope.EtabFormationID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, queries.AffectationQueries.ListForEnseignant, enseignantID)
	if err != nil {
		return nil, domain.NewInternalError("Erreur lecture des affectations",
			fmt.Errorf("erreur liste affectations: %w", err))
	}
	defer rows.Close()

	affectations := []dto.AffectationResponse{}
	for rows.Next() {
		var item dto.AffectationResponse
		if err := rows.Scan(
			&item.ID, &item.IDEnseignant, &item.IDModule,
			&item.AnneeScolaire, &item.Semestre,
		); err != nil {
			return nil, domain.NewInternalError("Erreur lecture des affectations", err)
		}
		affectations = append(affectations, item)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewInternalError("Erreur lecture des affectations", err)
	}

	return affectations, nil
}

// OffendingModules retourne les ids demandés absents de l'ensemble valide,
// dans l'ordre de la demande
func OffendingModules(requested, valid []string) []string {
	validSet := make(map[string]struct{}, len(valid))
	for _, id := range valid {
		validSet[id] = struct{}{}
	}

	offending := []string{}
	for _, id := range requested {
		if _, ok := validSet[id]; !ok {
			offending = append(offending, id)
		}
	}

	return offending
}

func (s *AffectationService) validModules(ctx context.Context, etabID string, moduleIDs []string) ([]string, error) {
	rows, err := s.db.Query(ctx, queries.AffectationQueries.ValidModulesInEtab, etabID, moduleIDs)
	if err != nil {
		return nil, domain.NewInternalError("Erreur vérification des modules",
			fmt.Errorf("erreur contrôle modules: %w", err))
	}
	defer rows.Close()

	valides := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, domain.NewInternalError("Erreur vérification des modules", err)
		}
		valides = append(valides, id)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewInternalError("Erreur vérification des modules", err)
	}

	return valides, nil
}

func (s *AffectationService) checkEnseignantInEtab(ctx context.Context, enseignantID, etabID string) error {
	var one int
	err := s.db.QueryRow(ctx, queries.AffectationQueries.EnseignantInEtab, enseignantID, etabID).Scan(&one)
	if err == pgx.ErrNoRows {
		return domain.NewValidationError("L'enseignant n'appartient pas à cet établissement", map[string]interface{}{
			"id_enseignant": enseignantID,
		})
	}
	if err != nil {
		return domain.NewInternalError("Erreur de vérification",
			fmt.Errorf("erreur contrôle enseignant: %w", err))
	}
	return nil
}

func (s *AffectationService) requireRole(ctx context.Context, principal domain.Principal, role domain.Role) (*coredto.ScopeSet, error) {
	if principal.Role != role {
		return nil, domain.NewForbiddenError("Opération non autorisée pour ce rôle", nil)
	}
	return s.scopeService.ResolveScope(ctx, principal)
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := []string{}
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
