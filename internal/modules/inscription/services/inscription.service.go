package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"formation-suite-core/internal/infrastructure/database/postgres"
	coredto "formation-suite-core/internal/modules/core-services/dto"
	coreservices "formation-suite-core/internal/modules/core-services/services"
	"formation-suite-core/internal/modules/inscription/dto"
	"formation-suite-core/internal/modules/inscription/queries"
	"formation-suite-core/internal/shared/domain"
)

// InscriptionService gère les demandes d'inscription des stagiaires aux
// offres de formation et leur instruction par les établissements
type InscriptionService struct {
	db           *postgres.Client
	scopeService *coreservices.ScopeService
}

func NewInscriptionService(db *postgres.Client, scopeService *coreservices.ScopeService) *InscriptionService {
	return &InscriptionService{
		db:           db,
		scopeService: scopeService,
	}
}

// Create dépose une demande d'inscription à une offre ouverte.
// Le doublon est détecté en contrôle rapide, la contrainte UNIQUE
// (id_stagiaire, id_offre) arbitre les courses.
func (s *InscriptionService) Create(ctx context.Context, principal domain.Principal, req dto.CreateInscriptionRequest) (*dto.InscriptionResponse, error) {
	scope, err := s.requireRole(ctx, principal, domain.RoleStagiaire)
	if err != nil {
		return nil, err
	}

	var (
		offreStatut string
		etabID      string
	)
	err = s.db.QueryRow(ctx, queries.InscriptionQueries.GetOffreStatut, req.IDOffre).Scan(&offreStatut, &etabID)
	if err == pgx.ErrNoRows {
		return nil, domain.NewNotFoundError("Offre introuvable", nil)
	}
	if err != nil {
		return nil, domain.NewInternalError("Erreur lecture de l'offre",
			fmt.Errorf("erreur lecture offre: %w", err))
	}
	if offreStatut != "ouverte" {
		return nil, domain.NewValidationError("L'offre n'est pas ouverte aux inscriptions", map[string]interface{}{
			"statut": offreStatut,
		})
	}

	var exists int
	err = s.db.QueryRow(ctx, queries.InscriptionQueries.ExistsForOffre, scope.StagiaireID, req.IDOffre).Scan(&exists)
	if err == nil {
		return nil, domain.NewConflictError("Une inscription existe déjà pour cette offre", map[string]interface{}{
			"id_offre": req.IDOffre,
		})
	}
	if err != pgx.ErrNoRows {
		return nil, domain.NewInternalError("Erreur vérification de l'inscription",
			fmt.Errorf("erreur existence inscription: %w", err))
	}

	inscription := dto.InscriptionResponse{
		IDStagiaire: scope.StagiaireID,
		IDOffre:     req.IDOffre,
	}

	var createdAt time.Time
	err = s.db.QueryRow(ctx, queries.InscriptionQueries.Create, scope.StagiaireID, req.IDOffre).Scan(
		&inscription.ID, &inscription.Statut, &createdAt,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, domain.NewConflictError("Une inscription existe déjà pour cette offre", map[string]interface{}{
				"id_offre": req.IDOffre,
			})
		}
		return nil, domain.NewInternalError("Erreur création de l'inscription",
			fmt.Errorf("erreur insertion inscription: %w", err))
	}

	inscription.CreatedAt = createdAt.Format(time.RFC3339)

	return &inscription, nil
}

// Decide applique la décision de l'établissement propriétaire de l'offre.
// Une inscription hors périmètre est introuvable.
func (s *InscriptionService) Decide(ctx context.Context, principal domain.Principal, inscriptionID string, req dto.DecideInscriptionRequest) error {
	scope, err := s.requireRole(ctx, principal, domain.RoleEtabFormation)
	if err != nil {
		return err
	}

	if !dto.IsDecisionInscription(req.Decision) {
		return domain.NewValidationError("Décision invalide", map[string]interface{}{
			"decision": req.Decision,
		})
	}

	var statutActuel string
	err = s.db.QueryRow(ctx, queries.InscriptionQueries.GetForDecision, inscriptionID, scope.EtabFormationID).Scan(&statutActuel)
	if err == pgx.ErrNoRows {
		return domain.NewNotFoundError("Inscription introuvable", nil)
	}
	if err != nil {
		return domain.NewInternalError("Erreur lecture de l'inscription",
			fmt.Errorf("erreur lecture inscription: %w", err))
	}

	if statutActuel == dto.InscriptionAnnulee {
		return domain.NewValidationError("L'inscription a été annulée par le stagiaire", nil)
	}

	if _, err := s.db.ExecAffected(ctx, queries.InscriptionQueries.ApplyDecision,
		inscriptionID, req.Decision, req.Observation,
	); err != nil {
		return domain.NewInternalError("Erreur application de la décision",
			fmt.Errorf("erreur décision inscription: %w", err))
	}

	return nil
}

// Cancel annule une demande en attente du stagiaire
func (s *InscriptionService) Cancel(ctx context.Context, principal domain.Principal, inscriptionID string) error {
	scope, err := s.requireRole(ctx, principal, domain.RoleStagiaire)
	if err != nil {
		return err
	}

	affected, err := s.db.ExecAffected(ctx, queries.InscriptionQueries.Cancel, inscriptionID, scope.StagiaireID)
	if err != nil {
		return domain.NewInternalError("Erreur annulation de l'inscription",
			fmt.Errorf("erreur annulation inscription: %w", err))
	}
	if affected == 0 {
		return domain.NewNotFoundError("Inscription en attente introuvable", nil)
	}

	return nil
}

// ListForOffer retourne les inscriptions d'une offre de l'établissement
func (s *InscriptionService) ListForOffer(ctx context.Context, principal domain.Principal, offreID string) ([]dto.InscriptionResponse, error) {
	scope, err := s.requireRole(ctx, principal, domain.RoleEtabFormation)
	if err != nil {
		return nil, err
	}

	return s.listInscriptions(ctx, queries.InscriptionQueries.ListForOffre, offreID, scope.EtabFormationID)
}

// ListOwn retourne les inscriptions du stagiaire authentifié
func (s *InscriptionService) ListOwn(ctx context.Context, principal domain.Principal) ([]dto.InscriptionResponse, error) {
	scope, err := s.requireRole(ctx, principal, domain.RoleStagiaire)
	if err != nil {
		return nil, err
	}

	return s.listInscriptions(ctx, queries.InscriptionQueries.ListForStagiaire, scope.StagiaireID)
}

func (s *InscriptionService) listInscriptions(ctx context.Context, query string, args ...interface{}) ([]dto.InscriptionResponse, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.NewInternalError("Erreur lecture des inscriptions",
			fmt.Errorf("erreur liste inscriptions: %w", err))
	}
	defer rows.Close()

	inscriptions := []dto.InscriptionResponse{}
	for rows.Next() {
		var (
			item         dto.InscriptionResponse
			dateDecision *time.Time
			createdAt    time.Time
		)
		if err := rows.Scan(
			&item.ID, &item.IDStagiaire, &item.IDOffre, &item.Statut,
			&item.Observation, &dateDecision, &createdAt,
		); err != nil {
			return nil, domain.NewInternalError("Erreur lecture des inscriptions", err)
		}
		if dateDecision != nil {
			formatted := dateDecision.Format(time.RFC3339)
			item.DateDecision = &formatted
		}
		item.CreatedAt = createdAt.Format(time.RFC3339)
		inscriptions = append(inscriptions, item)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewInternalError("Erreur lecture des inscriptions", err)
	}

	return inscriptions, nil
}

func (s *InscriptionService) requireRole(ctx context.Context, principal domain.Principal, role domain.Role) (*coredto.ScopeSet, error) {
	if principal.Role != role {
		return nil, domain.NewForbiddenError("Opération non autorisée pour ce rôle", nil)
	}
	return s.scopeService.ResolveScope(ctx, principal)
}
