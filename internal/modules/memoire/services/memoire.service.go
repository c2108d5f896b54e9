package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"formation-suite-core/internal/infrastructure/database/postgres"
	coredto "formation-suite-core/internal/modules/core-services/dto"
	coreservices "formation-suite-core/internal/modules/core-services/services"
	"formation-suite-core/internal/modules/memoire/dto"
	"formation-suite-core/internal/modules/memoire/queries"
	"formation-suite-core/internal/shared/domain"
)

// MemoireService implémente le cycle de vie des mémoires : attribution
// d'encadrement, contenu du stagiaire, validation et listes de visibilité
type MemoireService struct {
	db                  *postgres.Client
	scopeService        *coreservices.ScopeService
	affectationService  *coreservices.AffectationService
	documentService     *coreservices.DocumentService
	notificationService *coreservices.NotificationService
}

func NewMemoireService(
	db *postgres.Client,
	scopeService *coreservices.ScopeService,
	affectationService *coreservices.AffectationService,
	documentService *coreservices.DocumentService,
	notificationService *coreservices.NotificationService,
) *MemoireService {
	return &MemoireService{
		db:                  db,
		scopeService:        scopeService,
		affectationService:  affectationService,
		documentService:     documentService,
		notificationService: notificationService,
	}
}

// AssignSupervision crée le mémoire d'un stagiaire et désigne son encadrant.
// L'enseignant doit appartenir à l'établissement demandeur et le stagiaire
// y détenir une inscription acceptée. Un stagiaire n'a qu'un seul mémoire.
func (s *MemoireService) AssignSupervision(ctx context.Context, principal domain.Principal, req dto.AssignSupervisionRequest) (*dto.MemoireResponse, error) {
	scope, err := s.requireRole(ctx, principal, domain.RoleEtabFormation)
	if err != nil {
		return nil, err
	}

	if err := s.checkExists(ctx, queries.MemoireQueries.EnseignantInEtab,
		"L'enseignant n'appartient pas à cet établissement",
		req.IDEnseignant, scope.EtabFormationID); err != nil {
		return nil, err
	}

	if err := s.checkExists(ctx, queries.MemoireQueries.StagiaireEnrolledInEtab,
		"Le stagiaire n'a pas d'inscription acceptée dans cet établissement",
		req.IDStagiaire, scope.EtabFormationID); err != nil {
		return nil, err
	}

	// Contrôle rapide avant insertion, la contrainte UNIQUE arbitre les courses
	var exists int
	err = s.db.QueryRow(ctx, queries.MemoireQueries.ExistsForStagiaire, req.IDStagiaire).Scan(&exists)
	if err == nil {
		return nil, domain.NewConflictError("Le stagiaire a déjà un mémoire", map[string]interface{}{
			"id_stagiaire": req.IDStagiaire,
		})
	}
	if err != pgx.ErrNoRows {
		return nil, domain.NewInternalError("Erreur vérification du mémoire",
			fmt.Errorf("erreur existence mémoire: %w", err))
	}

	memoire := dto.MemoireResponse{
		IDStagiaire:  req.IDStagiaire,
		IDEnseignant: req.IDEnseignant,
	}

	var createdAt, updatedAt time.Time
	err = s.db.QueryRow(ctx, queries.MemoireQueries.Create, req.IDStagiaire, req.IDEnseignant).Scan(
		&memoire.ID, &memoire.Statut, &createdAt, &updatedAt,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, domain.NewConflictError("Le stagiaire a déjà un mémoire", map[string]interface{}{
				"id_stagiaire": req.IDStagiaire,
			})
		}
		return nil, domain.NewInternalError("Erreur création du mémoire",
			fmt.Errorf("erreur insertion mémoire: %w", err))
	}

	memoire.CreatedAt = createdAt.Format(time.RFC3339)
	memoire.UpdatedAt = updatedAt.Format(time.RFC3339)

	return &memoire, nil
}

// GetOwn retourne le mémoire du stagiaire authentifié
func (s *MemoireService) GetOwn(ctx context.Context, principal domain.Principal) (*dto.MemoireResponse, error) {
	scope, err := s.requireRole(ctx, principal, domain.RoleStagiaire)
	if err != nil {
		return nil, err
	}

	memoire, err := s.scanMemoire(s.db.QueryRow(ctx, queries.MemoireQueries.GetByStagiaire, scope.StagiaireID))
	if err == pgx.ErrNoRows {
		return nil, domain.NewNotFoundError("Aucun mémoire attribué", nil)
	}
	if err != nil {
		return nil, domain.NewInternalError("Erreur lecture du mémoire",
			fmt.Errorf("erreur lecture mémoire: %w", err))
	}

	return memoire, nil
}

// UpdateContent applique une mise à jour partielle du contenu par le
// stagiaire. Un statut terminal fige le contenu. La première contribution
// fait passer le mémoire en préparation.
func (s *MemoireService) UpdateContent(ctx context.Context, principal domain.Principal, req dto.UpdateMemoireRequest) error {
	scope, err := s.requireRole(ctx, principal, domain.RoleStagiaire)
	if err != nil {
		return err
	}

	memoire, err := s.scanMemoire(s.db.QueryRow(ctx, queries.MemoireQueries.GetByStagiaire, scope.StagiaireID))
	if err == pgx.ErrNoRows {
		return domain.NewNotFoundError("Aucun mémoire attribué", nil)
	}
	if err != nil {
		return domain.NewInternalError("Erreur lecture du mémoire",
			fmt.Errorf("erreur lecture mémoire: %w", err))
	}

	if dto.IsStatutTerminalMemoire(memoire.Statut) {
		return domain.NewValidationError("Le mémoire est déjà validé, contenu figé", map[string]interface{}{
			"statut": memoire.Statut,
		})
	}

	var nouveauPDF *string
	if len(req.FileData) > 0 {
		ref, err := s.documentService.Store(ctx, req.FileData, req.FileContentType, req.FileName)
		if err != nil {
			return err
		}
		nouveauPDF = &ref
	}

	if err := s.db.Exec(ctx, queries.MemoireQueries.UpdateContent,
		scope.StagiaireID, req.TitreFr, req.TitreAr, nouveauPDF,
	); err != nil {
		return domain.NewInternalError("Erreur mise à jour du mémoire",
			fmt.Errorf("erreur update mémoire: %w", err))
	}

	if nouveauPDF != nil && memoire.FichierPDF != nil {
		s.cleanupDocument(ctx, *memoire.FichierPDF)
	}

	return nil
}

// Validate applique la décision de l'encadrant sur un mémoire complété.
// Seul l'encadrant désigné peut décider. Les graphies historiques de la
// décision sont acceptées et canonicalisées.
func (s *MemoireService) Validate(ctx context.Context, principal domain.Principal, memoireID string, req dto.ValidateMemoireRequest) error {
	scope, err := s.requireRole(ctx, principal, domain.RoleEnseignant)
	if err != nil {
		return err
	}

	decision, ok := dto.CanonicalStatut(req.Decision)
	if !ok || !dto.IsDecisionMemoire(decision) {
		return domain.NewValidationError("Décision invalide", map[string]interface{}{
			"decision": req.Decision,
		})
	}

	var (
		memoire       dto.MemoireResponse
		createdAt     time.Time
		updatedAt     time.Time
		compteCibleID string
	)
	err = s.db.QueryRow(ctx, queries.MemoireQueries.GetByID, memoireID).Scan(
		&memoire.ID, &memoire.TitreFr, &memoire.TitreAr,
		&memoire.IDStagiaire, &memoire.IDEnseignant, &memoire.Statut,
		&memoire.FichierPDF, &memoire.Observation,
		&createdAt, &updatedAt, &compteCibleID,
	)
	if err == pgx.ErrNoRows {
		return domain.NewNotFoundError("Mémoire introuvable", nil)
	}
	if err != nil {
		return domain.NewInternalError("Erreur lecture du mémoire",
			fmt.Errorf("erreur lecture mémoire: %w", err))
	}

	if memoire.IDEnseignant != scope.EnseignantID {
		return domain.NewForbiddenError("Seul l'encadrant désigné peut valider ce mémoire", nil)
	}

	if !contenuFourni(&memoire) {
		return domain.NewValidationError("Mémoire non complété par le stagiaire", nil)
	}

	if _, err := s.db.ExecAffected(ctx, queries.MemoireQueries.ApplyDecision,
		memoireID, decision, req.Observation,
	); err != nil {
		return domain.NewInternalError("Erreur application de la décision",
			fmt.Errorf("erreur décision mémoire: %w", err))
	}

	if memoire.Statut != decision {
		eventType := coreservices.EventMemoireAccepte
		if decision == dto.MemoireRefuse {
			eventType = coreservices.EventMemoireRefuse
		}
		s.notificationService.Dispatch(ctx, eventType, memoireID, compteCibleID, req.Observation)
	}

	return nil
}

// ListColleagues retourne les mémoires acceptés des stagiaires co-inscrits
// (offre partagée), le stagiaire appelant exclu
func (s *MemoireService) ListColleagues(ctx context.Context, principal domain.Principal) ([]dto.MemoireResponse, error) {
	scope, err := s.requireRole(ctx, principal, domain.RoleStagiaire)
	if err != nil {
		return nil, err
	}

	collegues, err := s.affectationService.ColleaguesOf(ctx, scope.StagiaireID)
	if err != nil {
		return nil, err
	}
	if len(collegues) == 0 {
		return []dto.MemoireResponse{}, nil
	}

	return s.listMemoires(ctx, queries.MemoireQueries.ListColleagues, collegues)
}

// ListSupervised retourne les mémoires encadrés par l'enseignant
func (s *MemoireService) ListSupervised(ctx context.Context, principal domain.Principal) ([]dto.MemoireResponse, error) {
	scope, err := s.requireRole(ctx, principal, domain.RoleEnseignant)
	if err != nil {
		return nil, err
	}

	return s.listMemoires(ctx, queries.MemoireQueries.ListSupervised, scope.EnseignantID)
}

// ListForEstablishment retourne les mémoires encadrés dans l'établissement
func (s *MemoireService) ListForEstablishment(ctx context.Context, principal domain.Principal) ([]dto.MemoireResponse, error) {
	scope, err := s.requireRole(ctx, principal, domain.RoleEtabFormation)
	if err != nil {
		return nil, err
	}

	return s.listMemoires(ctx, queries.MemoireQueries.ListForEtab, scope.EtabFormationID)
}

func (s *MemoireService) listMemoires(ctx context.Context, query string, args ...interface{}) ([]dto.MemoireResponse, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.NewInternalError("Erreur lecture des mémoires",
			fmt.Errorf("erreur liste mémoires: %w", err))
	}
	defer rows.Close()

	memoires := []dto.MemoireResponse{}
	for rows.Next() {
		var (
			item                 dto.MemoireResponse
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(
			&item.ID, &item.TitreFr, &item.TitreAr,
			&item.IDStagiaire, &item.IDEnseignant, &item.Statut,
			&item.FichierPDF, &item.Observation,
			&createdAt, &updatedAt,
		); err != nil {
			return nil, domain.NewInternalError("Erreur lecture des mémoires", err)
		}
		item.CreatedAt = createdAt.Format(time.RFC3339)
		item.UpdatedAt = updatedAt.Format(time.RFC3339)
		memoires = append(memoires, item)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewInternalError("Erreur lecture des mémoires", err)
	}

	return memoires, nil
}

func (s *MemoireService) scanMemoire(row pgx.Row) (*dto.MemoireResponse, error) {
	var (
		memoire              dto.MemoireResponse
		createdAt, updatedAt time.Time
	)
	err := row.Scan(
		&memoire.ID, &memoire.TitreFr, &memoire.TitreAr,
		&memoire.IDStagiaire, &memoire.IDEnseignant, &memoire.Statut,
		&memoire.FichierPDF, &memoire.Observation,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	memoire.CreatedAt = createdAt.Format(time.RFC3339)
	memoire.UpdatedAt = updatedAt.Format(time.RFC3339)

	return &memoire, nil
}

// contenuFourni indique si le stagiaire a contribué au moins un élément
// (titre ou support) au mémoire
func contenuFourni(m *dto.MemoireResponse) bool {
	return m.TitreFr != nil || m.TitreAr != nil || m.FichierPDF != nil
}

func (s *MemoireService) requireRole(ctx context.Context, principal domain.Principal, role domain.Role) (*coredto.ScopeSet, error) {
	if principal.Role != role {
		return nil, domain.NewForbiddenError("Opération non autorisée pour ce rôle", nil)
	}
	return s.scopeService.ResolveScope(ctx, principal)
}

func (s *MemoireService) checkExists(ctx context.Context, query, failureMessage string, args ...interface{}) error {
	var one int
	err := s.db.QueryRow(ctx, query, args...).Scan(&one)
	if err == pgx.ErrNoRows {
		return domain.NewValidationError(failureMessage, nil)
	}
	if err != nil {
		return domain.NewInternalError("Erreur de vérification",
			fmt.Errorf("erreur contrôle préalable: %w", err))
	}
	return nil
}

func (s *MemoireService) cleanupDocument(ctx context.Context, reference string) {
	if err := s.documentService.Delete(ctx, reference); err != nil {
		fmt.Printf("[DOCUMENTS] Échec suppression du support %s: %v\n", reference, err)
	}
}
