package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"formation-suite-core/internal/infrastructure/database/postgres"
	coredto "formation-suite-core/internal/modules/core-services/dto"
	coreservices "formation-suite-core/internal/modules/core-services/services"
	"formation-suite-core/internal/modules/programme/dto"
	"formation-suite-core/internal/modules/programme/queries"
	"formation-suite-core/internal/shared/domain"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ProgrammeService implémente le cycle de vie des programmes : création
// régionale, revue nationale et listes de visibilité
type ProgrammeService struct {
	db                  *postgres.Client
	scopeService        *coreservices.ScopeService
	affectationService  *coreservices.AffectationService
	documentService     *coreservices.DocumentService
	notificationService *coreservices.NotificationService
}

func NewProgrammeService(
	db *postgres.Client,
	scopeService *coreservices.ScopeService,
	affectationService *coreservices.AffectationService,
	documentService *coreservices.DocumentService,
	notificationService *coreservices.NotificationService,
) *ProgrammeService {
	return &ProgrammeService{
		db:                  db,
		scopeService:        scopeService,
		affectationService:  affectationService,
		documentService:     documentService,
		notificationService: notificationService,
	}
}

// Create crée un programme en attente de validation nationale. Le module
// doit être rattaché à une branche administrée par la direction régionale.
func (s *ProgrammeService) Create(ctx context.Context, principal domain.Principal, req dto.CreateProgrammeRequest) (*dto.ProgrammeResponse, error) {
	scope, err := s.requireRole(ctx, principal, domain.RoleEtabRegionale)
	if err != nil {
		return nil, err
	}

	var one int
	err = s.db.QueryRow(ctx, queries.ProgrammeQueries.ModuleInBranches, req.IDModule, scope.EtabRegionaleID).Scan(&one)
	if err == pgx.ErrNoRows {
		return nil, domain.NewValidationError("Module hors des branches administrées par cette direction", map[string]interface{}{
			"id_module": req.IDModule,
		})
	}
	if err != nil {
		return nil, domain.NewInternalError("Erreur vérification du module",
			fmt.Errorf("erreur contrôle branche du module: %w", err))
	}

	var fichierPDF *string
	if len(req.FileData) > 0 {
		ref, err := s.documentService.Store(ctx, req.FileData, req.FileContentType, req.FileName)
		if err != nil {
			return nil, err
		}
		fichierPDF = &ref
	}

	programme := dto.ProgrammeResponse{
		Code:            req.Code,
		TitreFr:         req.TitreFr,
		TitreAr:         req.TitreAr,
		IDModule:        req.IDModule,
		IDEtabRegionale: scope.EtabRegionaleID,
		FichierPDF:      fichierPDF,
	}

	var createdAt, updatedAt time.Time
	err = s.db.QueryRow(ctx, queries.ProgrammeQueries.Create,
		req.Code, req.TitreFr, req.TitreAr, req.IDModule, scope.EtabRegionaleID, fichierPDF,
	).Scan(&programme.ID, &programme.Statut, &createdAt, &updatedAt)
	if err != nil {
		return nil, domain.NewInternalError("Erreur création du programme",
			fmt.Errorf("erreur insertion programme: %w", err))
	}

	programme.CreatedAt = createdAt.Format(time.RFC3339)
	programme.UpdatedAt = updatedAt.Format(time.RFC3339)

	return &programme, nil
}

// Review applique la décision de la direction nationale. Une revue au même
// statut ne change rien ; il n'existe pas de réouverture, changer un statut
// déjà terminal est refusé.
func (s *ProgrammeService) Review(ctx context.Context, principal domain.Principal, programmeID string, req dto.ReviewProgrammeRequest) error {
	if _, err := s.requireRole(ctx, principal, domain.RoleEtabNationale); err != nil {
		return err
	}

	if !domain.IsStatutDecision(req.Decision) {
		return domain.NewValidationError("Décision invalide", map[string]interface{}{
			"decision": req.Decision,
		})
	}

	var (
		statutActuel  string
		compteCibleID string
	)
	err := s.db.QueryRow(ctx, queries.ProgrammeQueries.GetForReview, programmeID).Scan(
		&statutActuel, &compteCibleID,
	)
	if err == pgx.ErrNoRows {
		return domain.NewNotFoundError("Programme introuvable", nil)
	}
	if err != nil {
		return domain.NewInternalError("Erreur lecture du programme",
			fmt.Errorf("erreur lecture programme pour revue: %w", err))
	}

	if domain.IsStatutTerminal(statutActuel) && statutActuel != req.Decision {
		return domain.NewValidationError("Le programme a déjà fait l'objet d'une décision", map[string]interface{}{
			"statut": statutActuel,
		})
	}

	if _, err := s.db.ExecAffected(ctx, queries.ProgrammeQueries.ApplyReview,
		programmeID, req.Decision, req.Observation,
	); err != nil {
		return domain.NewInternalError("Erreur application de la revue",
			fmt.Errorf("erreur revue programme: %w", err))
	}

	if statutActuel != req.Decision {
		eventType := coreservices.EventProgrammeAccepte
		if req.Decision == domain.StatutRefuse {
			eventType = coreservices.EventProgrammeRefuse
		}
		s.notificationService.Dispatch(ctx, eventType, programmeID, compteCibleID, req.Observation)
	}

	return nil
}

// Delete supprime un programme de la direction régionale propriétaire,
// puis son support PDF best-effort
func (s *ProgrammeService) Delete(ctx context.Context, principal domain.Principal, programmeID string) error {
	scope, err := s.requireRole(ctx, principal, domain.RoleEtabRegionale)
	if err != nil {
		return err
	}

	var (
		statut     string
		fichierPDF *string
	)
	err = s.db.QueryRow(ctx, queries.ProgrammeQueries.GetOwned, programmeID, scope.EtabRegionaleID).Scan(
		&statut, &fichierPDF,
	)
	if err == pgx.ErrNoRows {
		return domain.NewNotFoundError("Programme introuvable", nil)
	}
	if err != nil {
		return domain.NewInternalError("Erreur lecture du programme",
			fmt.Errorf("erreur lecture programme: %w", err))
	}

	affected, err := s.db.ExecAffected(ctx, queries.ProgrammeQueries.Delete, programmeID, scope.EtabRegionaleID)
	if err != nil {
		return domain.NewInternalError("Erreur suppression du programme",
			fmt.Errorf("erreur delete programme: %w", err))
	}
	if affected == 0 {
		return domain.NewNotFoundError("Programme introuvable", nil)
	}

	if fichierPDF != nil {
		if err := s.documentService.Delete(ctx, *fichierPDF); err != nil {
			fmt.Printf("[DOCUMENTS] Échec suppression du support %s: %v\n", *fichierPDF, err)
		}
	}

	return nil
}

// ListForTeacher retourne les programmes approuvés des modules affectés
// à l'enseignant
func (s *ProgrammeService) ListForTeacher(ctx context.Context, principal domain.Principal, filters dto.ListProgrammeFilters) (*dto.ListProgrammeResponse, error) {
	scope, err := s.requireRole(ctx, principal, domain.RoleEnseignant)
	if err != nil {
		return nil, err
	}

	normalizeFilters(&filters)

	modules, err := s.affectationService.ModulesTaughtBy(ctx, scope.EnseignantID, "")
	if err != nil {
		return nil, err
	}
	if len(modules) == 0 {
		return &dto.ListProgrammeResponse{
			Items: []dto.ProgrammeResponse{},
			Page:  filters.Page,
			Limit: filters.Limit,
		}, nil
	}

	offset := (filters.Page - 1) * filters.Limit
	return s.listProgrammes(ctx, filters, queries.ProgrammeQueries.ListForTeacher,
		filters.Recherche, modules, filters.Limit, offset)
}

// ListForRegional retourne les programmes de la direction régionale,
// tout statut, filtrables comme les listes de cours
func (s *ProgrammeService) ListForRegional(ctx context.Context, principal domain.Principal, filters dto.ListProgrammeFilters) (*dto.ListProgrammeResponse, error) {
	scope, err := s.requireRole(ctx, principal, domain.RoleEtabRegionale)
	if err != nil {
		return nil, err
	}

	normalizeFilters(&filters)
	if filters.Statut != domain.StatutFiltreTous && !domain.IsStatutValidation(filters.Statut) {
		return nil, domain.NewValidationError("Filtre de statut invalide", map[string]interface{}{
			"statut": filters.Statut,
		})
	}

	offset := (filters.Page - 1) * filters.Limit
	return s.listProgrammes(ctx, filters, queries.ProgrammeQueries.ListForRegionale,
		filters.Recherche, filters.Statut, scope.EtabRegionaleID, filters.Limit, offset)
}

func (s *ProgrammeService) listProgrammes(ctx context.Context, filters dto.ListProgrammeFilters, query string, args ...interface{}) (*dto.ListProgrammeResponse, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.NewInternalError("Erreur lecture des programmes",
			fmt.Errorf("erreur liste programmes: %w", err))
	}
	defer rows.Close()

	response := &dto.ListProgrammeResponse{
		Items: []dto.ProgrammeResponse{},
		Page:  filters.Page,
		Limit: filters.Limit,
	}

	for rows.Next() {
		var (
			item                 dto.ProgrammeResponse
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(
			&item.ID, &item.Code, &item.TitreFr, &item.TitreAr,
			&item.IDModule, &item.IDEtabRegionale, &item.Statut,
			&item.FichierPDF, &item.Observation,
			&createdAt, &updatedAt, &response.Total,
		); err != nil {
			return nil, domain.NewInternalError("Erreur lecture des programmes", err)
		}
		item.CreatedAt = createdAt.Format(time.RFC3339)
		item.UpdatedAt = updatedAt.Format(time.RFC3339)
		response.Items = append(response.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewInternalError("Erreur lecture des programmes", err)
	}

	return response, nil
}

func (s *ProgrammeService) requireRole(ctx context.Context, principal domain.Principal, role domain.Role) (*coredto.ScopeSet, error) {
	if principal.Role != role {
		return nil, domain.NewForbiddenError("Opération non autorisée pour ce rôle", nil)
	}
	return s.scopeService.ResolveScope(ctx, principal)
}

func normalizeFilters(filters *dto.ListProgrammeFilters) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit <= 0 {
		filters.Limit = defaultPageLimit
	}
	if filters.Limit > maxPageLimit {
		filters.Limit = maxPageLimit
	}
	if filters.Statut == "" {
		filters.Statut = domain.StatutFiltreTous
	}
}
