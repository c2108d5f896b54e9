package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"formation-suite-core/internal/infrastructure/database/postgres"
	coredto "formation-suite-core/internal/modules/core-services/dto"
	coreservices "formation-suite-core/internal/modules/core-services/services"
	"formation-suite-core/internal/modules/cours/dto"
	"formation-suite-core/internal/modules/cours/queries"
	"formation-suite-core/internal/shared/domain"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// CoursService implémente le cycle de vie des cours : création, mise à jour,
// ré-export, revue régionale et listes de visibilité par rôle
type CoursService struct {
	db                  *postgres.Client
	scopeService        *coreservices.ScopeService
	affectationService  *coreservices.AffectationService
	documentService     *coreservices.DocumentService
	notificationService *coreservices.NotificationService
}

func NewCoursService(
	db *postgres.Client,
	scopeService *coreservices.ScopeService,
	affectationService *coreservices.AffectationService,
	documentService *coreservices.DocumentService,
	notificationService *coreservices.NotificationService,
) *CoursService {
	return &CoursService{
		db:                  db,
		scopeService:        scopeService,
		affectationService:  affectationService,
		documentService:     documentService,
		notificationService: notificationService,
	}
}

// Create crée un cours en attente de validation. Le module demandé doit
// figurer dans les affectations de l'enseignant.
func (s *CoursService) Create(ctx context.Context, principal domain.Principal, req dto.CreateCoursRequest) (*dto.CoursResponse, error) {
	scope, err := s.requireRole(ctx, principal, domain.RoleEnseignant)
	if err != nil {
		return nil, err
	}

	if err := s.checkModuleAssigned(ctx, scope.EnseignantID, req.IDModule); err != nil {
		return nil, err
	}

	var fichierPDF *string
	if len(req.FileData) > 0 {
		ref, err := s.documentService.Store(ctx, req.FileData, req.FileContentType, req.FileName)
		if err != nil {
			return nil, err
		}
		fichierPDF = &ref
	}

	cours := dto.CoursResponse{
		Code:         req.Code,
		TitreFr:      req.TitreFr,
		TitreAr:      req.TitreAr,
		IDModule:     req.IDModule,
		IDEnseignant: scope.EnseignantID,
		FichierPDF:   fichierPDF,
	}

	var createdAt, updatedAt time.Time
	err = s.db.QueryRow(ctx, queries.CoursQueries.Create,
		req.Code, req.TitreFr, req.TitreAr, req.IDModule, scope.EnseignantID, fichierPDF,
	).Scan(&cours.ID, &cours.Statut, &createdAt, &updatedAt)
	if err != nil {
		return nil, domain.NewInternalError("Erreur création du cours",
			fmt.Errorf("erreur insertion cours: %w", err))
	}

	cours.CreatedAt = createdAt.Format(time.RFC3339)
	cours.UpdatedAt = updatedAt.Format(time.RFC3339)

	return &cours, nil
}

// Update applique une mise à jour partielle sous prédicat de propriété :
// un cours inexistant ou appartenant à un autre enseignant est introuvable.
// Un cours déjà examiné est figé, le ré-export est le chemin de resoumission.
func (s *CoursService) Update(ctx context.Context, principal domain.Principal, coursID string, req dto.UpdateCoursRequest) error {
	scope, err := s.requireRole(ctx, principal, domain.RoleEnseignant)
	if err != nil {
		return err
	}

	var (
		statut    string
		ancienPDF *string
		idModule  string
	)
	err = s.db.QueryRow(ctx, queries.CoursQueries.GetOwned, coursID, scope.EnseignantID).Scan(
		&statut, &ancienPDF, &idModule,
	)
	if err == pgx.ErrNoRows {
		return domain.NewNotFoundError("Cours introuvable", nil)
	}
	if err != nil {
		return domain.NewInternalError("Erreur lecture du cours",
			fmt.Errorf("erreur lecture cours: %w", err))
	}

	if err := checkModifiable(statut); err != nil {
		return err
	}

	if req.IDModule != nil {
		if err := s.checkModuleAssigned(ctx, scope.EnseignantID, *req.IDModule); err != nil {
			return err
		}
	}

	var nouveauPDF *string
	if len(req.FileData) > 0 {
		ref, err := s.documentService.Store(ctx, req.FileData, req.FileContentType, req.FileName)
		if err != nil {
			return err
		}
		nouveauPDF = &ref
	}

	affected, err := s.db.ExecAffected(ctx, queries.CoursQueries.Update,
		coursID, scope.EnseignantID,
		req.Code, req.TitreFr, req.TitreAr, req.IDModule, nouveauPDF,
	)
	if err != nil {
		return domain.NewInternalError("Erreur mise à jour du cours",
			fmt.Errorf("erreur update cours: %w", err))
	}
	if affected == 0 {
		return domain.NewNotFoundError("Cours introuvable", nil)
	}

	if nouveauPDF != nil && ancienPDF != nil {
		s.cleanupDocument(ctx, *ancienPDF)
	}

	return nil
}

// Delete supprime un cours de l'enseignant, puis son support PDF best-effort
func (s *CoursService) Delete(ctx context.Context, principal domain.Principal, coursID string) error {
	scope, err := s.requireRole(ctx, principal, domain.RoleEnseignant)
	if err != nil {
		return err
	}

	var (
		statut     string
		fichierPDF *string
		idModule   string
	)
	err = s.db.QueryRow(ctx, queries.CoursQueries.GetOwned, coursID, scope.EnseignantID).Scan(
		&statut, &fichierPDF, &idModule,
	)
	if err == pgx.ErrNoRows {
		return domain.NewNotFoundError("Cours introuvable", nil)
	}
	if err != nil {
		return domain.NewInternalError("Erreur lecture du cours",
			fmt.Errorf("erreur lecture cours: %w", err))
	}

	affected, err := s.db.ExecAffected(ctx, queries.CoursQueries.Delete, coursID, scope.EnseignantID)
	if err != nil {
		return domain.NewInternalError("Erreur suppression du cours",
			fmt.Errorf("erreur delete cours: %w", err))
	}
	if affected == 0 {
		return domain.NewNotFoundError("Cours introuvable", nil)
	}

	if fichierPDF != nil {
		s.cleanupDocument(ctx, *fichierPDF)
	}

	return nil
}

// Export repasse un cours terminal en attente de validation.
// L'observation de la revue précédente est conservée telle quelle.
func (s *CoursService) Export(ctx context.Context, principal domain.Principal, coursID string) error {
	scope, err := s.requireRole(ctx, principal, domain.RoleEnseignant)
	if err != nil {
		return err
	}

	var (
		statut     string
		fichierPDF *string
		idModule   string
	)
	err = s.db.QueryRow(ctx, queries.CoursQueries.GetOwned, coursID, scope.EnseignantID).Scan(
		&statut, &fichierPDF, &idModule,
	)
	if err == pgx.ErrNoRows {
		return domain.NewNotFoundError("Cours introuvable", nil)
	}
	if err != nil {
		return domain.NewInternalError("Erreur lecture du cours",
			fmt.Errorf("erreur lecture cours: %w", err))
	}

	if statut == domain.StatutEnAttente {
		return domain.NewValidationError("Le cours est déjà en attente de validation", nil)
	}

	if _, err := s.db.ExecAffected(ctx, queries.CoursQueries.Export, coursID, scope.EnseignantID); err != nil {
		return domain.NewInternalError("Erreur ré-export du cours",
			fmt.Errorf("erreur export cours: %w", err))
	}

	return nil
}

// Review applique la décision d'une direction régionale. Le contrôle de
// tutelle passe par la jointure établissement : hors tutelle = introuvable.
// Une revue au même statut ne change rien (l'observation peut être mise à jour).
func (s *CoursService) Review(ctx context.Context, principal domain.Principal, coursID string, req dto.ReviewCoursRequest) error {
	scope, err := s.requireRole(ctx, principal, domain.RoleEtabRegionale)
	if err != nil {
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
	err = s.db.QueryRow(ctx, queries.CoursQueries.GetForReview, coursID, scope.EtabFormationIDs).Scan(
		&statutActuel, &compteCibleID,
	)
	if err == pgx.ErrNoRows {
		return domain.NewNotFoundError("Cours introuvable", nil)
	}
	if err != nil {
		return domain.NewInternalError("Erreur lecture du cours",
			fmt.Errorf("erreur lecture cours pour revue: %w", err))
	}

	if _, err := s.db.ExecAffected(ctx, queries.CoursQueries.ApplyReview, coursID, req.Decision, req.Observation); err != nil {
		return domain.NewInternalError("Erreur application de la revue",
			fmt.Errorf("erreur revue cours: %w", err))
	}

	if eventType := reviewEvent(statutActuel, req.Decision); eventType != "" {
		s.notificationService.Dispatch(ctx, eventType, coursID, compteCibleID, req.Observation)
	}

	return nil
}

// ListVisible retourne les cours visibles par le principal selon son rôle
func (s *CoursService) ListVisible(ctx context.Context, principal domain.Principal, filters dto.ListCoursFilters) (*dto.ListCoursResponse, error) {
	normalizeFilters(&filters)
	if filters.Statut != domain.StatutFiltreTous && !domain.IsStatutValidation(filters.Statut) {
		return nil, domain.NewValidationError("Filtre de statut invalide", map[string]interface{}{
			"statut": filters.Statut,
		})
	}

	scope, err := s.scopeService.ResolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}

	offset := (filters.Page - 1) * filters.Limit
	empty := &dto.ListCoursResponse{
		Items: []dto.CoursResponse{},
		Page:  filters.Page,
		Limit: filters.Limit,
	}

	switch principal.Role {
	case domain.RoleEnseignant:
		if scope.EtabFormationID == "" {
			return empty, nil
		}
		return s.listCours(ctx, filters, queries.CoursQueries.ListForEtab,
			filters.Recherche, scope.EtabFormationID, filters.Limit, offset)

	case domain.RoleStagiaire:
		specialites, err := s.affectationService.SpecialtiesOf(ctx, scope.StagiaireID)
		if err != nil {
			return nil, err
		}
		etablissements, err := s.affectationService.EstablishmentsOf(ctx, scope.StagiaireID)
		if err != nil {
			return nil, err
		}
		if len(specialites) == 0 || len(etablissements) == 0 {
			return empty, nil
		}
		return s.listCours(ctx, filters, queries.CoursQueries.ListForStagiaire,
			filters.Recherche, specialites, etablissements, filters.Limit, offset)

	case domain.RoleEtabRegionale:
		if len(scope.EtabFormationIDs) == 0 {
			return empty, nil
		}
		return s.listCours(ctx, filters, queries.CoursQueries.ListForRegionale,
			filters.Recherche, filters.Statut, scope.EtabFormationIDs, filters.Limit, offset)

	case domain.RoleEtabNationale:
		return s.listCours(ctx, filters, queries.CoursQueries.ListAll,
			filters.Recherche, filters.Statut, filters.Limit, offset)

	default:
		return nil, domain.NewForbiddenError("Rôle non autorisé pour la consultation des cours", nil)
	}
}

func (s *CoursService) listCours(ctx context.Context, filters dto.ListCoursFilters, query string, args ...interface{}) (*dto.ListCoursResponse, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.NewInternalError("Erreur lecture des cours",
			fmt.Errorf("erreur liste cours: %w", err))
	}
	defer rows.Close()

	response := &dto.ListCoursResponse{
		Items: []dto.CoursResponse{},
		Page:  filters.Page,
		Limit: filters.Limit,
	}

	for rows.Next() {
		var (
			item                 dto.CoursResponse
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(
			&item.ID, &item.Code, &item.TitreFr, &item.TitreAr,
			&item.IDModule, &item.IDEnseignant, &item.Statut,
			&item.FichierPDF, &item.Observation,
			&createdAt, &updatedAt, &response.Total,
		); err != nil {
			return nil, domain.NewInternalError("Erreur lecture des cours", err)
		}
		item.CreatedAt = createdAt.Format(time.RFC3339)
		item.UpdatedAt = updatedAt.Format(time.RFC3339)
		response.Items = append(response.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewInternalError("Erreur lecture des cours", err)
	}

	return response, nil
}

func (s *CoursService) requireRole(ctx context.Context, principal domain.Principal, role domain.Role) (*coredto.ScopeSet, error) {
	if principal.Role != role {
		return nil, domain.NewForbiddenError("Opération non autorisée pour ce rôle", nil)
	}
	return s.scopeService.ResolveScope(ctx, principal)
}

func (s *CoursService) checkModuleAssigned(ctx context.Context, enseignantID, moduleID string) error {
	modules, err := s.affectationService.ModulesTaughtBy(ctx, enseignantID, "")
	if err != nil {
		return err
	}
	for _, id := range modules {
		if id == moduleID {
			return nil
		}
	}
	return domain.NewValidationError("Module non affecté à l'enseignant", map[string]interface{}{
		"id_module": moduleID,
	})
}

func (s *CoursService) cleanupDocument(ctx context.Context, reference string) {
	if err := s.documentService.Delete(ctx, reference); err != nil {
		fmt.Printf("[DOCUMENTS] Échec suppression du support %s: %v\n", reference, err)
	}
}

// checkModifiable refuse la modification d'un cours déjà examiné
func checkModifiable(statut string) error {
	if domain.IsStatutTerminal(statut) {
		return domain.NewValidationError("Le cours a déjà été examiné, ré-exportez-le avant modification", map[string]interface{}{
			"statut": statut,
		})
	}
	return nil
}

// reviewEvent retourne l'événement à émettre après une revue, ou la chaîne
// vide quand la décision ne change pas le statut courant
func reviewEvent(statutActuel, decision string) string {
	if statutActuel == decision {
		return ""
	}
	if decision == domain.StatutRefuse {
		return coreservices.EventCoursRefuse
	}
	return coreservices.EventCoursAccepte
}

func normalizeFilters(filters *dto.ListCoursFilters) {
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
