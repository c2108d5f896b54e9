package services

import (
	"context"
	"fmt"
	"time"

	"formation-suite-core/internal/infrastructure/database/postgres"
	coredto "formation-suite-core/internal/modules/core-services/dto"
	coreservices "formation-suite-core/internal/modules/core-services/services"
	"formation-suite-core/internal/modules/offre/dto"
	"formation-suite-core/internal/modules/offre/queries"
	"formation-suite-core/internal/shared/domain"
)

const dateLayout = "2006-01-02"

// OffreService gère les offres de formation des établissements.
// Les offres alimentent le périmètre des stagiaires et la validation
// des affectations de modules.
type OffreService struct {
	db           *postgres.Client
	scopeService *coreservices.ScopeService
}

func NewOffreService(db *postgres.Client, scopeService *coreservices.ScopeService) *OffreService {
	return &OffreService{
		db:           db,
		scopeService: scopeService,
	}
}

// Create publie une offre ouverte aux inscriptions
func (s *OffreService) Create(ctx context.Context, principal domain.Principal, req dto.CreateOffreRequest) (*dto.OffreResponse, error) {
	scope, err := s.requireRole(ctx, principal, domain.RoleEtabFormation)
	if err != nil {
		return nil, err
	}

	debut, err := time.Parse(dateLayout, req.DateDebut)
	if err != nil {
		return nil, domain.NewValidationError("Date de début invalide (format AAAA-MM-JJ)", nil)
	}
	fin, err := time.Parse(dateLayout, req.DateFin)
	if err != nil {
		return nil, domain.NewValidationError("Date de fin invalide (format AAAA-MM-JJ)", nil)
	}
	if !fin.After(debut) {
		return nil, domain.NewValidationError("La date de fin doit suivre la date de début", nil)
	}

	offre := dto.OffreResponse{
		IDSpecialite:    req.IDSpecialite,
		IDEtabFormation: scope.EtabFormationID,
		IDDiplome:       req.IDDiplome,
		IDModeFormation: req.IDModeFormation,
		DateDebut:       req.DateDebut,
		DateFin:         req.DateFin,
	}

	var createdAt time.Time
	err = s.db.QueryRow(ctx, queries.OffreQueries.Create,
		req.IDSpecialite, scope.EtabFormationID, req.IDDiplome, req.IDModeFormation, debut, fin,
	).Scan(&offre.ID, &offre.Statut, &createdAt)
	if err != nil {
		return nil, domain.NewInternalError("Erreur création de l'offre",
			fmt.Errorf("erreur insertion offre: %w", err))
	}

	offre.CreatedAt = createdAt.Format(time.RFC3339)

	return &offre, nil
}

// Close clôture une offre ouverte de l'établissement
func (s *OffreService) Close(ctx context.Context, principal domain.Principal, offreID string) error {
	scope, err := s.requireRole(ctx, principal, domain.RoleEtabFormation)
	if err != nil {
		return err
	}

	affected, err := s.db.ExecAffected(ctx, queries.OffreQueries.Close, offreID, scope.EtabFormationID)
	if err != nil {
		return domain.NewInternalError("Erreur clôture de l'offre",
			fmt.Errorf("erreur clôture offre: %w", err))
	}
	if affected == 0 {
		return domain.NewNotFoundError("Offre ouverte introuvable", nil)
	}

	return nil
}

// ListOwn retourne les offres de l'établissement, tout statut
func (s *OffreService) ListOwn(ctx context.Context, principal domain.Principal) ([]dto.OffreResponse, error) {
	scope, err := s.requireRole(ctx, principal, domain.RoleEtabFormation)
	if err != nil {
		return nil, err
	}

	return s.listOffres(ctx, queries.OffreQueries.ListForEtab, scope.EtabFormationID)
}

// ListOpen retourne les offres ouvertes aux inscriptions
func (s *OffreService) ListOpen(ctx context.Context, principal domain.Principal) ([]dto.OffreResponse, error) {
	if _, err := s.scopeService.ResolveScope(ctx, principal); err != nil {
		return nil, err
	}

	return s.listOffres(ctx, queries.OffreQueries.ListOuvertes)
}

func (s *OffreService) listOffres(ctx context.Context, query string, args ...interface{}) ([]dto.OffreResponse, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.NewInternalError("Erreur lecture des offres",
			fmt.Errorf("erreur liste offres: %w", err))
	}
	defer rows.Close()

	offres := []dto.OffreResponse{}
	for rows.Next() {
		var (
			item               dto.OffreResponse
			dateDebut, dateFin *time.Time
			createdAt          time.Time
		)
		if err := rows.Scan(
			&item.ID, &item.IDSpecialite, &item.IDEtabFormation,
			&item.IDDiplome, &item.IDModeFormation,
			&dateDebut, &dateFin, &item.Statut, &createdAt,
		); err != nil {
			return nil, domain.NewInternalError("Erreur lecture des offres", err)
		}
		if dateDebut != nil {
			item.DateDebut = dateDebut.Format(dateLayout)
		}
		if dateFin != nil {
			item.DateFin = dateFin.Format(dateLayout)
		}
		item.CreatedAt = createdAt.Format(time.RFC3339)
		offres = append(offres, item)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewInternalError("Erreur lecture des offres", err)
	}

	return offres, nil
}

func (s *OffreService) requireRole(ctx context.Context, principal domain.Principal, role domain.Role) (*coredto.ScopeSet, error) {
	if principal.Role != role {
		return nil, domain.NewForbiddenError("Opération non autorisée pour ce rôle", nil)
	}
	return s.scopeService.ResolveScope(ctx, principal)
}
