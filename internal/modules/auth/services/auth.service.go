package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"formation-suite-core/internal/infrastructure/database/postgres"
	"formation-suite-core/internal/modules/auth/dto"
	"formation-suite-core/internal/modules/auth/queries"
	"formation-suite-core/internal/shared/domain"
	"formation-suite-core/internal/shared/utils"
)

// AuthService gère la connexion/déconnexion des comptes
type AuthService struct {
	db             *postgres.Client
	sessionService *SessionService
}

func NewAuthService(db *postgres.Client, sessionService *SessionService) *AuthService {
	return &AuthService{
		db:             db,
		sessionService: sessionService,
	}
}

// Login vérifie identifiant/mot de passe et ouvre une session
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	var (
		compteID     string
		identifiant  string
		passwordHash string
		role         string
	)

	err := s.db.QueryRow(ctx, queries.CompteQueries.GetByIdentifiant, req.Identifiant).Scan(
		&compteID,
		&identifiant,
		&passwordHash,
		&role,
	)
	if err == pgx.ErrNoRows {
		// Même message que pour un mot de passe erroné : ne pas révéler
		// l'existence de l'identifiant
		return nil, domain.NewForbiddenError("Identifiant ou mot de passe incorrect", nil)
	}
	if err != nil {
		return nil, domain.NewInternalError("Erreur lors de la connexion",
			fmt.Errorf("erreur lecture compte: %w", err))
	}

	if !utils.VerifyPassword(req.Password, passwordHash) {
		return nil, domain.NewForbiddenError("Identifiant ou mot de passe incorrect", nil)
	}

	token := uuid.New().String()
	now := time.Now()
	expiresAt := now.Add(time.Hour)

	sessionData := &dto.SessionData{
		CompteID:  compteID,
		Role:      role,
		CreatedAt: now.Format(time.RFC3339),
		ExpiresAt: expiresAt.Format(time.RFC3339),
	}

	if err := s.sessionService.CreateSession(ctx, token, sessionData); err != nil {
		return nil, domain.NewInternalError("Erreur lors de la création de session", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: sessionData.ExpiresAt,
		Compte: dto.Compte{
			ID:          compteID,
			Identifiant: identifiant,
			Role:        role,
		},
	}, nil
}

// Logout révoque la session courante (idempotent)
func (s *AuthService) Logout(ctx context.Context, token, compteID string) error {
	return s.sessionService.DeleteSession(ctx, token, compteID)
}

// Me retourne les informations du compte authentifié
func (s *AuthService) Me(ctx context.Context, compteID string) (*dto.Compte, error) {
	var compte dto.Compte

	err := s.db.QueryRow(ctx, queries.CompteQueries.GetByID, compteID).Scan(
		&compte.ID,
		&compte.Identifiant,
		&compte.Role,
	)
	if err == pgx.ErrNoRows {
		return nil, domain.NewNotFoundError("Compte introuvable", nil)
	}
	if err != nil {
		return nil, domain.NewInternalError("Erreur lecture compte",
			fmt.Errorf("erreur lecture compte: %w", err))
	}

	return &compte, nil
}
