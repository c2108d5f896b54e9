package services

import (
	"context"
	"fmt"
	"time"

	redisInfra "formation-suite-core/internal/infrastructure/database/redis"
	"formation-suite-core/internal/modules/auth/dto"
	"formation-suite-core/internal/shared/domain"

	"github.com/redis/go-redis/v9"
)

// SessionService gère les sessions dans Redis (création, validation, révocation)
type SessionService struct {
	redisClient *redisInfra.Client
}

func NewSessionService(redisClient *redisInfra.Client) *SessionService {
	return &SessionService{
		redisClient: redisClient,
	}
}

// CreateSession crée une session Redis avec index par compte
func (s *SessionService) CreateSession(ctx context.Context, token string, sessionData *dto.SessionData) error {
	sessionKey, err := s.redisClient.GenerateKey("auth_session", token)
	if err != nil {
		return fmt.Errorf("erreur génération clé session: %w", err)
	}
	userSessionsKey, err := s.redisClient.GenerateKey("auth_user_sessions", sessionData.CompteID)
	if err != nil {
		return fmt.Errorf("erreur génération clé index sessions: %w", err)
	}

	pipe := s.redisClient.Client().Pipeline()
	pipe.HSet(ctx, sessionKey, sessionData.ToMap())
	pipe.Expire(ctx, sessionKey, time.Hour)
	pipe.SAdd(ctx, userSessionsKey, token)
	pipe.Expire(ctx, userSessionsKey, time.Hour)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("erreur création session Redis: %w", err)
	}
	return nil
}

// ValidateSession valide un token et retourne les données de session.
// Un token blacklisté (déconnexion) est traité comme révoqué.
func (s *SessionService) ValidateSession(ctx context.Context, token string) (*dto.SessionData, error) {
	blacklisted, err := s.redisClient.ExistsWithPattern(ctx, "auth_blacklist", token)
	if err == nil && blacklisted {
		return nil, domain.NewForbiddenError("Token révoqué", nil)
	}

	sessionKey, err := s.redisClient.GenerateKey("auth_session", token)
	if err != nil {
		return nil, fmt.Errorf("erreur génération clé session: %w", err)
	}

	data, err := s.redisClient.HGetAll(ctx, sessionKey)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("erreur lecture session: %w", err)
	}
	if len(data) == 0 {
		return nil, domain.NewForbiddenError("Session invalide ou expirée", nil)
	}

	return dto.SessionFromMap(data), nil
}

// DeleteSession révoque une session de manière idempotente :
// blacklist du token, suppression de la session et de l'index compte
func (s *SessionService) DeleteSession(ctx context.Context, token, compteID string) error {
	revokedAt := fmt.Sprintf("revoked_at:%s", time.Now().Format(time.RFC3339))
	s.redisClient.SetWithPattern(ctx, "auth_blacklist", revokedAt, token)

	sessionKey, err := s.redisClient.GenerateKey("auth_session", token)
	if err != nil {
		return nil
	}

	pipe := s.redisClient.Client().Pipeline()
	pipe.Del(ctx, sessionKey)
	if compteID != "" {
		if userSessionsKey, keyErr := s.redisClient.GenerateKey("auth_user_sessions", compteID); keyErr == nil {
			pipe.SRem(ctx, userSessionsKey, token)
		}
	}
	pipe.Exec(ctx)

	// Toujours succès : la déconnexion est idempotente
	return nil
}
