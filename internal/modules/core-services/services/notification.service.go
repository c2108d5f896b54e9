package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisInfra "formation-suite-core/internal/infrastructure/database/redis"
)

// Types d'événements publiés après une transition de statut
const (
	EventCoursAccepte     = "cours_accepte"
	EventCoursRefuse      = "cours_refuse"
	EventMemoireAccepte   = "memoire_accepte"
	EventMemoireRefuse    = "memoire_refuse"
	EventProgrammeAccepte = "programme_accepte"
	EventProgrammeRefuse  = "programme_refuse"
)

// NotificationEvent est le message JSON publié sur le canal Redis
type NotificationEvent struct {
	Type          string `json:"type"`
	EntiteID      string `json:"entite_id"`
	CompteCibleID string `json:"compte_cible_id,omitempty"`
	Observation   string `json:"observation,omitempty"`
	EmisA         string `json:"emis_a"`
}

// NotificationService publie les événements workflow en fire-and-forget.
// Un échec de publication est journalisé et n'affecte jamais la transition.
type NotificationService struct {
	redisClient *redisInfra.Client
}

func NewNotificationService(redisClient *redisInfra.Client) *NotificationService {
	return &NotificationService{redisClient: redisClient}
}

// Dispatch publie un événement sur le canal des notifications
func (s *NotificationService) Dispatch(ctx context.Context, eventType, entiteID, compteCibleID, observation string) {
	event := NotificationEvent{
		Type:          eventType,
		EntiteID:      entiteID,
		CompteCibleID: compteCibleID,
		Observation:   observation,
		EmisA:         time.Now().Format(time.RFC3339),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		fmt.Printf("[NOTIFICATIONS] Échec sérialisation événement %s: %v\n", eventType, err)
		return
	}

	if err := s.redisClient.Publish(ctx, redisInfra.NotificationChannel, payload); err != nil {
		fmt.Printf("[NOTIFICATIONS] Échec publication événement %s (%s): %v\n", eventType, entiteID, err)
	}
}
