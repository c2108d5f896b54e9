package redis

import (
	"fmt"
	"regexp"
	"strings"
)

// RedisKeyGenerator génère et valide les clés Redis selon les conventions
// Formation Suite. Pattern : formation_suite_{domain}_{context}:{identifier}
type RedisKeyGenerator struct{}

func NewRedisKeyGenerator() *RedisKeyGenerator {
	return &RedisKeyGenerator{}
}

// RedisKeyPattern définit les patterns standards des clés
type RedisKeyPattern struct {
	Domain  string // auth, notif, cache
	Context string // session, blacklist, events
	TTL     int    // TTL en secondes, 0 = pas d'expiration
}

// Patterns prédéfinis — seuls les patterns réellement implémentés sont listés
var RedisKeyPatterns = map[string]RedisKeyPattern{
	"auth_session":       {Domain: "auth", Context: "session", TTL: 3600},
	"auth_blacklist":     {Domain: "auth", Context: "blacklist", TTL: 3600},
	"auth_user_sessions": {Domain: "auth", Context: "user_sessions", TTL: 3600},
}

// NotificationChannel canal pub/sub des événements workflow
const NotificationChannel = "formation_suite_notif_events"

// GenerateKey génère une clé selon la convention formation_suite_{domain}_{context}:{identifier}
func (rkg *RedisKeyGenerator) GenerateKey(patternName string, identifier ...string) (string, error) {
	pattern, exists := RedisKeyPatterns[patternName]
	if !exists {
		return "", fmt.Errorf("pattern Redis non trouvé: %s", patternName)
	}

	prefix := fmt.Sprintf("formation_suite_%s_%s", pattern.Domain, pattern.Context)

	if len(identifier) > 0 {
		identifierStr := strings.Join(identifier, "_")
		return fmt.Sprintf("%s:%s", prefix, identifierStr), nil
	}

	return prefix, nil
}

// GetTTL récupère le TTL d'un pattern
func (rkg *RedisKeyGenerator) GetTTL(patternName string) (int, error) {
	pattern, exists := RedisKeyPatterns[patternName]
	if !exists {
		return 0, fmt.Errorf("pattern Redis non trouvé: %s", patternName)
	}
	return pattern.TTL, nil
}

// ValidateKey valide qu'une clé respecte les conventions
func (rkg *RedisKeyGenerator) ValidateKey(key string) error {
	if len(key) == 0 {
		return fmt.Errorf("clé vide")
	}

	if len(key) > 250 {
		return fmt.Errorf("clé trop longue (max 250 caractères): %d", len(key))
	}

	validKeyRegex := regexp.MustCompile(`^[a-zA-Z0-9_:\-]+$`)
	if !validKeyRegex.MatchString(key) {
		return fmt.Errorf("clé contient des caractères invalides: %s", key)
	}

	if !strings.HasPrefix(key, "formation_suite_") {
		return fmt.Errorf("clé doit commencer par 'formation_suite_': %s", key)
	}

	return nil
}
