package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"formation-suite-core/internal/modules/auth/services"
	"formation-suite-core/internal/shared/domain"
)

// ContextKeyPrincipal clé Gin sous laquelle le principal est injecté
const ContextKeyPrincipal = "principal"

// SessionMiddleware résout le token Bearer en Principal {compte, rôle}.
// Les moteurs de workflow ne voient jamais le token : uniquement le principal.
type SessionMiddleware struct {
	sessionService *services.SessionService
}

func NewSessionMiddleware(sessionService *services.SessionService) *SessionMiddleware {
	return &SessionMiddleware{
		sessionService: sessionService,
	}
}

// Handler retourne le middleware Gin pour la validation de session
func (m *SessionMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractBearerToken(c.GetHeader("Authorization"))
		if token == "" {
			m.respondError(c, http.StatusUnauthorized, "TOKEN_REQUIRED",
				"Token d'authentification requis")
			return
		}

		session, err := m.sessionService.ValidateSession(c.Request.Context(), token)
		if err != nil {
			m.respondError(c, http.StatusUnauthorized, "SESSION_INVALID",
				"Session invalide, expirée ou révoquée")
			return
		}

		role, err := domain.ParseRole(session.Role)
		if err != nil {
			m.respondError(c, http.StatusUnauthorized, "ROLE_INVALID",
				"Rôle de session invalide")
			return
		}

		c.Set(ContextKeyPrincipal, domain.Principal{
			CompteID: session.CompteID,
			Role:     role,
		})
		c.Set("session_token", token)

		c.Next()
	}
}

// PrincipalFromContext récupère le principal injecté par le middleware
func PrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	value, exists := c.Get(ContextKeyPrincipal)
	if !exists {
		return domain.Principal{}, false
	}
	principal, ok := value.(domain.Principal)
	return principal, ok
}

func (m *SessionMiddleware) extractBearerToken(authHeader string) string {
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}

	return parts[1]
}

func (m *SessionMiddleware) respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"error": message,
		"details": gin.H{
			"code": code,
		},
	})
	c.Abort()
}
