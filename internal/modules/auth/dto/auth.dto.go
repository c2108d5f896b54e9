package dto

// LoginRequest représente la requête de connexion
type LoginRequest struct {
	Identifiant string `json:"identifiant" binding:"required,min=3,max=50"`
	Password    string `json:"password" binding:"required,min=6"`
}

// LoginResponse représente la réponse de connexion réussie
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
	Compte    Compte `json:"compte"`
}

// Compte représente les informations de compte exposées à la connexion
type Compte struct {
	ID          string `json:"id"`
	Identifiant string `json:"identifiant"`
	Role        string `json:"role"`
}

// SessionData représente les données de session Redis
type SessionData struct {
	CompteID  string `json:"compte_id"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	ExpiresAt string `json:"expires_at"`
}

// ToMap convertit SessionData en map pour Redis HSET
func (s *SessionData) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"compte_id":  s.CompteID,
		"role":       s.Role,
		"created_at": s.CreatedAt,
		"expires_at": s.ExpiresAt,
	}
}

// SessionFromMap crée SessionData depuis une map Redis
func SessionFromMap(data map[string]string) *SessionData {
	return &SessionData{
		CompteID:  data["compte_id"],
		Role:      data["role"],
		CreatedAt: data["created_at"],
		ExpiresAt: data["expires_at"],
	}
}
