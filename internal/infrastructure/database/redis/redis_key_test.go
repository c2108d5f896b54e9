package redis

import "testing"

func TestGenerateKey(t *testing.T) {
	rkg := NewRedisKeyGenerator()

	tests := []struct {
		name        string
		pattern     string
		identifiers []string
		want        string
		wantErr     bool
	}{
		{
			name:        "session avec token",
			pattern:     "auth_session",
			identifiers: []string{"abc-123"},
			want:        "formation_suite_auth_session:abc-123",
		},
		{
			name:        "blacklist avec token",
			pattern:     "auth_blacklist",
			identifiers: []string{"tok"},
			want:        "formation_suite_auth_blacklist:tok",
		},
		{
			name:        "identifiants multiples joints",
			pattern:     "auth_user_sessions",
			identifiers: []string{"compte", "42"},
			want:        "formation_suite_auth_user_sessions:compte_42",
		},
		{
			name:    "sans identifiant",
			pattern: "auth_session",
			want:    "formation_suite_auth_session",
		},
		{
			name:        "pattern inconnu",
			pattern:     "cache_inconnu",
			identifiers: []string{"x"},
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rkg.GenerateKey(tt.pattern, tt.identifiers...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GenerateKey() erreur = %v, wantErr = %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("GenerateKey() = %q, attendu %q", got, tt.want)
			}
		})
	}
}

func TestGetTTL(t *testing.T) {
	rkg := NewRedisKeyGenerator()

	ttl, err := rkg.GetTTL("auth_session")
	if err != nil {
		t.Fatalf("GetTTL(auth_session) erreur inattendue: %v", err)
	}
	if ttl != 3600 {
		t.Errorf("GetTTL(auth_session) = %d, attendu 3600", ttl)
	}

	if _, err := rkg.GetTTL("inconnu"); err == nil {
		t.Error("GetTTL devrait échouer sur un pattern inconnu")
	}
}

func TestValidateKey(t *testing.T) {
	rkg := NewRedisKeyGenerator()

	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"clé conforme", "formation_suite_auth_session:abc-123", false},
		{"clé vide", "", true},
		{"mauvais préfixe", "autre_prefixe:abc", true},
		{"caractères invalides", "formation_suite_auth session", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rkg.ValidateKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKey(%q) erreur = %v, wantErr = %v", tt.key, err, tt.wantErr)
			}
		})
	}
}
