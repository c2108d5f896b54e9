package utils

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("motdepasse123")
	if err != nil {
		t.Fatalf("HashPassword erreur inattendue: %v", err)
	}
	if hash == "motdepasse123" {
		t.Fatal("le hash ne doit pas être le mot de passe en clair")
	}

	if !VerifyPassword("motdepasse123", hash) {
		t.Error("le bon mot de passe devrait être accepté")
	}
	if VerifyPassword("mauvais", hash) {
		t.Error("un mauvais mot de passe devrait être refusé")
	}
	if VerifyPassword("motdepasse123", "pas-un-hash") {
		t.Error("un hash invalide devrait être refusé")
	}
}
