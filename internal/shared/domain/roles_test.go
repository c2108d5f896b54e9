package domain

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{"stagiaire", RoleStagiaire, false},
		{"enseignant", RoleEnseignant, false},
		{"etablissement_formation", RoleEtabFormation, false},
		{"etablissement_regionale", RoleEtabRegionale, false},
		{"etablissement_nationale", RoleEtabNationale, false},
		{"", "", true},
		{"admin", "", true},
		{"Enseignant", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRole(%q) erreur = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRole(%q) = %q, attendu %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoleIsValid(t *testing.T) {
	if !RoleEnseignant.IsValid() {
		t.Error("RoleEnseignant devrait être valide")
	}
	if Role("inconnu").IsValid() {
		t.Error("un rôle inconnu ne devrait pas être valide")
	}
}
