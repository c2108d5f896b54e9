package domain

import "testing"

func TestStatutValidation(t *testing.T) {
	tests := []struct {
		statut        string
		estValidation bool
		estTerminal   bool
		estDecision   bool
	}{
		{StatutEnAttente, true, false, false},
		{StatutAccepte, true, true, true},
		{StatutRefuse, true, true, true},
		{StatutFiltreTous, false, false, false},
		{"accepte", false, false, false},
		{"", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.statut, func(t *testing.T) {
			if got := IsStatutValidation(tt.statut); got != tt.estValidation {
				t.Errorf("IsStatutValidation(%q) = %v, attendu %v", tt.statut, got, tt.estValidation)
			}
			if got := IsStatutTerminal(tt.statut); got != tt.estTerminal {
				t.Errorf("IsStatutTerminal(%q) = %v, attendu %v", tt.statut, got, tt.estTerminal)
			}
			if got := IsStatutDecision(tt.statut); got != tt.estDecision {
				t.Errorf("IsStatutDecision(%q) = %v, attendu %v", tt.statut, got, tt.estDecision)
			}
		})
	}
}
