package dto

import "testing"

func TestIsDecisionInscription(t *testing.T) {
	tests := []struct {
		statut string
		want   bool
	}{
		{InscriptionAcceptee, true},
		{InscriptionRefusee, true},
		{InscriptionEnAttente, false},
		{InscriptionAnnulee, false},
		{"", false},
		{"accepte", false},
	}

	for _, tt := range tests {
		t.Run(tt.statut, func(t *testing.T) {
			if got := IsDecisionInscription(tt.statut); got != tt.want {
				t.Errorf("IsDecisionInscription(%q) = %v, attendu %v", tt.statut, got, tt.want)
			}
		})
	}
}
