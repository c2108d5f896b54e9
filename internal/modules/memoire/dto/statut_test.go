package dto

import "testing"

func TestCanonicalStatut(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		// Jetons canoniques inchangés
		{"soumis", MemoireSoumis, true},
		{"en_preparation", MemoireEnPreparation, true},
		{"en_attente", MemoireEnAttente, true},
		{"accepte", MemoireAccepte, true},
		{"refuse", MemoireRefuse, true},
		{"soutenu", MemoireSoutenu, true},

		// Graphies historiques canonicalisées
		{"مقدم", MemoireSoumis, true},
		{"مقبول", MemoireAccepte, true},
		{"مرفوض", MemoireRefuse, true},

		// Jetons inconnus
		{"", "", false},
		{"acceptee", "", false},
		{"في_الانتظار", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := CanonicalStatut(tt.input)
			if ok != tt.ok {
				t.Fatalf("CanonicalStatut(%q) ok = %v, attendu %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("CanonicalStatut(%q) = %q, attendu %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStatutTerminalEtDecision(t *testing.T) {
	tests := []struct {
		statut      string
		estTerminal bool
		estDecision bool
	}{
		{MemoireSoumis, false, false},
		{MemoireEnPreparation, false, false},
		{MemoireEnAttente, false, false},
		{MemoireAccepte, true, true},
		{MemoireRefuse, true, true},
		{MemoireSoutenu, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.statut, func(t *testing.T) {
			if got := IsStatutTerminalMemoire(tt.statut); got != tt.estTerminal {
				t.Errorf("IsStatutTerminalMemoire(%q) = %v, attendu %v", tt.statut, got, tt.estTerminal)
			}
			if got := IsDecisionMemoire(tt.statut); got != tt.estDecision {
				t.Errorf("IsDecisionMemoire(%q) = %v, attendu %v", tt.statut, got, tt.estDecision)
			}
		})
	}
}
