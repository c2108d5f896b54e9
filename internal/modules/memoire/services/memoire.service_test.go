package services

import (
	"testing"

	"formation-suite-core/internal/modules/memoire/dto"
)

func TestContenuFourni(t *testing.T) {
	titre := "Titre du mémoire"
	ref := "d0c5f1a2"

	tests := []struct {
		name    string
		memoire dto.MemoireResponse
		want    bool
	}{
		{"aucun contenu", dto.MemoireResponse{}, false},
		{"titre français seul", dto.MemoireResponse{TitreFr: &titre}, true},
		{"titre arabe seul", dto.MemoireResponse{TitreAr: &titre}, true},
		{"support PDF seul", dto.MemoireResponse{FichierPDF: &ref}, true},
		{"contenu complet", dto.MemoireResponse{TitreFr: &titre, TitreAr: &titre, FichierPDF: &ref}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contenuFourni(&tt.memoire); got != tt.want {
				t.Errorf("contenuFourni = %v, attendu %v", got, tt.want)
			}
		})
	}
}
