package services

import (
	"testing"

	coreservices "formation-suite-core/internal/modules/core-services/services"
	"formation-suite-core/internal/modules/cours/dto"
	"formation-suite-core/internal/shared/domain"
)

func TestNormalizeFilters(t *testing.T) {
	tests := []struct {
		name       string
		input      dto.ListCoursFilters
		wantPage   int
		wantLimit  int
		wantStatut string
	}{
		{
			name:       "valeurs par défaut",
			input:      dto.ListCoursFilters{},
			wantPage:   1,
			wantLimit:  defaultPageLimit,
			wantStatut: domain.StatutFiltreTous,
		},
		{
			name:       "page négative ramenée à 1",
			input:      dto.ListCoursFilters{Page: -3, Limit: 10},
			wantPage:   1,
			wantLimit:  10,
			wantStatut: domain.StatutFiltreTous,
		},
		{
			name:       "limite plafonnée",
			input:      dto.ListCoursFilters{Page: 2, Limit: 5000},
			wantPage:   2,
			wantLimit:  maxPageLimit,
			wantStatut: domain.StatutFiltreTous,
		},
		{
			name:       "statut explicite conservé",
			input:      dto.ListCoursFilters{Page: 1, Limit: 20, Statut: domain.StatutAccepte},
			wantPage:   1,
			wantLimit:  20,
			wantStatut: domain.StatutAccepte,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters := tt.input
			normalizeFilters(&filters)

			if filters.Page != tt.wantPage {
				t.Errorf("Page = %d, attendu %d", filters.Page, tt.wantPage)
			}
			if filters.Limit != tt.wantLimit {
				t.Errorf("Limit = %d, attendu %d", filters.Limit, tt.wantLimit)
			}
			if filters.Statut != tt.wantStatut {
				t.Errorf("Statut = %q, attendu %q", filters.Statut, tt.wantStatut)
			}
		})
	}
}

func TestCheckModifiable(t *testing.T) {
	tests := []struct {
		name       string
		statut     string
		wantRefuse bool
	}{
		{"en attente modifiable", domain.StatutEnAttente, false},
		{"accepté figé", domain.StatutAccepte, true},
		{"refusé figé", domain.StatutRefuse, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkModifiable(tt.statut)
			if !tt.wantRefuse {
				if err != nil {
					t.Fatalf("checkModifiable(%q) = %v, attendu nil", tt.statut, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("checkModifiable(%q) devrait refuser la modification", tt.statut)
			}
			if svcErr := domain.AsServiceError(err); svcErr.Type != domain.ErrValidation {
				t.Errorf("type d'erreur = %q, attendu %q", svcErr.Type, domain.ErrValidation)
			}
		})
	}
}

func TestReviewEvent(t *testing.T) {
	tests := []struct {
		name         string
		statutActuel string
		decision     string
		want         string
	}{
		{"acceptation depuis l'attente", domain.StatutEnAttente, domain.StatutAccepte, coreservices.EventCoursAccepte},
		{"refus depuis l'attente", domain.StatutEnAttente, domain.StatutRefuse, coreservices.EventCoursRefuse},
		{"bascule refusé vers accepté", domain.StatutRefuse, domain.StatutAccepte, coreservices.EventCoursAccepte},
		{"bascule accepté vers refusé", domain.StatutAccepte, domain.StatutRefuse, coreservices.EventCoursRefuse},
		{"même statut, aucun événement", domain.StatutAccepte, domain.StatutAccepte, ""},
		{"même refus, aucun événement", domain.StatutRefuse, domain.StatutRefuse, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reviewEvent(tt.statutActuel, tt.decision); got != tt.want {
				t.Errorf("reviewEvent(%q, %q) = %q, attendu %q", tt.statutActuel, tt.decision, got, tt.want)
			}
		})
	}
}
