package dto

import (
	"testing"

	"formation-suite-core/internal/shared/domain"
)

func TestInJurisdiction(t *testing.T) {
	scope := &ScopeSet{
		Role:             domain.RoleEtabRegionale,
		EtabRegionaleID:  "reg-1",
		EtabFormationIDs: []string{"etab-1", "etab-2"},
	}

	tests := []struct {
		name   string
		etabID string
		want   bool
	}{
		{"sous tutelle", "etab-1", true},
		{"autre établissement sous tutelle", "etab-2", true},
		{"hors tutelle", "etab-3", false},
		{"id vide", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scope.InJurisdiction(tt.etabID); got != tt.want {
				t.Errorf("InJurisdiction(%q) = %v, attendu %v", tt.etabID, got, tt.want)
			}
		})
	}

	vide := &ScopeSet{Role: domain.RoleEtabRegionale}
	if vide.InJurisdiction("etab-1") {
		t.Error("un périmètre sans établissements ne contient rien")
	}
}
