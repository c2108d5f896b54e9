package dto

import "formation-suite-core/internal/shared/domain"

// ScopeSet décrit le périmètre de visibilité d'un principal résolu.
// Les identifiants non pertinents pour le rôle restent vides.
type ScopeSet struct {
	Role domain.Role

	// Profils métier
	EnseignantID string
	StagiaireID  string

	// Rattachements organisationnels
	EtabFormationID string
	EtabRegionaleID string
	EtabNationaleID string

	// Pour une direction régionale : établissements de formation sous tutelle
	EtabFormationIDs []string
}

// InJurisdiction indique si un établissement de formation relève du périmètre
// régional résolu
func (s *ScopeSet) InJurisdiction(etabFormationID string) bool {
	for _, id := range s.EtabFormationIDs {
		if id == etabFormationID {
			return true
		}
	}
	return false
}
