package dto

// AssignModulesRequest remplacement en bloc des affectations d'un enseignant
// pour une année scolaire
type AssignModulesRequest struct {
	IDEnseignant  string   `json:"id_enseignant" binding:"required,uuid"`
	ModuleIDs     []string `json:"module_ids" binding:"required,min=1,dive,uuid"`
	AnneeScolaire string   `json:"annee_scolaire" binding:"required,min=4,max=9"`
	Semestre      *string  `json:"semestre" binding:"omitempty,max=10"`
}

// RemoveAssignmentRequest retrait d'une affectation précise
type RemoveAssignmentRequest struct {
	IDEnseignant  string `json:"id_enseignant" binding:"required,uuid"`
	IDModule      string `json:"id_module" binding:"required,uuid"`
	AnneeScolaire string `json:"annee_scolaire" binding:"required,min=4,max=9"`
}

// AffectationResponse représentation API d'une affectation
type AffectationResponse struct {
	ID            string  `json:"id"`
	IDEnseignant  string  `json:"id_enseignant"`
	IDModule      string  `json:"id_module"`
	AnneeScolaire string  `json:"annee_scolaire"`
	Semestre      *string `json:"semestre"`
}
