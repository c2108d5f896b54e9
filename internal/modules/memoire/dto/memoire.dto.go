package dto

// AssignSupervisionRequest attribution d'un encadrement par un établissement
type AssignSupervisionRequest struct {
	IDStagiaire  string `json:"id_stagiaire" binding:"required,uuid"`
	IDEnseignant string `json:"id_enseignant" binding:"required,uuid"`
}

// UpdateMemoireRequest mise à jour partielle du contenu par le stagiaire
type UpdateMemoireRequest struct {
	TitreFr *string `form:"titre_fr"`
	TitreAr *string `form:"titre_ar"`

	FileData        []byte `form:"-"`
	FileContentType string `form:"-"`
	FileName        string `form:"-"`
}

// ValidateMemoireRequest décision de l'encadrant.
// La décision accepte les graphies historiques, canonicalisées à l'entrée.
type ValidateMemoireRequest struct {
	Decision    string `json:"decision" binding:"required"`
	Observation string `json:"observation" binding:"max=1000"`
}

// MemoireResponse représentation API d'un mémoire (statut canonique)
type MemoireResponse struct {
	ID           string  `json:"id"`
	TitreFr      *string `json:"titre_fr"`
	TitreAr      *string `json:"titre_ar"`
	IDStagiaire  string  `json:"id_stagiaire"`
	IDEnseignant string  `json:"id_enseignant"`
	Statut       string  `json:"statut"`
	FichierPDF   *string `json:"fichierpdf"`
	Observation  *string `json:"observation"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}
