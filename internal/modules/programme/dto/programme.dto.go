package dto

// CreateProgrammeRequest création d'un programme par une direction régionale
type CreateProgrammeRequest struct {
	Code     string `form:"code" binding:"required,min=2,max=20"`
	TitreFr  string `form:"titre_fr" binding:"required,min=2,max=255"`
	TitreAr  string `form:"titre_ar" binding:"required,min=2,max=255"`
	IDModule string `form:"id_module" binding:"required,uuid"`

	FileData        []byte `form:"-"`
	FileContentType string `form:"-"`
	FileName        string `form:"-"`
}

// ReviewProgrammeRequest décision de la direction nationale
type ReviewProgrammeRequest struct {
	Decision    string `json:"decision" binding:"required"`
	Observation string `json:"observation" binding:"max=1000"`
}

// ListProgrammeFilters filtres des listes de programmes, mêmes conventions
// que les listes de cours
type ListProgrammeFilters struct {
	Statut    string `form:"statut"`
	Recherche string `form:"recherche"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}

// ProgrammeResponse représentation API d'un programme
type ProgrammeResponse struct {
	ID              string  `json:"id"`
	Code            string  `json:"code"`
	TitreFr         string  `json:"titre_fr"`
	TitreAr         string  `json:"titre_ar"`
	IDModule        string  `json:"id_module"`
	IDEtabRegionale string  `json:"id_etab_regionale"`
	Statut          string  `json:"statut"`
	FichierPDF      *string `json:"fichierpdf"`
	Observation     *string `json:"observation"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// ListProgrammeResponse liste paginée
type ListProgrammeResponse struct {
	Items []ProgrammeResponse `json:"items"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}
