package dto

// CreateCoursRequest données de création d'un cours (formulaire multipart,
// le PDF est optionnel et transmis à part)
type CreateCoursRequest struct {
	Code     string `form:"code" binding:"required,min=2,max=20"`
	TitreFr  string `form:"titre_fr" binding:"required,min=2,max=255"`
	TitreAr  string `form:"titre_ar" binding:"required,min=2,max=255"`
	IDModule string `form:"id_module" binding:"required,uuid"`

	// Renseignés par le contrôleur depuis le fichier multipart
	FileData        []byte `form:"-"`
	FileContentType string `form:"-"`
	FileName        string `form:"-"`
}

// UpdateCoursRequest mise à jour partielle : seuls les champs non nil changent
type UpdateCoursRequest struct {
	Code     *string `form:"code"`
	TitreFr  *string `form:"titre_fr"`
	TitreAr  *string `form:"titre_ar"`
	IDModule *string `form:"id_module"`

	FileData        []byte `form:"-"`
	FileContentType string `form:"-"`
	FileName        string `form:"-"`
}

// ReviewCoursRequest décision d'une direction régionale
type ReviewCoursRequest struct {
	Decision    string `json:"decision" binding:"required"`
	Observation string `json:"observation" binding:"max=1000"`
}

// ListCoursFilters filtres communs des listes de cours
type ListCoursFilters struct {
	Statut    string `form:"statut"`
	Recherche string `form:"recherche"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}

// CoursResponse représentation API d'un cours
type CoursResponse struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	TitreFr      string  `json:"titre_fr"`
	TitreAr      string  `json:"titre_ar"`
	IDModule     string  `json:"id_module"`
	IDEnseignant string  `json:"id_enseignant"`
	Statut       string  `json:"statut"`
	FichierPDF   *string `json:"fichierpdf"`
	Observation  *string `json:"observation"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// ListCoursResponse liste paginée
type ListCoursResponse struct {
	Items []CoursResponse `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
