package dto

// Statuts d'une offre de formation
const (
	OffreOuverte  = "ouverte"
	OffreCloturee = "cloturee"
)

// CreateOffreRequest publication d'une offre par un établissement
type CreateOffreRequest struct {
	IDSpecialite    string `json:"id_specialite" binding:"required,uuid"`
	IDDiplome       string `json:"id_diplome" binding:"required,uuid"`
	IDModeFormation string `json:"id_mode_formation" binding:"required,uuid"`
	DateDebut       string `json:"date_debut" binding:"required"`
	DateFin         string `json:"date_fin" binding:"required"`
}

// OffreResponse représentation API d'une offre
type OffreResponse struct {
	ID              string `json:"id"`
	IDSpecialite    string `json:"id_specialite"`
	IDEtabFormation string `json:"id_etab_formation"`
	IDDiplome       string `json:"id_diplome"`
	IDModeFormation string `json:"id_mode_formation"`
	DateDebut       string `json:"date_debut"`
	DateFin         string `json:"date_fin"`
	Statut          string `json:"statut"`
	CreatedAt       string `json:"created_at"`
}
