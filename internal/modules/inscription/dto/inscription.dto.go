package dto

// Statuts d'une inscription
const (
	InscriptionEnAttente = "en_attente"
	InscriptionAcceptee  = "acceptee"
	InscriptionRefusee   = "refusee"
	InscriptionAnnulee   = "annulee"
)

// IsDecisionInscription indique si le statut est une décision d'établissement
func IsDecisionInscription(s string) bool {
	return s == InscriptionAcceptee || s == InscriptionRefusee
}

// CreateInscriptionRequest demande d'inscription d'un stagiaire à une offre
type CreateInscriptionRequest struct {
	IDOffre string `json:"id_offre" binding:"required,uuid"`
}

// DecideInscriptionRequest décision de l'établissement sur une inscription
type DecideInscriptionRequest struct {
	Decision    string `json:"decision" binding:"required"`
	Observation string `json:"observation" binding:"max=1000"`
}

// InscriptionResponse représentation API d'une inscription
type InscriptionResponse struct {
	ID           string  `json:"id"`
	IDStagiaire  string  `json:"id_stagiaire"`
	IDOffre      string  `json:"id_offre"`
	Statut       string  `json:"statut"`
	Observation  *string `json:"observation"`
	DateDecision *string `json:"date_decision"`
	CreatedAt    string  `json:"created_at"`
}
