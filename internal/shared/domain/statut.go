package domain

// Statuts de validation des cours et programmes.
// Les valeurs sont les jetons historiques stockés en base — ne pas traduire.
const (
	StatutEnAttente = "في_الانتظار"
	StatutAccepte   = "مقبول"
	StatutRefuse    = "مرفوض"
)

// StatutFiltreTous valeur de filtre neutre pour les listes
const StatutFiltreTous = "tous"

// IsStatutValidation indique si s est un jeton de statut cours/programme valide
func IsStatutValidation(s string) bool {
	return s == StatutEnAttente || s == StatutAccepte || s == StatutRefuse
}

// IsStatutTerminal indique si s est un état terminal (accepté ou refusé)
func IsStatutTerminal(s string) bool {
	return s == StatutAccepte || s == StatutRefuse
}

// IsStatutDecision indique si s est une décision de revue admissible
// (on ne peut pas "décider" un retour en attente)
func IsStatutDecision(s string) bool {
	return s == StatutAccepte || s == StatutRefuse
}
