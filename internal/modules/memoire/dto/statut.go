package dto

// Statuts canoniques d'un mémoire, tels que stockés et exposés par l'API
const (
	MemoireSoumis        = "soumis"
	MemoireEnPreparation = "en_preparation"
	MemoireEnAttente     = "en_attente"
	MemoireAccepte       = "accepte"
	MemoireRefuse        = "refuse"
	MemoireSoutenu       = "soutenu"
)

// statutAliases mappe les graphies historiques (jetons arabes et variantes)
// vers les jetons canoniques. Les jetons canoniques se mappent sur eux-mêmes.
var statutAliases = map[string]string{
	MemoireSoumis:        MemoireSoumis,
	MemoireEnPreparation: MemoireEnPreparation,
	MemoireEnAttente:     MemoireEnAttente,
	MemoireAccepte:       MemoireAccepte,
	MemoireRefuse:        MemoireRefuse,
	MemoireSoutenu:       MemoireSoutenu,

	// Graphies historiques
	"مقدم":  MemoireSoumis,
	"مقبول": MemoireAccepte,
	"مرفوض": MemoireRefuse,
}

// CanonicalStatut canonicalise un jeton de statut mémoire.
// Retourne false si le jeton est inconnu sous toutes ses graphies.
func CanonicalStatut(s string) (string, bool) {
	canonical, ok := statutAliases[s]
	return canonical, ok
}

// IsStatutTerminalMemoire indique si le statut interdit toute modification
// de contenu par le stagiaire
func IsStatutTerminalMemoire(s string) bool {
	return s == MemoireAccepte || s == MemoireRefuse
}

// IsDecisionMemoire indique si le jeton canonique est une décision
// d'encadrant admissible
func IsDecisionMemoire(s string) bool {
	return s == MemoireAccepte || s == MemoireRefuse
}
