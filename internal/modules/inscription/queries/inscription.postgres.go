package queries

// Colonnes communes aux lectures d'inscriptions
const inscriptionColumns = `
	i.id,
	i.id_stagiaire,
	i.id_offre,
	i.statut,
	i.observation,
	i.date_decision,
	i.created_at
`

// InscriptionQueries regroupe toutes les requêtes SQL du module inscription
var InscriptionQueries = struct {
	GetOffreStatut   string
	ExistsForOffre   string
	Create           string
	GetForDecision   string
	ApplyDecision    string
	Cancel           string
	ListForOffre     string
	ListForStagiaire string
}{
	/**
	 * Statut d'une offre et établissement propriétaire
	 * Paramètres: $1 = offre_id
	 */
	GetOffreStatut: `
		SELECT statut, id_etab_formation
		FROM offre
		WHERE id = $1
	`,

	/**
	 * Contrôle rapide avant insertion, la contrainte UNIQUE
	 * (id_stagiaire, id_offre) arbitre les courses
	 * Paramètres: $1 = stagiaire_id, $2 = offre_id
	 */
	ExistsForOffre: `
		SELECT 1 FROM inscription WHERE id_stagiaire = $1 AND id_offre = $2
	`,

	/**
	 * Crée une inscription en attente de décision
	 * Paramètres: $1 = stagiaire_id, $2 = offre_id
	 */
	Create: `
		INSERT INTO inscription (id_stagiaire, id_offre, statut)
		VALUES ($1, $2, 'en_attente')
		RETURNING id, statut, created_at
	`,

	/**
	 * Lit une inscription pour décision : la jointure vers l'offre porte le
	 * contrôle de propriété de l'établissement. Hors périmètre = introuvable.
	 * Paramètres: $1 = inscription_id, $2 = etab_formation_id
	 */
	GetForDecision: `
		SELECT i.statut
		FROM inscription i
		INNER JOIN offre o ON o.id = i.id_offre
		WHERE i.id = $1 AND o.id_etab_formation = $2
	`,

	/**
	 * Applique la décision de l'établissement avec horodatage
	 * Paramètres: $1=inscription_id, $2=statut, $3=observation
	 */
	ApplyDecision: `
		UPDATE inscription
		SET
			statut = $2,
			observation = CASE WHEN $3 <> '' THEN $3 ELSE observation END,
			date_decision = NOW()
		WHERE id = $1
	`,

	/**
	 * Annulation par le stagiaire, uniquement tant que la demande est
	 * en attente
	 * Paramètres: $1 = inscription_id, $2 = stagiaire_id
	 */
	Cancel: `
		UPDATE inscription
		SET statut = 'annulee'
		WHERE id = $1 AND id_stagiaire = $2 AND statut = 'en_attente'
	`,

	/**
	 * Inscriptions d'une offre, sous contrôle de propriété de l'établissement
	 * Paramètres: $1 = offre_id, $2 = etab_formation_id
	 */
	ListForOffre: `
		SELECT ` + inscriptionColumns + `
		FROM inscription i
		INNER JOIN offre o ON o.id = i.id_offre
		WHERE i.id_offre = $1 AND o.id_etab_formation = $2
		ORDER BY i.created_at DESC
	`,

	/**
	 * Inscriptions du stagiaire
	 * Paramètres: $1 = stagiaire_id
	 */
	ListForStagiaire: `
		SELECT ` + inscriptionColumns + `
		FROM inscription i
		WHERE i.id_stagiaire = $1
		ORDER BY i.created_at DESC
	`,
}
