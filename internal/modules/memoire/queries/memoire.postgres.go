package queries

// Colonnes communes aux lectures de mémoires
const memoireColumns = `
	m.id,
	m.titre_fr,
	m.titre_ar,
	m.id_stagiaire,
	m.id_enseignant,
	m.statut,
	m.fichierpdf,
	m.observation,
	m.created_at,
	m.updated_at
`

// MemoireQueries regroupe toutes les requêtes SQL du module memoire
var MemoireQueries = struct {
	ExistsForStagiaire      string
	EnseignantInEtab        string
	StagiaireEnrolledInEtab string
	Create                  string
	GetByStagiaire          string
	GetByID                 string
	UpdateContent           string
	ApplyDecision           string
	ListColleagues          string
	ListSupervised          string
	ListForEtab             string
}{
	/**
	 * Vérification rapide d'existence : un stagiaire n'a qu'un mémoire.
	 * La contrainte UNIQUE en base reste l'arbitre en cas de course.
	 * Paramètres: $1 = stagiaire_id
	 */
	ExistsForStagiaire: `
		SELECT 1 FROM memoire WHERE id_stagiaire = $1
	`,

	/**
	 * L'enseignant appartient-il à l'établissement donné ?
	 * Paramètres: $1 = enseignant_id, $2 = etab_formation_id
	 */
	EnseignantInEtab: `
		SELECT 1 FROM enseignant WHERE id = $1 AND id_etab_formation = $2
	`,

	/**
	 * Le stagiaire a-t-il une inscription acceptée dans une offre
	 * de l'établissement ?
	 * Paramètres: $1 = stagiaire_id, $2 = etab_formation_id
	 */
	StagiaireEnrolledInEtab: `
		SELECT 1
		FROM inscription i
		INNER JOIN offre o ON o.id = i.id_offre
		WHERE i.id_stagiaire = $1
			AND i.statut = 'acceptee'
			AND o.id_etab_formation = $2
	`,

	/**
	 * Crée le mémoire (contenu vide, statut initial soumis)
	 * Paramètres: $1 = stagiaire_id, $2 = enseignant_id
	 */
	Create: `
		INSERT INTO memoire (id_stagiaire, id_enseignant, statut)
		VALUES ($1, $2, 'soumis')
		RETURNING id, statut, created_at, updated_at
	`,

	/**
	 * Mémoire d'un stagiaire (unicité garantie par contrainte)
	 * Paramètres: $1 = stagiaire_id
	 */
	GetByStagiaire: `
		SELECT ` + memoireColumns + `
		FROM memoire m
		WHERE m.id_stagiaire = $1
	`,

	/**
	 * Mémoire par id, avec le compte du stagiaire pour les notifications
	 * Paramètres: $1 = memoire_id
	 */
	GetByID: `
		SELECT ` + memoireColumns + `,
			s.compte_id
		FROM memoire m
		INNER JOIN stagiaire s ON s.id = m.id_stagiaire
		WHERE m.id = $1
	`,

	/**
	 * Mise à jour partielle du contenu par le stagiaire.
	 * Les paramètres NULL conservent la valeur existante. La première
	 * contribution fait passer le mémoire en préparation dans la même
	 * requête, jamais de contenu mis à jour sans promotion du statut.
	 * Paramètres: $1=stagiaire_id, $2=titre_fr, $3=titre_ar, $4=fichierpdf
	 */
	UpdateContent: `
		UPDATE memoire
		SET
			titre_fr = COALESCE($2, titre_fr),
			titre_ar = COALESCE($3, titre_ar),
			fichierpdf = COALESCE($4, fichierpdf),
			statut = CASE WHEN statut = 'soumis' THEN 'en_preparation' ELSE statut END,
			updated_at = NOW()
		WHERE id_stagiaire = $1
	`,

	/**
	 * Applique la décision de l'encadrant.
	 * L'observation vide conserve l'existante.
	 * Paramètres: $1=memoire_id, $2=statut, $3=observation
	 */
	ApplyDecision: `
		UPDATE memoire
		SET
			statut = $2,
			observation = CASE WHEN $3 <> '' THEN $3 ELSE observation END,
			updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Mémoires acceptés des stagiaires co-inscrits (le stagiaire appelant
	 * est déjà exclu de la liste d'ids fournie)
	 * Paramètres: $1 = stagiaire_ids
	 */
	ListColleagues: `
		SELECT ` + memoireColumns + `
		FROM memoire m
		WHERE m.statut = 'accepte'
			AND m.id_stagiaire = ANY($1::uuid[])
		ORDER BY m.updated_at DESC
	`,

	/**
	 * Mémoires encadrés par un enseignant
	 * Paramètres: $1 = enseignant_id
	 */
	ListSupervised: `
		SELECT ` + memoireColumns + `
		FROM memoire m
		WHERE m.id_enseignant = $1
		ORDER BY m.updated_at DESC
	`,

	/**
	 * Mémoires encadrés au sein d'un établissement de formation
	 * Paramètres: $1 = etab_formation_id
	 */
	ListForEtab: `
		SELECT ` + memoireColumns + `
		FROM memoire m
		INNER JOIN enseignant e ON e.id = m.id_enseignant
		WHERE e.id_etab_formation = $1
		ORDER BY m.updated_at DESC
	`,
}
