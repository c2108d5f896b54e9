package queries

// Colonnes communes aux listes de cours, avec total fenêtré pour la pagination
const coursListColumns = `
	c.id,
	c.code,
	c.titre_fr,
	c.titre_ar,
	c.id_module,
	c.id_enseignant,
	c.statut,
	c.fichierpdf,
	c.observation,
	c.created_at,
	c.updated_at,
	COUNT(*) OVER() AS total_count
`

// Prédicat de recherche insensible à la casse sur titres et code.
// Le paramètre vide désactive le filtre.
const coursSearchPredicate = `
	($1 = ''
		OR c.titre_fr ILIKE '%' || $1 || '%'
		OR c.titre_ar ILIKE '%' || $1 || '%'
		OR c.code ILIKE '%' || $1 || '%')
`

// CoursQueries regroupe toutes les requêtes SQL du module cours
var CoursQueries = struct {
	Create           string
	GetOwned         string
	Update           string
	Delete           string
	Export           string
	GetForReview     string
	ApplyReview      string
	ListForEtab      string
	ListForStagiaire string
	ListForRegionale string
	ListAll          string
}{
	/**
	 * Crée un cours en attente de validation
	 * Paramètres: $1=code, $2=titre_fr, $3=titre_ar, $4=id_module,
	 *             $5=id_enseignant, $6=fichierpdf (nullable)
	 */
	Create: `
		INSERT INTO cours (code, titre_fr, titre_ar, id_module, id_enseignant, statut, fichierpdf)
		VALUES ($1, $2, $3, $4, $5, 'في_الانتظار', $6)
		RETURNING id, statut, created_at, updated_at
	`,

	/**
	 * Lit un cours sous prédicat de propriété : aucune ligne signifie
	 * inexistant OU appartenant à un autre enseignant (pas de fuite)
	 * Paramètres: $1=cours_id, $2=enseignant_id
	 */
	GetOwned: `
		SELECT statut, fichierpdf, id_module
		FROM cours
		WHERE id = $1 AND id_enseignant = $2
	`,

	/**
	 * Mise à jour partielle sous prédicat de propriété.
	 * Les paramètres NULL conservent la valeur existante.
	 * Paramètres: $1=cours_id, $2=enseignant_id, $3=code, $4=titre_fr,
	 *             $5=titre_ar, $6=id_module, $7=fichierpdf
	 */
	Update: `
		UPDATE cours
		SET
			code = COALESCE($3, code),
			titre_fr = COALESCE($4, titre_fr),
			titre_ar = COALESCE($5, titre_ar),
			id_module = COALESCE($6, id_module),
			fichierpdf = COALESCE($7, fichierpdf),
			updated_at = NOW()
		WHERE id = $1 AND id_enseignant = $2
	`,

	/**
	 * Suppression sous prédicat de propriété
	 * Paramètres: $1=cours_id, $2=enseignant_id
	 */
	Delete: `
		DELETE FROM cours
		WHERE id = $1 AND id_enseignant = $2
	`,

	/**
	 * Ré-export : retour en attente depuis un état terminal,
	 * l'observation de la revue précédente est conservée
	 * Paramètres: $1=cours_id, $2=enseignant_id
	 */
	Export: `
		UPDATE cours
		SET statut = 'في_الانتظار', updated_at = NOW()
		WHERE id = $1 AND id_enseignant = $2
			AND statut IN ('مقبول', 'مرفوض')
	`,

	/**
	 * Lit un cours pour revue régionale : la jointure vers l'établissement
	 * de l'enseignant porte le contrôle de tutelle. Hors tutelle = aucune
	 * ligne, donc introuvable.
	 * Paramètres: $1=cours_id, $2=etab_formation_ids (tutelle régionale)
	 */
	GetForReview: `
		SELECT c.statut, e.compte_id
		FROM cours c
		INNER JOIN enseignant e ON e.id = c.id_enseignant
		WHERE c.id = $1 AND e.id_etab_formation = ANY($2::uuid[])
	`,

	/**
	 * Applique une décision de revue. L'observation vide conserve l'existante.
	 * Paramètres: $1=cours_id, $2=statut, $3=observation
	 */
	ApplyReview: `
		UPDATE cours
		SET
			statut = $2,
			observation = CASE WHEN $3 <> '' THEN $3 ELSE observation END,
			updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Cours approuvés des enseignants d'un établissement de formation
	 * Paramètres: $1=recherche, $2=etab_formation_id, $3=limit, $4=offset
	 */
	ListForEtab: `
		SELECT ` + coursListColumns + `
		FROM cours c
		INNER JOIN enseignant e ON e.id = c.id_enseignant
		WHERE e.id_etab_formation = $2
			AND c.statut = 'مقبول'
			AND ` + coursSearchPredicate + `
		ORDER BY c.created_at DESC
		LIMIT $3 OFFSET $4
	`,

	/**
	 * Cours approuvés visibles par un stagiaire : spécialité du module dans
	 * ses inscriptions acceptées ET enseignant dans un de ses établissements
	 * Paramètres: $1=recherche, $2=specialite_ids, $3=etab_formation_ids,
	 *             $4=limit, $5=offset
	 */
	ListForStagiaire: `
		SELECT ` + coursListColumns + `
		FROM cours c
		INNER JOIN enseignant e ON e.id = c.id_enseignant
		INNER JOIN module m ON m.id = c.id_module
		WHERE c.statut = 'مقبول'
			AND m.id_specialite = ANY($2::uuid[])
			AND e.id_etab_formation = ANY($3::uuid[])
			AND ` + coursSearchPredicate + `
		ORDER BY c.created_at DESC
		LIMIT $4 OFFSET $5
	`,

	/**
	 * Tous les cours de la tutelle régionale, tout statut, filtrables
	 * Paramètres: $1=recherche, $2=statut ('tous' désactive le filtre),
	 *             $3=etab_formation_ids, $4=limit, $5=offset
	 */
	ListForRegionale: `
		SELECT ` + coursListColumns + `
		FROM cours c
		INNER JOIN enseignant e ON e.id = c.id_enseignant
		WHERE e.id_etab_formation = ANY($3::uuid[])
			AND ($2 = 'tous' OR c.statut = $2)
			AND ` + coursSearchPredicate + `
		ORDER BY c.created_at DESC
		LIMIT $4 OFFSET $5
	`,

	/**
	 * Vue nationale sans restriction de périmètre
	 * Paramètres: $1=recherche, $2=statut, $3=limit, $4=offset
	 */
	ListAll: `
		SELECT ` + coursListColumns + `
		FROM cours c
		WHERE ($2 = 'tous' OR c.statut = $2)
			AND ` + coursSearchPredicate + `
		ORDER BY c.created_at DESC
		LIMIT $3 OFFSET $4
	`,
}
