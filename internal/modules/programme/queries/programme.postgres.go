package queries

// Colonnes communes aux listes de programmes, avec total fenêtré
const programmeListColumns = `
	p.id,
	p.code,
	p.titre_fr,
	p.titre_ar,
	p.id_module,
	p.id_etab_regionale,
	p.statut,
	p.fichierpdf,
	p.observation,
	p.created_at,
	p.updated_at,
	COUNT(*) OVER() AS total_count
`

// Prédicat de recherche insensible à la casse sur titres et code
const programmeSearchPredicate = `
	($1 = ''
		OR p.titre_fr ILIKE '%' || $1 || '%'
		OR p.titre_ar ILIKE '%' || $1 || '%'
		OR p.code ILIKE '%' || $1 || '%')
`

// ProgrammeQueries regroupe toutes les requêtes SQL du module programme
var ProgrammeQueries = struct {
	ModuleInBranches string
	Create           string
	GetOwned         string
	Delete           string
	GetForReview     string
	ApplyReview      string
	ListForTeacher   string
	ListForRegionale string
}{
	/**
	 * Le module est-il rattaché à une branche administrée par la
	 * direction régionale ? (module -> spécialité -> branche)
	 * Paramètres: $1 = module_id, $2 = etab_regionale_id
	 */
	ModuleInBranches: `
		SELECT 1
		FROM module m
		INNER JOIN specialite s ON s.id = m.id_specialite
		INNER JOIN branche b ON b.id = s.id_branche
		WHERE m.id = $1 AND b.id_etab_regionale = $2
	`,

	/**
	 * Crée un programme en attente de validation nationale
	 * Paramètres: $1=code, $2=titre_fr, $3=titre_ar, $4=id_module,
	 *             $5=id_etab_regionale, $6=fichierpdf (nullable)
	 */
	Create: `
		INSERT INTO programme (code, titre_fr, titre_ar, id_module, id_etab_regionale, statut, fichierpdf)
		VALUES ($1, $2, $3, $4, $5, 'في_الانتظار', $6)
		RETURNING id, statut, created_at, updated_at
	`,

	/**
	 * Lecture sous prédicat de propriété régionale
	 * Paramètres: $1=programme_id, $2=etab_regionale_id
	 */
	GetOwned: `
		SELECT statut, fichierpdf
		FROM programme
		WHERE id = $1 AND id_etab_regionale = $2
	`,

	/**
	 * Suppression sous prédicat de propriété régionale
	 * Paramètres: $1=programme_id, $2=etab_regionale_id
	 */
	Delete: `
		DELETE FROM programme
		WHERE id = $1 AND id_etab_regionale = $2
	`,

	/**
	 * Lecture pour revue nationale, avec le compte régional pour notification
	 * Paramètres: $1 = programme_id
	 */
	GetForReview: `
		SELECT p.statut, er.compte_id
		FROM programme p
		INNER JOIN etablissement_regionale er ON er.id = p.id_etab_regionale
		WHERE p.id = $1
	`,

	/**
	 * Applique une décision de revue. L'observation vide conserve l'existante.
	 * Paramètres: $1=programme_id, $2=statut, $3=observation
	 */
	ApplyReview: `
		UPDATE programme
		SET
			statut = $2,
			observation = CASE WHEN $3 <> '' THEN $3 ELSE observation END,
			updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Programmes approuvés des modules affectés à un enseignant
	 * Paramètres: $1=recherche, $2=module_ids, $3=limit, $4=offset
	 */
	ListForTeacher: `
		SELECT ` + programmeListColumns + `
		FROM programme p
		WHERE p.statut = 'مقبول'
			AND p.id_module = ANY($2::uuid[])
			AND ` + programmeSearchPredicate + `
		ORDER BY p.created_at DESC
		LIMIT $3 OFFSET $4
	`,

	/**
	 * Programmes d'une direction régionale, tout statut, filtrables
	 * Paramètres: $1=recherche, $2=statut ('tous' désactive le filtre),
	 *             $3=etab_regionale_id, $4=limit, $5=offset
	 */
	ListForRegionale: `
		SELECT ` + programmeListColumns + `
		FROM programme p
		WHERE p.id_etab_regionale = $3
			AND ($2 = 'tous' OR p.statut = $2)
			AND ` + programmeSearchPredicate + `
		ORDER BY p.created_at DESC
		LIMIT $4 OFFSET $5
	`,
}
