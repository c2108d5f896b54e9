package queries

// AffectationQueries regroupe toutes les requêtes SQL du module affectation
var AffectationQueries = struct {
	EnseignantInEtab   string
	ValidModulesInEtab string
	DeleteForAnnee     string
	Insert             string
	Remove             string
	ListForEnseignant  string
}{
	/**
	 * L'enseignant appartient-il à l'établissement demandeur ?
	 * Paramètres: $1 = enseignant_id, $2 = etab_formation_id
	 */
	EnseignantInEtab: `
		SELECT 1 FROM enseignant WHERE id = $1 AND id_etab_formation = $2
	`,

	/**
	 * Sous-ensemble des modules demandés dont la spécialité est couverte
	 * par une offre de l'établissement. Les ids absents du résultat sont
	 * les modules rejetés.
	 * Paramètres: $1 = etab_formation_id, $2 = module_ids
	 */
	ValidModulesInEtab: `
		SELECT DISTINCT m.id
		FROM module m
		INNER JOIN offre o ON o.id_specialite = m.id_specialite
		WHERE o.id_etab_formation = $1
			AND m.id = ANY($2::uuid[])
	`,

	/**
	 * Purge des affectations de l'année avant réinsertion (remplacement
	 * en bloc, toujours dans la même transaction que les insertions)
	 * Paramètres: $1 = enseignant_id, $2 = annee_scolaire
	 */
	DeleteForAnnee: `
		DELETE FROM ens_module
		WHERE id_enseignant = $1 AND annee_scolaire = $2
	`,

	/**
	 * Insère une affectation
	 * Paramètres: $1=enseignant_id, $2=module_id, $3=annee_scolaire, $4=semestre
	 */
	Insert: `
		INSERT INTO ens_module (id_enseignant, id_module, annee_scolaire, semestre)
		VALUES ($1, $2, $3, $4)
	`,

	/**
	 * Retire une affectation précise
	 * Paramètres: $1=enseignant_id, $2=module_id, $3=annee_scolaire
	 */
	Remove: `
		DELETE FROM ens_module
		WHERE id_enseignant = $1 AND id_module = $2 AND annee_scolaire = $3
	`,

	/**
	 * Affectations d'un enseignant, toutes années
	 * Paramètres: $1 = enseignant_id
	 */
	ListForEnseignant: `
		SELECT id, id_enseignant, id_module, annee_scolaire, semestre
		FROM ens_module
		WHERE id_enseignant = $1
		ORDER BY annee_scolaire DESC, id_module
	`,
}
