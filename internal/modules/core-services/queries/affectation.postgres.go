package queries

// AffectationQueries regroupe les requêtes de résolution des affectations
// de modules et des inscriptions acceptées
var AffectationQueries = struct {
	ModulesTaughtBy      string
	ModulesTaughtByAnnee string
	SpecialtiesOf        string
	EstablishmentsOf     string
	ColleaguesOf         string
}{
	/**
	 * Modules affectés à un enseignant, toutes années confondues
	 * Paramètres: $1 = enseignant_id
	 */
	ModulesTaughtBy: `
		SELECT DISTINCT id_module
		FROM ens_module
		WHERE id_enseignant = $1
	`,

	/**
	 * Modules affectés à un enseignant pour une année scolaire
	 * Paramètres: $1 = enseignant_id, $2 = annee_scolaire
	 */
	ModulesTaughtByAnnee: `
		SELECT DISTINCT id_module
		FROM ens_module
		WHERE id_enseignant = $1 AND annee_scolaire = $2
	`,

	/**
	 * Spécialités des offres auxquelles le stagiaire est inscrit
	 * (inscriptions acceptées uniquement)
	 * Paramètres: $1 = stagiaire_id
	 */
	SpecialtiesOf: `
		SELECT DISTINCT o.id_specialite
		FROM inscription i
		INNER JOIN offre o ON o.id = i.id_offre
		WHERE i.id_stagiaire = $1 AND i.statut = 'acceptee'
	`,

	/**
	 * Établissements de formation des offres du stagiaire
	 * (inscriptions acceptées uniquement)
	 * Paramètres: $1 = stagiaire_id
	 */
	EstablishmentsOf: `
		SELECT DISTINCT o.id_etab_formation
		FROM inscription i
		INNER JOIN offre o ON o.id = i.id_offre
		WHERE i.id_stagiaire = $1 AND i.statut = 'acceptee'
	`,

	/**
	 * Stagiaires partageant au moins une offre avec le stagiaire donné,
	 * dédupliqués, lui-même exclu (inscriptions acceptées des deux côtés)
	 * Paramètres: $1 = stagiaire_id
	 */
	ColleaguesOf: `
		SELECT DISTINCT i2.id_stagiaire
		FROM inscription i1
		INNER JOIN inscription i2 ON i2.id_offre = i1.id_offre
		WHERE i1.id_stagiaire = $1
			AND i1.statut = 'acceptee'
			AND i2.statut = 'acceptee'
			AND i2.id_stagiaire <> $1
	`,
}
