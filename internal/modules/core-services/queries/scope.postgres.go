package queries

// ScopeQueries regroupe les requêtes de résolution de périmètre par rôle
var ScopeQueries = struct {
	GetEnseignantScope         string
	GetStagiaireScope          string
	GetEtabFormationScope      string
	GetEtabRegionaleScope      string
	GetEtabNationaleScope      string
	ListEtabFormationUnderEtab string
}{
	/**
	 * Profil enseignant + rattachement organisationnel complet
	 * (établissement de formation puis direction régionale)
	 * Paramètres: $1 = compte_id
	 */
	GetEnseignantScope: `
		SELECT
			e.id,
			e.id_etab_formation,
			ef.id_etab_regionale
		FROM enseignant e
		LEFT JOIN etablissement_formation ef ON ef.id = e.id_etab_formation
		WHERE e.compte_id = $1
	`,

	/**
	 * Profil stagiaire
	 * Paramètres: $1 = compte_id
	 */
	GetStagiaireScope: `
		SELECT id
		FROM stagiaire
		WHERE compte_id = $1
	`,

	/**
	 * Profil établissement de formation + direction régionale de tutelle
	 * Paramètres: $1 = compte_id
	 */
	GetEtabFormationScope: `
		SELECT
			id,
			id_etab_regionale
		FROM etablissement_formation
		WHERE compte_id = $1
	`,

	/**
	 * Profil direction régionale
	 * Paramètres: $1 = compte_id
	 */
	GetEtabRegionaleScope: `
		SELECT id
		FROM etablissement_regionale
		WHERE compte_id = $1
	`,

	/**
	 * Profil direction nationale
	 * Paramètres: $1 = compte_id
	 */
	GetEtabNationaleScope: `
		SELECT id
		FROM etablissement_nationale
		WHERE compte_id = $1
	`,

	/**
	 * Établissements de formation sous tutelle d'une direction régionale
	 * Paramètres: $1 = etab_regionale_id
	 */
	ListEtabFormationUnderEtab: `
		SELECT id
		FROM etablissement_formation
		WHERE id_etab_regionale = $1
		ORDER BY id
	`,
}
