package queries

// Colonnes communes aux lectures d'offres
const offreColumns = `
	id,
	id_specialite,
	id_etab_formation,
	id_diplome,
	id_mode_formation,
	date_debut,
	date_fin,
	statut,
	created_at
`

// OffreQueries regroupe toutes les requêtes SQL du module offre
var OffreQueries = struct {
	Create       string
	Close        string
	ListForEtab  string
	ListOuvertes string
}{
	/**
	 * Publie une offre ouverte aux inscriptions
	 * Paramètres: $1=id_specialite, $2=id_etab_formation, $3=id_diplome,
	 *             $4=id_mode_formation, $5=date_debut, $6=date_fin
	 */
	Create: `
		INSERT INTO offre (id_specialite, id_etab_formation, id_diplome, id_mode_formation, date_debut, date_fin, statut)
		VALUES ($1, $2, $3, $4, $5, $6, 'ouverte')
		RETURNING id, statut, created_at
	`,

	/**
	 * Clôture une offre de l'établissement propriétaire
	 * Paramètres: $1=offre_id, $2=etab_formation_id
	 */
	Close: `
		UPDATE offre
		SET statut = 'cloturee'
		WHERE id = $1 AND id_etab_formation = $2 AND statut = 'ouverte'
	`,

	/**
	 * Offres de l'établissement, tout statut
	 * Paramètres: $1 = etab_formation_id
	 */
	ListForEtab: `
		SELECT ` + offreColumns + `
		FROM offre
		WHERE id_etab_formation = $1
		ORDER BY created_at DESC
	`,

	/**
	 * Offres ouvertes aux inscriptions (vue stagiaire)
	 */
	ListOuvertes: `
		SELECT ` + offreColumns + `
		FROM offre
		WHERE statut = 'ouverte'
		ORDER BY created_at DESC
	`,
}
