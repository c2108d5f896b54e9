package queries

// CompteQueries regroupe toutes les requêtes SQL du module auth
var CompteQueries = struct {
	GetByIdentifiant string
	GetByID          string
}{
	/**
	 * Récupère un compte par identifiant de connexion
	 * Paramètres: $1 = identifiant
	 */
	GetByIdentifiant: `
		SELECT
			id,
			identifiant,
			password_hash,
			role
		FROM compte
		WHERE identifiant = $1
	`,

	/**
	 * Récupère un compte par ID
	 * Paramètres: $1 = compte_id
	 */
	GetByID: `
		SELECT
			id,
			identifiant,
			role
		FROM compte
		WHERE id = $1
	`,
}
