package domain

import "fmt"

// Role énumération fermée des rôles de comptes.
// Toute comparaison de rôle passe par ce type, jamais par des chaînes libres.
type Role string

const (
	RoleStagiaire     Role = "stagiaire"
	RoleEnseignant    Role = "enseignant"
	RoleEtabFormation Role = "etablissement_formation"
	RoleEtabRegionale Role = "etablissement_regionale"
	RoleEtabNationale Role = "etablissement_nationale"
)

// ParseRole valide une chaîne de rôle venant de la base ou d'une session
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStagiaire, RoleEnseignant, RoleEtabFormation, RoleEtabRegionale, RoleEtabNationale:
		return Role(s), nil
	}
	return "", fmt.Errorf("rôle inconnu: %q", s)
}

// IsValid indique si le rôle fait partie de l'énumération
func (r Role) IsValid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Principal identité authentifiée injectée dans chaque opération workflow.
// L'authentification elle-même (token, blacklist) est résolue en amont par
// le middleware de session.
type Principal struct {
	CompteID string `json:"compte_id"`
	Role     Role   `json:"role"`
}
