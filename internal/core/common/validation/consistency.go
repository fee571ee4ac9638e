package validation

import (
	"strings"

	errors "github.com/bomberosvinadelmar/portal-admin/internal"
	"github.com/bomberosvinadelmar/portal-admin/internal/roles"
)

// administrativeUnits are company units reserved for administrative
// offices.
var administrativeUnits = []string{"Comando", "Administración"}

// administrativeOffices are the roles that may only serve in an
// administrative unit.
var administrativeOffices = map[roles.Role]struct{}{
	roles.RoleAdministrador: {},
	roles.RoleDirector:      {},
	roles.RoleSubdirector:   {},
	roles.RoleSecretario:    {},
	roles.RoleTesorero:      {},
}

// ValidateRoleCompanyConsistency enforces the pairing rules between a
// company unit and a role: administrative offices belong to
// administrative units and numbered companies take operative roles.
// Either field being absent is valid here; the individual field
// validators handle emptiness.
func ValidateRoleCompanyConsistency(company string, role roles.Role) Result {
	company = strings.TrimSpace(company)
	if company == "" || role == "" {
		return valid()
	}

	isAdminUnit := false
	for _, unit := range administrativeUnits {
		if strings.EqualFold(company, unit) {
			isAdminUnit = true
			break
		}
	}

	_, isAdminOffice := administrativeOffices[role]

	if isAdminOffice && !isAdminUnit {
		return invalid(errors.ErrorTypeDomain, "El cargo "+role.String()+" solo puede asignarse a Comando o Administración")
	}
	if isAdminUnit && !isAdminOffice {
		return invalid(errors.ErrorTypeDomain, "La unidad "+company+" solo admite cargos administrativos")
	}

	return valid()
}
