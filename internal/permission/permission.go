// Package permission implements the role→module authorization table:
// which application sections each role may view, who may change that
// mapping, and the invariants no change may break.
package permission

import (
	"github.com/bomberosvinadelmar/portal-admin/internal/roles"
)

// Table maps each role to the modules it may view. The serialized
// form (role name → module id array) is what lands under the
// permissions storage key.
type Table map[roles.Role][]roles.Module

// DefaultModules derives the module set a role gets when the table
// has no entry for it, by category.
func DefaultModules(role roles.Role) []roles.Module {
	if role == roles.RoleAdministrador {
		return []roles.Module{
			roles.ModuleDashboard,
			roles.ModulePersonal,
			roles.ModuleCitaciones,
			roles.ModuleVideos,
			roles.ModuleMaquinas,
			roles.ModuleReportes,
			roles.ModuleMiPerfil,
			roles.ModuleAdministracion,
			roles.ModulePermisos,
		}
	}

	switch roles.Classify(role) {
	case roles.CategoryAdministrative:
		return []roles.Module{
			roles.ModuleDashboard,
			roles.ModulePersonal,
			roles.ModuleCitaciones,
			roles.ModuleVideos,
			roles.ModuleMaquinas,
			roles.ModuleReportes,
			roles.ModuleMiPerfil,
			roles.ModuleAdministracion,
		}
	case roles.CategoryDisciplineCouncil:
		return []roles.Module{
			roles.ModuleDashboard,
			roles.ModulePersonal,
			roles.ModuleCitaciones,
			roles.ModuleVideos,
			roles.ModuleMiPerfil,
		}
	case roles.CategoryRegularFirefighter:
		return []roles.Module{
			roles.ModuleCitaciones,
			roles.ModuleVideos,
			roles.ModuleMiPerfil,
		}
	default:
		return []roles.Module{roles.ModuleMiPerfil}
	}
}

// DefaultTable builds the seed mapping covering every known role.
func DefaultTable() Table {
	table := make(Table, len(roles.All()))
	for _, role := range roles.All() {
		table[role] = DefaultModules(role)
	}
	return table
}

// normalizeModules dedupes and orders a module set canonically
// (declaration order of the Module enumeration) so that persisted
// tables serialize deterministically.
func normalizeModules(modules []roles.Module) []roles.Module {
	present := make(map[roles.Module]bool, len(modules))
	for _, m := range modules {
		present[m] = true
	}

	out := make([]roles.Module, 0, len(present))
	for _, m := range roles.AllModules() {
		if present[m] {
			out = append(out, m)
		}
	}
	return out
}

func containsModule(modules []roles.Module, target roles.Module) bool {
	for _, m := range modules {
		if m == target {
			return true
		}
	}
	return false
}
