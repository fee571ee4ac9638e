// Package roles is the single source of truth for the fire-company
// hierarchy: the Role enumeration, the Module enumeration and the
// category partition used to derive default permissions.
package roles

// Role is a named position in the company hierarchy. The set is fixed
// at build time; adding a role means extending this enumeration and
// the default permission table.
type Role string

const (
	RoleAdministrador    Role = "Administrador"
	RoleDirector         Role = "Director"
	RoleSubdirector      Role = "Subdirector"
	RoleCapitan          Role = "Capitán"
	RoleTenientePrimero  Role = "Teniente Primero"
	RoleTenienteSegundo  Role = "Teniente Segundo"
	RoleTenienteTercero  Role = "Teniente Tercero"
	RoleTesorero         Role = "Tesorero"
	RoleSecretario       Role = "Secretario"
	RoleAyudante         Role = "Ayudante"
	RoleConsejero1       Role = "Consejero de Disciplina 1"
	RoleConsejero2       Role = "Consejero de Disciplina 2"
	RoleConsejero3       Role = "Consejero de Disciplina 3"
	RoleBomberoActivo    Role = "Bombero Activo"
	RoleBomberoHonorario Role = "Bombero Honorario"
)

// All lists every known role. Order matches the company hierarchy and
// is the order administrative screens present roles in.
func All() []Role {
	return []Role{
		RoleAdministrador,
		RoleDirector,
		RoleSubdirector,
		RoleCapitan,
		RoleTenientePrimero,
		RoleTenienteSegundo,
		RoleTenienteTercero,
		RoleTesorero,
		RoleSecretario,
		RoleAyudante,
		RoleConsejero1,
		RoleConsejero2,
		RoleConsejero3,
		RoleBomberoActivo,
		RoleBomberoHonorario,
	}
}

// IsKnown reports whether r is part of the enumeration.
func IsKnown(r Role) bool {
	for _, known := range All() {
		if known == r {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }

// Module identifies a navigable application section gated by role
// permission.
type Module string

const (
	ModuleDashboard      Module = "dashboard"
	ModulePersonal       Module = "personal"
	ModuleCitaciones     Module = "citaciones"
	ModuleVideos         Module = "videos"
	ModuleMaquinas       Module = "maquinas"
	ModuleReportes       Module = "reportes"
	ModuleMiPerfil       Module = "mi-perfil"
	ModuleAdministracion Module = "administracion"
	ModulePermisos       Module = "permisos"
)

// AllModules lists every application module.
func AllModules() []Module {
	return []Module{
		ModuleDashboard,
		ModulePersonal,
		ModuleCitaciones,
		ModuleVideos,
		ModuleMaquinas,
		ModuleReportes,
		ModuleMiPerfil,
		ModuleAdministracion,
		ModulePermisos,
	}
}

// IsKnownModule reports whether m is part of the enumeration.
func IsKnownModule(m Module) bool {
	for _, known := range AllModules() {
		if known == m {
			return true
		}
	}
	return false
}

func (m Module) String() string { return string(m) }
