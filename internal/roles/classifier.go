package roles

// Category partitions roles for the purpose of default permissions.
// A role belongs to at most one explicit category; anything else is
// Unclassified.
type Category string

const (
	CategoryAdministrative     Category = "administrative"
	CategoryDisciplineCouncil  Category = "discipline_council"
	CategoryRegularFirefighter Category = "regular_firefighter"
	CategoryUnclassified       Category = "unclassified"
)

var administrativeRoles = map[Role]struct{}{
	RoleAdministrador:   {},
	RoleDirector:        {},
	RoleSubdirector:     {},
	RoleCapitan:         {},
	RoleTenientePrimero: {},
	RoleTenienteSegundo: {},
	RoleTenienteTercero: {},
	RoleTesorero:        {},
	RoleSecretario:      {},
	RoleAyudante:        {},
}

var disciplineCouncilRoles = map[Role]struct{}{
	RoleConsejero1: {},
	RoleConsejero2: {},
	RoleConsejero3: {},
}

var regularFirefighterRoles = map[Role]struct{}{
	RoleBomberoActivo:    {},
	RoleBomberoHonorario: {},
}

// Classify returns the category of a role. Pure set membership,
// evaluated fresh on every call; extending a category only requires
// editing its set above.
func Classify(r Role) Category {
	if _, ok := administrativeRoles[r]; ok {
		return CategoryAdministrative
	}
	if _, ok := disciplineCouncilRoles[r]; ok {
		return CategoryDisciplineCouncil
	}
	if _, ok := regularFirefighterRoles[r]; ok {
		return CategoryRegularFirefighter
	}
	return CategoryUnclassified
}

// IsAdministrative reports whether r holds an administrative office.
func IsAdministrative(r Role) bool {
	return Classify(r) == CategoryAdministrative
}

// IsDisciplineCouncil reports whether r sits on the discipline council.
func IsDisciplineCouncil(r Role) bool {
	return Classify(r) == CategoryDisciplineCouncil
}
