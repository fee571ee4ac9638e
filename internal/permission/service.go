package permission

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	internal "github.com/bomberosvinadelmar/portal-admin/internal"
	"github.com/bomberosvinadelmar/portal-admin/internal/roles"
	"github.com/bomberosvinadelmar/portal-admin/internal/storage"
)

// Service answers module-access queries and applies administrator
// edits to the permission table. The whole table is persisted on
// every successful mutation and reloaded on start; a missing or
// unreadable stored table falls back to the hard-coded defaults.
type Service struct {
	mu      sync.RWMutex
	table   Table
	storage storage.Store
	logger  *slog.Logger
}

func NewService(ctx context.Context, st storage.Store, logger *slog.Logger) *Service {
	s := &Service{
		storage: st,
		logger:  logger,
	}
	s.table = s.loadOrSeed(ctx)
	return s
}

func (s *Service) loadOrSeed(ctx context.Context) Table {
	raw, err := s.storage.Get(ctx, storage.KeyPermissions)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("permission table load failed, seeding defaults", "error", err)
		}
		return s.seedDefaults(ctx)
	}

	var stored map[string][]string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logger.Warn("corrupt permission table discarded, seeding defaults", "error", err)
		return s.seedDefaults(ctx)
	}

	table := make(Table, len(stored))
	for roleName, moduleNames := range stored {
		modules := make([]roles.Module, 0, len(moduleNames))
		for _, m := range moduleNames {
			modules = append(modules, roles.Module(m))
		}
		table[roles.Role(roleName)] = normalizeModules(modules)
	}

	// The table must cover every known role; fill gaps with defaults.
	for _, role := range roles.All() {
		if _, ok := table[role]; !ok {
			table[role] = DefaultModules(role)
		}
	}

	return table
}

func (s *Service) seedDefaults(ctx context.Context) Table {
	table := DefaultTable()
	if err := s.persist(ctx, table); err != nil {
		s.logger.Error("failed to persist seeded permission table", "error", err)
	}
	return table
}

func (s *Service) persist(ctx context.Context, table Table) error {
	serial := make(map[string][]string, len(table))
	for role, modules := range table {
		names := make([]string, len(modules))
		for i, m := range modules {
			names[i] = m.String()
		}
		serial[role.String()] = names
	}

	data, err := json.Marshal(serial)
	if err != nil {
		return err
	}
	return s.storage.Set(ctx, storage.KeyPermissions, string(data))
}

// AllowedModules returns the module set for a role. Roles missing
// from the table get the category default; the result is always a
// copy.
func (s *Service) AllowedModules(role roles.Role) []roles.Module {
	s.mu.RLock()
	modules, ok := s.table[role]
	s.mu.RUnlock()

	if !ok {
		return DefaultModules(role)
	}

	out := make([]roles.Module, len(modules))
	copy(out, modules)
	return out
}

// CanAccess reports whether a role may view a module. Two hard
// overrides apply after the table lookup regardless of stored
// configuration: "permisos" is granted only to Administrador, and
// "mi-perfil" is granted to every role.
func (s *Service) CanAccess(role roles.Role, module roles.Module) bool {
	if module == roles.ModulePermisos {
		return role == roles.RoleAdministrador
	}
	if module == roles.ModuleMiPerfil {
		return true
	}
	return containsModule(s.AllowedModules(role), module)
}

// UpdateRolePermissions replaces the module set of targetRole. Only
// an Administrador caller may do so, and no update may drop
// "mi-perfil" or hand "permisos" to another role. Validation happens
// before any mutation; on storage failure nothing is applied.
func (s *Service) UpdateRolePermissions(ctx context.Context, targetRole roles.Role, modules []roles.Module, callerRole roles.Role) error {
	if callerRole != roles.RoleAdministrador {
		s.logger.Warn("permission update denied",
			"caller_role", callerRole,
			"target_role", targetRole)
		return internal.NewAuthorizationError("Solo el Administrador puede modificar permisos")
	}

	if !roles.IsKnown(targetRole) {
		return internal.NewDomainError("El cargo indicado no existe", internal.ErrCodeUnknownRole)
	}

	for _, m := range modules {
		if !roles.IsKnownModule(m) {
			return internal.NewDomainError("El módulo "+m.String()+" no existe", internal.ErrCodeModuleNotAllowed)
		}
	}

	normalized := normalizeModules(modules)

	if !containsModule(normalized, roles.ModuleMiPerfil) {
		return internal.NewPolicyViolationError("Todo cargo debe conservar acceso a mi-perfil")
	}
	if containsModule(normalized, roles.ModulePermisos) && targetRole != roles.RoleAdministrador {
		return internal.NewPolicyViolationError("El módulo permisos está reservado al Administrador")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(Table, len(s.table))
	for role, mods := range s.table {
		next[role] = mods
	}
	next[targetRole] = normalized

	if err := s.persist(ctx, next); err != nil {
		s.logger.Error("permission table persist failed, update discarded",
			"target_role", targetRole, "error", err)
		return internal.NewStorageError("No se pudo guardar la tabla de permisos", err)
	}

	s.table = next
	s.logger.Info("permission table updated",
		"target_role", targetRole,
		"modules", len(normalized))
	return nil
}

// ResetToDefaults restores the hard-coded mapping for every role,
// discarding administrator customizations. Destructive: the prior
// table is not retained (product decision pending on undoable
// resets).
func (s *Service) ResetToDefaults(ctx context.Context, callerRole roles.Role) error {
	if callerRole != roles.RoleAdministrador {
		return internal.NewAuthorizationError("Solo el Administrador puede restablecer permisos")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	defaults := DefaultTable()
	if err := s.persist(ctx, defaults); err != nil {
		return internal.NewStorageError("No se pudo restablecer la tabla de permisos", err)
	}

	s.table = defaults
	s.logger.Info("permission table reset to defaults")
	return nil
}

// IsCustomized reports whether a role's stored set differs from its
// category default.
func (s *Service) IsCustomized(role roles.Role) bool {
	current := s.AllowedModules(role)
	def := DefaultModules(role)

	if len(current) != len(def) {
		return true
	}
	for i := range current {
		if current[i] != def[i] {
			return true
		}
	}
	return false
}

// TableSnapshot returns a copy of the full table for display.
func (s *Service) TableSnapshot() Table {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(Table, len(s.table))
	for role, modules := range s.table {
		copied := make([]roles.Module, len(modules))
		copy(copied, modules)
		out[role] = copied
	}
	return out
}
