package permission

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	internal "github.com/bomberosvinadelmar/portal-admin/internal"
	"github.com/bomberosvinadelmar/portal-admin/internal/roles"
	"github.com/bomberosvinadelmar/portal-admin/internal/storage"
	"github.com/bomberosvinadelmar/portal-admin/internal/storage/memory"
)

func TestPermission(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Permission Suite")
}

var _ = ginkgo.Describe("Service", func() {
	var (
		mem *memory.Store
		svc *Service
		ctx context.Context
	)

	ginkgo.BeforeEach(func() {
		mem = memory.New()
		ctx = context.Background()
		svc = NewService(ctx, mem, slog.Default())
	})

	storedTable := func() map[string][]string {
		raw, err := mem.Get(ctx, storage.KeyPermissions)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		var table map[string][]string
		gomega.Expect(json.Unmarshal([]byte(raw), &table)).To(gomega.Succeed())
		return table
	}

	ginkgo.Describe("defaults", func() {
		ginkgo.It("should seed and persist the default table on first start", func() {
			table := storedTable()
			gomega.Expect(table).To(gomega.HaveLen(len(roles.All())))
			gomega.Expect(table[roles.RoleAdministrador.String()]).To(gomega.ContainElement(roles.ModulePermisos.String()))
		})

		ginkgo.It("should grant administrative roles everything except permisos", func() {
			modules := svc.AllowedModules(roles.RoleDirector)
			gomega.Expect(modules).ToNot(gomega.ContainElement(roles.ModulePermisos))
			gomega.Expect(modules).To(gomega.ContainElement(roles.ModuleAdministracion))
			gomega.Expect(modules).To(gomega.ContainElement(roles.ModuleMiPerfil))
		})

		ginkgo.It("should give discipline council roles the council set", func() {
			modules := svc.AllowedModules(roles.RoleConsejero2)
			gomega.Expect(modules).To(gomega.ConsistOf(
				roles.ModuleDashboard,
				roles.ModulePersonal,
				roles.ModuleCitaciones,
				roles.ModuleVideos,
				roles.ModuleMiPerfil,
			))
		})

		ginkgo.It("should give regular firefighters the minimal set", func() {
			modules := svc.AllowedModules(roles.RoleBomberoHonorario)
			gomega.Expect(modules).To(gomega.ConsistOf(
				roles.ModuleCitaciones,
				roles.ModuleVideos,
				roles.ModuleMiPerfil,
			))
		})

		ginkgo.It("should reload a stored table instead of reseeding", func() {
			err := svc.UpdateRolePermissions(ctx,
				roles.RoleBomberoActivo,
				[]roles.Module{roles.ModuleMiPerfil, roles.ModuleVideos},
				roles.RoleAdministrador)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			reloaded := NewService(ctx, mem, slog.Default())
			gomega.Expect(reloaded.AllowedModules(roles.RoleBomberoActivo)).To(gomega.ConsistOf(
				roles.ModuleVideos,
				roles.ModuleMiPerfil,
			))
		})

		ginkgo.It("should fall back to defaults when the stored table is corrupt", func() {
			gomega.Expect(mem.Set(ctx, storage.KeyPermissions, "{broken")).To(gomega.Succeed())

			recovered := NewService(ctx, mem, slog.Default())
			gomega.Expect(recovered.AllowedModules(roles.RoleAdministrador)).To(gomega.Equal(DefaultModules(roles.RoleAdministrador)))
		})
	})

	ginkgo.Describe("CanAccess", func() {
		ginkgo.It("should reserve permisos for Administrador even if stored otherwise", func() {
			gomega.Expect(svc.CanAccess(roles.RoleAdministrador, roles.ModulePermisos)).To(gomega.BeTrue())
			gomega.Expect(svc.CanAccess(roles.RoleDirector, roles.ModulePermisos)).To(gomega.BeFalse())
			gomega.Expect(svc.CanAccess(roles.RoleBomberoActivo, roles.ModulePermisos)).To(gomega.BeFalse())
		})

		ginkgo.It("should grant mi-perfil to every role including unknown ones", func() {
			for _, role := range roles.All() {
				gomega.Expect(svc.CanAccess(role, roles.ModuleMiPerfil)).To(gomega.BeTrue())
			}
			gomega.Expect(svc.CanAccess(roles.Role("Cargo Inventado"), roles.ModuleMiPerfil)).To(gomega.BeTrue())
		})

		ginkgo.It("should answer from the table for ordinary modules", func() {
			gomega.Expect(svc.CanAccess(roles.RoleBomberoActivo, roles.ModuleReportes)).To(gomega.BeFalse())
			gomega.Expect(svc.CanAccess(roles.RoleCapitan, roles.ModuleReportes)).To(gomega.BeTrue())
		})
	})

	ginkgo.Describe("UpdateRolePermissions", func() {
		ginkgo.It("should apply and persist an administrator's edit", func() {
			err := svc.UpdateRolePermissions(ctx,
				roles.RoleSecretario,
				[]roles.Module{roles.ModuleMiPerfil, roles.ModuleDashboard, roles.ModuleCitaciones},
				roles.RoleAdministrador)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(svc.AllowedModules(roles.RoleSecretario)).To(gomega.ConsistOf(
				roles.ModuleDashboard,
				roles.ModuleCitaciones,
				roles.ModuleMiPerfil,
			))
			gomega.Expect(storedTable()[roles.RoleSecretario.String()]).To(gomega.HaveLen(3))
			gomega.Expect(svc.IsCustomized(roles.RoleSecretario)).To(gomega.BeTrue())
		})

		ginkgo.It("should deduplicate and canonically order the module list", func() {
			err := svc.UpdateRolePermissions(ctx,
				roles.RoleAyudante,
				[]roles.Module{roles.ModuleVideos, roles.ModuleMiPerfil, roles.ModuleVideos, roles.ModuleDashboard},
				roles.RoleAdministrador)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(svc.AllowedModules(roles.RoleAyudante)).To(gomega.Equal([]roles.Module{
				roles.ModuleDashboard,
				roles.ModuleVideos,
				roles.ModuleMiPerfil,
			}))
		})

		ginkgo.It("should refuse callers other than Administrador and leave storage untouched", func() {
			before := mem.Snapshot()

			err := svc.UpdateRolePermissions(ctx,
				roles.RoleBomberoActivo,
				[]roles.Module{roles.ModuleMiPerfil, roles.ModuleReportes},
				roles.RoleDirector)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeAuthorization))
			gomega.Expect(mem.Snapshot()).To(gomega.Equal(before))
		})

		ginkgo.It("should reject an unknown role", func() {
			err := svc.UpdateRolePermissions(ctx,
				roles.Role("Comandante Galáctico"),
				[]roles.Module{roles.ModuleMiPerfil},
				roles.RoleAdministrador)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeUnknownRole))
		})

		ginkgo.It("should reject an unknown module before mutating anything", func() {
			before := mem.Snapshot()

			err := svc.UpdateRolePermissions(ctx,
				roles.RoleTesorero,
				[]roles.Module{roles.ModuleMiPerfil, roles.Module("contabilidad")},
				roles.RoleAdministrador)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeModuleNotAllowed))
			gomega.Expect(mem.Snapshot()).To(gomega.Equal(before))
		})

		ginkgo.It("should never let a role lose mi-perfil", func() {
			err := svc.UpdateRolePermissions(ctx,
				roles.RoleBomberoActivo,
				[]roles.Module{roles.ModuleVideos},
				roles.RoleAdministrador)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypePolicyViolation))
			gomega.Expect(svc.CanAccess(roles.RoleBomberoActivo, roles.ModuleMiPerfil)).To(gomega.BeTrue())
		})

		ginkgo.It("should never hand permisos to a non-administrator role", func() {
			before := mem.Snapshot()

			err := svc.UpdateRolePermissions(ctx,
				roles.RoleDirector,
				[]roles.Module{roles.ModuleMiPerfil, roles.ModulePermisos},
				roles.RoleAdministrador)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypePolicyViolation))
			gomega.Expect(mem.Snapshot()).To(gomega.Equal(before))
			gomega.Expect(svc.CanAccess(roles.RoleDirector, roles.ModulePermisos)).To(gomega.BeFalse())
		})

		ginkgo.It("should allow permisos in the Administrador's own set", func() {
			err := svc.UpdateRolePermissions(ctx,
				roles.RoleAdministrador,
				[]roles.Module{roles.ModuleMiPerfil, roles.ModulePermisos, roles.ModuleDashboard},
				roles.RoleAdministrador)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("ResetToDefaults", func() {
		ginkgo.It("should discard customizations for every role", func() {
			gomega.Expect(svc.UpdateRolePermissions(ctx,
				roles.RoleSecretario,
				[]roles.Module{roles.ModuleMiPerfil},
				roles.RoleAdministrador)).To(gomega.Succeed())
			gomega.Expect(svc.IsCustomized(roles.RoleSecretario)).To(gomega.BeTrue())

			gomega.Expect(svc.ResetToDefaults(ctx, roles.RoleAdministrador)).To(gomega.Succeed())

			gomega.Expect(svc.IsCustomized(roles.RoleSecretario)).To(gomega.BeFalse())
			gomega.Expect(svc.AllowedModules(roles.RoleSecretario)).To(gomega.Equal(DefaultModules(roles.RoleSecretario)))
		})

		ginkgo.It("should be administrator gated", func() {
			err := svc.ResetToDefaults(ctx, roles.RoleCapitan)
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeAuthorization))
		})
	})
})
