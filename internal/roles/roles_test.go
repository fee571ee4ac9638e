package roles

import (
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestRoles(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Roles Suite")
}

var _ = ginkgo.Describe("Classifier", func() {
	ginkgo.It("should place every role in exactly one category", func() {
		for _, r := range All() {
			count := 0
			if IsAdministrative(r) {
				count++
			}
			if IsDisciplineCouncil(r) {
				count++
			}
			if Classify(r) == CategoryRegularFirefighter {
				count++
			}
			gomega.Expect(count).To(gomega.Equal(1), "role %s", r)
		}
	})

	ginkgo.It("should classify officers as administrative", func() {
		gomega.Expect(Classify(RoleDirector)).To(gomega.Equal(CategoryAdministrative))
		gomega.Expect(Classify(RoleTesorero)).To(gomega.Equal(CategoryAdministrative))
		gomega.Expect(Classify(RoleTenienteSegundo)).To(gomega.Equal(CategoryAdministrative))
	})

	ginkgo.It("should classify councilors as discipline council", func() {
		gomega.Expect(Classify(RoleConsejero1)).To(gomega.Equal(CategoryDisciplineCouncil))
		gomega.Expect(Classify(RoleConsejero3)).To(gomega.Equal(CategoryDisciplineCouncil))
	})

	ginkgo.It("should classify firefighters as regular", func() {
		gomega.Expect(Classify(RoleBomberoActivo)).To(gomega.Equal(CategoryRegularFirefighter))
		gomega.Expect(Classify(RoleBomberoHonorario)).To(gomega.Equal(CategoryRegularFirefighter))
	})

	ginkgo.It("should leave unknown roles unclassified", func() {
		gomega.Expect(Classify(Role("Visitante"))).To(gomega.Equal(CategoryUnclassified))
	})
})

var _ = ginkgo.Describe("Enumerations", func() {
	ginkgo.It("should know every declared role", func() {
		gomega.Expect(IsKnown(RoleAdministrador)).To(gomega.BeTrue())
		gomega.Expect(IsKnown(Role("Brigadier"))).To(gomega.BeFalse())
	})

	ginkgo.It("should know every declared module", func() {
		gomega.Expect(IsKnownModule(ModulePermisos)).To(gomega.BeTrue())
		gomega.Expect(IsKnownModule(Module("bodega"))).To(gomega.BeFalse())
	})
})
