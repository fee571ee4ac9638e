package session

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/bomberosvinadelmar/portal-admin/internal/roles"
	"github.com/bomberosvinadelmar/portal-admin/internal/storage"
	"github.com/bomberosvinadelmar/portal-admin/internal/storage/memory"
)

func TestSession(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Session Suite")
}

var _ = ginkgo.Describe("Store", func() {
	var (
		mem   *memory.Store
		store *Store
		ctx   context.Context
	)

	ginkgo.BeforeEach(func() {
		mem = memory.New()
		store = NewStore(mem, slog.Default())
		ctx = context.Background()
	})

	sample := func() *UserSession {
		return &UserSession{
			ID:              "u-1",
			Name:            "María González",
			Email:           "maria.gonzalez@bomberosvinadelmar.cl",
			NationalID:      "12.345.678-5",
			Role:            roles.RoleSecretario,
			IsAuthenticated: true,
			CreatedAt:       time.Date(2025, time.January, 2, 10, 0, 0, 0, time.UTC),
		}
	}

	ginkgo.It("should round-trip a session through save and load", func() {
		gomega.Expect(store.Save(ctx, sample())).To(gomega.Succeed())

		loaded, err := store.Load(ctx)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(loaded).To(gomega.Equal(sample()))
	})

	ginkgo.It("should set the authenticated flag alongside the record", func() {
		gomega.Expect(store.Save(ctx, sample())).To(gomega.Succeed())

		flag, err := mem.Get(ctx, storage.KeyAuthenticated)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(flag).To(gomega.Equal("true"))
	})

	ginkgo.It("should return nil for an absent session", func() {
		loaded, err := store.Load(ctx)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(loaded).To(gomega.BeNil())
	})

	ginkgo.It("should treat a corrupt record as absent", func() {
		gomega.Expect(mem.Set(ctx, storage.KeySession, "{not json")).To(gomega.Succeed())

		loaded, err := store.Load(ctx)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(loaded).To(gomega.BeNil())
	})

	ginkgo.It("should overwrite the prior record on save", func() {
		first := sample()
		gomega.Expect(store.Save(ctx, first)).To(gomega.Succeed())

		second := sample()
		second.ID = "u-2"
		second.Role = roles.RoleAdministrador
		gomega.Expect(store.Save(ctx, second)).To(gomega.Succeed())

		loaded, err := store.Load(ctx)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(loaded.ID).To(gomega.Equal("u-2"))
		gomega.Expect(loaded.Role).To(gomega.Equal(roles.RoleAdministrador))
	})

	ginkgo.It("should clear idempotently", func() {
		gomega.Expect(store.Save(ctx, sample())).To(gomega.Succeed())
		gomega.Expect(store.Clear(ctx)).To(gomega.Succeed())
		gomega.Expect(store.Clear(ctx)).To(gomega.Succeed())

		loaded, err := store.Load(ctx)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(loaded).To(gomega.BeNil())

		_, err = mem.Get(ctx, storage.KeyAuthenticated)
		gomega.Expect(err).To(gomega.MatchError(storage.ErrNotFound))
	})
})
