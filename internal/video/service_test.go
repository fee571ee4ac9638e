package video

import (
	"context"
	"log/slog"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/bomberosvinadelmar/portal-admin/internal/storage/memory"
)

func TestVideo(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Video Suite")
}

var _ = ginkgo.Describe("Service", func() {
	var (
		svc *Service
		ctx context.Context
	)

	ginkgo.BeforeEach(func() {
		svc = NewService(NewRepository(memory.New()), slog.Default())
		ctx = context.Background()
	})

	dto := func(category string) CreateVideoDTO {
		return CreateVideoDTO{
			Title:    "Uso de equipos de respiración",
			URL:      "https://videos.bomberosvinadelmar.cl/era-basico",
			Category: category,
		}
	}

	ginkgo.It("should publish a video with a default published date", func() {
		v, err := svc.CreateVideo(ctx, dto("capacitacion"))
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(v.ID).ToNot(gomega.BeEmpty())
		gomega.Expect(v.PublishedAt.IsZero()).To(gomega.BeFalse())
	})

	ginkgo.It("should reject a malformed URL", func() {
		bad := dto("capacitacion")
		bad.URL = "no-es-una-url"
		_, err := svc.CreateVideo(ctx, bad)
		gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
	})

	ginkgo.It("should filter by category", func() {
		_, err := svc.CreateVideo(ctx, dto("capacitacion"))
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		_, err = svc.CreateVideo(ctx, dto("institucional"))
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		all, err := svc.ListByCategory(ctx, "")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(all).To(gomega.HaveLen(2))

		training, err := svc.ListByCategory(ctx, "capacitacion")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(training).To(gomega.HaveLen(1))
		gomega.Expect(training[0].Category).To(gomega.Equal("capacitacion"))
	})

	ginkgo.It("should delete a video and report missing ones", func() {
		v, err := svc.CreateVideo(ctx, dto("institucional"))
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		gomega.Expect(svc.DeleteVideo(ctx, v.ID)).To(gomega.Succeed())
		gomega.Expect(svc.DeleteVideo(ctx, v.ID)).To(gomega.MatchError(ErrNotFound))
	})
})
