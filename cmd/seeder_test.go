package cmd

import (
	"context"
	"log/slog"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/bomberosvinadelmar/portal-admin/internal/auth"
	"github.com/bomberosvinadelmar/portal-admin/internal/core/common/validation"
	"github.com/bomberosvinadelmar/portal-admin/internal/personnel"
	"github.com/bomberosvinadelmar/portal-admin/internal/storage/memory"
)

func TestCmd(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Cmd Suite")
}

var _ = ginkgo.Describe("Seed data", func() {
	ginkgo.It("should carry a checksum-valid RUT in every personnel sample", func() {
		for _, dto := range samplePersonnel() {
			result := validation.ValidateNationalID(dto.NationalID)
			gomega.Expect(result.Valid).To(gomega.BeTrue(), dto.NationalID)
		}
	})

	ginkgo.It("should pass the full create validation for every personnel sample", func() {
		for _, dto := range samplePersonnel() {
			gomega.Expect(dto.Validate().Valid()).To(gomega.BeTrue(), dto.NationalID)
		}
	})

	ginkgo.It("should carry a checksum-valid RUT in every catalog principal", func() {
		for _, p := range auth.DefaultPrincipals() {
			result := validation.ValidateNationalID(p.NationalID)
			gomega.Expect(result.Valid).To(gomega.BeTrue(), p.NationalID)
		}
	})

	ginkgo.It("should create every sample through the personnel service", func() {
		svc := personnel.NewService(personnel.NewRepository(memory.New()), slog.Default())

		for _, dto := range samplePersonnel() {
			_, err := svc.CreateRecord(context.Background(), dto)
			gomega.Expect(err).ToNot(gomega.HaveOccurred(), dto.NationalID)
		}
	})
})
