package personnel

import (
	"context"
	"log/slog"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	internal "github.com/bomberosvinadelmar/portal-admin/internal"
	"github.com/bomberosvinadelmar/portal-admin/internal/core/common/validation"
	"github.com/bomberosvinadelmar/portal-admin/internal/roles"
	"github.com/bomberosvinadelmar/portal-admin/internal/storage/memory"
)

func TestPersonnel(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Personnel Suite")
}

var _ = ginkgo.Describe("Service", func() {
	var (
		svc *Service
		ctx context.Context
	)

	validDTO := func() CreateRecordDTO {
		return CreateRecordDTO{
			FirstName:      "Juan",
			LastName:       "Pérez",
			NationalID:     "12345678-5",
			Email:          "juan.perez@bomberosvinadelmar.cl",
			Phone:          "+56912345678",
			EmergencyPhone: "+56987654321",
			Address:        "Calle Álvarez 1234, Viña del Mar",
			Company:        "Segunda Compañía",
			Role:           roles.RoleBomberoActivo.String(),
		}
	}

	ginkgo.BeforeEach(func() {
		svc = NewService(NewRepository(memory.New()), slog.Default())
		ctx = context.Background()
	})

	ginkgo.It("should start with an empty roster", func() {
		records, err := svc.ListRecords(ctx)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(records).To(gomega.BeEmpty())
	})

	ginkgo.It("should create a record with canonical RUT punctuation", func() {
		rec, err := svc.CreateRecord(ctx, validDTO())
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(rec.ID).ToNot(gomega.BeEmpty())
		gomega.Expect(rec.NationalID).To(gomega.Equal("12.345.678-5"))
		gomega.Expect(rec.IsActive).To(gomega.BeTrue())

		records, err := svc.ListRecords(ctx)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(records).To(gomega.HaveLen(1))
	})

	ginkgo.It("should aggregate every invalid field in one rejection", func() {
		dto := validDTO()
		dto.NationalID = "12345678-0"
		dto.Email = "juan.perez@gmail.com"
		dto.Address = "corta"

		_, err := svc.CreateRecord(ctx, dto)
		appErr, ok := internal.IsAppError(err)
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeValidation))

		fields, ok := appErr.Details.(validation.FieldErrors)
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(fields).To(gomega.HaveKey("nationalId"))
		gomega.Expect(fields).To(gomega.HaveKey("email"))
		gomega.Expect(fields).To(gomega.HaveKey("address"))
	})

	ginkgo.It("should refuse a duplicate RUT", func() {
		_, err := svc.CreateRecord(ctx, validDTO())
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		dup := validDTO()
		dup.NationalID = "12.345.678-5"
		dup.Email = "otro.correo@bomberosvinadelmar.cl"
		_, err = svc.CreateRecord(ctx, dup)

		appErr, ok := internal.IsAppError(err)
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeDuplicateRecord))
	})

	ginkgo.It("should update the editable fields of an existing record", func() {
		rec, err := svc.CreateRecord(ctx, validDTO())
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		updated, err := svc.UpdateRecord(ctx, rec.ID, UpdateRecordDTO{
			Email:          "juan.perez@bomberosvinadelmar.cl",
			Phone:          "+56911112222",
			EmergencyPhone: "+56933334444",
			Address:        "Avenida Libertad 567, Viña del Mar",
			Company:        "Segunda Compañía",
			Role:           roles.RoleAyudante.String(),
		})
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(updated.Role).To(gomega.Equal(roles.RoleAyudante))
		gomega.Expect(updated.Phone).To(gomega.Equal("+56911112222"))
	})

	ginkgo.It("should report a missing record on update", func() {
		_, err := svc.UpdateRecord(ctx, "no-such-id", UpdateRecordDTO{
			Email:   "x.y@bomberosvinadelmar.cl",
			Phone:   "+56912345678",
			Address: "Calle Larga 100, Valparaíso",
			Company: "Segunda Compañía",
			Role:    roles.RoleBomberoActivo.String(),
		})
		gomega.Expect(err).To(gomega.MatchError(ErrNotFound))
	})

	ginkgo.It("should deactivate without removing from the roster", func() {
		rec, err := svc.CreateRecord(ctx, validDTO())
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		gomega.Expect(svc.DeactivateRecord(ctx, rec.ID)).To(gomega.Succeed())

		records, err := svc.ListRecords(ctx)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(records).To(gomega.HaveLen(1))
		gomega.Expect(records[0].IsActive).To(gomega.BeFalse())
	})
})
