package validation

import (
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	errors "github.com/bomberosvinadelmar/portal-admin/internal"
	"github.com/bomberosvinadelmar/portal-admin/internal/roles"
)

func TestValidation(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Validation Suite")
}

var _ = ginkgo.Describe("ValidateNationalID", func() {
	ginkgo.Context("when the check digit matches", func() {
		ginkgo.It("should accept and normalize a bare RUT", func() {
			r := ValidateNationalID("12345678-5")
			gomega.Expect(r.Valid).To(gomega.BeTrue())
			gomega.Expect(r.Normalized).To(gomega.Equal("12.345.678-5"))
		})

		ginkgo.It("should accept punctuated input", func() {
			r := ValidateNationalID("12.345.678-5")
			gomega.Expect(r.Valid).To(gomega.BeTrue())
			gomega.Expect(r.Normalized).To(gomega.Equal("12.345.678-5"))
		})

		ginkgo.It("should accept a lowercase K check digit", func() {
			// body 20347878 → sum mod 11 leaves rest 10 → K
			gomega.Expect(computeCheckDigit("20347878")).To(gomega.Equal(byte('K')))
			r := ValidateNationalID("20347878-k")
			gomega.Expect(r.Valid).To(gomega.BeTrue())
			gomega.Expect(r.Normalized).To(gomega.Equal("20.347.878-K"))
		})

		ginkgo.It("should accept 7-digit bodies", func() {
			check := computeCheckDigit("9876543")
			r := ValidateNationalID("9876543" + string(check))
			gomega.Expect(r.Valid).To(gomega.BeTrue())
			gomega.Expect(r.Normalized).To(gomega.Equal("9.876.543-" + string(check)))
		})

		ginkgo.It("should validate body plus computed digit for a range of bodies", func() {
			bodies := []string{"1000000", "7777777", "11111111", "24965430", "18123456"}
			for _, body := range bodies {
				check := computeCheckDigit(body)
				r := ValidateNationalID(body + string(check))
				gomega.Expect(r.Valid).To(gomega.BeTrue(), "body %s", body)
			}
		})
	})

	ginkgo.Context("when the check digit does not match", func() {
		ginkgo.It("should reject with a checksum error", func() {
			r := ValidateNationalID("12345678-0")
			gomega.Expect(r.Valid).To(gomega.BeFalse())
			gomega.Expect(r.ErrType).To(gomega.Equal(errors.ErrorTypeChecksum))
		})

		ginkgo.It("should reject every wrong digit for a fixed body", func() {
			for _, wrong := range []string{"0", "1", "2", "3", "4", "6", "7", "8", "9", "K"} {
				r := ValidateNationalID("12345678-" + wrong)
				gomega.Expect(r.Valid).To(gomega.BeFalse(), "digit %s", wrong)
				gomega.Expect(r.ErrType).To(gomega.Equal(errors.ErrorTypeChecksum))
			}
		})
	})

	ginkgo.Context("when the shape is wrong", func() {
		ginkgo.It("should reject short and long inputs as format errors", func() {
			for _, in := range []string{"", "123", "123456-5", "123456789-5"} {
				r := ValidateNationalID(in)
				gomega.Expect(r.Valid).To(gomega.BeFalse(), "input %q", in)
				gomega.Expect(r.ErrType).To(gomega.Equal(errors.ErrorTypeFormat))
			}
		})

		ginkgo.It("should reject non-digit bodies", func() {
			r := ValidateNationalID("12a45678-5")
			gomega.Expect(r.Valid).To(gomega.BeFalse())
			gomega.Expect(r.ErrType).To(gomega.Equal(errors.ErrorTypeFormat))
		})

		ginkgo.It("should reject an invalid check character", func() {
			r := ValidateNationalID("12345678-x")
			gomega.Expect(r.Valid).To(gomega.BeFalse())
			gomega.Expect(r.ErrType).To(gomega.Equal(errors.ErrorTypeFormat))
		})
	})
})

var _ = ginkgo.Describe("ValidateInstitutionalEmail", func() {
	ginkgo.It("should accept a well-formed institutional address", func() {
		r := ValidateInstitutionalEmail("juan.perez@bomberosvinadelmar.cl")
		gomega.Expect(r.Valid).To(gomega.BeTrue())
		gomega.Expect(r.Normalized).To(gomega.Equal("juan.perez@bomberosvinadelmar.cl"))
	})

	ginkgo.It("should reject a local part shorter than 3 characters", func() {
		r := ValidateInstitutionalEmail("ju@bomberosvinadelmar.cl")
		gomega.Expect(r.Valid).To(gomega.BeFalse())
	})

	ginkgo.It("should reject foreign domains", func() {
		r := ValidateInstitutionalEmail("juan.perez@gmail.com")
		gomega.Expect(r.Valid).To(gomega.BeFalse())
		gomega.Expect(r.ErrType).To(gomega.Equal(errors.ErrorTypeDomain))
	})

	ginkgo.It("should reject local parts starting with a non-letter", func() {
		r := ValidateInstitutionalEmail("1juan@bomberosvinadelmar.cl")
		gomega.Expect(r.Valid).To(gomega.BeFalse())
	})

	ginkgo.It("should reject local parts ending with punctuation", func() {
		r := ValidateInstitutionalEmail("juan.@bomberosvinadelmar.cl")
		gomega.Expect(r.Valid).To(gomega.BeFalse())
	})

	ginkgo.It("should reject addresses over 100 characters", func() {
		long := ""
		for len(long) < 90 {
			long += "abcdefghij"
		}
		r := ValidateInstitutionalEmail(long + "@bomberosvinadelmar.cl")
		gomega.Expect(r.Valid).To(gomega.BeFalse())
	})

	ginkgo.It("should reject missing or doubled @", func() {
		gomega.Expect(ValidateInstitutionalEmail("juanperez").Valid).To(gomega.BeFalse())
		gomega.Expect(ValidateInstitutionalEmail("a@b@bomberosvinadelmar.cl").Valid).To(gomega.BeFalse())
	})
})

var _ = ginkgo.Describe("ValidateAgeAt", func() {
	ref := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	ginkgo.It("should reject future birth dates", func() {
		r := ValidateAgeAt(ref.AddDate(0, 0, 1), ref)
		gomega.Expect(r.Valid).To(gomega.BeFalse())
	})

	ginkgo.It("should reject someone one day short of 18", func() {
		birth := time.Date(2007, time.June, 16, 0, 0, 0, 0, time.UTC)
		r := ValidateAgeAt(birth, ref)
		gomega.Expect(r.Valid).To(gomega.BeFalse())
	})

	ginkgo.It("should accept someone exactly 18 today", func() {
		birth := time.Date(2007, time.June, 15, 0, 0, 0, 0, time.UTC)
		r := ValidateAgeAt(birth, ref)
		gomega.Expect(r.Valid).To(gomega.BeTrue())
		gomega.Expect(r.Age).To(gomega.Equal(18))
	})

	ginkgo.It("should accept someone exactly 65", func() {
		birth := time.Date(1960, time.June, 15, 0, 0, 0, 0, time.UTC)
		r := ValidateAgeAt(birth, ref)
		gomega.Expect(r.Valid).To(gomega.BeTrue())
		gomega.Expect(r.Age).To(gomega.Equal(65))
	})

	ginkgo.It("should reject someone over 65", func() {
		birth := time.Date(1959, time.June, 14, 0, 0, 0, 0, time.UTC)
		r := ValidateAgeAt(birth, ref)
		gomega.Expect(r.Valid).To(gomega.BeFalse())
	})
})

var _ = ginkgo.Describe("ValidatePhone", func() {
	ginkgo.It("should accept the national format with separators", func() {
		r := ValidatePhone("+56 9 8765 4321", true)
		gomega.Expect(r.Valid).To(gomega.BeTrue())
		gomega.Expect(r.Normalized).To(gomega.Equal("+56987654321"))
	})

	ginkgo.It("should accept the bare local format", func() {
		gomega.Expect(ValidatePhone("987654321", true).Valid).To(gomega.BeTrue())
	})

	ginkgo.It("should reject landlines", func() {
		gomega.Expect(ValidatePhone("+56 32 123 4567", true).Valid).To(gomega.BeFalse())
	})

	ginkgo.It("should allow empty input only when optional", func() {
		gomega.Expect(ValidatePhone("", false).Valid).To(gomega.BeTrue())
		gomega.Expect(ValidatePhone("", true).Valid).To(gomega.BeFalse())
	})
})

var _ = ginkgo.Describe("ValidateAddress", func() {
	ginkgo.It("should accept a full address with locality", func() {
		r := ValidateAddress("Calle Quillota 1234, Viña del Mar")
		gomega.Expect(r.Valid).To(gomega.BeTrue())
		gomega.Expect(r.Warning).To(gomega.BeFalse())
	})

	ginkgo.It("should warn but accept an address without a known locality", func() {
		r := ValidateAddress("Avenida Central 742, Santiago")
		gomega.Expect(r.Valid).To(gomega.BeTrue())
		gomega.Expect(r.Warning).To(gomega.BeTrue())
		gomega.Expect(r.Message).ToNot(gomega.BeEmpty())
	})

	ginkgo.It("should reject an address without a street keyword", func() {
		gomega.Expect(ValidateAddress("Sector Las Torres 123").Valid).To(gomega.BeFalse())
	})

	ginkgo.It("should reject an address without numbering", func() {
		gomega.Expect(ValidateAddress("Calle Quillota sin número").Valid).To(gomega.BeFalse())
	})

	ginkgo.It("should reject too-short and too-long addresses", func() {
		gomega.Expect(ValidateAddress("Calle 1").Valid).To(gomega.BeFalse())
		long := "Avenida "
		for len(long) < 210 {
			long += "larga "
		}
		gomega.Expect(ValidateAddress(long + "1").Valid).To(gomega.BeFalse())
	})
})

var _ = ginkgo.Describe("ValidateRoleCompanyConsistency", func() {
	ginkgo.It("should pair administrative offices with Comando", func() {
		gomega.Expect(ValidateRoleCompanyConsistency("Comando", roles.RoleDirector).Valid).To(gomega.BeTrue())
	})

	ginkgo.It("should reject a Director in a numbered company", func() {
		r := ValidateRoleCompanyConsistency("Segunda Compañía", roles.RoleDirector)
		gomega.Expect(r.Valid).To(gomega.BeFalse())
	})

	ginkgo.It("should reject an operative role in an administrative unit", func() {
		r := ValidateRoleCompanyConsistency("Administración", roles.RoleBomberoActivo)
		gomega.Expect(r.Valid).To(gomega.BeFalse())
	})

	ginkgo.It("should accept operative roles in numbered companies", func() {
		gomega.Expect(ValidateRoleCompanyConsistency("Segunda Compañía", roles.RoleCapitan).Valid).To(gomega.BeTrue())
	})

	ginkgo.It("should accept when either field is absent", func() {
		gomega.Expect(ValidateRoleCompanyConsistency("", roles.RoleDirector).Valid).To(gomega.BeTrue())
		gomega.Expect(ValidateRoleCompanyConsistency("Comando", "").Valid).To(gomega.BeTrue())
	})
})

var _ = ginkgo.Describe("Form validators", func() {
	validForm := func() RegistrationForm {
		return RegistrationForm{
			FirstName:       "Juan",
			LastName:        "Pérez",
			NationalID:      "12345678-5",
			BirthDate:       time.Date(1990, time.March, 10, 0, 0, 0, 0, time.UTC),
			Email:           "juan.perez@bomberosvinadelmar.cl",
			EmailConfirm:    "juan.perez@bomberosvinadelmar.cl",
			Password:        "secreto-largo",
			PasswordConfirm: "secreto-largo",
			Phone:           "+56987654321",
			EmergencyPhone:  "+56912345678",
			Address:         "Calle Quillota 1234, Viña del Mar",
			Company:         "Segunda Compañía",
			Role:            roles.RoleBomberoActivo,
		}
	}

	ginkgo.It("should accept a fully valid registration form", func() {
		fe := ValidateRegistrationForm(validForm())
		gomega.Expect(fe.Valid()).To(gomega.BeTrue(), "unexpected errors: %v", fe)
	})

	ginkgo.It("should report every broken field without short-circuiting", func() {
		form := validForm()
		form.NationalID = "12345678-0"
		form.Email = "juan@gmail.com"
		form.EmailConfirm = "otro@gmail.com"
		form.Phone = ""
		form.PasswordConfirm = "distinta"

		fe := ValidateRegistrationForm(form)
		gomega.Expect(fe).To(gomega.HaveKey("nationalId"))
		gomega.Expect(fe).To(gomega.HaveKey("email"))
		gomega.Expect(fe).To(gomega.HaveKey("emailConfirm"))
		gomega.Expect(fe).To(gomega.HaveKey("phone"))
		gomega.Expect(fe).To(gomega.HaveKey("passwordConfirm"))
	})

	ginkgo.It("should reject identical personal and emergency phones", func() {
		form := validForm()
		form.EmergencyPhone = "+56 9 8765 4321"
		fe := ValidateRegistrationForm(form)
		gomega.Expect(fe).To(gomega.HaveKey("emergencyPhone"))
	})

	ginkgo.It("should validate login forms", func() {
		fe := ValidateLoginForm(LoginForm{Email: "juan.perez@bomberosvinadelmar.cl", Password: "x"})
		gomega.Expect(fe.Valid()).To(gomega.BeTrue())

		fe = ValidateLoginForm(LoginForm{Email: "ju@bomberosvinadelmar.cl"})
		gomega.Expect(fe).To(gomega.HaveKey("email"))
		gomega.Expect(fe).To(gomega.HaveKey("password"))
	})

	ginkgo.It("should validate profile forms", func() {
		fe := ValidateProfileForm(ProfileForm{
			Name:    "Juan Pérez",
			Email:   "juan.perez@bomberosvinadelmar.cl",
			Phone:   "+56987654321",
			Address: "Calle Quillota 1234, Viña del Mar",
		})
		gomega.Expect(fe.Valid()).To(gomega.BeTrue(), "unexpected errors: %v", fe)
	})
})
