package registration

import (
	"time"

	"github.com/bomberosvinadelmar/portal-admin/internal/core/common/validation"
	"github.com/bomberosvinadelmar/portal-admin/internal/roles"
)

// SubmitRequestDTO carries the applicant form as entered.
type SubmitRequestDTO struct {
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	NationalID      string    `json:"national_id"`
	BirthDate       time.Time `json:"birth_date"`
	Email           string    `json:"email"`
	EmailConfirm    string    `json:"email_confirm"`
	Password        string    `json:"password"`
	PasswordConfirm string    `json:"password_confirm"`
	Phone           string    `json:"phone"`
	EmergencyPhone  string    `json:"emergency_phone"`
	Address         string    `json:"address"`
	Company         string    `json:"company"`
	Role            string    `json:"role"`
}

// Validate maps the DTO onto the registration form validator; every
// field failure is reported, nothing short-circuits.
func (d SubmitRequestDTO) Validate() validation.FieldErrors {
	return validation.ValidateRegistrationForm(validation.RegistrationForm{
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		NationalID:      d.NationalID,
		BirthDate:       d.BirthDate,
		Email:           d.Email,
		EmailConfirm:    d.EmailConfirm,
		Password:        d.Password,
		PasswordConfirm: d.PasswordConfirm,
		Phone:           d.Phone,
		EmergencyPhone:  d.EmergencyPhone,
		Address:         d.Address,
		Company:         d.Company,
		Role:            roles.Role(d.Role),
	})
}

// DecisionDTO carries an administrator's note for a status change.
type DecisionDTO struct {
	Note string `json:"note"`
}
