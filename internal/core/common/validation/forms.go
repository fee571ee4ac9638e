package validation

import (
	"time"

	"github.com/bomberosvinadelmar/portal-admin/internal/roles"
)

// RegistrationForm carries the raw applicant fields as entered.
type RegistrationForm struct {
	FirstName       string
	LastName        string
	NationalID      string
	BirthDate       time.Time
	Email           string
	EmailConfirm    string
	Password        string
	PasswordConfirm string
	Phone           string
	EmergencyPhone  string
	Address         string
	Company         string
	Role            roles.Role
}

// ProfileForm carries the editable profile fields.
type ProfileForm struct {
	Name           string
	Email          string
	Phone          string
	EmergencyPhone string
	Address        string
}

// LoginForm carries the credential fields of the login screen.
type LoginForm struct {
	Email    string
	Password string
}

// FieldErrors maps a field name to its first failure message. A form
// is valid iff the map is empty.
type FieldErrors map[string]string

func (fe FieldErrors) Valid() bool { return len(fe) == 0 }

func (fe FieldErrors) add(field string, r Result) {
	if !r.Valid {
		fe[field] = r.Message
	}
}

// ValidateRegistrationForm runs every applicable field validator and
// the cross-field rules. Every field is always checked; nothing
// short-circuits.
func ValidateRegistrationForm(form RegistrationForm) FieldErrors {
	fe := FieldErrors{}

	if form.FirstName == "" {
		fe["firstName"] = "El nombre es obligatorio"
	}
	if form.LastName == "" {
		fe["lastName"] = "El apellido es obligatorio"
	}

	fe.add("nationalId", ValidateNationalID(form.NationalID))
	fe.add("birthDate", ValidateAge(form.BirthDate))
	fe.add("email", ValidateInstitutionalEmail(form.Email))
	fe.add("phone", ValidatePhone(form.Phone, true))
	fe.add("emergencyPhone", ValidatePhone(form.EmergencyPhone, false))
	fe.add("address", ValidateAddress(form.Address))
	fe.add("company", ValidateRoleCompanyConsistency(form.Company, form.Role))

	if form.Password == "" {
		fe["password"] = "La contraseña es obligatoria"
	} else if len(form.Password) < 8 {
		fe["password"] = "La contraseña debe tener al menos 8 caracteres"
	}

	// Cross-field rules run regardless of the individual outcomes.
	if form.Email != form.EmailConfirm {
		fe["emailConfirm"] = "Los correos electrónicos no coinciden"
	}
	if form.Password != form.PasswordConfirm {
		fe["passwordConfirm"] = "Las contraseñas no coinciden"
	}
	if form.Phone != "" && stripPhone(form.Phone) == stripPhone(form.EmergencyPhone) {
		fe["emergencyPhone"] = "El teléfono de emergencia debe ser distinto al personal"
	}

	return fe
}

// ValidateProfileForm checks the editable profile fields.
func ValidateProfileForm(form ProfileForm) FieldErrors {
	fe := FieldErrors{}

	if form.Name == "" {
		fe["name"] = "El nombre es obligatorio"
	}

	fe.add("email", ValidateInstitutionalEmail(form.Email))
	fe.add("phone", ValidatePhone(form.Phone, true))
	fe.add("emergencyPhone", ValidatePhone(form.EmergencyPhone, false))
	fe.add("address", ValidateAddress(form.Address))

	if form.Phone != "" && stripPhone(form.Phone) == stripPhone(form.EmergencyPhone) {
		fe["emergencyPhone"] = "El teléfono de emergencia debe ser distinto al personal"
	}

	return fe
}

// ValidateLoginForm checks the credential fields only for presence
// and email shape; credentials themselves are verified elsewhere.
func ValidateLoginForm(form LoginForm) FieldErrors {
	fe := FieldErrors{}

	fe.add("email", ValidateInstitutionalEmail(form.Email))

	if form.Password == "" {
		fe["password"] = "La contraseña es obligatoria"
	}

	return fe
}
