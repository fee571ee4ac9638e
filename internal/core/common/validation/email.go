package validation

import (
	"regexp"
	"strings"

	errors "github.com/bomberosvinadelmar/portal-admin/internal"
)

// InstitutionalDomain is the only email domain accepted for company
// members.
const InstitutionalDomain = "bomberosvinadelmar.cl"

const maxEmailLength = 100

var localPartPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9._-]*[a-zA-Z0-9]$`)

// ValidateInstitutionalEmail requires a syntactically valid address on
// the institutional domain. The local part must start with a letter,
// end with a letter or digit, use only [a-zA-Z0-9._-] in between and
// be at least 3 characters long. Each broken rule fails with its own
// message; there is no partial success.
func ValidateInstitutionalEmail(email string) Result {
	email = strings.TrimSpace(email)

	if email == "" {
		return invalid(errors.ErrorTypeFormat, "El correo electrónico es obligatorio")
	}
	if len(email) > maxEmailLength {
		return invalid(errors.ErrorTypeFormat, "El correo electrónico no puede superar 100 caracteres")
	}

	at := strings.Index(email, "@")
	if at < 0 || strings.Count(email, "@") != 1 {
		return invalid(errors.ErrorTypeFormat, "El correo electrónico no tiene un formato válido")
	}

	local, domain := email[:at], email[at+1:]

	if !strings.Contains(domain, ".") {
		return invalid(errors.ErrorTypeFormat, "El dominio del correo no es válido")
	}
	if !strings.EqualFold(domain, InstitutionalDomain) {
		return invalid(errors.ErrorTypeDomain, "Debe usar el correo institucional @"+InstitutionalDomain)
	}

	if len(local) < 3 {
		return invalid(errors.ErrorTypeFormat, "El nombre de usuario debe tener al menos 3 caracteres")
	}
	if !localPartPattern.MatchString(local) {
		return invalid(errors.ErrorTypeFormat, "El nombre de usuario contiene caracteres no permitidos")
	}

	return validNormalized(strings.ToLower(email))
}
