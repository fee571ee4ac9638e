package validation

import (
	"regexp"
	"strings"

	errors "github.com/bomberosvinadelmar/portal-admin/internal"
)

var chileanMobilePattern = regexp.MustCompile(`^(\+56)?9\d{8}$`)

// ValidatePhone checks a Chilean mobile number. Whitespace,
// parentheses and dashes are stripped before matching. An empty value
// is valid only when the field is not required.
func ValidatePhone(phone string, required bool) Result {
	stripped := stripPhone(phone)

	if stripped == "" {
		if required {
			return invalid(errors.ErrorTypeFormat, "El teléfono es obligatorio")
		}
		return valid()
	}

	if !chileanMobilePattern.MatchString(stripped) {
		return invalid(errors.ErrorTypeFormat, "El teléfono debe ser un celular chileno válido (+56 9 XXXX XXXX)")
	}

	return validNormalized(stripped)
}

func stripPhone(phone string) string {
	var b strings.Builder
	for _, c := range phone {
		switch c {
		case ' ', '\t', '(', ')', '-':
			continue
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
