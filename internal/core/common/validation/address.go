package validation

import (
	"strings"
	"unicode"

	errors "github.com/bomberosvinadelmar/portal-admin/internal"
)

const (
	minAddressLength = 10
	maxAddressLength = 200
)

// streetKeywords is the fixed vocabulary of street types an address
// must name.
var streetKeywords = []string{
	"calle", "avenida", "av.", "av ", "pasaje", "psje", "camino",
	"plaza", "villa", "población", "poblacion", "cerro", "subida",
}

// knownLocalities are region localities used only for the
// warning-level check: an address without one is still valid.
var knownLocalities = []string{
	"viña del mar", "vina del mar", "valparaíso", "valparaiso",
	"quilpué", "quilpue", "villa alemana", "concón", "concon",
	"reñaca", "renaca", "quintero", "limache",
}

// ValidateAddress requires a plausible street address: bounded length,
// a street-type keyword and a house number. A missing locality name
// produces the only warning-but-valid outcome among the validators.
func ValidateAddress(address string) Result {
	trimmed := strings.TrimSpace(address)

	if len(trimmed) < minAddressLength {
		return invalid(errors.ErrorTypeFormat, "La dirección debe tener al menos 10 caracteres")
	}
	if len(trimmed) > maxAddressLength {
		return invalid(errors.ErrorTypeFormat, "La dirección no puede superar 200 caracteres")
	}

	lower := strings.ToLower(trimmed)

	hasKeyword := false
	for _, kw := range streetKeywords {
		if strings.Contains(lower, kw) {
			hasKeyword = true
			break
		}
	}
	if !hasKeyword {
		return invalid(errors.ErrorTypeDomain, "La dirección debe indicar el tipo de vía (calle, avenida, pasaje, ...)")
	}

	hasDigit := false
	for _, c := range trimmed {
		if unicode.IsDigit(c) {
			hasDigit = true
			break
		}
	}
	if !hasDigit {
		return invalid(errors.ErrorTypeDomain, "La dirección debe incluir una numeración")
	}

	for _, loc := range knownLocalities {
		if strings.Contains(lower, loc) {
			return valid()
		}
	}

	return validWithWarning("La dirección no menciona una comuna conocida de la región")
}
