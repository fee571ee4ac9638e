package validation

import (
	"fmt"
	"strings"

	errors "github.com/bomberosvinadelmar/portal-admin/internal"
)

// ValidateNationalID checks a Chilean RUT/RUN. Separators (dots,
// dashes, spaces) are stripped before checking; the stripped value
// must be a 7-8 digit body followed by one check character. The check
// character is verified with the standard modulo-11 procedure. On
// success Normalized carries the canonically punctuated form
// (thousands dots, dash, uppercase check character).
func ValidateNationalID(id string) Result {
	stripped := stripRUT(id)

	if len(stripped) < 8 || len(stripped) > 9 {
		return invalid(errors.ErrorTypeFormat, "El RUT debe tener entre 7 y 8 dígitos más el dígito verificador")
	}

	body := stripped[:len(stripped)-1]
	check := stripped[len(stripped)-1]

	for _, c := range body {
		if c < '0' || c > '9' {
			return invalid(errors.ErrorTypeFormat, "El cuerpo del RUT solo puede contener dígitos")
		}
	}

	checkUpper := byte(0)
	switch {
	case check >= '0' && check <= '9':
		checkUpper = check
	case check == 'k' || check == 'K':
		checkUpper = 'K'
	default:
		return invalid(errors.ErrorTypeFormat, "El dígito verificador debe ser un número o la letra K")
	}

	if computeCheckDigit(body) != checkUpper {
		return invalid(errors.ErrorTypeChecksum, "El dígito verificador no corresponde al RUT ingresado")
	}

	return validNormalized(formatRUT(body, checkUpper))
}

func stripRUT(id string) string {
	var b strings.Builder
	for _, c := range id {
		switch c {
		case '.', '-', ' ':
			continue
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// computeCheckDigit walks the body from least significant digit with
// the cyclic weight sequence 2..7, sums, and maps 11 - (sum mod 11)
// to '0' for 11 and 'K' for 10.
func computeCheckDigit(body string) byte {
	sum := 0
	weight := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * weight
		weight++
		if weight > 7 {
			weight = 2
		}
	}

	rest := 11 - (sum % 11)
	switch rest {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + rest)
	}
}

func formatRUT(body string, check byte) string {
	var groups []string
	for len(body) > 3 {
		groups = append([]string{body[len(body)-3:]}, groups...)
		body = body[:len(body)-3]
	}
	groups = append([]string{body}, groups...)
	return fmt.Sprintf("%s-%c", strings.Join(groups, "."), check)
}
