package validation

import (
	"time"

	errors "github.com/bomberosvinadelmar/portal-admin/internal"
)

const (
	minVolunteerAge = 18
	maxVolunteerAge = 65
)

// ValidateAge checks the birth date against the volunteer age bounds
// at the current time.
func ValidateAge(birthDate time.Time) Result {
	return ValidateAgeAt(birthDate, time.Now())
}

// ValidateAgeAt computes the integer age by calendar-aware
// year/month/day subtraction, not a plain year difference: someone
// born 2000-06-15 is 17 on 2018-06-14 and 18 on 2018-06-15.
func ValidateAgeAt(birthDate, at time.Time) Result {
	if birthDate.After(at) {
		return invalid(errors.ErrorTypeFormat, "La fecha de nacimiento no puede estar en el futuro")
	}

	age := at.Year() - birthDate.Year()
	anniversary := time.Date(at.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, at.Location())
	if at.Before(anniversary) {
		age--
	}

	if age < minVolunteerAge {
		return invalid(errors.ErrorTypeDomain, "Debe ser mayor de 18 años para registrarse")
	}
	if age > maxVolunteerAge {
		return invalid(errors.ErrorTypeDomain, "La edad máxima para voluntarios activos es 65 años")
	}

	r := valid()
	r.Age = age
	return r
}
