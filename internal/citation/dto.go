package citation

import "time"

// CreateCitationDTO is the transport shape for publishing a summons.
type CreateCitationDTO struct {
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Date      time.Time `json:"date"`
	Place     string    `json:"place"`
	Companies []string  `json:"companies"`
	Mandatory bool      `json:"mandatory"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d CreateCitationDTO) Validate() error {
	if d.Title == "" {
		return ValidationError{Msg: "El título es obligatorio"}
	}
	if d.Date.IsZero() {
		return ValidationError{Msg: "La fecha es obligatoria"}
	}
	if d.Place == "" {
		return ValidationError{Msg: "El lugar es obligatorio"}
	}
	if len(d.Companies) == 0 {
		return ValidationError{Msg: "Debe citar al menos una compañía"}
	}
	return nil
}
