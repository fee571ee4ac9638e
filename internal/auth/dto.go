package auth

import "github.com/bomberosvinadelmar/portal-admin/internal/core/common/validation"

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshTokenDTO for refresh token requests
type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

// Validate runs the login form validator and reports the first broken
// field. Fields are checked in a fixed order so repeated failures
// surface the same message.
func (d LoginDTO) Validate() error {
	fe := validation.ValidateLoginForm(validation.LoginForm{
		Email:    d.Email,
		Password: d.Password,
	})
	for _, field := range []string{"email", "password"} {
		if message, ok := fe[field]; ok {
			return ValidationError{Msg: message}
		}
	}
	for _, message := range fe {
		return ValidationError{Msg: message}
	}
	return nil
}

// Validate for refresh token DTO
func (d RefreshTokenDTO) Validate() error {
	if d.RefreshToken == "" {
		return ValidationError{Msg: "refresh_token is required"}
	}
	return nil
}
