package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type ErrorType string

const (
	ErrorTypeFormat          ErrorType = "FORMAT_ERROR"
	ErrorTypeChecksum        ErrorType = "CHECKSUM_ERROR"
	ErrorTypeDomain          ErrorType = "DOMAIN_ERROR"
	ErrorTypeValidation      ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound        ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized    ErrorType = "UNAUTHORIZED"
	ErrorTypeAuthorization   ErrorType = "AUTHORIZATION_ERROR"
	ErrorTypePolicyViolation ErrorType = "POLICY_VIOLATION"
	ErrorTypeConflict        ErrorType = "CONFLICT"
	ErrorTypeStorage         ErrorType = "STORAGE_ERROR"
	ErrorTypeInternal        ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidRUT       ErrorCode = "INVALID_RUT"
	ErrCodeRUTChecksum      ErrorCode = "RUT_CHECKSUM_MISMATCH"
	ErrCodeInvalidEmail     ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidAge       ErrorCode = "INVALID_AGE"
	ErrCodeInvalidPhone     ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidAddress   ErrorCode = "INVALID_ADDRESS"
	ErrCodeRoleCompany      ErrorCode = "ROLE_COMPANY_MISMATCH"

	ErrCodeModuleNotAllowed  ErrorCode = "MODULE_NOT_ALLOWED"
	ErrCodeNotAdministrator  ErrorCode = "NOT_ADMINISTRATOR"
	ErrCodeProtectedModule   ErrorCode = "PROTECTED_MODULE_RULE"
	ErrCodeUnknownRole       ErrorCode = "UNKNOWN_ROLE"
	ErrCodePermissionStorage ErrorCode = "PERMISSION_STORAGE_FAILED"

	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeSessionMissing     ErrorCode = "SESSION_MISSING"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"

	ErrCodeDuplicateRecord      ErrorCode = "DUPLICATE_RECORD"
	ErrCodeRegistrationNotFound ErrorCode = "REGISTRATION_NOT_FOUND"
	ErrCodeInvalidTransition    ErrorCode = "INVALID_STATUS_TRANSITION"
	ErrCodePersonnelNotFound    ErrorCode = "PERSONNEL_NOT_FOUND"
	ErrCodeCitationNotFound     ErrorCode = "CITATION_NOT_FOUND"
	ErrCodeVideoNotFound        ErrorCode = "VIDEO_NOT_FOUND"
)

type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Details != nil {
		if validationErrors, ok := e.Details.(ValidationErrors); ok && len(validationErrors.Errors) > 0 {
			return validationErrors.Errors[0].Message
		}
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) GetDetailedMessage() string {
	if e.Details != nil {
		if validationErrors, ok := e.Details.(ValidationErrors); ok {
			if len(validationErrors.Errors) == 1 {
				return validationErrors.Errors[0].Message
			} else if len(validationErrors.Errors) > 1 {
				messages := make([]string, len(validationErrors.Errors))
				for i, err := range validationErrors.Errors {
					messages[i] = err.Message
				}
				return strings.Join(messages, "; ")
			}
		}
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewValidationFieldError(field, message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrCodeValidationFailed,
		Message:    "Validation failed",
		StatusCode: http.StatusBadRequest,
		Details: ValidationErrors{
			Errors: []ValidationError{
				{Field: field, Message: message, Code: string(code)},
			},
		},
	}
}

func NewFormatError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeFormat,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewChecksumError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeChecksum,
		Code:       ErrCodeRUTChecksum,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewDomainError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeDomain,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewAuthorizationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeAuthorization,
		Code:       ErrCodeNotAdministrator,
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func NewPolicyViolationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypePolicyViolation,
		Code:       ErrCodeProtectedModule,
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
	}
}

func NewStorageError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeStorage,
		Code:       ErrCodePermissionStorage,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

var (
	ErrInvalidCredentials = NewUnauthorizedError("Invalid email or password", ErrCodeInvalidCredentials)
	ErrInvalidToken       = NewUnauthorizedError("Invalid token", ErrCodeInvalidToken)
	ErrTokenExpired       = NewUnauthorizedError("Token has expired", ErrCodeTokenExpired)

	ErrRegistrationNotFound = NewNotFoundError("Registration request not found", ErrCodeRegistrationNotFound)
	ErrInvalidTransition    = NewConflictError("Registration status transition not allowed", ErrCodeInvalidTransition)
	ErrPersonnelNotFound    = NewNotFoundError("Personnel record not found", ErrCodePersonnelNotFound)
	ErrCitationNotFound     = NewNotFoundError("Citation not found", ErrCodeCitationNotFound)
	ErrVideoNotFound        = NewNotFoundError("Video not found", ErrCodeVideoNotFound)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

type Response struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, Response{Error: e}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
