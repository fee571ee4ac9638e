package permission

// UpdatePermissionsDTO is the transport shape for replacing a role's
// module set.
type UpdatePermissionsDTO struct {
	Role    string   `json:"role"`
	Modules []string `json:"modules"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

// Validate checks required fields and returns a ValidationError on failure.
func (d UpdatePermissionsDTO) Validate() error {
	if d.Role == "" {
		return ValidationError{Msg: "role is required"}
	}
	if len(d.Modules) == 0 {
		return ValidationError{Msg: "modules is required"}
	}
	return nil
}

// RolePermissionsResponse is one row of the permission matrix.
type RolePermissionsResponse struct {
	Role       string   `json:"role"`
	Category   string   `json:"category"`
	Modules    []string `json:"modules"`
	Customized bool     `json:"customized"`
}
