package personnel

import (
	"github.com/bomberosvinadelmar/portal-admin/internal/core/common/validation"
	"github.com/bomberosvinadelmar/portal-admin/internal/roles"
)

// CreateRecordDTO is the transport shape for adding a roster entry.
type CreateRecordDTO struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	NationalID     string `json:"national_id"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	EmergencyPhone string `json:"emergency_phone"`
	Address        string `json:"address"`
	Company        string `json:"company"`
	Role           string `json:"role"`
}

// UpdateRecordDTO carries the editable fields of an existing entry.
type UpdateRecordDTO struct {
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	EmergencyPhone string `json:"emergency_phone"`
	Address        string `json:"address"`
	Company        string `json:"company"`
	Role           string `json:"role"`
}

// Validate runs the field validators and returns per-field failures.
func (d CreateRecordDTO) Validate() validation.FieldErrors {
	fe := validation.ValidateProfileForm(validation.ProfileForm{
		Name:           d.FirstName + " " + d.LastName,
		Email:          d.Email,
		Phone:          d.Phone,
		EmergencyPhone: d.EmergencyPhone,
		Address:        d.Address,
	})

	if d.FirstName == "" {
		fe["firstName"] = "El nombre es obligatorio"
	}
	if d.LastName == "" {
		fe["lastName"] = "El apellido es obligatorio"
	}

	rut := validation.ValidateNationalID(d.NationalID)
	if !rut.Valid {
		fe["nationalId"] = rut.Message
	}

	if !roles.IsKnown(roles.Role(d.Role)) {
		fe["role"] = "El cargo indicado no existe"
	} else if consistency := validation.ValidateRoleCompanyConsistency(d.Company, roles.Role(d.Role)); !consistency.Valid {
		fe["company"] = consistency.Message
	}

	return fe
}

func (d UpdateRecordDTO) Validate() validation.FieldErrors {
	fe := validation.ValidateProfileForm(validation.ProfileForm{
		Name:           "-",
		Email:          d.Email,
		Phone:          d.Phone,
		EmergencyPhone: d.EmergencyPhone,
		Address:        d.Address,
	})
	delete(fe, "name")

	if !roles.IsKnown(roles.Role(d.Role)) {
		fe["role"] = "El cargo indicado no existe"
	} else if consistency := validation.ValidateRoleCompanyConsistency(d.Company, roles.Role(d.Role)); !consistency.Valid {
		fe["company"] = consistency.Message
	}

	return fe
}
