// Package personnel manages the company roster behind the "personal"
// module.
package personnel

import (
	"time"

	"github.com/bomberosvinadelmar/portal-admin/internal/roles"
)

// Record is one roster entry.
type Record struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	NationalID     string     `json:"national_id"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	EmergencyPhone string     `json:"emergency_phone"`
	Address        string     `json:"address"`
	Company        string     `json:"company"`
	Role           roles.Role `json:"role"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (r *Record) FullName() string {
	return r.FirstName + " " + r.LastName
}

func (r *Record) Deactivate() {
	r.IsActive = false
	r.UpdatedAt = time.Now()
}
