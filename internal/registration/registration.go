// Package registration implements the membership application
// lifecycle: applicants submit a request, an administrator decides
// it. Requests are never deleted; terminal decisions stay on file.
package registration

import (
	"time"

	"github.com/bomberosvinadelmar/portal-admin/internal/roles"
)

// Status of a registration request.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusNeedsInfo Status = "needs_info"
	StatusSuspended Status = "suspended"
)

// transitions lists the allowed moves. Approved and Rejected are
// terminal; NeedsInfo returns to Pending once the applicant responds.
var transitions = map[Status][]Status{
	StatusPending:   {StatusApproved, StatusRejected, StatusNeedsInfo, StatusSuspended},
	StatusNeedsInfo: {StatusPending},
	StatusSuspended: {StatusPending, StatusRejected},
}

// CanTransition reports whether moving from one status to another is
// allowed.
func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions leave a status.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// Request is one membership application.
type Request struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	NationalID     string     `json:"national_id"`
	BirthDate      time.Time  `json:"birth_date"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	EmergencyPhone string     `json:"emergency_phone"`
	Address        string     `json:"address"`
	Company        string     `json:"company"`
	Role           roles.Role `json:"role"`
	Status         Status     `json:"status"`
	Note           string     `json:"note,omitempty"`
	DecidedBy      string     `json:"decided_by,omitempty"`
	SubmittedAt    time.Time  `json:"submitted_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
