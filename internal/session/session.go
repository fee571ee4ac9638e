// Package session persists the authenticated principal through the
// storage port.
package session

import (
	"time"

	"github.com/bomberosvinadelmar/portal-admin/internal/roles"
)

// UserSession is the record of the currently authenticated principal.
type UserSession struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	NationalID      string     `json:"national_id"`
	Role            roles.Role `json:"role"`
	IsAuthenticated bool       `json:"is_authenticated"`
	CreatedAt       time.Time  `json:"created_at"`
}

// IsAdministrator reports whether the session principal holds the
// Administrador role.
func (s *UserSession) IsAdministrator() bool {
	return s != nil && s.Role == roles.RoleAdministrador
}
