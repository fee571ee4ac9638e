// Package citation manages summons and notices behind the
// "citaciones" module.
package citation

import "time"

// Citation is one summons published to the company.
type Citation struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Date        time.Time `json:"date"`
	Place       string    `json:"place"`
	Companies   []string  `json:"companies"`
	Mandatory   bool      `json:"mandatory"`
	PublishedBy string    `json:"published_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsUpcoming reports whether the citation date is still ahead of now.
func (c *Citation) IsUpcoming(now time.Time) bool {
	return c.Date.After(now)
}
