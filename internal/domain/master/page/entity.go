package page

import "time"

// Page is a managed account whose chatters clock in under Key.
type Page struct {
	ID        int64
	Key       string
	Name      string
	TeamID    *int64
	TeamName  *string // join
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
