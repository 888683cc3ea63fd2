package roster

import (
	"time"

	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/businessday"
)

// Slot assigns a chatter to a page for one attendance shift.
type Slot struct {
	ID        int64
	PageID    int64
	Shift     businessday.Shift
	Chatter   string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Join
	PageKey  string
	PageName string
	TeamName *string
}
