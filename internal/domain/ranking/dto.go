package ranking

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/validator"
)

const (
	DefaultDays  = 7
	MaxDays      = 90
	DefaultLimit = 0
	MaxLimit     = 500
)

type ChattersRequest struct {
	Team     string
	RawDays  string
	RawLimit string
	At       time.Time

	Days int
	// Limit of 0 returns every chatter.
	Limit int
}

func (r *ChattersRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Team = strings.TrimSpace(r.Team)

	days, ok := validator.ParseIntInRange(r.RawDays, DefaultDays, 1, MaxDays)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must be a whole number between 1 and 90",
		})
	}
	limit, ok := validator.ParseIntInRange(r.RawLimit, DefaultLimit, 1, MaxLimit)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a whole number between 1 and 500",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	r.Days = days
	r.Limit = limit
	return nil
}

type ChattersResponse struct {
	Team     string          `json:"team,omitempty"`
	Days     int             `json:"days"`
	From     string          `json:"from"`
	To       string          `json:"to"`
	Total    int             `json:"total"`
	Chatters []RankedChatter `json:"chatters"`
}
