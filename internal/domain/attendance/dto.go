package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/businessday"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/validator"
)

const (
	DefaultDays = 7
	MaxDays     = 90
)

// StatusRequest selects a business day and shift. Empty values mean "now".
type StatusRequest struct {
	Day   string
	Shift string
	Team  string
	// At picks the running shift when Day is empty; zero means now.
	At time.Time

	ParsedShift businessday.Shift
}

func (r *StatusRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Day = strings.TrimSpace(r.Day)
	r.Shift = strings.TrimSpace(strings.ToLower(r.Shift))
	r.Team = strings.TrimSpace(r.Team)

	if _, ok := validator.IsValidDate(r.Day); r.Day != "" && !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day must be in YYYY-MM-DD format",
		})
	}
	if r.Shift != "" {
		shift, err := businessday.ParseShift(r.Shift)
		if err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "shift",
				Message: "shift must be one of prime, midshift, closing",
			})
		} else {
			r.ParsedShift = shift
		}
	}
	if (r.Day == "") != (r.Shift == "") {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day and shift must be given together",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PageStatus struct {
	PageKey         string    `json:"page_key"`
	PageName        string    `json:"page_name"`
	Team            *string   `json:"team"`
	State           PageState `json:"status"`
	ClockIns        int       `json:"clock_ins"`
	Covers          int       `json:"covers"`
	AssignedChatter *string   `json:"assigned_chatter"`
}

type StatusResponse struct {
	Day   string            `json:"day"`
	Shift businessday.Shift `json:"shift"`
	Tally
	Pages []PageStatus `json:"pages"`
}

type SummaryRequest struct {
	Team    string
	RawDays string

	Days int
}

func (r *SummaryRequest) Validate() error {
	r.Team = strings.TrimSpace(r.Team)

	days, ok := validator.ParseIntInRange(r.RawDays, DefaultDays, 1, MaxDays)
	if !ok {
		return validator.ValidationErrors{{
			Field:   "days",
			Message: "days must be a whole number between 1 and 90",
		}}
	}
	r.Days = days
	return nil
}

// DaySummary tallies every (page, shift) pair of one business day.
type DaySummary struct {
	Day string `json:"day"`
	Tally
}

type SummaryResponse struct {
	Days int          `json:"days"`
	Rows []DaySummary `json:"rows"`
}
