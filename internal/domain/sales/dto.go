package sales

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

type PageTotalRow struct {
	Page  string  `json:"page"`
	Total float64 `json:"total"`
}

type TeamTotalRow struct {
	Team  string  `json:"team"`
	Total float64 `json:"total"`
}

// SummaryRequest carries the raw query parameters of GET /sales/summary.
type SummaryRequest struct {
	Team    string
	RawDays string
	// At pins the window to an instant; zero means now.
	At time.Time

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

// SummaryResponse always carries a total and a non-nil rows slice.
type SummaryResponse struct {
	Team  string         `json:"team,omitempty"`
	Days  int            `json:"days"`
	From  string         `json:"from"`
	To    string         `json:"to"`
	Total float64        `json:"total"`
	Rows  []PageTotalRow `json:"rows"`
}

type TeamTotalsRequest struct {
	RawDays string

	Days int
}

func (r *TeamTotalsRequest) Validate() error {
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

type TeamTotalsResponse struct {
	Days  int            `json:"days"`
	From  string         `json:"from"`
	To    string         `json:"to"`
	Total float64        `json:"total"`
	Rows  []TeamTotalRow `json:"rows"`
}

type ShiftRequest struct {
	Team string
	At   time.Time
}

type ShiftResponse struct {
	Team  string                 `json:"team,omitempty"`
	Shift businessday.SalesShift `json:"shift"`
	Total float64                `json:"total"`
	Rows  []PageTotalRow         `json:"rows"`
}

// ExportFile is a rendered spreadsheet ready to be streamed.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
