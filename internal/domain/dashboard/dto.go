package dashboard

import (
	"strings"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/ranking"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/businessday"
)

// TopChatters is the number of ranked chatters shown on the dashboard.
const TopChatters = 5

// RankingDays is the trailing window of the dashboard leaderboard.
const RankingDays = 7

type OverviewRequest struct {
	Team string
}

func (r *OverviewRequest) Normalize() {
	r.Team = strings.TrimSpace(r.Team)
}

type SalesToday struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

type ShiftSales struct {
	Shift businessday.SalesShift `json:"shift"`
	Total float64                `json:"total"`
}

type AttendanceNow struct {
	Day   string            `json:"day"`
	Shift businessday.Shift `json:"shift"`
	attendance.Tally
}

type OverviewResponse struct {
	Team         string                  `json:"team,omitempty"`
	SalesToday   SalesToday              `json:"sales_today"`
	CurrentShift ShiftSales              `json:"current_shift"`
	Attendance   AttendanceNow           `json:"attendance"`
	TopChatters  []ranking.RankedChatter `json:"top_chatters"`
}
