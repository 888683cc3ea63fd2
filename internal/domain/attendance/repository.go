package attendance

import (
	"context"

	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/businessday"
)

// ClockInCount is the number of clock-ins one page received in one shift.
type ClockInCount struct {
	Day     string
	Shift   businessday.Shift
	PageKey string
	Regular int
	Cover   int
}

// AttendanceRepository reads the attendance store. Days are inclusive business days.
type AttendanceRepository interface {
	CountsByShift(ctx context.Context, day string, shift businessday.Shift) ([]ClockInCount, error)
	CountsByDays(ctx context.Context, fromDay, toDay string) ([]ClockInCount, error)
}
