package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/businessday"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/database"
)

// attendanceRepository reads the external clock-in store. It never writes.
type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const clockInCountColumns = `
	SELECT business_day::text, shift, page_key,
		COUNT(*) FILTER (WHERE NOT is_cover) AS regular,
		COUNT(*) FILTER (WHERE is_cover) AS cover
	FROM clock_ins
`

// CountsByShift implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountsByShift(ctx context.Context, day string, shift businessday.Shift) ([]attendance.ClockInCount, error) {
	q := GetQuerier(ctx, a.db)

	query := clockInCountColumns + `
		WHERE business_day = $1::date AND shift = $2
		GROUP BY business_day, shift, page_key
		ORDER BY page_key ASC
	`

	return a.queryCounts(ctx, q, query, day, string(shift))
}

// CountsByDays implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountsByDays(ctx context.Context, fromDay, toDay string) ([]attendance.ClockInCount, error) {
	q := GetQuerier(ctx, a.db)

	query := clockInCountColumns + `
		WHERE business_day BETWEEN $1::date AND $2::date
		GROUP BY business_day, shift, page_key
		ORDER BY business_day ASC, page_key ASC
	`

	return a.queryCounts(ctx, q, query, fromDay, toDay)
}

func (a *attendanceRepository) queryCounts(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]attendance.ClockInCount, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count clock-ins: %w", err)
	}
	defer rows.Close()

	counts := make([]attendance.ClockInCount, 0)
	for rows.Next() {
		var c attendance.ClockInCount
		var shift string
		if err := rows.Scan(&c.Day, &shift, &c.PageKey, &c.Regular, &c.Cover); err != nil {
			return nil, fmt.Errorf("failed to scan clock-in count: %w", err)
		}
		c.Shift = businessday.Shift(shift)
		counts = append(counts, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return counts, nil
}
