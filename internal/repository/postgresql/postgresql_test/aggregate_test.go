package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/ranking"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/sales"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/businessday"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/database"
	"github.com/cmlabs-hris/manager-portal-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertSale(t *testing.T, db *database.DB, team, page, chatter string, amount interface{}, at string) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		`INSERT INTO sales (team, page, chatter, amount, created_at) VALUES ($1, $2, $3, $4, $5::timestamptz)`,
		team, page, chatter, amount, at)
	require.NoError(t, err)
}

func insertClockIn(t *testing.T, db *database.DB, day string, shift businessday.Shift, pageKey string, cover bool) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		`INSERT INTO clock_ins (business_day, shift, page_key, chatter, is_cover) VALUES ($1::date, $2, $3, 'x', $4)`,
		day, string(shift), pageKey, cover)
	require.NoError(t, err)
}

func manilaDay(t *testing.T, day string) (time.Time, time.Time) {
	t.Helper()
	start, err := time.ParseInLocation(businessday.DateLayout, day, businessday.Location)
	require.NoError(t, err)
	return start, start.AddDate(0, 0, 1)
}

func TestSalesRepository_TotalsByPage(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := postgresql.NewSalesRepository(db)
	from, to := manilaDay(t, "2024-01-15")

	insertSale(t, db, "alpha", "pg-1", "ana", 100.5, "2024-01-15T01:00:00+08:00")
	insertSale(t, db, "alpha", "pg-1", "ana", 50, "2024-01-15T23:00:00+08:00")
	insertSale(t, db, "alpha", "pg-2", "ben", nil, "2024-01-15T10:00:00+08:00")
	insertSale(t, db, "beta", "pg-9", "cid", 999, "2024-01-15T10:00:00+08:00")
	// outside the window on both sides
	insertSale(t, db, "alpha", "pg-1", "ana", 7, "2024-01-14T23:59:59+08:00")
	insertSale(t, db, "alpha", "pg-1", "ana", 7, "2024-01-16T00:00:00+08:00")

	rows, err := repo.TotalsByPage(ctx, "alpha", from, to)
	require.NoError(t, err)
	assert.Equal(t, []sales.PageTotal{{Page: "pg-1", Total: 150.5}, {Page: "pg-2", Total: 0}}, rows)

	all, err := repo.TotalsByPage(ctx, "", from, to)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := repo.TotalsByPage(ctx, "gamma", from, to)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestSalesRepository_TotalsByTeam(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := postgresql.NewSalesRepository(db)
	from, to := manilaDay(t, "2024-01-15")

	insertSale(t, db, "beta", "pg-9", "cid", 20, "2024-01-15T10:00:00+08:00")
	insertSale(t, db, "alpha", "pg-1", "ana", 5, "2024-01-15T11:00:00+08:00")
	insertSale(t, db, "alpha", "pg-2", "ben", 5, "2024-01-15T12:00:00+08:00")
	insertSale(t, db, "gamma", "pg-5", "dan", nil, "2024-01-15T12:00:00+08:00")

	rows, err := repo.TotalsByTeam(ctx, from, to)
	require.NoError(t, err)
	assert.Equal(t, []sales.TeamTotal{
		{Team: "alpha", Total: 10},
		{Team: "beta", Total: 20},
		{Team: "gamma", Total: 0},
	}, rows)
}

func TestRankingRepository_ActiveDaysFollowManilaCalendar(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := postgresql.NewRankingRepository(db)
	from, _ := manilaDay(t, "2024-01-14")
	_, to := manilaDay(t, "2024-01-15")

	// 02:00 and 20:00 on Jan 15 Manila sit on either side of the UTC-8 midnight.
	insertSale(t, db, "alpha", "pg-1", "ana", 100, "2024-01-14T18:00:00Z")
	insertSale(t, db, "alpha", "pg-1", "ana", 100, "2024-01-15T12:00:00Z")
	// 23:30 Jan 14 and 00:30 Jan 15 Manila are two days.
	insertSale(t, db, "alpha", "pg-2", "ben", 10, "2024-01-14T15:30:00Z")
	insertSale(t, db, "alpha", "pg-2", "ben", 10, "2024-01-14T16:30:00Z")
	insertSale(t, db, "beta", "pg-9", "cid", 1, "2024-01-15T01:00:00Z")

	stats, err := repo.ChatterStats(ctx, "alpha", from, to)
	require.NoError(t, err)
	assert.Equal(t, []ranking.ChatterStat{
		{Chatter: "ana", Total: 200, ActiveDays: 1},
		{Chatter: "ben", Total: 20, ActiveDays: 2},
	}, stats)
	assert.Equal(t, 200.0, stats[0].DailyAverage())

	everyone, err := repo.ChatterStats(ctx, "", from, to)
	require.NoError(t, err)
	assert.Len(t, everyone, 3)
}

func TestAttendanceRepository_Counts(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)

	insertClockIn(t, db, "2024-01-15", businessday.ShiftPrime, "pg-1", false)
	insertClockIn(t, db, "2024-01-15", businessday.ShiftPrime, "pg-1", true)
	insertClockIn(t, db, "2024-01-15", businessday.ShiftPrime, "pg-2", true)
	insertClockIn(t, db, "2024-01-15", businessday.ShiftClosing, "pg-1", false)
	insertClockIn(t, db, "2024-01-16", businessday.ShiftPrime, "pg-1", false)
	insertClockIn(t, db, "2024-01-18", businessday.ShiftPrime, "pg-1", false)

	prime, err := repo.CountsByShift(ctx, "2024-01-15", businessday.ShiftPrime)
	require.NoError(t, err)
	assert.Equal(t, []attendance.ClockInCount{
		{Day: "2024-01-15", Shift: businessday.ShiftPrime, PageKey: "pg-1", Regular: 1, Cover: 1},
		{Day: "2024-01-15", Shift: businessday.ShiftPrime, PageKey: "pg-2", Regular: 0, Cover: 1},
	}, prime)

	empty, err := repo.CountsByShift(ctx, "2024-01-15", businessday.ShiftMidshift)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	days, err := repo.CountsByDays(ctx, "2024-01-15", "2024-01-16")
	require.NoError(t, err)
	require.Len(t, days, 4)
	assert.Equal(t, "2024-01-15", days[0].Day)
	assert.Equal(t, "2024-01-16", days[3].Day)
}
