package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/ranking"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/sales"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/database"
)

// localDay buckets a sale into its Asia/Manila calendar day. The offset must be
// an interval: a bare '+08:00' string is a POSIX zone, eight hours west.
const localDay = `(created_at AT TIME ZONE INTERVAL '+08:00')::date`

// salesRepositoryImpl reads the external sales store. It never writes.
type salesRepositoryImpl struct {
	db *database.DB
}

func NewSalesRepository(db *database.DB) sales.SalesRepository {
	return &salesRepositoryImpl{db: db}
}

// TotalsByPage implements sales.SalesRepository.
func (r *salesRepositoryImpl) TotalsByPage(ctx context.Context, team string, from, to time.Time) ([]sales.PageTotal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT page, COALESCE(SUM(amount), 0)::float8 AS total
		FROM sales
		WHERE created_at >= $1 AND created_at < $2
		  AND ($3 = '' OR team = $3)
		GROUP BY page
		ORDER BY total DESC, page ASC
	`

	rows, err := q.Query(ctx, query, from, to, team)
	if err != nil {
		return nil, fmt.Errorf("failed to sum sales by page: %w", err)
	}
	defer rows.Close()

	totals := make([]sales.PageTotal, 0)
	for rows.Next() {
		var t sales.PageTotal
		if err := rows.Scan(&t.Page, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan page total: %w", err)
		}
		totals = append(totals, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return totals, nil
}

// TotalsByTeam implements sales.SalesRepository.
func (r *salesRepositoryImpl) TotalsByTeam(ctx context.Context, from, to time.Time) ([]sales.TeamTotal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT team, COALESCE(SUM(amount), 0)::float8 AS total
		FROM sales
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY team
		ORDER BY team ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum sales by team: %w", err)
	}
	defer rows.Close()

	totals := make([]sales.TeamTotal, 0)
	for rows.Next() {
		var t sales.TeamTotal
		if err := rows.Scan(&t.Team, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan team total: %w", err)
		}
		totals = append(totals, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return totals, nil
}

type rankingRepositoryImpl struct {
	db *database.DB
}

// NewRankingRepository reads chatter aggregates from the sales store.
func NewRankingRepository(db *database.DB) ranking.RankingRepository {
	return &rankingRepositoryImpl{db: db}
}

// ChatterStats implements ranking.RankingRepository. Active days are local
// calendar days with at least one sale.
func (r *rankingRepositoryImpl) ChatterStats(ctx context.Context, team string, from, to time.Time) ([]ranking.ChatterStat, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT chatter,
			COALESCE(SUM(amount), 0)::float8 AS total,
			COUNT(DISTINCT ` + localDay + `) AS active_days
		FROM sales
		WHERE created_at >= $1 AND created_at < $2
		  AND ($3 = '' OR team = $3)
		  AND chatter <> ''
		GROUP BY chatter
		ORDER BY chatter ASC
	`

	rows, err := q.Query(ctx, query, from, to, team)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate chatter sales: %w", err)
	}
	defer rows.Close()

	stats := make([]ranking.ChatterStat, 0)
	for rows.Next() {
		var s ranking.ChatterStat
		if err := rows.Scan(&s.Chatter, &s.Total, &s.ActiveDays); err != nil {
			return nil, fmt.Errorf("failed to scan chatter stat: %w", err)
		}
		stats = append(stats, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return stats, nil
}
