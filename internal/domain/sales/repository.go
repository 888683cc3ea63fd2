package sales

import (
	"context"
	"time"
)

// PageTotal is the summed sales of one page.
type PageTotal struct {
	Page  string
	Total float64
}

// TeamTotal is the summed sales of one team.
type TeamTotal struct {
	Team  string
	Total float64
}

// SalesRepository reads the sales store. Ranges are [from, to).
// An empty team matches every team.
type SalesRepository interface {
	TotalsByPage(ctx context.Context, team string, from, to time.Time) ([]PageTotal, error)
	TotalsByTeam(ctx context.Context, from, to time.Time) ([]TeamTotal, error)
}
