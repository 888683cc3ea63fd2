package ranking

import (
	"context"
	"time"
)

// RankingRepository reads per-chatter aggregates from the sales store,
// ordered by chatter name. An empty team matches every team.
type RankingRepository interface {
	ChatterStats(ctx context.Context, team string, from, to time.Time) ([]ChatterStat, error)
}
