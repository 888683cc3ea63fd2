package ranking

import (
	"context"
	"time"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/ranking"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/businessday"
)

type RankingServiceImpl struct {
	ranking.RankingRepository
	now func() time.Time
}

func NewRankingService(repo ranking.RankingRepository) ranking.RankingService {
	return &RankingServiceImpl{RankingRepository: repo, now: time.Now}
}

// Chatters implements ranking.RankingService. Tiers are assigned over the
// whole population before the limit is applied.
func (s *RankingServiceImpl) Chatters(ctx context.Context, caller access.Caller, req ranking.ChattersRequest) (ranking.ChattersResponse, error) {
	if err := access.Authorize(caller, access.RoleUser); err != nil {
		return ranking.ChattersResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return ranking.ChattersResponse{}, err
	}

	from, to := businessday.SalesWindow(s.at(req.At), req.Days)
	stats, err := s.ChatterStats(ctx, req.Team, from, to)
	if err != nil {
		return ranking.ChattersResponse{}, err
	}

	ranked := ranking.Rank(stats)
	total := len(ranked)
	if req.Limit > 0 && req.Limit < total {
		ranked = ranked[:req.Limit]
	}

	return ranking.ChattersResponse{
		Team:     req.Team,
		Days:     req.Days,
		From:     from.Format(businessday.DateLayout),
		To:       to.Format(businessday.DateLayout),
		Total:    total,
		Chatters: ranked,
	}, nil
}

func (s *RankingServiceImpl) at(pinned time.Time) time.Time {
	if pinned.IsZero() {
		return s.now()
	}
	return pinned
}
