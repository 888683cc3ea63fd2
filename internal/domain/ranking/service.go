package ranking

import (
	"context"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
)

type RankingService interface {
	Chatters(ctx context.Context, caller access.Caller, req ChattersRequest) (ChattersResponse, error)
}
