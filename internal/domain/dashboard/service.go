package dashboard

import (
	"context"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
)

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// Overview gathers the landing page figures concurrently
	Overview(ctx context.Context, caller access.Caller, req OverviewRequest) (*OverviewResponse, error)
}
