package attendance

import (
	"context"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
)

type AttendanceService interface {
	Status(ctx context.Context, caller access.Caller, req StatusRequest) (StatusResponse, error)
	Summary(ctx context.Context, caller access.Caller, req SummaryRequest) (SummaryResponse, error)
}
