package sales

import (
	"context"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
)

type SalesService interface {
	// Summary returns per-page totals over the trailing days.
	Summary(ctx context.Context, caller access.Caller, req SummaryRequest) (SummaryResponse, error)
	// TeamTotals returns one row per configured team, zero-filled.
	TeamTotals(ctx context.Context, caller access.Caller, req TeamTotalsRequest) (TeamTotalsResponse, error)
	// CurrentShift returns per-page totals since the current 8-hour shift began.
	CurrentShift(ctx context.Context, caller access.Caller, req ShiftRequest) (ShiftResponse, error)
	// Export renders Summary as an xlsx workbook.
	Export(ctx context.Context, caller access.Caller, req SummaryRequest) (ExportFile, error)
}
