package sales

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/master/team"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/sales"
	"github.com/cmlabs-hris/manager-portal-go/internal/mocks"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/businessday"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var fixedNow = time.Date(2024, 1, 15, 10, 30, 0, 0, businessday.Location)

func at(want time.Time) interface{} {
	return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
}

func newTestService() (*SalesServiceImpl, *mocks.SalesRepository, *mocks.TeamRepository) {
	salesRepo := new(mocks.SalesRepository)
	teamRepo := new(mocks.TeamRepository)
	svc := &SalesServiceImpl{
		salesRepo: salesRepo,
		teamRepo:  teamRepo,
		now:       func() time.Time { return fixedNow },
	}
	return svc, salesRepo, teamRepo
}

func TestSummary_EmptyTeamReturnsZeroTotalAndEmptyRows(t *testing.T) {
	svc, salesRepo, _ := newTestService()
	ctx := context.Background()

	weekStart := time.Date(2024, 1, 9, 0, 0, 0, 0, businessday.Location)
	salesRepo.On("TotalsByPage", ctx, "Ghost", at(weekStart), at(fixedNow)).Return([]sales.PageTotal{}, nil)

	got, err := svc.Summary(ctx, mocks.UserCaller, sales.SummaryRequest{Team: "Ghost"})

	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Total)
	assert.NotNil(t, got.Rows)
	assert.Empty(t, got.Rows)
	assert.Equal(t, 7, got.Days)
	assert.Equal(t, "2024-01-09", got.From)
	assert.Equal(t, "2024-01-15", got.To)
}

func TestSummary_SumsRows(t *testing.T) {
	svc, salesRepo, _ := newTestService()
	ctx := context.Background()

	dayStart := time.Date(2024, 1, 15, 0, 0, 0, 0, businessday.Location)
	salesRepo.On("TotalsByPage", ctx, "", at(dayStart), at(fixedNow)).Return([]sales.PageTotal{
		{Page: "page-a", Total: 150.25},
		{Page: "page-b", Total: 49.75},
	}, nil)

	got, err := svc.Summary(ctx, mocks.UserCaller, sales.SummaryRequest{RawDays: "1"})

	require.NoError(t, err)
	assert.Equal(t, 200.0, got.Total)
	assert.Equal(t, []sales.PageTotalRow{{Page: "page-a", Total: 150.25}, {Page: "page-b", Total: 49.75}}, got.Rows)
}

func TestSummary_RejectsDaysOutOfRange(t *testing.T) {
	for _, raw := range []string{"0", "91", "seven", "-3"} {
		svc, salesRepo, _ := newTestService()

		_, err := svc.Summary(context.Background(), mocks.UserCaller, sales.SummaryRequest{RawDays: raw})

		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs), raw)
		assert.Equal(t, "days", verrs[0].Field)
		salesRepo.AssertNotCalled(t, "TotalsByPage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestSummary_PendingCallerNeverReachesStore(t *testing.T) {
	svc, salesRepo, _ := newTestService()

	_, err := svc.Summary(context.Background(), mocks.PendingCaller, sales.SummaryRequest{})

	assert.ErrorIs(t, err, access.ErrAwaitingApproval)
	salesRepo.AssertNotCalled(t, "TotalsByPage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSummary_StoreFailure(t *testing.T) {
	svc, salesRepo, _ := newTestService()
	ctx := context.Background()

	boom := errors.New("connection refused")
	salesRepo.On("TotalsByPage", ctx, "", mock.Anything, mock.Anything).Return([]sales.PageTotal(nil), boom)

	_, err := svc.Summary(ctx, mocks.UserCaller, sales.SummaryRequest{})

	assert.ErrorIs(t, err, boom)
}

func TestTeamTotals_ZeroFillsConfiguredTeams(t *testing.T) {
	svc, salesRepo, teamRepo := newTestService()
	ctx := context.Background()

	teamRepo.On("List", ctx).Return([]team.Team{{ID: 1, Name: "Alpha"}, {ID: 2, Name: "Bravo"}}, nil)
	salesRepo.On("TotalsByTeam", ctx, mock.Anything, at(fixedNow)).Return([]sales.TeamTotal{
		{Team: "Bravo", Total: 40},
		{Team: "Zulu", Total: 10},
	}, nil)

	got, err := svc.TeamTotals(ctx, mocks.UserCaller, sales.TeamTotalsRequest{})

	require.NoError(t, err)
	assert.Equal(t, []sales.TeamTotalRow{
		{Team: "Alpha", Total: 0},
		{Team: "Bravo", Total: 40},
		{Team: "Zulu", Total: 10},
	}, got.Rows)
	assert.Equal(t, 50.0, got.Total)
}

func TestCurrentShift_UsesShiftStart(t *testing.T) {
	svc, salesRepo, _ := newTestService()
	ctx := context.Background()

	shiftStart := time.Date(2024, 1, 15, 8, 0, 0, 0, businessday.Location)
	salesRepo.On("TotalsByPage", ctx, "Alpha", at(shiftStart), at(fixedNow)).Return([]sales.PageTotal{{Page: "page-a", Total: 12}}, nil)

	got, err := svc.CurrentShift(ctx, mocks.UserCaller, sales.ShiftRequest{Team: "Alpha"})

	require.NoError(t, err)
	assert.Equal(t, 8, got.Shift.StartHour)
	assert.Equal(t, "2024-01-15", got.Shift.Date)
	assert.Equal(t, 12.0, got.Total)
}

func TestCurrentShift_PinnedInstantOverridesClock(t *testing.T) {
	svc, salesRepo, _ := newTestService()
	ctx := context.Background()

	pinned := time.Date(2024, 1, 15, 17, 5, 0, 0, businessday.Location)
	shiftStart := time.Date(2024, 1, 15, 16, 0, 0, 0, businessday.Location)
	salesRepo.On("TotalsByPage", ctx, "", at(shiftStart), at(pinned)).Return([]sales.PageTotal{}, nil)

	got, err := svc.CurrentShift(ctx, mocks.UserCaller, sales.ShiftRequest{At: pinned})

	require.NoError(t, err)
	assert.Equal(t, 16, got.Shift.StartHour)
	salesRepo.AssertExpectations(t)
}

func TestSummary_PinnedInstantOverridesClock(t *testing.T) {
	svc, salesRepo, _ := newTestService()
	ctx := context.Background()

	pinned := time.Date(2024, 1, 16, 0, 10, 0, 0, businessday.Location)
	midnight := time.Date(2024, 1, 16, 0, 0, 0, 0, businessday.Location)
	salesRepo.On("TotalsByPage", ctx, "", at(midnight), at(pinned)).Return([]sales.PageTotal{}, nil)

	got, err := svc.Summary(ctx, mocks.UserCaller, sales.SummaryRequest{RawDays: "1", At: pinned})

	require.NoError(t, err)
	assert.Equal(t, "2024-01-16", got.From)
	assert.Equal(t, "2024-01-16", got.To)
}

func TestExport_RendersWorkbook(t *testing.T) {
	svc, salesRepo, _ := newTestService()
	ctx := context.Background()

	salesRepo.On("TotalsByPage", ctx, "", mock.Anything, mock.Anything).Return([]sales.PageTotal{
		{Page: "page-a", Total: 30},
	}, nil)

	file, err := svc.Export(ctx, mocks.UserCaller, sales.SummaryRequest{})

	require.NoError(t, err)
	assert.Equal(t, "sales_2024-01-09_2024-01-15.xlsx", file.Filename)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Sales")
	require.NoError(t, err)
	assert.Equal(t, []string{"page-a", "30"}, rows[3])
	assert.Equal(t, []string{"Total", "30"}, rows[4])
}

func TestExport_Unauthenticated(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Export(context.Background(), mocks.Anonymous, sales.SummaryRequest{})

	assert.ErrorIs(t, err, access.ErrUnauthenticated)
}
