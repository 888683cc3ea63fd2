package dashboard

import (
	"context"
	"strconv"
	"time"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/ranking"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/sales"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	sales      sales.SalesService
	attendance attendance.AttendanceService
	ranking    ranking.RankingService
	now        func() time.Time
}

func NewDashboardService(
	salesService sales.SalesService,
	attendanceService attendance.AttendanceService,
	rankingService ranking.RankingService,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		sales:      salesService,
		attendance: attendanceService,
		ranking:    rankingService,
		now:        time.Now,
	}
}

// Overview runs the four dashboard reads in parallel against the three stores.
// All four read the same instant. The first failure cancels the rest.
func (s *DashboardServiceImpl) Overview(ctx context.Context, caller access.Caller, req dashboard.OverviewRequest) (*dashboard.OverviewResponse, error) {
	if err := access.Authorize(caller, access.RoleUser); err != nil {
		return nil, err
	}
	req.Normalize()
	at := s.now()

	var (
		salesToday   dashboard.SalesToday
		currentShift dashboard.ShiftSales
		attendanceAt dashboard.AttendanceNow
		topChatters  []ranking.RankedChatter
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Sales since local midnight
	g.Go(func() error {
		summary, err := s.sales.Summary(gCtx, caller, sales.SummaryRequest{Team: req.Team, RawDays: "1", At: at})
		if err != nil {
			return err
		}
		salesToday = dashboard.SalesToday{Date: summary.To, Total: summary.Total}
		return nil
	})

	// 2. Sales of the running 8-hour shift
	g.Go(func() error {
		shift, err := s.sales.CurrentShift(gCtx, caller, sales.ShiftRequest{Team: req.Team, At: at})
		if err != nil {
			return err
		}
		currentShift = dashboard.ShiftSales{Shift: shift.Shift, Total: shift.Total}
		return nil
	})

	// 3. Clock-ins of the running attendance shift
	g.Go(func() error {
		status, err := s.attendance.Status(gCtx, caller, attendance.StatusRequest{Team: req.Team, At: at})
		if err != nil {
			return err
		}
		attendanceAt = dashboard.AttendanceNow{Day: status.Day, Shift: status.Shift, Tally: status.Tally}
		return nil
	})

	// 4. Leaderboard
	g.Go(func() error {
		ranked, err := s.ranking.Chatters(gCtx, caller, ranking.ChattersRequest{
			Team:     req.Team,
			RawDays:  strconv.Itoa(dashboard.RankingDays),
			RawLimit: strconv.Itoa(dashboard.TopChatters),
			At:       at,
		})
		if err != nil {
			return err
		}
		topChatters = ranked.Chatters
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.OverviewResponse{
		Team:         req.Team,
		SalesToday:   salesToday,
		CurrentShift: currentShift,
		Attendance:   attendanceAt,
		TopChatters:  topChatters,
	}, nil
}
