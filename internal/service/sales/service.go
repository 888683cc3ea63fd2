package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/master/team"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/sales"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/businessday"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/export"
)

type SalesServiceImpl struct {
	salesRepo sales.SalesRepository
	teamRepo  team.TeamRepository
	now       func() time.Time
}

func NewSalesService(salesRepo sales.SalesRepository, teamRepo team.TeamRepository) sales.SalesService {
	return &SalesServiceImpl{
		salesRepo: salesRepo,
		teamRepo:  teamRepo,
		now:       time.Now,
	}
}

func pageRows(totals []sales.PageTotal) ([]sales.PageTotalRow, float64) {
	rows := make([]sales.PageTotalRow, 0, len(totals))
	var sum float64
	for _, t := range totals {
		rows = append(rows, sales.PageTotalRow{Page: t.Page, Total: t.Total})
		sum += t.Total
	}
	return rows, sum
}

// Summary implements sales.SalesService.
func (s *SalesServiceImpl) Summary(ctx context.Context, caller access.Caller, req sales.SummaryRequest) (sales.SummaryResponse, error) {
	if err := access.Authorize(caller, access.RoleUser); err != nil {
		return sales.SummaryResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return sales.SummaryResponse{}, err
	}

	from, to := businessday.SalesWindow(s.at(req.At), req.Days)
	totals, err := s.salesRepo.TotalsByPage(ctx, req.Team, from, to)
	if err != nil {
		return sales.SummaryResponse{}, err
	}

	rows, sum := pageRows(totals)
	return sales.SummaryResponse{
		Team:  req.Team,
		Days:  req.Days,
		From:  from.Format(businessday.DateLayout),
		To:    to.Format(businessday.DateLayout),
		Total: sum,
		Rows:  rows,
	}, nil
}

// TeamTotals implements sales.SalesService. Configured teams come first in
// name order; teams only seen in the sales store follow.
func (s *SalesServiceImpl) TeamTotals(ctx context.Context, caller access.Caller, req sales.TeamTotalsRequest) (sales.TeamTotalsResponse, error) {
	if err := access.Authorize(caller, access.RoleUser); err != nil {
		return sales.TeamTotalsResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return sales.TeamTotalsResponse{}, err
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return sales.TeamTotalsResponse{}, err
	}

	from, to := businessday.SalesWindow(s.now(), req.Days)
	totals, err := s.salesRepo.TotalsByTeam(ctx, from, to)
	if err != nil {
		return sales.TeamTotalsResponse{}, err
	}

	byTeam := make(map[string]float64, len(totals))
	for _, t := range totals {
		byTeam[t.Team] += t.Total
	}

	rows := make([]sales.TeamTotalRow, 0, len(teams)+len(totals))
	seen := make(map[string]bool, len(teams))
	var sum float64
	for _, t := range teams {
		seen[t.Name] = true
		rows = append(rows, sales.TeamTotalRow{Team: t.Name, Total: byTeam[t.Name]})
		sum += byTeam[t.Name]
	}
	for _, t := range totals {
		if seen[t.Team] {
			continue
		}
		seen[t.Team] = true
		rows = append(rows, sales.TeamTotalRow{Team: t.Team, Total: byTeam[t.Team]})
		sum += byTeam[t.Team]
	}

	return sales.TeamTotalsResponse{
		Days:  req.Days,
		From:  from.Format(businessday.DateLayout),
		To:    to.Format(businessday.DateLayout),
		Total: sum,
		Rows:  rows,
	}, nil
}

// CurrentShift implements sales.SalesService.
func (s *SalesServiceImpl) CurrentShift(ctx context.Context, caller access.Caller, req sales.ShiftRequest) (sales.ShiftResponse, error) {
	if err := access.Authorize(caller, access.RoleUser); err != nil {
		return sales.ShiftResponse{}, err
	}

	now := s.at(req.At)
	shift := businessday.CurrentSalesShift(now)
	totals, err := s.salesRepo.TotalsByPage(ctx, req.Team, shift.Start, now)
	if err != nil {
		return sales.ShiftResponse{}, err
	}

	rows, sum := pageRows(totals)
	return sales.ShiftResponse{
		Team:  req.Team,
		Shift: shift,
		Total: sum,
		Rows:  rows,
	}, nil
}

// Export implements sales.SalesService.
func (s *SalesServiceImpl) Export(ctx context.Context, caller access.Caller, req sales.SummaryRequest) (sales.ExportFile, error) {
	summary, err := s.Summary(ctx, caller, req)
	if err != nil {
		return sales.ExportFile{}, err
	}

	title := fmt.Sprintf("Sales %s to %s", summary.From, summary.To)
	if summary.Team != "" {
		title += " (" + summary.Team + ")"
	}

	rows := make([][]interface{}, 0, len(summary.Rows))
	for _, r := range summary.Rows {
		rows = append(rows, []interface{}{r.Page, r.Total})
	}

	content, err := export.XLSX(export.Table{
		Sheet:   "Sales",
		Title:   title,
		Headers: []string{"Page", "Total"},
		Rows:    rows,
		Footer:  []interface{}{"Total", summary.Total},
	})
	if err != nil {
		return sales.ExportFile{}, err
	}

	return sales.ExportFile{
		Filename:    fmt.Sprintf("sales_%s_%s.xlsx", summary.From, summary.To),
		ContentType: export.ContentTypeXLSX,
		Content:     content,
	}, nil
}

// at returns the pinned instant or the service clock.
func (s *SalesServiceImpl) at(pinned time.Time) time.Time {
	if pinned.IsZero() {
		return s.now()
	}
	return pinned
}
