package attendance

import (
	"context"
	"time"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/master/page"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/roster"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/businessday"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	pageRepo       page.PageRepository
	rosterRepo     roster.RosterRepository
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	pageRepo page.PageRepository,
	rosterRepo roster.RosterRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		pageRepo:       pageRepo,
		rosterRepo:     rosterRepo,
		now:            time.Now,
	}
}

type countKey struct {
	day     string
	shift   businessday.Shift
	pageKey string
}

func indexCounts(counts []attendance.ClockInCount) map[countKey]attendance.ClockInCount {
	index := make(map[countKey]attendance.ClockInCount, len(counts))
	for _, c := range counts {
		index[countKey{c.Day, c.Shift, c.PageKey}] = c
	}
	return index
}

// expectedPages is the active page set clock-ins are checked against.
func (s *AttendanceServiceImpl) expectedPages(ctx context.Context, team string) ([]page.Page, error) {
	return s.pageRepo.List(ctx, page.ListPagesRequest{Team: team, ActiveOnly: true})
}

// Status implements attendance.AttendanceService. Clock-ins under keys that
// are not expected are ignored.
func (s *AttendanceServiceImpl) Status(ctx context.Context, caller access.Caller, req attendance.StatusRequest) (attendance.StatusResponse, error) {
	if err := access.Authorize(caller, access.RoleUser); err != nil {
		return attendance.StatusResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return attendance.StatusResponse{}, err
	}

	day, shift := req.Day, req.ParsedShift
	if day == "" {
		day, shift = businessday.AttendanceShift(s.at(req.At))
	}

	pages, err := s.expectedPages(ctx, req.Team)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	counts, err := s.attendanceRepo.CountsByShift(ctx, day, shift)
	if err != nil {
		return attendance.StatusResponse{}, err
	}
	index := indexCounts(counts)

	slots, err := s.rosterRepo.List(ctx, roster.ListSlotsRequest{Team: req.Team, Shift: string(shift)})
	if err != nil {
		return attendance.StatusResponse{}, err
	}
	assigned := make(map[int64]string, len(slots))
	for _, slot := range slots {
		assigned[slot.PageID] = slot.Chatter
	}

	resp := attendance.StatusResponse{
		Day:   day,
		Shift: shift,
		Pages: make([]attendance.PageStatus, 0, len(pages)),
	}
	for _, p := range pages {
		c := index[countKey{day, shift, p.Key}]
		state := attendance.StateOf(c.Regular, c.Cover)
		resp.Tally.Add(state)

		status := attendance.PageStatus{
			PageKey:  p.Key,
			PageName: p.Name,
			Team:     p.TeamName,
			State:    state,
			ClockIns: c.Regular,
			Covers:   c.Cover,
		}
		if chatter, ok := assigned[p.ID]; ok {
			status.AssignedChatter = &chatter
		}
		resp.Pages = append(resp.Pages, status)
	}

	return resp, nil
}

// Summary implements attendance.AttendanceService. Every expected page is
// counted once per shift of each business day.
func (s *AttendanceServiceImpl) Summary(ctx context.Context, caller access.Caller, req attendance.SummaryRequest) (attendance.SummaryResponse, error) {
	if err := access.Authorize(caller, access.RoleUser); err != nil {
		return attendance.SummaryResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return attendance.SummaryResponse{}, err
	}

	days := businessday.LastNDays(s.now(), req.Days)

	pages, err := s.expectedPages(ctx, req.Team)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	counts, err := s.attendanceRepo.CountsByDays(ctx, days[0], days[len(days)-1])
	if err != nil {
		return attendance.SummaryResponse{}, err
	}
	index := indexCounts(counts)

	rows := make([]attendance.DaySummary, 0, len(days))
	for _, day := range days {
		row := attendance.DaySummary{Day: day}
		for _, shift := range businessday.Shifts {
			for _, p := range pages {
				c := index[countKey{day, shift, p.Key}]
				row.Tally.Add(attendance.StateOf(c.Regular, c.Cover))
			}
		}
		rows = append(rows, row)
	}

	return attendance.SummaryResponse{Days: req.Days, Rows: rows}, nil
}

func (s *AttendanceServiceImpl) at(pinned time.Time) time.Time {
	if pinned.IsZero() {
		return s.now()
	}
	return pinned
}
