// Package mocks holds testify mocks of the domain repositories and services.
package mocks

import (
	"context"
	"time"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/master/page"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/master/team"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/ranking"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/roster"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/sales"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/businessday"
	"github.com/stretchr/testify/mock"
)

type TeamRepository struct {
	mock.Mock
}

func (m *TeamRepository) Create(ctx context.Context, name string) (team.Team, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(team.Team), args.Error(1)
}

func (m *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(team.Team), args.Error(1)
}

func (m *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(team.Team), args.Error(1)
}

func (m *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	args := m.Called(ctx)
	return args.Get(0).([]team.Team), args.Error(1)
}

func (m *TeamRepository) Update(ctx context.Context, req team.UpdateTeamRequest) (team.Team, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(team.Team), args.Error(1)
}

func (m *TeamRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type PageRepository struct {
	mock.Mock
}

func (m *PageRepository) Create(ctx context.Context, p page.Page) (page.Page, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(page.Page), args.Error(1)
}

func (m *PageRepository) GetByID(ctx context.Context, id int64) (page.Page, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(page.Page), args.Error(1)
}

func (m *PageRepository) List(ctx context.Context, filter page.ListPagesRequest) ([]page.Page, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]page.Page), args.Error(1)
}

func (m *PageRepository) Update(ctx context.Context, req page.UpdatePageRequest) (page.Page, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(page.Page), args.Error(1)
}

func (m *PageRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type RosterRepository struct {
	mock.Mock
}

func (m *RosterRepository) Create(ctx context.Context, slot roster.Slot) (roster.Slot, error) {
	args := m.Called(ctx, slot)
	return args.Get(0).(roster.Slot), args.Error(1)
}

func (m *RosterRepository) GetByID(ctx context.Context, id int64) (roster.Slot, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(roster.Slot), args.Error(1)
}

func (m *RosterRepository) List(ctx context.Context, filter roster.ListSlotsRequest) ([]roster.Slot, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]roster.Slot), args.Error(1)
}

func (m *RosterRepository) Update(ctx context.Context, req roster.UpdateSlotRequest) (roster.Slot, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(roster.Slot), args.Error(1)
}

func (m *RosterRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type SalesRepository struct {
	mock.Mock
}

func (m *SalesRepository) TotalsByPage(ctx context.Context, team string, from, to time.Time) ([]sales.PageTotal, error) {
	args := m.Called(ctx, team, from, to)
	return args.Get(0).([]sales.PageTotal), args.Error(1)
}

func (m *SalesRepository) TotalsByTeam(ctx context.Context, from, to time.Time) ([]sales.TeamTotal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]sales.TeamTotal), args.Error(1)
}

type RankingRepository struct {
	mock.Mock
}

func (m *RankingRepository) ChatterStats(ctx context.Context, team string, from, to time.Time) ([]ranking.ChatterStat, error) {
	args := m.Called(ctx, team, from, to)
	return args.Get(0).([]ranking.ChatterStat), args.Error(1)
}

type AttendanceRepository struct {
	mock.Mock
}

func (m *AttendanceRepository) CountsByShift(ctx context.Context, day string, shift businessday.Shift) ([]attendance.ClockInCount, error) {
	args := m.Called(ctx, day, shift)
	return args.Get(0).([]attendance.ClockInCount), args.Error(1)
}

func (m *AttendanceRepository) CountsByDays(ctx context.Context, fromDay, toDay string) ([]attendance.ClockInCount, error) {
	args := m.Called(ctx, fromDay, toDay)
	return args.Get(0).([]attendance.ClockInCount), args.Error(1)
}
