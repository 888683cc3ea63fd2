package mocks

import (
	"context"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/ranking"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/sales"
	"github.com/stretchr/testify/mock"
)

type SalesService struct {
	mock.Mock
}

func (m *SalesService) Summary(ctx context.Context, caller access.Caller, req sales.SummaryRequest) (sales.SummaryResponse, error) {
	args := m.Called(ctx, caller, req)
	return args.Get(0).(sales.SummaryResponse), args.Error(1)
}

func (m *SalesService) TeamTotals(ctx context.Context, caller access.Caller, req sales.TeamTotalsRequest) (sales.TeamTotalsResponse, error) {
	args := m.Called(ctx, caller, req)
	return args.Get(0).(sales.TeamTotalsResponse), args.Error(1)
}

func (m *SalesService) CurrentShift(ctx context.Context, caller access.Caller, req sales.ShiftRequest) (sales.ShiftResponse, error) {
	args := m.Called(ctx, caller, req)
	return args.Get(0).(sales.ShiftResponse), args.Error(1)
}

func (m *SalesService) Export(ctx context.Context, caller access.Caller, req sales.SummaryRequest) (sales.ExportFile, error) {
	args := m.Called(ctx, caller, req)
	return args.Get(0).(sales.ExportFile), args.Error(1)
}

type AttendanceService struct {
	mock.Mock
}

func (m *AttendanceService) Status(ctx context.Context, caller access.Caller, req attendance.StatusRequest) (attendance.StatusResponse, error) {
	args := m.Called(ctx, caller, req)
	return args.Get(0).(attendance.StatusResponse), args.Error(1)
}

func (m *AttendanceService) Summary(ctx context.Context, caller access.Caller, req attendance.SummaryRequest) (attendance.SummaryResponse, error) {
	args := m.Called(ctx, caller, req)
	return args.Get(0).(attendance.SummaryResponse), args.Error(1)
}

type RankingService struct {
	mock.Mock
}

func (m *RankingService) Chatters(ctx context.Context, caller access.Caller, req ranking.ChattersRequest) (ranking.ChattersResponse, error) {
	args := m.Called(ctx, caller, req)
	return args.Get(0).(ranking.ChattersResponse), args.Error(1)
}
