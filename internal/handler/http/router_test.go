package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/ranking"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/sales"
	"github.com/cmlabs-hris/manager-portal-go/internal/handler/http/response"
	"github.com/cmlabs-hris/manager-portal-go/internal/mocks"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountsByEmail map[string]access.Caller

func (a accountsByEmail) LookupCaller(ctx context.Context, email string) (access.Caller, error) {
	if c, ok := a[email]; ok {
		return c, nil
	}
	return access.Caller{}, access.ErrUnknownAccount
}

type routerFixture struct {
	tokens  jwt.Service
	router  http.Handler
	sales   *mocks.SalesService
	ranking *mocks.RankingService
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	f := &routerFixture{
		tokens:  jwt.NewJWTService(handlerTestSecret, "1h", false),
		sales:   new(mocks.SalesService),
		ranking: new(mocks.RankingService),
	}

	accounts := accountsByEmail{}
	for _, c := range []access.Caller{mocks.ManagerCaller, mocks.UserCaller, mocks.PendingCaller} {
		accounts[c.Email] = c
	}
	gate := access.NewGate(access.NewAllowList([]string{mocks.AdminCaller.Email}), accounts)

	f.router = NewRouter(
		RouterOptions{Env: "test", AllowedOrigins: []string{"http://localhost:3000"}, LogLevel: slog.LevelError},
		f.tokens,
		gate,
		Handlers{
			Auth:       createAuthHandler(t),
			Account:    NewAccountHandler(nil),
			Master:     NewMasterHandler(nil),
			Roster:     NewRosterHandler(nil),
			Sales:      NewSalesHandler(f.sales),
			Attendance: NewAttendanceHandler(nil),
			Ranking:    NewRankingHandler(f.ranking),
			Dashboard:  NewDashboardHandler(nil),
		},
	)
	return f
}

func (f *routerFixture) do(t *testing.T, method, target string, caller *access.Caller, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if caller != nil {
		token, expiresAt, err := f.tokens.GenerateSessionToken(*caller)
		require.NoError(t, err)
		req.AddCookie(f.tokens.SessionCookie(token, expiresAt))
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestRouter_AnonymousIsUnauthorized(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/sales/summary", nil, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, response.CodeUnauthorized, decodeEnvelope(t, rec).Error.Code)
}

func TestRouter_PendingCallerAwaitsApproval(t *testing.T) {
	f := newRouterFixture(t)

	for _, target := range []string{"/api/v1/sales/summary", "/api/v1/dashboard", "/api/v1/rankings/chatters"} {
		rec := f.do(t, http.MethodGet, target, &mocks.PendingCaller, "")
		assert.Equal(t, http.StatusForbidden, rec.Code, target)
		assert.Equal(t, response.CodeAwaitingApproval, decodeEnvelope(t, rec).Error.Code, target)
	}
	f.sales.AssertNotCalled(t, "Summary", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_RoleGuards(t *testing.T) {
	f := newRouterFixture(t)

	cases := []struct {
		method string
		target string
		caller access.Caller
	}{
		{http.MethodPost, "/api/v1/teams", mocks.ManagerCaller},
		{http.MethodPatch, "/api/v1/pages/3", mocks.ManagerCaller},
		{http.MethodPost, "/api/v1/roster", mocks.UserCaller},
		{http.MethodDelete, "/api/v1/roster/9", mocks.UserCaller},
		{http.MethodGet, "/api/v1/users", mocks.ManagerCaller},
		{http.MethodPost, "/api/v1/users/approve", mocks.UserCaller},
	}
	for _, c := range cases {
		caller := c.caller
		rec := f.do(t, c.method, c.target, &caller, `{"name":"x"}`)
		assert.Equal(t, http.StatusForbidden, rec.Code, "%s %s", c.method, c.target)
		assert.Equal(t, response.CodeForbidden, decodeEnvelope(t, rec).Error.Code)
	}
}

func TestRouter_AllowListedAdminPassesGuardsWithoutAccount(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodPatch, "/api/v1/teams/abc", &mocks.AdminCaller, `{"name":"x"}`)

	// The guard lets the admin through; the malformed id is rejected before any store call.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, response.CodeValidation, resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "id")
}

func TestRouter_SalesSummary(t *testing.T) {
	f := newRouterFixture(t)
	f.sales.On("Summary", mock.Anything, mock.MatchedBy(func(c access.Caller) bool {
		return c.Email == mocks.UserCaller.Email
	}), sales.SummaryRequest{Team: "alpha", RawDays: "3"}).
		Return(sales.SummaryResponse{Team: "alpha", Days: 3, Total: 0, Rows: []sales.PageTotalRow{}}, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/sales/summary?team=alpha&days=3", &mocks.UserCaller, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Total float64           `json:"total"`
			Rows  []json.RawMessage `json:"rows"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Zero(t, body.Data.Total)
	assert.NotNil(t, body.Data.Rows)
	assert.Empty(t, body.Data.Rows)
	f.sales.AssertExpectations(t)
}

func TestRouter_SalesSummaryValidation(t *testing.T) {
	f := newRouterFixture(t)
	f.sales.On("Summary", mock.Anything, mock.Anything, sales.SummaryRequest{RawDays: "500"}).
		Return(sales.SummaryResponse{}, validator.ValidationErrors{{Field: "days", Message: "days must be between 1 and 90"}})

	rec := f.do(t, http.MethodGet, "/api/v1/sales/summary?days=500", &mocks.ManagerCaller, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, response.CodeValidation, resp.Error.Code)
	assert.Equal(t, "days must be between 1 and 90", resp.Error.Details["days"])
}

func TestRouter_SalesExportStreamsWorkbook(t *testing.T) {
	f := newRouterFixture(t)
	f.sales.On("Export", mock.Anything, mock.Anything, sales.SummaryRequest{RawDays: "7"}).
		Return(sales.ExportFile{Filename: "sales_2024-01-09_2024-01-15.xlsx", ContentType: "application/octet-stream", Content: []byte("PK")}, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/sales/export?days=7", &mocks.UserCaller, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="sales_2024-01-09_2024-01-15.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "PK", rec.Body.String())
}

func TestRouter_RankingStoreFailure(t *testing.T) {
	f := newRouterFixture(t)
	f.ranking.On("Chatters", mock.Anything, mock.Anything, ranking.ChattersRequest{RawLimit: "5"}).
		Return(ranking.ChattersResponse{}, errors.New("connection refused"))

	rec := f.do(t, http.MethodGet, "/api/v1/rankings/chatters?limit=5", &mocks.UserCaller, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, response.CodeStoreFailure, resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, "connection refused")
}

func TestRouter_UnknownRoute(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/nope", &mocks.UserCaller, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
