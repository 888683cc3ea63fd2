package http

import (
	"net/http"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/manager-portal-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/manager-portal-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// Overview returns the landing page figures
	Overview(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

func (h *dashboardHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	req := dashboard.OverviewRequest{Team: r.URL.Query().Get("team")}

	result, err := h.dashboardService.Overview(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
