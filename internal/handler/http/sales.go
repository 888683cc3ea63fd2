package http

import (
	"net/http"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/sales"
	"github.com/cmlabs-hris/manager-portal-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/manager-portal-go/internal/handler/http/response"
)

type SalesHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	TeamTotals(w http.ResponseWriter, r *http.Request)
	CurrentShift(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type salesHandlerImpl struct {
	salesService sales.SalesService
}

func NewSalesHandler(salesService sales.SalesService) SalesHandler {
	return &salesHandlerImpl{salesService: salesService}
}

func summaryRequest(r *http.Request) sales.SummaryRequest {
	q := r.URL.Query()
	return sales.SummaryRequest{
		Team:    q.Get("team"),
		RawDays: q.Get("days"),
	}
}

func (h *salesHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.salesService.Summary(r.Context(), middleware.CallerFromContext(r.Context()), summaryRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salesHandlerImpl) TeamTotals(w http.ResponseWriter, r *http.Request) {
	req := sales.TeamTotalsRequest{RawDays: r.URL.Query().Get("days")}

	result, err := h.salesService.TeamTotals(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salesHandlerImpl) CurrentShift(w http.ResponseWriter, r *http.Request) {
	req := sales.ShiftRequest{Team: r.URL.Query().Get("team")}

	result, err := h.salesService.CurrentShift(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salesHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	file, err := h.salesService.Export(r.Context(), middleware.CallerFromContext(r.Context()), summaryRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, file.Filename, file.ContentType, file.Content)
}
