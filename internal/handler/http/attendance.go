package http

import (
	"net/http"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/manager-portal-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/manager-portal-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// Status handles GET /attendance/status?day=&shift=&team=
func (h *attendanceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := attendance.StatusRequest{
		Day:   q.Get("day"),
		Shift: q.Get("shift"),
		Team:  q.Get("team"),
	}

	result, err := h.attendanceService.Status(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Summary handles GET /attendance/summary?days=&team=
func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := attendance.SummaryRequest{
		Team:    q.Get("team"),
		RawDays: q.Get("days"),
	}

	result, err := h.attendanceService.Summary(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
