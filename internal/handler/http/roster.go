package http

import (
	"net/http"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/roster"
	"github.com/cmlabs-hris/manager-portal-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/manager-portal-go/internal/handler/http/response"
)

type RosterHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	rosterService roster.RosterService
}

func NewRosterHandler(rosterService roster.RosterService) RosterHandler {
	return &rosterHandlerImpl{rosterService: rosterService}
}

func (h *rosterHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := roster.ListSlotsRequest{
		Team:  r.URL.Query().Get("team"),
		Shift: r.URL.Query().Get("shift"),
	}

	results, err := h.rosterService.List(r.Context(), middleware.CallerFromContext(r.Context()), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *rosterHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req roster.CreateSlotRequest
	if !decodeJSON(w, r, &req, "CreateRosterSlot") {
		return
	}

	result, err := h.rosterService.Create(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Roster slot created successfully", result)
}

func (h *rosterHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req roster.UpdateSlotRequest
	if !decodeJSON(w, r, &req, "UpdateRosterSlot") {
		return
	}
	req.ID = id

	result, err := h.rosterService.Update(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Roster slot updated successfully", result)
}

func (h *rosterHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.rosterService.Delete(r.Context(), middleware.CallerFromContext(r.Context()), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Roster slot deleted successfully", nil)
}
