package http

import (
	"net/http"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/master/page"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/master/team"
	"github.com/cmlabs-hris/manager-portal-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/manager-portal-go/internal/handler/http/response"
	"github.com/cmlabs-hris/manager-portal-go/internal/service/master"
)

type MasterHandler interface {
	// Team handlers
	ListTeams(w http.ResponseWriter, r *http.Request)
	CreateTeam(w http.ResponseWriter, r *http.Request)
	UpdateTeam(w http.ResponseWriter, r *http.Request)
	DeleteTeam(w http.ResponseWriter, r *http.Request)

	// Page handlers
	ListPages(w http.ResponseWriter, r *http.Request)
	CreatePage(w http.ResponseWriter, r *http.Request)
	UpdatePage(w http.ResponseWriter, r *http.Request)
	DeletePage(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// ==================== TEAM HANDLERS ====================

func (h *masterHandlerImpl) ListTeams(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListTeams(r.Context(), middleware.CallerFromContext(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req team.CreateTeamRequest
	if !decodeJSON(w, r, &req, "CreateTeam") {
		return
	}

	result, err := h.masterService.CreateTeam(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Team created successfully", result)
}

func (h *masterHandlerImpl) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req team.UpdateTeamRequest
	if !decodeJSON(w, r, &req, "UpdateTeam") {
		return
	}
	req.ID = id

	result, err := h.masterService.UpdateTeam(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Team updated successfully", result)
}

func (h *masterHandlerImpl) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.masterService.DeleteTeam(r.Context(), middleware.CallerFromContext(r.Context()), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Team deleted successfully", nil)
}

// ==================== PAGE HANDLERS ====================

func (h *masterHandlerImpl) ListPages(w http.ResponseWriter, r *http.Request) {
	activeOnly, ok := queryBool(r, "active")
	if !ok {
		response.ValidationError(w, map[string]string{"active": "active must be true or false"})
		return
	}

	filter := page.ListPagesRequest{
		Team:       r.URL.Query().Get("team"),
		ActiveOnly: activeOnly,
	}

	results, err := h.masterService.ListPages(r.Context(), middleware.CallerFromContext(r.Context()), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) CreatePage(w http.ResponseWriter, r *http.Request) {
	var req page.CreatePageRequest
	if !decodeJSON(w, r, &req, "CreatePage") {
		return
	}

	result, err := h.masterService.CreatePage(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Page created successfully", result)
}

func (h *masterHandlerImpl) UpdatePage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req page.UpdatePageRequest
	if !decodeJSON(w, r, &req, "UpdatePage") {
		return
	}
	req.ID = id

	result, err := h.masterService.UpdatePage(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Page updated successfully", result)
}

func (h *masterHandlerImpl) DeletePage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.masterService.DeletePage(r.Context(), middleware.CallerFromContext(r.Context()), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Page deleted successfully", nil)
}
