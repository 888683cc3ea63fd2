package http

import (
	"net/http"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/account"
	"github.com/cmlabs-hris/manager-portal-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/manager-portal-go/internal/handler/http/response"
)

type AccountHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
}

type accountHandlerImpl struct {
	accountService account.AccountService
}

func NewAccountHandler(accountService account.AccountService) AccountHandler {
	return &accountHandlerImpl{accountService: accountService}
}

// List handles GET /users?status=
func (h *accountHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := account.ListAccountsRequest{Status: r.URL.Query().Get("status")}

	results, err := h.accountService.List(r.Context(), middleware.CallerFromContext(r.Context()), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Approve handles POST /users/approve
func (h *accountHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	var req account.ApprovalRequest
	if !decodeJSON(w, r, &req, "ApproveAccount") {
		return
	}

	result, err := h.accountService.Approve(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Account updated successfully", result)
}
