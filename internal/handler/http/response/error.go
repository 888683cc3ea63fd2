package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/account"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/master/page"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/master/team"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/roster"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Access gate
	case errors.Is(err, access.ErrUnauthenticated):
		Unauthorized(w, "Sign in required")
	case errors.Is(err, access.ErrAwaitingApproval):
		AwaitingApproval(w, "Your account is awaiting admin approval")
	case errors.Is(err, access.ErrForbidden):
		Forbidden(w, "You do not have permission to perform this action")

	// Account domain errors
	case errors.Is(err, account.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, account.ErrEmailRequired):
		BadRequest(w, "Identity provider returned no email", nil)
	case errors.Is(err, account.ErrInvalidEmail):
		BadRequest(w, "Identity provider returned a malformed email", nil)

	// Catalog errors
	case errors.Is(err, team.ErrTeamNotFound), errors.Is(err, page.ErrTeamNotFound):
		NotFound(w, "Team not found")
	case errors.Is(err, team.ErrTeamNameExists):
		Conflict(w, "Team name already exists")
	case errors.Is(err, page.ErrPageNotFound), errors.Is(err, roster.ErrPageNotFound):
		NotFound(w, "Page not found")
	case errors.Is(err, page.ErrPageKeyExists):
		Conflict(w, "Page key already exists")

	// Roster errors
	case errors.Is(err, roster.ErrSlotNotFound):
		NotFound(w, "Roster slot not found")
	case errors.Is(err, roster.ErrSlotTaken):
		Conflict(w, "Page already has a chatter for this shift")

	// Default
	default:
		slog.Error("store failure", "error", err)
		StoreFailure(w, "A data store request failed")
	}
}
