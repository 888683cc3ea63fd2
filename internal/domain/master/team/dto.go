package team

import (
	"strings"

	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/validator"
)

// TeamResponse represents the response structure for a team.
type TeamResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewTeamResponse(t Team) TeamResponse {
	return TeamResponse{ID: t.ID, Name: t.Name}
}

// CreateTeamRequest represents the request structure for creating a team.
type CreateTeamRequest struct {
	Name string `json:"name"`
}

func (r *CreateTeamRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateTeamRequest represents the request structure for updating a team.
type UpdateTeamRequest struct {
	ID   int64   `json:"-"`
	Name *string `json:"name,omitempty"`
}

func (r *UpdateTeamRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		r.Name = &name
		if validator.IsEmpty(name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(name) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 100 characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
