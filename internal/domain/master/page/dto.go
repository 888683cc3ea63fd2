package page

import (
	"strings"

	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/validator"
)

// PageResponse represents the response structure for a page.
type PageResponse struct {
	ID       int64   `json:"id"`
	Key      string  `json:"key"`
	Name     string  `json:"name"`
	TeamID   *int64  `json:"team_id,omitempty"`
	TeamName *string `json:"team_name,omitempty"`
	Active   bool    `json:"active"`
}

func NewPageResponse(p Page) PageResponse {
	return PageResponse{
		ID:       p.ID,
		Key:      p.Key,
		Name:     p.Name,
		TeamID:   p.TeamID,
		TeamName: p.TeamName,
		Active:   p.Active,
	}
}

// ListPagesRequest filters GET /pages
type ListPagesRequest struct {
	Team       string
	ActiveOnly bool
}

// CreatePageRequest represents the request structure for creating a page.
type CreatePageRequest struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	TeamID *int64 `json:"team_id,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

func (r *CreatePageRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Key = strings.ToLower(strings.TrimSpace(r.Key))
	if !validator.IsValidPageKey(r.Key) {
		errs = append(errs, validator.ValidationError{
			Field:   "key",
			Message: "key must be 2-64 characters of lowercase letters, numbers, dots, underscores or hyphens",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if r.TeamID != nil && *r.TeamID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "team_id",
			Message: "team_id must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdatePageRequest represents a partial update; nil fields are left untouched.
type UpdatePageRequest struct {
	ID     int64   `json:"-"`
	Key    *string `json:"key,omitempty"`
	Name   *string `json:"name,omitempty"`
	TeamID *int64  `json:"team_id,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

func (r *UpdatePageRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Key != nil {
		key := strings.ToLower(strings.TrimSpace(*r.Key))
		r.Key = &key
		if !validator.IsValidPageKey(key) {
			errs = append(errs, validator.ValidationError{
				Field:   "key",
				Message: "key must be 2-64 characters of lowercase letters, numbers, dots, underscores or hyphens",
			})
		}
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.TeamID != nil && *r.TeamID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "team_id",
			Message: "team_id must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
