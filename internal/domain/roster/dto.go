package roster

import (
	"strings"

	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/businessday"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/validator"
)

type SlotResponse struct {
	ID       int64   `json:"id"`
	PageID   int64   `json:"page_id"`
	PageKey  string  `json:"page_key"`
	PageName string  `json:"page_name"`
	TeamName *string `json:"team_name,omitempty"`
	Shift    string  `json:"shift"`
	Chatter  string  `json:"chatter"`
}

func NewSlotResponse(s Slot) SlotResponse {
	return SlotResponse{
		ID:       s.ID,
		PageID:   s.PageID,
		PageKey:  s.PageKey,
		PageName: s.PageName,
		TeamName: s.TeamName,
		Shift:    string(s.Shift),
		Chatter:  s.Chatter,
	}
}

// ListSlotsRequest filters GET /roster
type ListSlotsRequest struct {
	Team  string
	Shift string
}

func (r *ListSlotsRequest) Validate() error {
	if r.Shift != "" && !businessday.Shift(r.Shift).IsValid() {
		return validator.ValidationErrors{{
			Field:   "shift",
			Message: "shift must be one of: prime, midshift, closing",
		}}
	}
	return nil
}

type CreateSlotRequest struct {
	PageID  int64  `json:"page_id"`
	Shift   string `json:"shift"`
	Chatter string `json:"chatter"`
}

func (r *CreateSlotRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PageID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page_id",
			Message: "page_id is required",
		})
	}

	if !businessday.Shift(r.Shift).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be one of: prime, midshift, closing",
		})
	}

	r.Chatter = strings.TrimSpace(r.Chatter)
	if validator.IsEmpty(r.Chatter) {
		errs = append(errs, validator.ValidationError{
			Field:   "chatter",
			Message: "chatter is required",
		})
	}
	if len(r.Chatter) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "chatter",
			Message: "chatter must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateSlotRequest struct {
	ID      int64   `json:"-"`
	PageID  *int64  `json:"page_id,omitempty"`
	Shift   *string `json:"shift,omitempty"`
	Chatter *string `json:"chatter,omitempty"`
}

func (r *UpdateSlotRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.PageID != nil && *r.PageID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page_id",
			Message: "page_id must be a positive integer",
		})
	}

	if r.Shift != nil && !businessday.Shift(*r.Shift).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be one of: prime, midshift, closing",
		})
	}

	if r.Chatter != nil {
		chatter := strings.TrimSpace(*r.Chatter)
		r.Chatter = &chatter
		if validator.IsEmpty(chatter) {
			errs = append(errs, validator.ValidationError{
				Field:   "chatter",
				Message: "chatter must not be empty",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
