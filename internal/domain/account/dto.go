package account

import (
	"time"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/validator"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// AccountResponse represents account data in API responses
type AccountResponse struct {
	ID             int64   `json:"id"`
	Email          string  `json:"email"`
	DisplayName    *string `json:"display_name,omitempty"`
	Role           string  `json:"role"`
	ApprovalStatus string  `json:"approval_status"`
	CreatedAt      string  `json:"created_at"`
	LastLoginAt    *string `json:"last_login_at,omitempty"`
}

func NewAccountResponse(a Account) AccountResponse {
	resp := AccountResponse{
		ID:             a.ID,
		Email:          a.Email,
		DisplayName:    a.DisplayName,
		Role:           string(a.Role),
		ApprovalStatus: string(a.Status),
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	}
	if a.LastLoginAt != nil {
		lastLogin := a.LastLoginAt.Format(time.RFC3339)
		resp.LastLoginAt = &lastLogin
	}
	return resp
}

// ApprovalRequest is the body of POST /users/approve
type ApprovalRequest struct {
	ID     int64  `json:"id"`
	Action string `json:"action"`
	Role   string `json:"role,omitempty"`
}

func (r *ApprovalRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}

	if !validator.IsInSlice(r.Action, []string{ActionApprove, ActionReject}) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be one of: approve, reject",
		})
	}

	if r.Role != "" && !access.Role(r.Role).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: user, manager, admin",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListAccountsRequest filters GET /users
type ListAccountsRequest struct {
	Status string
}

func (r *ListAccountsRequest) Validate() error {
	if r.Status != "" && !access.Status(r.Status).IsValid() {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be one of: pending, approved, rejected",
		}}
	}
	return nil
}
