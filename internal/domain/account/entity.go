package account

import (
	"time"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
)

type Account struct {
	ID          int64
	Email       string
	DisplayName *string
	Role        access.Role
	Status      access.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastLoginAt *time.Time
}

// IsAdmin checks if the account holds the admin role
func (a *Account) IsAdmin() bool {
	return a.Role == access.RoleAdmin
}

// IsApproved checks if the account passed the approval gate
func (a *Account) IsApproved() bool {
	return a.Status == access.StatusApproved
}

// Caller converts the stored account into the identity passed to operations.
func (a *Account) Caller() access.Caller {
	c := access.Caller{
		AccountID: a.ID,
		Email:     a.Email,
		Role:      a.Role,
		Status:    a.Status,
	}
	if a.DisplayName != nil {
		c.DisplayName = *a.DisplayName
	}
	return c
}

// MergeRole is the sticky-role rule applied to every role write.
// Once an account is admin, no write can lower it.
func MergeRole(current, requested access.Role) access.Role {
	if current == access.RoleAdmin {
		return access.RoleAdmin
	}
	if !requested.IsValid() {
		return current
	}
	return requested
}

// IdentityClaim is what the identity provider hands over at sign-in.
type IdentityClaim struct {
	Email       string
	DisplayName *string
}
