package access

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Class is the outcome of evaluating a caller against the approval gate.
type Class string

const (
	ClassUnauthenticated Class = "unauthenticated"
	ClassPendingApproval Class = "pending_approval"
	ClassApprovedUser    Class = "approved_user"
	ClassApprovedAdmin   Class = "approved_admin"
)

// Caller is the identity every operation receives explicitly.
type Caller struct {
	AccountID   int64  `json:"account_id,omitempty"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
	Role        Role   `json:"role"`
	Status      Status `json:"approval_status"`
}

// Claims is what the session token carries after sign-in.
type Claims struct {
	Email  string
	Name   string
	Role   string
	Status string
}

// NormalizeEmail lowercases and trims an email so it can be used as a key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Classify maps a caller onto one of the four gate classes.
func Classify(c Caller) Class {
	if NormalizeEmail(c.Email) == "" {
		return ClassUnauthenticated
	}
	if c.Status != StatusApproved {
		return ClassPendingApproval
	}
	if c.Role == RoleAdmin {
		return ClassApprovedAdmin
	}
	return ClassApprovedUser
}

// Authorize returns nil when the caller may run an operation requiring role.
func Authorize(c Caller, required Role) error {
	switch Classify(c) {
	case ClassUnauthenticated:
		return ErrUnauthenticated
	case ClassPendingApproval:
		return ErrAwaitingApproval
	}
	if !c.Role.AtLeast(required) {
		return ErrForbidden
	}
	return nil
}

// AllowList is the static set of emails that are always approved admins.
type AllowList struct {
	emails map[string]struct{}
}

func NewAllowList(emails []string) AllowList {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		if e = NormalizeEmail(e); e != "" {
			set[e] = struct{}{}
		}
	}
	return AllowList{emails: set}
}

func (a AllowList) Contains(email string) bool {
	_, ok := a.emails[NormalizeEmail(email)]
	return ok
}

// ErrUnknownAccount is returned by a CallerLookup when no account exists for an email.
var ErrUnknownAccount = errors.New("no account for email")

// CallerLookup loads the persisted role and approval status for an email.
type CallerLookup interface {
	LookupCaller(ctx context.Context, email string) (Caller, error)
}

// Gate resolves session claims into a Caller.
type Gate struct {
	admins   AllowList
	accounts CallerLookup
}

func NewGate(admins AllowList, accounts CallerLookup) *Gate {
	return &Gate{admins: admins, accounts: accounts}
}

// Resolve applies, in order: the admin allow-list, the persisted account,
// and finally the role and status carried by the claims themselves.
func (g *Gate) Resolve(ctx context.Context, claims Claims) (Caller, error) {
	email := NormalizeEmail(claims.Email)
	if email == "" {
		return Caller{}, ErrUnauthenticated
	}

	if g.admins.Contains(email) {
		return Caller{
			Email:       email,
			DisplayName: claims.Name,
			Role:        RoleAdmin,
			Status:      StatusApproved,
		}, nil
	}

	if g.accounts != nil {
		caller, err := g.accounts.LookupCaller(ctx, email)
		switch {
		case err == nil:
			return caller, nil
		case !errors.Is(err, ErrUnknownAccount):
			return Caller{}, fmt.Errorf("failed to load account for %s: %w", email, err)
		}
	}

	return Caller{
		Email:       email,
		DisplayName: claims.Name,
		Role:        Role(claims.Role),
		Status:      Status(claims.Status),
	}, nil
}

// IsAdmin reports whether email is on the static allow-list.
func (g *Gate) IsAdmin(email string) bool {
	return g.admins.Contains(email)
}
