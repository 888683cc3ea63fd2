package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/account"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/validator"
)

// TxRunner runs fn in a single account store transaction.
type TxRunner func(ctx context.Context, fn func(txCtx context.Context) error) error

type AccountServiceImpl struct {
	account.AccountRepository
	admins access.AllowList
	inTx   TxRunner
}

func NewAccountService(repo account.AccountRepository, admins access.AllowList, inTx TxRunner) account.AccountService {
	return &AccountServiceImpl{
		AccountRepository: repo,
		admins:            admins,
		inTx:              inTx,
	}
}

// SignIn implements account.AccountService.
func (s *AccountServiceImpl) SignIn(ctx context.Context, claim account.IdentityClaim) (account.Account, error) {
	email := access.NormalizeEmail(claim.Email)
	if email == "" {
		return account.Account{}, account.ErrEmailRequired
	}
	if !validator.IsValidEmail(email) {
		return account.Account{}, account.ErrInvalidEmail
	}

	isAdmin := s.admins.Contains(email)

	role, status := access.RoleUser, access.StatusPending
	if isAdmin {
		role, status = access.RoleAdmin, access.StatusApproved
	}

	var signedIn account.Account
	err := s.inTx(ctx, func(txCtx context.Context) error {
		stored, err := s.CreateIfAbsent(txCtx, account.Account{
			Email:       email,
			DisplayName: claim.DisplayName,
			Role:        role,
			Status:      status,
		})
		if err != nil {
			return err
		}

		nextRole, nextStatus := stored.Role, stored.Status
		if isAdmin {
			nextRole, nextStatus = account.MergeRole(stored.Role, access.RoleAdmin), access.StatusApproved
		}

		signedIn, err = s.RecordLogin(txCtx, stored.ID, claim.DisplayName, nextRole, nextStatus)
		return err
	})
	if err != nil {
		return account.Account{}, fmt.Errorf("failed to sign in %s: %w", email, err)
	}

	slog.Info("Account signed in", "email", email, "role", signedIn.Role, "status", signedIn.Status)
	return signedIn, nil
}

// Me implements account.AccountService.
func (s *AccountServiceImpl) Me(ctx context.Context, caller access.Caller) (account.AccountResponse, error) {
	if access.Classify(caller) == access.ClassUnauthenticated {
		return account.AccountResponse{}, access.ErrUnauthenticated
	}

	stored, err := s.GetByEmail(ctx, access.NormalizeEmail(caller.Email))
	if errors.Is(err, account.ErrAccountNotFound) {
		// Allow-listed admins can be served before their first persisted sign-in.
		resp := account.AccountResponse{
			Email:          caller.Email,
			Role:           string(caller.Role),
			ApprovalStatus: string(caller.Status),
		}
		if caller.DisplayName != "" {
			name := caller.DisplayName
			resp.DisplayName = &name
		}
		return resp, nil
	}
	if err != nil {
		return account.AccountResponse{}, err
	}

	resp := account.NewAccountResponse(stored)
	// The gate is authoritative for role and status.
	resp.Role = string(caller.Role)
	resp.ApprovalStatus = string(caller.Status)
	return resp, nil
}

// List implements account.AccountService.
func (s *AccountServiceImpl) List(ctx context.Context, caller access.Caller, filter account.ListAccountsRequest) ([]account.AccountResponse, error) {
	if err := access.Authorize(caller, access.RoleAdmin); err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var status *access.Status
	if filter.Status != "" {
		st := access.Status(filter.Status)
		status = &st
	}

	accounts, err := s.AccountRepository.List(ctx, status)
	if err != nil {
		return nil, err
	}

	resp := make([]account.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, account.NewAccountResponse(a))
	}
	return resp, nil
}

// Approve implements account.AccountService.
func (s *AccountServiceImpl) Approve(ctx context.Context, caller access.Caller, req account.ApprovalRequest) (account.AccountResponse, error) {
	if err := access.Authorize(caller, access.RoleAdmin); err != nil {
		return account.AccountResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return account.AccountResponse{}, err
	}

	var updated account.Account
	err := s.inTx(ctx, func(txCtx context.Context) error {
		current, err := s.GetByIDForUpdate(txCtx, req.ID)
		if err != nil {
			return err
		}

		role, status := resolveApproval(current, req)
		updated, err = s.UpdateApproval(txCtx, current.ID, role, status)
		return err
	})
	if err != nil {
		return account.AccountResponse{}, err
	}

	slog.Info("Account approval updated",
		"by", caller.Email,
		"account_id", updated.ID,
		"action", req.Action,
		"role", updated.Role,
		"status", updated.Status,
	)
	return account.NewAccountResponse(updated), nil
}

// resolveApproval computes the role and status an approval action leaves behind.
func resolveApproval(current account.Account, req account.ApprovalRequest) (access.Role, access.Status) {
	switch req.Action {
	case account.ActionApprove:
		requested := current.Role
		if req.Role != "" {
			requested = access.Role(req.Role)
		}
		return account.MergeRole(current.Role, requested), access.StatusApproved
	default:
		return current.Role, access.StatusRejected
	}
}

// LookupCaller implements access.CallerLookup.
func (s *AccountServiceImpl) LookupCaller(ctx context.Context, email string) (access.Caller, error) {
	stored, err := s.GetByEmail(ctx, email)
	if errors.Is(err, account.ErrAccountNotFound) {
		return access.Caller{}, access.ErrUnknownAccount
	}
	if err != nil {
		return access.Caller{}, err
	}
	return stored.Caller(), nil
}
