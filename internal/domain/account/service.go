package account

import (
	"context"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
)

type AccountService interface {
	// SignIn creates or refreshes the account behind an identity claim.
	SignIn(ctx context.Context, claim IdentityClaim) (Account, error)
	Me(ctx context.Context, caller access.Caller) (AccountResponse, error)
	List(ctx context.Context, caller access.Caller, filter ListAccountsRequest) ([]AccountResponse, error)
	Approve(ctx context.Context, caller access.Caller, req ApprovalRequest) (AccountResponse, error)
	LookupCaller(ctx context.Context, email string) (access.Caller, error)
}
