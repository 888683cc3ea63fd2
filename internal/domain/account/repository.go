package account

import (
	"context"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
)

type AccountRepository interface {
	GetByEmail(ctx context.Context, email string) (Account, error)
	GetByIDForUpdate(ctx context.Context, id int64) (Account, error)
	// CreateIfAbsent inserts the account unless the email already exists and returns the stored row.
	CreateIfAbsent(ctx context.Context, newAccount Account) (Account, error)
	RecordLogin(ctx context.Context, id int64, displayName *string, role access.Role, status access.Status) (Account, error)
	UpdateApproval(ctx context.Context, id int64, role access.Role, status access.Status) (Account, error)
	List(ctx context.Context, status *access.Status) ([]Account, error)
}
