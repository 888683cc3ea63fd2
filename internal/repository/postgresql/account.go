package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/account"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `id, email, display_name, role, approval_status, created_at, updated_at, last_login_at`

type accountRepositoryImpl struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) account.AccountRepository {
	return &accountRepositoryImpl{db: db}
}

func scanAccount(row pgx.Row) (account.Account, error) {
	var a account.Account
	err := row.Scan(
		&a.ID,
		&a.Email,
		&a.DisplayName,
		&a.Role,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.LastLoginAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, err
	}
	return a, nil
}

// GetByEmail implements account.AccountRepository.
func (r *accountRepositoryImpl) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + accountColumns + ` FROM users WHERE email = $1`

	a, err := scanAccount(q.QueryRow(ctx, query, email))
	if err != nil && !errors.Is(err, account.ErrAccountNotFound) {
		return account.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}
	return a, err
}

// GetByIDForUpdate implements account.AccountRepository. The row stays locked
// until the surrounding transaction ends.
func (r *accountRepositoryImpl) GetByIDForUpdate(ctx context.Context, id int64) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + accountColumns + ` FROM users WHERE id = $1 FOR UPDATE`

	a, err := scanAccount(q.QueryRow(ctx, query, id))
	if err != nil && !errors.Is(err, account.ErrAccountNotFound) {
		return account.Account{}, fmt.Errorf("failed to lock account: %w", err)
	}
	return a, err
}

// CreateIfAbsent implements account.AccountRepository.
func (r *accountRepositoryImpl) CreateIfAbsent(ctx context.Context, newAccount account.Account) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO users (email, display_name, role, approval_status, created_at, updated_at, last_login_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW(), NOW())
		ON CONFLICT (email) DO NOTHING
		RETURNING ` + accountColumns

	created, err := scanAccount(q.QueryRow(ctx, insertQuery,
		newAccount.Email,
		newAccount.DisplayName,
		newAccount.Role,
		newAccount.Status,
	))
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, account.ErrAccountNotFound) {
		return account.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	// Lost the race against a concurrent first sign-in.
	return r.GetByEmail(ctx, newAccount.Email)
}

// RecordLogin implements account.AccountRepository.
func (r *accountRepositoryImpl) RecordLogin(ctx context.Context, id int64, displayName *string, role access.Role, status access.Status) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET display_name = COALESCE($2, display_name),
			role = $3,
			approval_status = $4,
			last_login_at = NOW(),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + accountColumns

	a, err := scanAccount(q.QueryRow(ctx, query, id, displayName, role, status))
	if err != nil && !errors.Is(err, account.ErrAccountNotFound) {
		return account.Account{}, fmt.Errorf("failed to record login: %w", err)
	}
	return a, err
}

// UpdateApproval implements account.AccountRepository.
func (r *accountRepositoryImpl) UpdateApproval(ctx context.Context, id int64, role access.Role, status access.Status) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET role = $2, approval_status = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + accountColumns

	a, err := scanAccount(q.QueryRow(ctx, query, id, role, status))
	if err != nil && !errors.Is(err, account.ErrAccountNotFound) {
		return account.Account{}, fmt.Errorf("failed to update approval: %w", err)
	}
	return a, err
}

// List implements account.AccountRepository.
func (r *accountRepositoryImpl) List(ctx context.Context, status *access.Status) ([]account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + accountColumns + `
		FROM users
		WHERE ($1::text IS NULL OR approval_status = $1)
		ORDER BY created_at DESC, id DESC
	`

	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	rows, err := q.Query(ctx, query, statusArg)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]account.Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}
