package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// TestDatabaseSetup holds the shared account store used by integration tests.
type TestDatabaseSetup struct {
	DB *database.DB
}

var (
	setupOnce sync.Once
	setup     *TestDatabaseSetup
	setupErr  error
)

// NewTestDatabase connects to TEST_DATABASE_URL and applies the account store schema.
func NewTestDatabase() (*TestDatabaseSetup, error) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return nil, nil
	}

	db, err := database.NewPostgreSQLDB("account-test", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	// The sales and clock-in tables belong to external stores; tests host them alongside.
	for _, ddl := range externalStoreSchema {
		if _, err := db.Exec(context.Background(), ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create external store tables: %w", err)
		}
	}

	return &TestDatabaseSetup{DB: db}, nil
}

var externalStoreSchema = []string{`
CREATE TABLE IF NOT EXISTS sales (
    id         BIGSERIAL PRIMARY KEY,
    team       TEXT           NOT NULL,
    page       TEXT           NOT NULL,
    chatter    TEXT           NOT NULL DEFAULT '',
    amount     NUMERIC(12, 2),
    created_at TIMESTAMPTZ    NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS clock_ins (
    id           BIGSERIAL PRIMARY KEY,
    business_day DATE        NOT NULL,
    shift        TEXT        NOT NULL,
    page_key     TEXT        NOT NULL,
    chatter      TEXT        NOT NULL,
    is_cover     BOOLEAN     NOT NULL DEFAULT FALSE,
    clocked_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`}

// requireDB returns a clean database or skips the test when none is configured.
func requireDB(t *testing.T) *database.DB {
	t.Helper()
	setupOnce.Do(func() {
		setup, setupErr = NewTestDatabase()
	})
	require.NoError(t, setupErr)
	if setup == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
	require.NoError(t, setup.TruncateAllTables(context.Background()))
	return setup.DB
}

// TruncateAllTables empties every table the tests write to.
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"sales",
		"clock_ins",
		"roster_slots",
		"pages",
		"teams",
		"users",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

// Close closes the database connection
func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
