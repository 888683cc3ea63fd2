package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/master/page"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const pageSelect = `
	SELECT p.id, p.page_key, p.name, p.team_id, t.name, p.active, p.created_at, p.updated_at
	FROM pages p
	LEFT JOIN teams t ON t.id = p.team_id
`

type pageRepositoryImpl struct {
	db *database.DB
}

func NewPageRepository(db *database.DB) page.PageRepository {
	return &pageRepositoryImpl{db: db}
}

func scanPage(row pgx.Row) (page.Page, error) {
	var p page.Page
	err := row.Scan(
		&p.ID,
		&p.Key,
		&p.Name,
		&p.TeamID,
		&p.TeamName,
		&p.Active,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return page.Page{}, page.ErrPageNotFound
		}
		return page.Page{}, err
	}
	return p, nil
}

// pageWriteError maps constraint failures of INSERT/UPDATE on pages.
func pageWriteError(action string, err error) error {
	switch {
	case isUniqueViolation(err):
		return page.ErrPageKeyExists
	case isForeignKeyViolation(err):
		return page.ErrTeamNotFound
	}
	return fmt.Errorf("failed to %s page: %w", action, err)
}

// Create implements page.PageRepository.
func (r *pageRepositoryImpl) Create(ctx context.Context, p page.Page) (page.Page, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pages (page_key, name, team_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`

	var id int64
	if err := q.QueryRow(ctx, query, p.Key, p.Name, p.TeamID, p.Active).Scan(&id); err != nil {
		return page.Page{}, pageWriteError("create", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements page.PageRepository.
func (r *pageRepositoryImpl) GetByID(ctx context.Context, id int64) (page.Page, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPage(q.QueryRow(ctx, pageSelect+` WHERE p.id = $1`, id))
	if err != nil && !errors.Is(err, page.ErrPageNotFound) {
		return page.Page{}, fmt.Errorf("failed to get page: %w", err)
	}
	return p, err
}

// List implements page.PageRepository.
func (r *pageRepositoryImpl) List(ctx context.Context, filter page.ListPagesRequest) ([]page.Page, error) {
	q := GetQuerier(ctx, r.db)

	query := pageSelect + `
		WHERE ($1 = '' OR t.name = $1)
		  AND (NOT $2 OR p.active)
		ORDER BY p.page_key ASC
	`

	rows, err := q.Query(ctx, query, filter.Team, filter.ActiveOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	defer rows.Close()

	pages := make([]page.Page, 0)
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan page: %w", err)
		}
		pages = append(pages, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return pages, nil
}

// Update implements page.PageRepository.
func (r *pageRepositoryImpl) Update(ctx context.Context, req page.UpdatePageRequest) (page.Page, error) {
	q := GetQuerier(ctx, r.db)

	// Build dynamic update query
	query := `UPDATE pages SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.Key != nil {
		query += fmt.Sprintf(", page_key = $%d", argIdx)
		args = append(args, *req.Key)
		argIdx++
	}

	if req.Name != nil {
		query += fmt.Sprintf(", name = $%d", argIdx)
		args = append(args, *req.Name)
		argIdx++
	}

	if req.TeamID != nil {
		query += fmt.Sprintf(", team_id = $%d", argIdx)
		args = append(args, *req.TeamID)
		argIdx++
	}

	if req.Active != nil {
		query += fmt.Sprintf(", active = $%d", argIdx)
		args = append(args, *req.Active)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return page.Page{}, pageWriteError("update", err)
	}

	if commandTag.RowsAffected() == 0 {
		return page.Page{}, page.ErrPageNotFound
	}

	return r.GetByID(ctx, req.ID)
}

// Delete implements page.PageRepository. Roster slots of the page go with it.
func (r *pageRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM pages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return page.ErrPageNotFound
	}

	return nil
}
