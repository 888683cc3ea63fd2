package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/master/team"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type teamRepositoryImpl struct {
	db *database.DB
}

func NewTeamRepository(db *database.DB) team.TeamRepository {
	return &teamRepositoryImpl{db: db}
}

func scanTeam(row pgx.Row) (team.Team, error) {
	var t team.Team
	err := row.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return team.Team{}, team.ErrTeamNotFound
		}
		return team.Team{}, err
	}
	return t, nil
}

// Create implements team.TeamRepository.
func (r *teamRepositoryImpl) Create(ctx context.Context, name string) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO teams (name, created_at, updated_at)
		VALUES ($1, NOW(), NOW())
		RETURNING id, name, created_at, updated_at
	`

	t, err := scanTeam(q.QueryRow(ctx, query, name))
	if err != nil {
		if isUniqueViolation(err) {
			return team.Team{}, team.ErrTeamNameExists
		}
		return team.Team{}, fmt.Errorf("failed to create team: %w", err)
	}
	return t, nil
}

// GetByID implements team.TeamRepository.
func (r *teamRepositoryImpl) GetByID(ctx context.Context, id int64) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM teams WHERE id = $1`

	t, err := scanTeam(q.QueryRow(ctx, query, id))
	if err != nil && !errors.Is(err, team.ErrTeamNotFound) {
		return team.Team{}, fmt.Errorf("failed to get team: %w", err)
	}
	return t, err
}

// GetByName implements team.TeamRepository.
func (r *teamRepositoryImpl) GetByName(ctx context.Context, name string) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM teams WHERE name = $1`

	t, err := scanTeam(q.QueryRow(ctx, query, name))
	if err != nil && !errors.Is(err, team.ErrTeamNotFound) {
		return team.Team{}, fmt.Errorf("failed to get team by name: %w", err)
	}
	return t, err
}

// List implements team.TeamRepository.
func (r *teamRepositoryImpl) List(ctx context.Context) ([]team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM teams
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]team.Team, 0)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return teams, nil
}

// Update implements team.TeamRepository.
func (r *teamRepositoryImpl) Update(ctx context.Context, req team.UpdateTeamRequest) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE teams
		SET name = COALESCE($2, name), updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, created_at, updated_at
	`

	t, err := scanTeam(q.QueryRow(ctx, query, req.ID, req.Name))
	if err != nil {
		switch {
		case errors.Is(err, team.ErrTeamNotFound):
			return team.Team{}, err
		case isUniqueViolation(err):
			return team.Team{}, team.ErrTeamNameExists
		}
		return team.Team{}, fmt.Errorf("failed to update team: %w", err)
	}
	return t, nil
}

// Delete implements team.TeamRepository. Pages of the team are kept and lose their team.
func (r *teamRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return team.ErrTeamNotFound
	}

	return nil
}
