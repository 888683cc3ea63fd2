package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/roster"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const rosterSelect = `
	SELECT s.id, s.page_id, s.shift, s.chatter, s.created_at, s.updated_at,
		p.page_key, p.name, t.name
	FROM roster_slots s
	JOIN pages p ON p.id = s.page_id
	LEFT JOIN teams t ON t.id = p.team_id
`

type rosterRepositoryImpl struct {
	db *database.DB
}

func NewRosterRepository(db *database.DB) roster.RosterRepository {
	return &rosterRepositoryImpl{db: db}
}

func scanSlot(row pgx.Row) (roster.Slot, error) {
	var s roster.Slot
	err := row.Scan(
		&s.ID,
		&s.PageID,
		&s.Shift,
		&s.Chatter,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.PageKey,
		&s.PageName,
		&s.TeamName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return roster.Slot{}, roster.ErrSlotNotFound
		}
		return roster.Slot{}, err
	}
	return s, nil
}

func slotWriteError(action string, err error) error {
	switch {
	case isUniqueViolation(err):
		return roster.ErrSlotTaken
	case isForeignKeyViolation(err):
		return roster.ErrPageNotFound
	}
	return fmt.Errorf("failed to %s roster slot: %w", action, err)
}

// Create implements roster.RosterRepository.
func (r *rosterRepositoryImpl) Create(ctx context.Context, slot roster.Slot) (roster.Slot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO roster_slots (page_id, shift, chatter, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`

	var id int64
	if err := q.QueryRow(ctx, query, slot.PageID, slot.Shift, slot.Chatter).Scan(&id); err != nil {
		return roster.Slot{}, slotWriteError("create", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements roster.RosterRepository.
func (r *rosterRepositoryImpl) GetByID(ctx context.Context, id int64) (roster.Slot, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanSlot(q.QueryRow(ctx, rosterSelect+` WHERE s.id = $1`, id))
	if err != nil && !errors.Is(err, roster.ErrSlotNotFound) {
		return roster.Slot{}, fmt.Errorf("failed to get roster slot: %w", err)
	}
	return s, err
}

// List implements roster.RosterRepository.
func (r *rosterRepositoryImpl) List(ctx context.Context, filter roster.ListSlotsRequest) ([]roster.Slot, error) {
	q := GetQuerier(ctx, r.db)

	query := rosterSelect + `
		WHERE ($1 = '' OR t.name = $1)
		  AND ($2 = '' OR s.shift = $2)
		ORDER BY p.page_key ASC,
			CASE s.shift WHEN 'prime' THEN 0 WHEN 'midshift' THEN 1 ELSE 2 END
	`

	rows, err := q.Query(ctx, query, filter.Team, filter.Shift)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster slots: %w", err)
	}
	defer rows.Close()

	slots := make([]roster.Slot, 0)
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan roster slot: %w", err)
		}
		slots = append(slots, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return slots, nil
}

// Update implements roster.RosterRepository.
func (r *rosterRepositoryImpl) Update(ctx context.Context, req roster.UpdateSlotRequest) (roster.Slot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE roster_slots
		SET page_id = COALESCE($2, page_id),
			shift = COALESCE($3, shift),
			chatter = COALESCE($4, chatter),
			updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, req.ID, req.PageID, req.Shift, req.Chatter)
	if err != nil {
		return roster.Slot{}, slotWriteError("update", err)
	}

	if commandTag.RowsAffected() == 0 {
		return roster.Slot{}, roster.ErrSlotNotFound
	}

	return r.GetByID(ctx, req.ID)
}

// Delete implements roster.RosterRepository.
func (r *rosterRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM roster_slots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete roster slot: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return roster.ErrSlotNotFound
	}

	return nil
}
