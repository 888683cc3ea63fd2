package team

import "context"

type TeamRepository interface {
	Create(ctx context.Context, name string) (Team, error)
	GetByID(ctx context.Context, id int64) (Team, error)
	GetByName(ctx context.Context, name string) (Team, error)
	List(ctx context.Context) ([]Team, error)
	Update(ctx context.Context, req UpdateTeamRequest) (Team, error)
	Delete(ctx context.Context, id int64) error
}
