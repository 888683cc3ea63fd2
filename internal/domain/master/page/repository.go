package page

import "context"

type PageRepository interface {
	Create(ctx context.Context, p Page) (Page, error)
	GetByID(ctx context.Context, id int64) (Page, error)
	// List returns pages ordered by key; an empty Team matches every team.
	List(ctx context.Context, filter ListPagesRequest) ([]Page, error)
	Update(ctx context.Context, req UpdatePageRequest) (Page, error)
	Delete(ctx context.Context, id int64) error
}
