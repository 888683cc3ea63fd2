package roster

import "context"

type RosterRepository interface {
	Create(ctx context.Context, slot Slot) (Slot, error)
	GetByID(ctx context.Context, id int64) (Slot, error)
	List(ctx context.Context, filter ListSlotsRequest) ([]Slot, error)
	Update(ctx context.Context, req UpdateSlotRequest) (Slot, error)
	Delete(ctx context.Context, id int64) error
}
