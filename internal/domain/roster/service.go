package roster

import (
	"context"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
)

type RosterService interface {
	List(ctx context.Context, caller access.Caller, filter ListSlotsRequest) ([]SlotResponse, error)
	Create(ctx context.Context, caller access.Caller, req CreateSlotRequest) (SlotResponse, error)
	Update(ctx context.Context, caller access.Caller, req UpdateSlotRequest) (SlotResponse, error)
	Delete(ctx context.Context, caller access.Caller, id int64) error
}
