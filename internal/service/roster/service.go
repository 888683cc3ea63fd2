package roster

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/roster"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/businessday"
)

type RosterServiceImpl struct {
	roster.RosterRepository
}

func NewRosterService(repo roster.RosterRepository) roster.RosterService {
	return &RosterServiceImpl{RosterRepository: repo}
}

// List implements roster.RosterService.
func (s *RosterServiceImpl) List(ctx context.Context, caller access.Caller, filter roster.ListSlotsRequest) ([]roster.SlotResponse, error) {
	if err := access.Authorize(caller, access.RoleUser); err != nil {
		return nil, err
	}
	filter.Team = strings.TrimSpace(filter.Team)
	filter.Shift = strings.ToLower(strings.TrimSpace(filter.Shift))
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	slots, err := s.RosterRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]roster.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		responses = append(responses, roster.NewSlotResponse(slot))
	}
	return responses, nil
}

// Create implements roster.RosterService.
func (s *RosterServiceImpl) Create(ctx context.Context, caller access.Caller, req roster.CreateSlotRequest) (roster.SlotResponse, error) {
	if err := access.Authorize(caller, access.RoleManager); err != nil {
		return roster.SlotResponse{}, err
	}
	req.Shift = strings.ToLower(strings.TrimSpace(req.Shift))
	if err := req.Validate(); err != nil {
		return roster.SlotResponse{}, err
	}

	created, err := s.RosterRepository.Create(ctx, roster.Slot{
		PageID:  req.PageID,
		Shift:   businessday.Shift(req.Shift),
		Chatter: req.Chatter,
	})
	if err != nil {
		return roster.SlotResponse{}, err
	}

	slog.Info("roster slot assigned", "slot_id", created.ID, "page", created.PageKey, "shift", created.Shift, "by", caller.Email)
	return roster.NewSlotResponse(created), nil
}

// Update implements roster.RosterService.
func (s *RosterServiceImpl) Update(ctx context.Context, caller access.Caller, req roster.UpdateSlotRequest) (roster.SlotResponse, error) {
	if err := access.Authorize(caller, access.RoleManager); err != nil {
		return roster.SlotResponse{}, err
	}
	if req.Shift != nil {
		shift := strings.ToLower(strings.TrimSpace(*req.Shift))
		req.Shift = &shift
	}
	if err := req.Validate(); err != nil {
		return roster.SlotResponse{}, err
	}

	updated, err := s.RosterRepository.Update(ctx, req)
	if err != nil {
		return roster.SlotResponse{}, err
	}
	return roster.NewSlotResponse(updated), nil
}

// Delete implements roster.RosterService.
func (s *RosterServiceImpl) Delete(ctx context.Context, caller access.Caller, id int64) error {
	if err := access.Authorize(caller, access.RoleManager); err != nil {
		return err
	}
	if id <= 0 {
		return roster.ErrSlotNotFound
	}
	if err := s.RosterRepository.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("roster slot removed", "slot_id", id, "by", caller.Email)
	return nil
}
