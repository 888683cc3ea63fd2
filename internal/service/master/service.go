package master

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/master/page"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/master/team"
)

type MasterService interface {
	// Team operations
	ListTeams(ctx context.Context, caller access.Caller) ([]team.TeamResponse, error)
	CreateTeam(ctx context.Context, caller access.Caller, req team.CreateTeamRequest) (team.TeamResponse, error)
	UpdateTeam(ctx context.Context, caller access.Caller, req team.UpdateTeamRequest) (team.TeamResponse, error)
	DeleteTeam(ctx context.Context, caller access.Caller, id int64) error

	// Page operations
	ListPages(ctx context.Context, caller access.Caller, filter page.ListPagesRequest) ([]page.PageResponse, error)
	CreatePage(ctx context.Context, caller access.Caller, req page.CreatePageRequest) (page.PageResponse, error)
	UpdatePage(ctx context.Context, caller access.Caller, req page.UpdatePageRequest) (page.PageResponse, error)
	DeletePage(ctx context.Context, caller access.Caller, id int64) error
}

type masterServiceImpl struct {
	teamRepo team.TeamRepository
	pageRepo page.PageRepository
}

func NewMasterService(teamRepo team.TeamRepository, pageRepo page.PageRepository) MasterService {
	return &masterServiceImpl{
		teamRepo: teamRepo,
		pageRepo: pageRepo,
	}
}

// ==================== TEAM OPERATIONS ====================

func (s *masterServiceImpl) ListTeams(ctx context.Context, caller access.Caller) ([]team.TeamResponse, error) {
	if err := access.Authorize(caller, access.RoleUser); err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]team.TeamResponse, 0, len(teams))
	for _, t := range teams {
		responses = append(responses, team.NewTeamResponse(t))
	}
	return responses, nil
}

func (s *masterServiceImpl) CreateTeam(ctx context.Context, caller access.Caller, req team.CreateTeamRequest) (team.TeamResponse, error) {
	if err := access.Authorize(caller, access.RoleAdmin); err != nil {
		return team.TeamResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return team.TeamResponse{}, err
	}

	created, err := s.teamRepo.Create(ctx, req.Name)
	if err != nil {
		return team.TeamResponse{}, err
	}
	return team.NewTeamResponse(created), nil
}

func (s *masterServiceImpl) UpdateTeam(ctx context.Context, caller access.Caller, req team.UpdateTeamRequest) (team.TeamResponse, error) {
	if err := access.Authorize(caller, access.RoleAdmin); err != nil {
		return team.TeamResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return team.TeamResponse{}, err
	}

	updated, err := s.teamRepo.Update(ctx, req)
	if err != nil {
		return team.TeamResponse{}, err
	}
	return team.NewTeamResponse(updated), nil
}

func (s *masterServiceImpl) DeleteTeam(ctx context.Context, caller access.Caller, id int64) error {
	if err := access.Authorize(caller, access.RoleAdmin); err != nil {
		return err
	}
	if id <= 0 {
		return team.ErrTeamNotFound
	}
	return s.teamRepo.Delete(ctx, id)
}

// ==================== PAGE OPERATIONS ====================

func (s *masterServiceImpl) ListPages(ctx context.Context, caller access.Caller, filter page.ListPagesRequest) ([]page.PageResponse, error) {
	if err := access.Authorize(caller, access.RoleUser); err != nil {
		return nil, err
	}
	filter.Team = strings.TrimSpace(filter.Team)

	pages, err := s.pageRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]page.PageResponse, 0, len(pages))
	for _, p := range pages {
		responses = append(responses, page.NewPageResponse(p))
	}
	return responses, nil
}

func (s *masterServiceImpl) CreatePage(ctx context.Context, caller access.Caller, req page.CreatePageRequest) (page.PageResponse, error) {
	if err := access.Authorize(caller, access.RoleAdmin); err != nil {
		return page.PageResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return page.PageResponse{}, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created, err := s.pageRepo.Create(ctx, page.Page{
		Key:    req.Key,
		Name:   strings.TrimSpace(req.Name),
		TeamID: req.TeamID,
		Active: active,
	})
	if err != nil {
		return page.PageResponse{}, err
	}
	return page.NewPageResponse(created), nil
}

func (s *masterServiceImpl) UpdatePage(ctx context.Context, caller access.Caller, req page.UpdatePageRequest) (page.PageResponse, error) {
	if err := access.Authorize(caller, access.RoleAdmin); err != nil {
		return page.PageResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return page.PageResponse{}, err
	}

	updated, err := s.pageRepo.Update(ctx, req)
	if err != nil {
		return page.PageResponse{}, err
	}
	return page.NewPageResponse(updated), nil
}

func (s *masterServiceImpl) DeletePage(ctx context.Context, caller access.Caller, id int64) error {
	if err := access.Authorize(caller, access.RoleAdmin); err != nil {
		return err
	}
	if id <= 0 {
		return page.ErrPageNotFound
	}
	return s.pageRepo.Delete(ctx, id)
}
