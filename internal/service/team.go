package service

import (
	"context"
	"fmt"

	"github.com/aidar/octofit-tracker/internal/domain"
	"github.com/aidar/octofit-tracker/internal/repository"
)

// TeamService handles business logic for teams
type TeamService struct {
	teamRepo repository.TeamRepository
}

// NewTeamService creates a new TeamService
func NewTeamService(teamRepo repository.TeamRepository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

// List returns all teams in creation order
func (s *TeamService) List(ctx context.Context) ([]*domain.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// Get retrieves a team by id
func (s *TeamService) Get(ctx context.Context, id string) (*domain.Team, error) {
	return s.teamRepo.GetByID(ctx, id)
}

// Create stores a new team
func (s *TeamService) Create(ctx context.Context, in domain.TeamInput) (*domain.Team, error) {
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	team := &domain.Team{
		Name:        in.Name,
		Description: in.Description,
		Members:     in.Members,
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// Update replaces the mutable fields of a team
func (s *TeamService) Update(ctx context.Context, id string, in domain.TeamInput) (*domain.Team, error) {
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	team.Name = in.Name
	team.Description = in.Description
	team.Members = in.Members
	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// Delete removes a team. Users keep their team_id.
func (s *TeamService) Delete(ctx context.Context, id string) error {
	return s.teamRepo.Delete(ctx, id)
}
