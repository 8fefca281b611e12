package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aidar/octofit-tracker/internal/domain"
	"github.com/aidar/octofit-tracker/internal/observability"
	"github.com/aidar/octofit-tracker/internal/repository"
)

// LeaderboardService handles the leaderboard collection and its recomputation
type LeaderboardService struct {
	leaderboardRepo repository.LeaderboardRepository
	userRepo        repository.UserRepository
	teamRepo        repository.TeamRepository
	activityRepo    repository.ActivityRepository
	logger          *slog.Logger

	// rebuildMu serializes rebuilds so concurrent callers never interleave
	rebuildMu sync.Mutex
}

// NewLeaderboardService creates a new LeaderboardService
func NewLeaderboardService(repos repository.Repositories, logger *slog.Logger) *LeaderboardService {
	return &LeaderboardService{
		leaderboardRepo: repos.Leaderboard,
		userRepo:        repos.Users,
		teamRepo:        repos.Teams,
		activityRepo:    repos.Activities,
		logger:          logger,
	}
}

// List returns leaderboard rows ordered by points, highest first
func (s *LeaderboardService) List(ctx context.Context) ([]*domain.LeaderboardEntry, error) {
	entries, err := s.leaderboardRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leaderboard: %w", err)
	}
	return entries, nil
}

// Get retrieves a leaderboard row by id
func (s *LeaderboardService) Get(ctx context.Context, id string) (*domain.LeaderboardEntry, error) {
	return s.leaderboardRepo.GetByID(ctx, id)
}

// Create stores a leaderboard row as given. Totals are not recomputed.
func (s *LeaderboardService) Create(ctx context.Context, in domain.LeaderboardInput) (*domain.LeaderboardEntry, error) {
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	entry := &domain.LeaderboardEntry{}
	applyLeaderboardInput(entry, in)
	if err := s.leaderboardRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Update replaces the mutable fields of a leaderboard row
func (s *LeaderboardService) Update(ctx context.Context, id string, in domain.LeaderboardInput) (*domain.LeaderboardEntry, error) {
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	entry, err := s.leaderboardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyLeaderboardInput(entry, in)
	if err := s.leaderboardRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete removes a leaderboard row
func (s *LeaderboardService) Delete(ctx context.Context, id string) error {
	return s.leaderboardRepo.Delete(ctx, id)
}

// Rebuild replaces the leaderboard with one row per user computed from their activities.
// Users whose team cannot be resolved get a nil team name. The new rows are
// computed first and swapped in at once, so a failure leaves the previous
// leaderboard in place.
func (s *LeaderboardService) Rebuild(ctx context.Context) ([]*domain.LeaderboardEntry, error) {
	s.rebuildMu.Lock()
	defer s.rebuildMu.Unlock()

	entries, err := s.rebuild(ctx)
	if err != nil {
		observability.RecordLeaderboardRebuildFailure()
		return nil, err
	}

	observability.RecordLeaderboardRebuild(len(entries), time.Now())
	s.logger.InfoContext(ctx, "Leaderboard rebuilt", "entries", len(entries))

	return s.List(ctx)
}

func (s *LeaderboardService) rebuild(ctx context.Context) ([]*domain.LeaderboardEntry, error) {
	users, err := s.userRepo.List(ctx, domain.UserFilter{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	teamNames := make(map[string]*string)
	entries := make([]*domain.LeaderboardEntry, 0, len(users))
	for _, user := range users {
		activities, err := s.activityRepo.ListByUser(ctx, user.ID, 0)
		if err != nil {
			return nil, fmt.Errorf("list activities of user %s: %w", user.ID, err)
		}
		totals := domain.ComputeTotals(activities)

		entry := &domain.LeaderboardEntry{
			UserID:          user.ID,
			UserName:        user.Name,
			TeamID:          user.TeamID,
			TeamName:        s.resolveTeamName(ctx, user.TeamID, teamNames),
			TotalPoints:     totals.TotalPoints,
			TotalActivities: totals.TotalActivities,
			TotalCalories:   totals.TotalCalories,
		}
		entries = append(entries, entry)
	}

	if err := s.leaderboardRepo.ReplaceAll(ctx, entries); err != nil {
		return nil, fmt.Errorf("replace leaderboard: %w", err)
	}
	return entries, nil
}

// resolveTeamName looks a team up once per rebuild
func (s *LeaderboardService) resolveTeamName(ctx context.Context, teamID *string, cache map[string]*string) *string {
	if teamID == nil || *teamID == "" {
		return nil
	}
	if name, ok := cache[*teamID]; ok {
		return name
	}

	var name *string
	team, err := s.teamRepo.GetByID(ctx, *teamID)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to resolve team name", "team_id", *teamID, "error", err)
	} else {
		name = &team.Name
	}
	cache[*teamID] = name
	return name
}

func applyLeaderboardInput(e *domain.LeaderboardEntry, in domain.LeaderboardInput) {
	e.UserID = in.UserID
	e.UserName = in.UserName
	e.TeamID = in.TeamID
	e.TeamName = in.TeamName
	e.TotalPoints = in.TotalPoints
	e.TotalActivities = in.TotalActivities
	e.TotalCalories = in.TotalCalories
}
