package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aidar/octofit-tracker/internal/auth"
	"github.com/aidar/octofit-tracker/internal/domain"
	"github.com/aidar/octofit-tracker/internal/repository"
)

// RecentActivityLimit is how many activities the user detail view embeds.
const RecentActivityLimit = 5

// UserService handles business logic for users
type UserService struct {
	userRepo     repository.UserRepository
	teamRepo     repository.TeamRepository
	activityRepo repository.ActivityRepository
	hasher       *auth.PasswordHasher
	logger       *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repository.UserRepository,
	teamRepo repository.TeamRepository,
	activityRepo repository.ActivityRepository,
	hasher *auth.PasswordHasher,
	logger *slog.Logger,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		teamRepo:     teamRepo,
		activityRepo: activityRepo,
		hasher:       hasher,
		logger:       logger,
	}
}

// List returns users matching the filter
func (s *UserService) List(ctx context.Context, filter domain.UserFilter) ([]*domain.User, error) {
	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get returns the basic representation of a user
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// Detail returns a user with the resolved team name and the most recent activities.
// A team that cannot be resolved yields a nil TeamName rather than an error.
func (s *UserService) Detail(ctx context.Context, id string) (*domain.UserDetail, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.ListByUser(ctx, user.ID, RecentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent activities: %w", err)
	}

	return &domain.UserDetail{
		User:       *user,
		TeamName:   s.teamName(ctx, user.TeamID),
		Activities: activities,
	}, nil
}

func (s *UserService) teamName(ctx context.Context, teamID *string) *string {
	if teamID == nil || *teamID == "" {
		return nil
	}
	team, err := s.teamRepo.GetByID(ctx, *teamID)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to resolve team name", "team_id", *teamID, "error", err)
		return nil
	}
	name := team.Name
	return &name
}

// Create validates the input, hashes the password and stores a new user
func (s *UserService) Create(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	if err := validateInput(&in); err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, &domain.ValidationError{Field: "password", Message: "this field is required"}
	}

	hash, err := s.hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		TeamID:       in.TeamID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update replaces the mutable fields of a user. An empty password keeps the stored hash.
func (s *UserService) Update(ctx context.Context, id string, in domain.UserInput) (*domain.User, error) {
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = in.Name
	user.Email = in.Email
	user.TeamID = in.TeamID
	if in.Password != "" {
		hash, err := s.hashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}

func (s *UserService) hashPassword(password string) (string, error) {
	hash, err := s.hasher.Hash(password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return "", &domain.ValidationError{Field: "password", Message: err.Error()}
	}
	return hash, err
}
