package service

import (
	"context"
	"fmt"

	"github.com/aidar/octofit-tracker/internal/domain"
	"github.com/aidar/octofit-tracker/internal/repository"
)

// ActivityService handles business logic for logged activities
type ActivityService struct {
	activityRepo repository.ActivityRepository
}

// NewActivityService creates a new ActivityService
func NewActivityService(activityRepo repository.ActivityRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

// List returns all activities, newest first
func (s *ActivityService) List(ctx context.Context) ([]*domain.Activity, error) {
	activities, err := s.activityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

// Get retrieves an activity by id
func (s *ActivityService) Get(ctx context.Context, id string) (*domain.Activity, error) {
	return s.activityRepo.GetByID(ctx, id)
}

// Create stores a new activity. The user id is not checked against the users collection.
func (s *ActivityService) Create(ctx context.Context, in domain.ActivityInput) (*domain.Activity, error) {
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	activity := &domain.Activity{}
	applyActivityInput(activity, in)
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// Update replaces the mutable fields of an activity
func (s *ActivityService) Update(ctx context.Context, id string, in domain.ActivityInput) (*domain.Activity, error) {
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyActivityInput(activity, in)
	if err := s.activityRepo.Update(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// Delete removes an activity
func (s *ActivityService) Delete(ctx context.Context, id string) error {
	return s.activityRepo.Delete(ctx, id)
}

func applyActivityInput(a *domain.Activity, in domain.ActivityInput) {
	a.UserID = in.UserID
	a.ActivityType = in.ActivityType
	a.Duration = in.Duration
	a.Distance = in.Distance
	a.Calories = in.Calories
	a.Date = in.Date.UTC()
	a.Notes = in.Notes
}
