package service

import (
	"context"
	"fmt"

	"github.com/aidar/octofit-tracker/internal/domain"
	"github.com/aidar/octofit-tracker/internal/repository"
)

// WorkoutService handles business logic for the workout catalogue
type WorkoutService struct {
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutService creates a new WorkoutService
func NewWorkoutService(workoutRepo repository.WorkoutRepository) *WorkoutService {
	return &WorkoutService{workoutRepo: workoutRepo}
}

// List returns all workouts ordered by name
func (s *WorkoutService) List(ctx context.Context) ([]*domain.Workout, error) {
	workouts, err := s.workoutRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

// Get retrieves a workout by id
func (s *WorkoutService) Get(ctx context.Context, id string) (*domain.Workout, error) {
	return s.workoutRepo.GetByID(ctx, id)
}

// Create stores a new workout
func (s *WorkoutService) Create(ctx context.Context, in domain.WorkoutInput) (*domain.Workout, error) {
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	workout := &domain.Workout{}
	applyWorkoutInput(workout, in)
	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// Update replaces the mutable fields of a workout
func (s *WorkoutService) Update(ctx context.Context, id string, in domain.WorkoutInput) (*domain.Workout, error) {
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyWorkoutInput(workout, in)
	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// Delete removes a workout
func (s *WorkoutService) Delete(ctx context.Context, id string) error {
	return s.workoutRepo.Delete(ctx, id)
}

func applyWorkoutInput(w *domain.Workout, in domain.WorkoutInput) {
	w.Name = in.Name
	w.Description = in.Description
	w.Category = in.Category
	w.Difficulty = in.Difficulty
	w.Duration = in.Duration
	w.CaloriesEstimate = in.CaloriesEstimate
	w.Instructions = in.Instructions
}
