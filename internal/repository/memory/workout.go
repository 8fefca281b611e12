package memory

import (
	"context"

	"github.com/aidar/octofit-tracker/internal/domain"
)

// WorkoutRepository реализует repository.WorkoutRepository в памяти
type WorkoutRepository struct {
	workouts *collection[domain.Workout]
}

// NewWorkoutRepository создает пустой WorkoutRepository
func NewWorkoutRepository() *WorkoutRepository {
	return &WorkoutRepository{workouts: newCollection(cloneWorkout)}
}

func cloneWorkout(w domain.Workout) domain.Workout {
	w.Instructions = cloneStrings(w.Instructions)
	return w
}

// Create добавляет тренировку в каталог
func (r *WorkoutRepository) Create(ctx context.Context, workout *domain.Workout) error {
	workout.ID = newID()
	workout.Instructions = cloneStrings(workout.Instructions)
	r.workouts.put(workout.ID, *workout)
	return nil
}

// GetByID получает тренировку по ID
func (r *WorkoutRepository) GetByID(ctx context.Context, id string) (*domain.Workout, error) {
	workout, ok := r.workouts.get(id)
	if !ok {
		return nil, domain.ErrWorkoutNotFound
	}
	return &workout, nil
}

// List возвращает каталог по названию
func (r *WorkoutRepository) List(ctx context.Context) ([]*domain.Workout, error) {
	workouts := r.workouts.list(nil, func(a, b domain.Workout) bool {
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})

	out := make([]*domain.Workout, len(workouts))
	for i := range workouts {
		out[i] = &workouts[i]
	}
	return out, nil
}

// Update сохраняет изменения тренировки
func (r *WorkoutRepository) Update(ctx context.Context, workout *domain.Workout) error {
	workout.Instructions = cloneStrings(workout.Instructions)
	if !r.workouts.replace(workout.ID, *workout) {
		return domain.ErrWorkoutNotFound
	}
	return nil
}

// Delete удаляет тренировку
func (r *WorkoutRepository) Delete(ctx context.Context, id string) error {
	if !r.workouts.remove(id) {
		return domain.ErrWorkoutNotFound
	}
	return nil
}

// DeleteAll очищает каталог
func (r *WorkoutRepository) DeleteAll(ctx context.Context) error {
	r.workouts.clear()
	return nil
}

// Count возвращает количество тренировок
func (r *WorkoutRepository) Count(ctx context.Context) (int, error) {
	return r.workouts.count(), nil
}
