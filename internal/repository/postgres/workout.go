package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/octofit-tracker/internal/domain"
)

const workoutColumns = `id, name, description, category, difficulty, duration, calories_estimate, instructions`

// WorkoutRepository реализует repository.WorkoutRepository для PostgreSQL
type WorkoutRepository struct {
	db *pgxpool.Pool
}

// NewWorkoutRepository создает новый экземпляр WorkoutRepository
func NewWorkoutRepository(db *pgxpool.Pool) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// Create добавляет тренировку в каталог
func (r *WorkoutRepository) Create(ctx context.Context, workout *domain.Workout) error {
	query := `
		INSERT INTO workouts (id, name, description, category, difficulty, duration, calories_estimate, instructions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	id := newID()
	workout.Instructions = nonNil(workout.Instructions)
	_, err := r.db.Exec(ctx, query,
		id,
		workout.Name,
		workout.Description,
		workout.Category,
		workout.Difficulty,
		workout.Duration,
		workout.CaloriesEstimate,
		workout.Instructions,
	)
	if err != nil {
		return err
	}

	workout.ID = id
	return nil
}

// GetByID получает тренировку по ID
func (r *WorkoutRepository) GetByID(ctx context.Context, id string) (*domain.Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE id = $1`

	workout, err := scanWorkout(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWorkoutNotFound
		}
		return nil, err
	}

	return workout, nil
}

// List возвращает каталог по названию
func (r *WorkoutRepository) List(ctx context.Context) ([]*domain.Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts ORDER BY name, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := []*domain.Workout{}
	for rows.Next() {
		workout, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, workout)
	}

	return workouts, rows.Err()
}

// Update сохраняет изменения тренировки
func (r *WorkoutRepository) Update(ctx context.Context, workout *domain.Workout) error {
	query := `
		UPDATE workouts
		SET name = $1, description = $2, category = $3, difficulty = $4,
		    duration = $5, calories_estimate = $6, instructions = $7
		WHERE id = $8
	`

	workout.Instructions = nonNil(workout.Instructions)
	result, err := r.db.Exec(ctx, query,
		workout.Name,
		workout.Description,
		workout.Category,
		workout.Difficulty,
		workout.Duration,
		workout.CaloriesEstimate,
		workout.Instructions,
		workout.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrWorkoutNotFound
	}

	return nil
}

// Delete удаляет тренировку
func (r *WorkoutRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM workouts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrWorkoutNotFound
	}

	return nil
}

// DeleteAll очищает каталог
func (r *WorkoutRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM workouts`)
	return err
}

// Count возвращает количество тренировок
func (r *WorkoutRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM workouts`).Scan(&count)
	return count, err
}

func scanWorkout(row pgx.Row) (*domain.Workout, error) {
	var w domain.Workout
	err := row.Scan(
		&w.ID,
		&w.Name,
		&w.Description,
		&w.Category,
		&w.Difficulty,
		&w.Duration,
		&w.CaloriesEstimate,
		&w.Instructions,
	)
	if err != nil {
		return nil, err
	}
	w.Instructions = nonNil(w.Instructions)
	return &w, nil
}
