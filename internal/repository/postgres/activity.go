package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/octofit-tracker/internal/domain"
)

const activityColumns = `id, user_id, activity_type, duration, distance, calories, date, notes`

// ActivityRepository реализует repository.ActivityRepository для PostgreSQL
type ActivityRepository struct {
	db *pgxpool.Pool
}

// NewActivityRepository создает новый экземпляр ActivityRepository
func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create сохраняет новую активность
func (r *ActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	query := `
		INSERT INTO activities (id, user_id, activity_type, duration, distance, calories, date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	id := newID()
	_, err := r.db.Exec(ctx, query,
		id,
		activity.UserID,
		activity.ActivityType,
		activity.Duration,
		activity.Distance,
		activity.Calories,
		activity.Date,
		activity.Notes,
	)
	if err != nil {
		return err
	}

	activity.ID = id
	return nil
}

// GetByID получает активность по ID
func (r *ActivityRepository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`

	activity, err := scanActivity(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, err
	}

	return activity, nil
}

// List возвращает все активности, новые первыми
func (r *ActivityRepository) List(ctx context.Context) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities ORDER BY date DESC, id`
	return r.query(ctx, query)
}

// ListByUser возвращает активности пользователя, новые первыми
func (r *ActivityRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE user_id = $1 ORDER BY date DESC, id`
	if limit > 0 {
		query += ` LIMIT $2`
		return r.query(ctx, query, userID, limit)
	}
	return r.query(ctx, query, userID)
}

func (r *ActivityRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Activity, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []*domain.Activity{}
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}

	return activities, rows.Err()
}

// Update сохраняет изменения активности
func (r *ActivityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	query := `
		UPDATE activities
		SET user_id = $1, activity_type = $2, duration = $3, distance = $4,
		    calories = $5, date = $6, notes = $7
		WHERE id = $8
	`

	result, err := r.db.Exec(ctx, query,
		activity.UserID,
		activity.ActivityType,
		activity.Duration,
		activity.Distance,
		activity.Calories,
		activity.Date,
		activity.Notes,
		activity.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrActivityNotFound
	}

	return nil
}

// Delete удаляет активность
func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrActivityNotFound
	}

	return nil
}

// DeleteAll очищает коллекцию активностей
func (r *ActivityRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM activities`)
	return err
}

// Count возвращает количество активностей
func (r *ActivityRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM activities`).Scan(&count)
	return count, err
}

func scanActivity(row pgx.Row) (*domain.Activity, error) {
	var a domain.Activity
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.ActivityType,
		&a.Duration,
		&a.Distance,
		&a.Calories,
		&a.Date,
		&a.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
