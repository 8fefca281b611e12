package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/octofit-tracker/internal/domain"
)

const leaderboardColumns = `id, user_id, user_name, team_id, team_name,
	total_points, total_activities, total_calories, last_updated`

// LeaderboardRepository реализует repository.LeaderboardRepository для PostgreSQL
type LeaderboardRepository struct {
	db *pgxpool.Pool
}

// NewLeaderboardRepository создает новый экземпляр LeaderboardRepository
func NewLeaderboardRepository(db *pgxpool.Pool) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

const insertLeaderboardEntry = `
	INSERT INTO leaderboard (id, user_id, user_name, team_id, team_name,
		total_points, total_activities, total_calories, last_updated)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

func leaderboardArgs(id string, entry *domain.LeaderboardEntry, updatedAt time.Time) []any {
	return []any{
		id,
		entry.UserID,
		entry.UserName,
		entry.TeamID,
		entry.TeamName,
		entry.TotalPoints,
		entry.TotalActivities,
		entry.TotalCalories,
		updatedAt,
	}
}

// Create сохраняет новую строку таблицы лидеров
func (r *LeaderboardRepository) Create(ctx context.Context, entry *domain.LeaderboardEntry) error {
	id, updatedAt := newID(), now()
	if _, err := r.db.Exec(ctx, insertLeaderboardEntry, leaderboardArgs(id, entry, updatedAt)...); err != nil {
		return err
	}

	entry.ID = id
	entry.LastUpdated = updatedAt
	return nil
}

// ReplaceAll очищает таблицу и вставляет переданные строки в одной транзакции.
// Читатели видят либо старую таблицу, либо новую целиком.
func (r *LeaderboardRepository) ReplaceAll(ctx context.Context, entries []*domain.LeaderboardEntry) error {
	updatedAt := now()
	ids := make([]string, len(entries))

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		// Блокировка сериализует перестроения из разных процессов
		if _, err := tx.Exec(ctx, `LOCK TABLE leaderboard IN EXCLUSIVE MODE`); err != nil {
			return fmt.Errorf("lock leaderboard: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM leaderboard`); err != nil {
			return fmt.Errorf("clear leaderboard: %w", err)
		}

		batch := &pgx.Batch{}
		for i, entry := range entries {
			ids[i] = newID()
			batch.Queue(insertLeaderboardEntry, leaderboardArgs(ids[i], entry, updatedAt)...)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return err
	}

	for i, entry := range entries {
		entry.ID = ids[i]
		entry.LastUpdated = updatedAt
	}
	return nil
}

// GetByID получает строку таблицы лидеров по ID
func (r *LeaderboardRepository) GetByID(ctx context.Context, id string) (*domain.LeaderboardEntry, error) {
	query := `SELECT ` + leaderboardColumns + ` FROM leaderboard WHERE id = $1`

	entry, err := scanLeaderboardEntry(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLeaderboardEntryNotFound
		}
		return nil, err
	}

	return entry, nil
}

// List возвращает строки по убыванию очков
func (r *LeaderboardRepository) List(ctx context.Context) ([]*domain.LeaderboardEntry, error) {
	query := `SELECT ` + leaderboardColumns + ` FROM leaderboard
		ORDER BY total_points DESC, user_name, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*domain.LeaderboardEntry{}
	for rows.Next() {
		entry, err := scanLeaderboardEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Update сохраняет изменения строки и обновляет last_updated
func (r *LeaderboardRepository) Update(ctx context.Context, entry *domain.LeaderboardEntry) error {
	query := `
		UPDATE leaderboard
		SET user_id = $1, user_name = $2, team_id = $3, team_name = $4,
		    total_points = $5, total_activities = $6, total_calories = $7, last_updated = $8
		WHERE id = $9
	`

	updatedAt := now()
	result, err := r.db.Exec(ctx, query,
		entry.UserID,
		entry.UserName,
		entry.TeamID,
		entry.TeamName,
		entry.TotalPoints,
		entry.TotalActivities,
		entry.TotalCalories,
		updatedAt,
		entry.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrLeaderboardEntryNotFound
	}

	entry.LastUpdated = updatedAt
	return nil
}

// Delete удаляет строку таблицы лидеров
func (r *LeaderboardRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM leaderboard WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrLeaderboardEntryNotFound
	}

	return nil
}

// DeleteAll очищает таблицу лидеров
func (r *LeaderboardRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM leaderboard`)
	return err
}

// Count возвращает количество строк таблицы лидеров
func (r *LeaderboardRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM leaderboard`).Scan(&count)
	return count, err
}

func scanLeaderboardEntry(row pgx.Row) (*domain.LeaderboardEntry, error) {
	var e domain.LeaderboardEntry
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.UserName,
		&e.TeamID,
		&e.TeamName,
		&e.TotalPoints,
		&e.TotalActivities,
		&e.TotalCalories,
		&e.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
