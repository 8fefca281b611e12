// Package postgres реализует репозитории поверх PostgreSQL (pgx)
package postgres

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/octofit-tracker/internal/repository"
	"github.com/aidar/octofit-tracker/migrations"
)

const uniqueViolation = "23505"

// NewRepositories создает репозитории всех коллекций на общем пуле соединений
func NewRepositories(db *pgxpool.Pool) repository.Repositories {
	return repository.Repositories{
		Users:       NewUserRepository(db),
		Teams:       NewTeamRepository(db),
		Activities:  NewActivityRepository(db),
		Leaderboard: NewLeaderboardRepository(db),
		Workouts:    NewWorkoutRepository(db),
	}
}

// Migrate применяет все *.up.sql миграции по порядку имен.
// Схема написана идемпотентно, повторный запуск безопасен.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	names, err := fs.Glob(migrations.FS, "*.up.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		body, err := fs.ReadFile(migrations.FS, name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		if _, err := db.Exec(ctx, string(body)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
	}

	return nil
}

func newID() string {
	return uuid.NewString()
}

// now возвращает текущее время с точностью PostgreSQL
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// nonNil гарантирует, что в JSONB попадет [] а не null
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraint
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern строит шаблон ILIKE для поиска подстроки
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
