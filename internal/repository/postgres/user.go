package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/octofit-tracker/internal/domain"
)

const userColumns = `id, name, email, password, team_id, created_at`

// UserRepository реализует repository.UserRepository для PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository создает новый экземпляр UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create сохраняет нового пользователя
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, name, email, password, team_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	id, createdAt := newID(), now()
	_, err := r.db.Exec(ctx, query, id, user.Name, user.Email, user.PasswordHash, user.TeamID, createdAt)
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return domain.ErrEmailExists
		}
		return err
	}

	user.ID = id
	user.CreatedAt = createdAt
	return nil
}

// GetByID получает пользователя по ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// List возвращает пользователей с поиском по name/email и сортировкой
func (r *UserRepository) List(ctx context.Context, filter domain.UserFilter) ([]*domain.User, error) {
	field, desc := filter.OrderField()
	direction := "ASC"
	if desc {
		direction = "DESC"
	}

	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`SELECT ` + userColumns + ` FROM users`)
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, likePattern(search))
		sb.WriteString(` WHERE name ILIKE $1 OR email ILIKE $1`)
	}
	// field берется только из белого списка domain.UserOrdering.
	// Текст сравнивается без учета регистра, затем побайтово, как в memory-хранилище.
	if field == "created_at" {
		fmt.Fprintf(&sb, ` ORDER BY %s %s, id`, field, direction)
	} else {
		fmt.Fprintf(&sb, ` ORDER BY lower(%[1]s) %[2]s, %[1]s COLLATE "C" %[2]s, id`, field, direction)
	}

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// Update сохраняет изменения пользователя
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, password = $3, team_id = $4
		WHERE id = $5
	`

	result, err := r.db.Exec(ctx, query, user.Name, user.Email, user.PasswordHash, user.TeamID, user.ID)
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return domain.ErrEmailExists
		}
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// Delete удаляет пользователя
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// DeleteAll очищает коллекцию пользователей
func (r *UserRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users`)
	return err
}

// Count возвращает количество пользователей
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.TeamID,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
