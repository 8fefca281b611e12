package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/octofit-tracker/internal/domain"
)

const teamColumns = `id, name, description, members, created_at`

// TeamRepository реализует repository.TeamRepository для PostgreSQL
type TeamRepository struct {
	db *pgxpool.Pool
}

// NewTeamRepository создает новый экземпляр TeamRepository
func NewTeamRepository(db *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create создает новую команду
func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (id, name, description, members, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	id, createdAt := newID(), now()
	team.Members = nonNil(team.Members)
	if _, err := r.db.Exec(ctx, query, id, team.Name, team.Description, team.Members, createdAt); err != nil {
		return err
	}

	team.ID = id
	team.CreatedAt = createdAt
	return nil
}

// GetByID получает команду по ID
func (r *TeamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`

	team, err := scanTeam(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}

	return team, nil
}

// List возвращает команды в порядке создания
func (r *TeamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := []*domain.Team{}
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

// Update сохраняет изменения команды
func (r *TeamRepository) Update(ctx context.Context, team *domain.Team) error {
	query := `
		UPDATE teams
		SET name = $1, description = $2, members = $3
		WHERE id = $4
	`

	team.Members = nonNil(team.Members)
	result, err := r.db.Exec(ctx, query, team.Name, team.Description, team.Members, team.ID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrTeamNotFound
	}

	return nil
}

// Delete удаляет команду. Пользователи, ссылающиеся на нее, не затрагиваются.
func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrTeamNotFound
	}

	return nil
}

// DeleteAll очищает коллекцию команд
func (r *TeamRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM teams`)
	return err
}

// Count возвращает количество команд
func (r *TeamRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM teams`).Scan(&count)
	return count, err
}

func scanTeam(row pgx.Row) (*domain.Team, error) {
	var team domain.Team
	if err := row.Scan(&team.ID, &team.Name, &team.Description, &team.Members, &team.CreatedAt); err != nil {
		return nil, err
	}
	team.Members = nonNil(team.Members)
	return &team, nil
}
