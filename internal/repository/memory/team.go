package memory

import (
	"context"

	"github.com/aidar/octofit-tracker/internal/domain"
)

// TeamRepository реализует repository.TeamRepository в памяти
type TeamRepository struct {
	teams *collection[domain.Team]
}

// NewTeamRepository создает пустой TeamRepository
func NewTeamRepository() *TeamRepository {
	return &TeamRepository{teams: newCollection(cloneTeam)}
}

func cloneTeam(t domain.Team) domain.Team {
	t.Members = cloneStrings(t.Members)
	return t
}

// Create создает новую команду
func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	team.ID = newID()
	team.CreatedAt = now()
	team.Members = cloneStrings(team.Members)
	r.teams.put(team.ID, *team)
	return nil
}

// GetByID получает команду по ID
func (r *TeamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	team, ok := r.teams.get(id)
	if !ok {
		return nil, domain.ErrTeamNotFound
	}
	return &team, nil
}

// List возвращает команды в порядке создания
func (r *TeamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	teams := r.teams.list(nil, func(a, b domain.Team) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	out := make([]*domain.Team, len(teams))
	for i := range teams {
		out[i] = &teams[i]
	}
	return out, nil
}

// Update сохраняет изменения команды
func (r *TeamRepository) Update(ctx context.Context, team *domain.Team) error {
	team.Members = cloneStrings(team.Members)
	if !r.teams.replace(team.ID, *team) {
		return domain.ErrTeamNotFound
	}
	return nil
}

// Delete удаляет команду
func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	if !r.teams.remove(id) {
		return domain.ErrTeamNotFound
	}
	return nil
}

// DeleteAll очищает коллекцию
func (r *TeamRepository) DeleteAll(ctx context.Context) error {
	r.teams.clear()
	return nil
}

// Count возвращает количество команд
func (r *TeamRepository) Count(ctx context.Context) (int, error) {
	return r.teams.count(), nil
}
