package memory

import (
	"context"

	"github.com/aidar/octofit-tracker/internal/domain"
)

// LeaderboardRepository реализует repository.LeaderboardRepository в памяти
type LeaderboardRepository struct {
	entries *collection[domain.LeaderboardEntry]
}

// NewLeaderboardRepository создает пустой LeaderboardRepository
func NewLeaderboardRepository() *LeaderboardRepository {
	return &LeaderboardRepository{entries: newCollection(cloneLeaderboardEntry)}
}

func cloneLeaderboardEntry(e domain.LeaderboardEntry) domain.LeaderboardEntry {
	e.TeamID = clonePtr(e.TeamID)
	e.TeamName = clonePtr(e.TeamName)
	return e
}

// Create сохраняет новую строку таблицы лидеров
func (r *LeaderboardRepository) Create(ctx context.Context, entry *domain.LeaderboardEntry) error {
	entry.ID = newID()
	entry.LastUpdated = now()
	r.entries.put(entry.ID, *entry)
	return nil
}

// GetByID получает строку по ID
func (r *LeaderboardRepository) GetByID(ctx context.Context, id string) (*domain.LeaderboardEntry, error) {
	entry, ok := r.entries.get(id)
	if !ok {
		return nil, domain.ErrLeaderboardEntryNotFound
	}
	return &entry, nil
}

// List возвращает строки по убыванию очков
func (r *LeaderboardRepository) List(ctx context.Context) ([]*domain.LeaderboardEntry, error) {
	entries := r.entries.list(nil, func(a, b domain.LeaderboardEntry) bool {
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		if a.UserName != b.UserName {
			return a.UserName < b.UserName
		}
		return a.ID < b.ID
	})

	out := make([]*domain.LeaderboardEntry, len(entries))
	for i := range entries {
		out[i] = &entries[i]
	}
	return out, nil
}

// Update сохраняет изменения строки и обновляет LastUpdated
func (r *LeaderboardRepository) Update(ctx context.Context, entry *domain.LeaderboardEntry) error {
	updated := *entry
	updated.LastUpdated = now()
	if !r.entries.replace(updated.ID, updated) {
		return domain.ErrLeaderboardEntryNotFound
	}
	entry.LastUpdated = updated.LastUpdated
	return nil
}

// Delete удаляет строку
func (r *LeaderboardRepository) Delete(ctx context.Context, id string) error {
	if !r.entries.remove(id) {
		return domain.ErrLeaderboardEntryNotFound
	}
	return nil
}

// DeleteAll очищает таблицу лидеров
func (r *LeaderboardRepository) DeleteAll(ctx context.Context) error {
	r.entries.clear()
	return nil
}

// ReplaceAll заменяет все строки переданными
func (r *LeaderboardRepository) ReplaceAll(ctx context.Context, entries []*domain.LeaderboardEntry) error {
	updatedAt := now()
	items := make(map[string]domain.LeaderboardEntry, len(entries))
	for _, entry := range entries {
		entry.ID = newID()
		entry.LastUpdated = updatedAt
		items[entry.ID] = *entry
	}
	r.entries.reset(items)
	return nil
}

// Count возвращает количество строк
func (r *LeaderboardRepository) Count(ctx context.Context) (int, error) {
	return r.entries.count(), nil
}
