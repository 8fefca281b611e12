package memory

import (
	"context"

	"github.com/aidar/octofit-tracker/internal/domain"
)

// ActivityRepository реализует repository.ActivityRepository в памяти
type ActivityRepository struct {
	activities *collection[domain.Activity]
}

// NewActivityRepository создает пустой ActivityRepository
func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{activities: newCollection(cloneActivity)}
}

func cloneActivity(a domain.Activity) domain.Activity {
	a.Distance = clonePtr(a.Distance)
	a.Notes = clonePtr(a.Notes)
	return a
}

// newestFirst упорядочивает активности по дате по убыванию
func newestFirst(a, b domain.Activity) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	return a.ID < b.ID
}

// Create сохраняет новую активность
func (r *ActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	activity.ID = newID()
	r.activities.put(activity.ID, *activity)
	return nil
}

// GetByID получает активность по ID
func (r *ActivityRepository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	activity, ok := r.activities.get(id)
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	return &activity, nil
}

// List возвращает все активности, новые первыми
func (r *ActivityRepository) List(ctx context.Context) ([]*domain.Activity, error) {
	return pointers(r.activities.list(nil, newestFirst), 0), nil
}

// ListByUser возвращает активности пользователя, новые первыми
func (r *ActivityRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Activity, error) {
	activities := r.activities.list(func(a domain.Activity) bool {
		return a.UserID == userID
	}, newestFirst)
	return pointers(activities, limit), nil
}

func pointers(activities []domain.Activity, limit int) []*domain.Activity {
	if limit > 0 && len(activities) > limit {
		activities = activities[:limit]
	}
	out := make([]*domain.Activity, len(activities))
	for i := range activities {
		out[i] = &activities[i]
	}
	return out
}

// Update сохраняет изменения активности
func (r *ActivityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	if !r.activities.replace(activity.ID, *activity) {
		return domain.ErrActivityNotFound
	}
	return nil
}

// Delete удаляет активность
func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	if !r.activities.remove(id) {
		return domain.ErrActivityNotFound
	}
	return nil
}

// DeleteAll очищает коллекцию
func (r *ActivityRepository) DeleteAll(ctx context.Context) error {
	r.activities.clear()
	return nil
}

// Count возвращает количество активностей
func (r *ActivityRepository) Count(ctx context.Context) (int, error) {
	return r.activities.count(), nil
}
