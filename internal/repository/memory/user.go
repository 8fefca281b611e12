package memory

import (
	"context"
	"strings"

	"github.com/aidar/octofit-tracker/internal/domain"
)

// UserRepository реализует repository.UserRepository в памяти
type UserRepository struct {
	users *collection[domain.User]
}

// NewUserRepository создает пустой UserRepository
func NewUserRepository() *UserRepository {
	return &UserRepository{users: newCollection(cloneUser)}
}

func cloneUser(u domain.User) domain.User {
	u.TeamID = clonePtr(u.TeamID)
	return u
}

func sameEmail(email string) func(domain.User) bool {
	return func(existing domain.User) bool {
		return existing.Email == email
	}
}

// Create сохраняет нового пользователя
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	created := *user
	created.ID = newID()
	created.CreatedAt = now()

	if _, stored := r.users.putUnique(created.ID, created, false, sameEmail(created.Email)); !stored {
		return domain.ErrEmailExists
	}

	user.ID = created.ID
	user.CreatedAt = created.CreatedAt
	return nil
}

// GetByID получает пользователя по ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, ok := r.users.get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

// List возвращает пользователей с поиском по name/email и сортировкой
func (r *UserRepository) List(ctx context.Context, filter domain.UserFilter) ([]*domain.User, error) {
	var keep func(domain.User) bool
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		keep = func(u domain.User) bool {
			return strings.Contains(strings.ToLower(u.Name), search) ||
				strings.Contains(strings.ToLower(u.Email), search)
		}
	}

	field, desc := filter.OrderField()
	less := func(a, b domain.User) bool {
		var cmp int
		switch field {
		case "email":
			cmp = compareText(a.Email, b.Email)
		case "created_at":
			cmp = a.CreatedAt.Compare(b.CreatedAt)
		default:
			cmp = compareText(a.Name, b.Name)
		}
		if desc {
			cmp = -cmp
		}
		if cmp == 0 {
			return a.ID < b.ID
		}
		return cmp < 0
	}

	users := r.users.list(keep, less)
	out := make([]*domain.User, len(users))
	for i := range users {
		out[i] = &users[i]
	}
	return out, nil
}

// Update сохраняет изменения пользователя
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	found, stored := r.users.putUnique(user.ID, *user, true, sameEmail(user.Email))
	if !found {
		return domain.ErrUserNotFound
	}
	if !stored {
		return domain.ErrEmailExists
	}
	return nil
}

// Delete удаляет пользователя
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if !r.users.remove(id) {
		return domain.ErrUserNotFound
	}
	return nil
}

// DeleteAll очищает коллекцию
func (r *UserRepository) DeleteAll(ctx context.Context) error {
	r.users.clear()
	return nil
}

// Count возвращает количество пользователей
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	return r.users.count(), nil
}

// compareText сравнивает без учета регистра, при равенстве побайтово
func compareText(a, b string) int {
	if cmp := strings.Compare(strings.ToLower(a), strings.ToLower(b)); cmp != 0 {
		return cmp
	}
	return strings.Compare(a, b)
}
