package repository

import (
	"context"

	"github.com/aidar/octofit-tracker/internal/domain"
)

// UserRepository определяет методы для работы с данными пользователей
type UserRepository interface {
	// Create сохраняет нового пользователя, заполняя ID и CreatedAt
	Create(ctx context.Context, user *domain.User) error

	// GetByID получает пользователя по ID
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// List возвращает пользователей с учетом поиска и сортировки
	List(ctx context.Context, filter domain.UserFilter) ([]*domain.User, error)

	// Update сохраняет изменения существующего пользователя
	Update(ctx context.Context, user *domain.User) error

	// Delete удаляет пользователя
	Delete(ctx context.Context, id string) error

	// DeleteAll очищает коллекцию
	DeleteAll(ctx context.Context) error

	// Count возвращает количество пользователей
	Count(ctx context.Context) (int, error)
}

// TeamRepository определяет методы для работы с данными команд
type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)

	// List возвращает команды в порядке создания
	List(ctx context.Context) ([]*domain.Team, error)

	Update(ctx context.Context, team *domain.Team) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

// ActivityRepository определяет методы для работы с активностями
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)

	// List возвращает все активности, новые первыми
	List(ctx context.Context) ([]*domain.Activity, error)

	// ListByUser возвращает активности пользователя, новые первыми.
	// limit <= 0 означает без ограничения.
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Activity, error)

	Update(ctx context.Context, activity *domain.Activity) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

// LeaderboardRepository определяет методы для работы с таблицей лидеров
type LeaderboardRepository interface {
	// Create сохраняет строку, выставляя ID и LastUpdated
	Create(ctx context.Context, entry *domain.LeaderboardEntry) error
	GetByID(ctx context.Context, id string) (*domain.LeaderboardEntry, error)

	// List возвращает строки по убыванию очков
	List(ctx context.Context) ([]*domain.LeaderboardEntry, error)

	// Update сохраняет изменения и обновляет LastUpdated
	Update(ctx context.Context, entry *domain.LeaderboardEntry) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error

	// ReplaceAll атомарно заменяет все строки переданными, выставляя ID и LastUpdated
	ReplaceAll(ctx context.Context, entries []*domain.LeaderboardEntry) error
	Count(ctx context.Context) (int, error)
}

// WorkoutRepository определяет методы для работы с каталогом тренировок
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) error
	GetByID(ctx context.Context, id string) (*domain.Workout, error)

	// List возвращает тренировки по названию
	List(ctx context.Context) ([]*domain.Workout, error)

	Update(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

// Repositories объединяет репозитории всех коллекций одного хранилища
type Repositories struct {
	Users       UserRepository
	Teams       TeamRepository
	Activities  ActivityRepository
	Leaderboard LeaderboardRepository
	Workouts    WorkoutRepository
}
