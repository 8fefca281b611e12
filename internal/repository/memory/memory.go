// Package memory реализует репозитории в памяти процесса.
// Используется для локальной разработки (STORE_DRIVER=memory) и в тестах.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aidar/octofit-tracker/internal/repository"
)

// NewRepositories создает пустое хранилище всех коллекций
func NewRepositories() repository.Repositories {
	return repository.Repositories{
		Users:       NewUserRepository(),
		Teams:       NewTeamRepository(),
		Activities:  NewActivityRepository(),
		Leaderboard: NewLeaderboardRepository(),
		Workouts:    NewWorkoutRepository(),
	}
}

// collection хранит записи по ID. Записи хранятся и отдаются копиями,
// поэтому вызывающий код не может изменить состояние в обход методов.
type collection[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	clone func(T) T
}

func newCollection[T any](clone func(T) T) *collection[T] {
	return &collection[T]{
		items: make(map[string]T),
		clone: clone,
	}
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		return item, false
	}
	return c.clone(item), true
}

func (c *collection[T]) put(id string, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[id] = c.clone(item)
}

// putUnique сохраняет запись, если ни одна другая запись не конфликтует с ней.
// mustExist требует, чтобы запись с таким id уже была (обновление).
func (c *collection[T]) putUnique(id string, item T, mustExist bool, conflicts func(existing T) bool) (found, stored bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, found = c.items[id]
	if mustExist && !found {
		return false, false
	}
	if conflicts != nil {
		for otherID, existing := range c.items {
			if otherID != id && conflicts(existing) {
				return found, false
			}
		}
	}
	c.items[id] = c.clone(item)
	return found, true
}

// replace обновляет существующую запись, возвращает false если ее нет
func (c *collection[T]) replace(id string, item T) bool {
	found, _ := c.putUnique(id, item, true, nil)
	return found
}

func (c *collection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	return true
}

func (c *collection[T]) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]T)
}

// reset заменяет содержимое коллекции одной операцией
func (c *collection[T]) reset(items map[string]T) {
	fresh := make(map[string]T, len(items))
	for id, item := range items {
		fresh[id] = c.clone(item)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = fresh
}

func (c *collection[T]) count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// list возвращает копии записей, прошедших keep, упорядоченные less
func (c *collection[T]) list(keep func(T) bool, less func(a, b T) bool) []T {
	c.mu.RLock()
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if keep == nil || keep(item) {
			out = append(out, c.clone(item))
		}
	}
	c.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func newID() string {
	return uuid.NewString()
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func cloneStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
