// Package admin реализует HTML-страницы администрирования коллекций
package admin

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aidar/octofit-tracker/internal/domain"
	"github.com/aidar/octofit-tracker/internal/repository"
)

// FilterKind тип фильтра в боковой панели
type FilterKind int

const (
	// FilterValue точное совпадение с одним из значений поля
	FilterValue FilterKind = iota
	// FilterDate диапазон дат: today, past7, month, year
	FilterDate
)

// Периоды фильтра по дате
const (
	PeriodToday = "today"
	PeriodPast7 = "past7"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// DatePeriods периоды фильтра по дате в порядке отображения
var DatePeriods = []struct{ Value, Label string }{
	{PeriodToday, "Today"},
	{PeriodPast7, "Past 7 days"},
	{PeriodMonth, "This month"},
	{PeriodYear, "This year"},
}

// Filter описывает фильтр по одному полю
type Filter struct {
	Field string
	Kind  FilterKind
}

// Row одна запись коллекции, приведенная к строкам для отображения
type Row struct {
	ID     string
	Values map[string]string
	Times  map[string]time.Time
}

// Resource конфигурация страницы одной коллекции
type Resource struct {
	Name    string
	Title   string
	Columns []string
	Search  []string
	Filters []Filter

	load  func(ctx context.Context) ([]Row, error)
	count func(ctx context.Context) (int, error)
}

// Resources возвращает конфигурацию всех коллекций поверх хранилища
func Resources(repos repository.Repositories) []*Resource {
	return []*Resource{
		{
			Name:    "users",
			Title:   "Users",
			Columns: []string{"name", "email", "team_id", "created_at"},
			Search:  []string{"name", "email"},
			Filters: []Filter{{Field: "created_at", Kind: FilterDate}},
			load: func(ctx context.Context) ([]Row, error) {
				users, err := repos.Users.List(ctx, domain.UserFilter{})
				return rows(users, userRow), err
			},
			count: repos.Users.Count,
		},
		{
			Name:    "teams",
			Title:   "Teams",
			Columns: []string{"name", "created_at"},
			Search:  []string{"name"},
			Filters: []Filter{{Field: "created_at", Kind: FilterDate}},
			load: func(ctx context.Context) ([]Row, error) {
				teams, err := repos.Teams.List(ctx)
				return rows(teams, teamRow), err
			},
			count: repos.Teams.Count,
		},
		{
			Name:    "activities",
			Title:   "Activities",
			Columns: []string{"user_id", "activity_type", "duration", "calories", "date"},
			Search:  []string{"user_id", "activity_type"},
			Filters: []Filter{{Field: "activity_type", Kind: FilterValue}, {Field: "date", Kind: FilterDate}},
			load: func(ctx context.Context) ([]Row, error) {
				activities, err := repos.Activities.List(ctx)
				return rows(activities, activityRow), err
			},
			count: repos.Activities.Count,
		},
		{
			Name:    "leaderboard",
			Title:   "Leaderboard",
			Columns: []string{"user_name", "team_name", "total_points", "total_activities", "total_calories", "last_updated"},
			Search:  []string{"user_name", "team_name"},
			Filters: []Filter{{Field: "last_updated", Kind: FilterDate}},
			load: func(ctx context.Context) ([]Row, error) {
				entries, err := repos.Leaderboard.List(ctx)
				return rows(entries, leaderboardRow), err
			},
			count: repos.Leaderboard.Count,
		},
		{
			Name:    "workouts",
			Title:   "Workouts",
			Columns: []string{"name", "category", "difficulty", "duration", "calories_estimate"},
			Search:  []string{"name", "category"},
			Filters: []Filter{{Field: "category", Kind: FilterValue}, {Field: "difficulty", Kind: FilterValue}},
			load: func(ctx context.Context) ([]Row, error) {
				workouts, err := repos.Workouts.List(ctx)
				return rows(workouts, workoutRow), err
			},
			count: repos.Workouts.Count,
		},
	}
}

// Query параметры страницы списка: строка поиска и выбранные значения фильтров
type Query struct {
	Search  string
	Filters map[string]string
}

// Apply оставляет строки, подходящие под поиск и все выбранные фильтры.
// Поиск ищет подстроку без учета регистра хотя бы в одном поле из Search.
func (res *Resource) Apply(in []Row, q Query, now time.Time) []Row {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]Row, 0, len(in))
	for _, row := range in {
		if search != "" && !res.matchesSearch(row, search) {
			continue
		}
		if !res.matchesFilters(row, q.Filters, now) {
			continue
		}
		out = append(out, row)
	}
	return out
}

func (res *Resource) matchesSearch(row Row, search string) bool {
	for _, field := range res.Search {
		if strings.Contains(strings.ToLower(row.Values[field]), search) {
			return true
		}
	}
	return false
}

func (res *Resource) matchesFilters(row Row, selected map[string]string, now time.Time) bool {
	for _, f := range res.Filters {
		want := selected[f.Field]
		if want == "" {
			continue
		}
		switch f.Kind {
		case FilterValue:
			if row.Values[f.Field] != want {
				return false
			}
		case FilterDate:
			t, ok := row.Times[f.Field]
			if !ok || !InPeriod(t, want, now) {
				return false
			}
		}
	}
	return true
}

// InPeriod сообщает, попадает ли t в период относительно now.
// Неизвестный период ничего не отбрасывает.
func InPeriod(t time.Time, period string, now time.Time) bool {
	t = t.In(now.Location())
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := startOfDay.AddDate(0, 0, 1)

	switch period {
	case PeriodToday:
		return !t.Before(startOfDay) && t.Before(tomorrow)
	case PeriodPast7:
		return !t.Before(startOfDay.AddDate(0, 0, -7)) && t.Before(tomorrow)
	case PeriodMonth:
		return t.Year() == now.Year() && t.Month() == now.Month()
	case PeriodYear:
		return t.Year() == now.Year()
	default:
		return true
	}
}

// DistinctValues возвращает отсортированные уникальные непустые значения поля
func DistinctValues(in []Row, field string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range in {
		v := row.Values[field]
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func rows[T any](items []*T, toRow func(*T) Row) []Row {
	out := make([]Row, 0, len(items))
	for _, item := range items {
		out = append(out, toRow(item))
	}
	return out
}

const timeLayout = "2006-01-02 15:04"

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func userRow(u *domain.User) Row {
	return Row{
		ID: u.ID,
		Values: map[string]string{
			"name":       u.Name,
			"email":      u.Email,
			"team_id":    deref(u.TeamID),
			"created_at": u.CreatedAt.Format(timeLayout),
		},
		Times: map[string]time.Time{"created_at": u.CreatedAt},
	}
}

func teamRow(t *domain.Team) Row {
	return Row{
		ID: t.ID,
		Values: map[string]string{
			"name":       t.Name,
			"created_at": t.CreatedAt.Format(timeLayout),
		},
		Times: map[string]time.Time{"created_at": t.CreatedAt},
	}
}

func activityRow(a *domain.Activity) Row {
	return Row{
		ID: a.ID,
		Values: map[string]string{
			"user_id":       a.UserID,
			"activity_type": a.ActivityType,
			"duration":      strconv.Itoa(a.Duration),
			"calories":      strconv.Itoa(a.Calories),
			"date":          a.Date.Format(timeLayout),
		},
		Times: map[string]time.Time{"date": a.Date},
	}
}

func leaderboardRow(e *domain.LeaderboardEntry) Row {
	return Row{
		ID: e.ID,
		Values: map[string]string{
			"user_name":        e.UserName,
			"team_name":        deref(e.TeamName),
			"total_points":     strconv.Itoa(e.TotalPoints),
			"total_activities": strconv.Itoa(e.TotalActivities),
			"total_calories":   strconv.Itoa(e.TotalCalories),
			"last_updated":     e.LastUpdated.Format(timeLayout),
		},
		Times: map[string]time.Time{"last_updated": e.LastUpdated},
	}
}

func workoutRow(w *domain.Workout) Row {
	return Row{
		ID: w.ID,
		Values: map[string]string{
			"name":              w.Name,
			"category":          w.Category,
			"difficulty":        w.Difficulty,
			"duration":          strconv.Itoa(w.Duration),
			"calories_estimate": strconv.Itoa(w.CaloriesEstimate),
		},
	}
}
