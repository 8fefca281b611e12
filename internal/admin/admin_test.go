package admin

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/octofit-tracker/internal/domain"
	"github.com/aidar/octofit-tracker/internal/repository/memory"
)

func resourceByName(t *testing.T, resources []*Resource, name string) *Resource {
	t.Helper()
	for _, res := range resources {
		if res.Name == name {
			return res
		}
	}
	t.Fatalf("resource %q not configured", name)
	return nil
}

func TestInPeriod(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		at     time.Time
		period string
		want   bool
	}{
		{"today morning", time.Date(2025, 6, 15, 0, 30, 0, 0, time.UTC), PeriodToday, true},
		{"yesterday is not today", time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC), PeriodToday, false},
		{"six days ago", now.AddDate(0, 0, -6), PeriodPast7, true},
		{"eight days ago", now.AddDate(0, 0, -8), PeriodPast7, false},
		{"tomorrow is outside past7", now.AddDate(0, 0, 1), PeriodPast7, false},
		{"start of month", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), PeriodMonth, true},
		{"previous month", time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC), PeriodMonth, false},
		{"january same year", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), PeriodYear, true},
		{"last year", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), PeriodYear, false},
		{"unknown period keeps everything", time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC), "decade", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InPeriod(tt.at, tt.period, now))
		})
	}
}

func TestResource_Apply(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	res := resourceByName(t, Resources(memory.NewRepositories()), "activities")

	all := []Row{
		activityRow(&domain.Activity{ID: "1", UserID: "tony", ActivityType: "Running", Date: now.AddDate(0, 0, -1)}),
		activityRow(&domain.Activity{ID: "2", UserID: "tony", ActivityType: "Yoga", Date: now.AddDate(0, 0, -20)}),
		activityRow(&domain.Activity{ID: "3", UserID: "steve", ActivityType: "Running", Date: now.AddDate(0, -2, 0)}),
	}

	ids := func(rows []Row) []string {
		out := make([]string, 0, len(rows))
		for _, r := range rows {
			out = append(out, r.ID)
		}
		return out
	}

	assert.Equal(t, []string{"1", "2", "3"}, ids(res.Apply(all, Query{}, now)))
	assert.Equal(t, []string{"1", "2"}, ids(res.Apply(all, Query{Search: "TON"}, now)))
	assert.Equal(t, []string{"2"}, ids(res.Apply(all, Query{Search: "yoga"}, now)))
	assert.Equal(t, []string{"1", "3"}, ids(res.Apply(all, Query{Filters: map[string]string{"activity_type": "Running"}}, now)))
	assert.Equal(t, []string{"1"}, ids(res.Apply(all, Query{Filters: map[string]string{"activity_type": "Running", "date": PeriodPast7}}, now)))
	assert.Empty(t, res.Apply(all, Query{Search: "steve", Filters: map[string]string{"date": PeriodMonth}}, now))
}

func TestDistinctValues(t *testing.T) {
	all := []Row{
		{Values: map[string]string{"category": "Strength"}},
		{Values: map[string]string{"category": "Cardio"}},
		{Values: map[string]string{"category": "Strength"}},
		{Values: map[string]string{"category": ""}},
	}
	assert.Equal(t, []string{"Cardio", "Strength"}, DistinctValues(all, "category"))
}

func newAdminRouter(t *testing.T) http.Handler {
	t.Helper()

	repos := memory.NewRepositories()
	ctx := context.Background()
	for _, w := range []*domain.Workout{
		{Name: "Iron Man Cardio Blast", Category: "Cardio", Difficulty: "Advanced"},
		{Name: "Black Widow Flexibility Flow", Category: "Flexibility", Difficulty: "Beginner"},
	} {
		require.NoError(t, repos.Workouts.Create(ctx, w))
	}

	r := chi.NewRouter()
	r.Route("/admin", NewHandler(Resources(repos), slog.New(slog.DiscardHandler)).Routes)
	return r
}

func TestHandler_Pages(t *testing.T) {
	router := newAdminRouter(t)

	t.Run("index lists collections with counts", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), `href="/admin/workouts/"`)
		assert.Contains(t, rec.Body.String(), "<td>2</td>")
	})

	t.Run("list applies filters", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/workouts?difficulty=Beginner", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Black Widow Flexibility Flow")
		assert.NotContains(t, body, "<td>Iron Man Cardio Blast</td>")
		assert.Contains(t, body, "1 of 2 records")
	})

	t.Run("unknown collection", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/badges", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
