package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/octofit-tracker/internal/domain"
)

func newTestSeeder(f *fixture, seed uint64, now time.Time) *Seeder {
	return NewSeeder(f.repos, f.users, f.leaderboard, slog.New(slog.DiscardHandler),
		WithRand(rand.New(rand.NewPCG(seed, seed))),
		WithClock(func() time.Time { return now }),
	)
}

func TestSeeder_Seed(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 30, 18, 0, 0, 0, time.UTC)
	f := newFixture(t)

	summary, err := newTestSeeder(f, 42, now).Seed(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Teams)
	assert.Equal(t, 10, summary.Users)
	assert.Equal(t, 10, summary.Leaderboard)
	assert.Equal(t, 6, summary.Workouts)
	assert.GreaterOrEqual(t, summary.Activities, 50)
	assert.LessOrEqual(t, summary.Activities, 100)

	users, err := f.repos.Users.List(ctx, domain.UserFilter{})
	require.NoError(t, err)

	t.Run("teams list their members", func(t *testing.T) {
		teams, err := f.repos.Teams.List(ctx)
		require.NoError(t, err)
		require.Len(t, teams, 2)
		assert.Equal(t, "Team Marvel", teams[0].Name)
		assert.Equal(t, "Team DC", teams[1].Name)

		for _, team := range teams {
			require.Len(t, team.Members, 5)
			for _, id := range team.Members {
				user, err := f.repos.Users.GetByID(ctx, id)
				require.NoError(t, err)
				require.NotNil(t, user.TeamID)
				assert.Equal(t, team.ID, *user.TeamID)
			}
		}
	})

	t.Run("activities respect the generation rules", func(t *testing.T) {
		for _, user := range users {
			activities, err := f.repos.Activities.ListByUser(ctx, user.ID, 0)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(activities), 5, user.Name)
			assert.LessOrEqual(t, len(activities), 10, user.Name)

			for _, a := range activities {
				assert.Contains(t, SeedActivityTypes, a.ActivityType)
				assert.GreaterOrEqual(t, a.Duration, 20)
				assert.LessOrEqual(t, a.Duration, 120)
				assert.Zero(t, a.Calories%a.Duration)
				assert.GreaterOrEqual(t, a.Calories/a.Duration, 5)
				assert.LessOrEqual(t, a.Calories/a.Duration, 12)

				if domain.EnduranceActivity(a.ActivityType) {
					require.NotNil(t, a.Distance)
					assert.GreaterOrEqual(t, *a.Distance, 2.0)
					assert.LessOrEqual(t, *a.Distance, 15.0)
				} else {
					assert.Nil(t, a.Distance)
				}

				daysAgo := int(now.Sub(a.Date).Hours() / 24)
				assert.GreaterOrEqual(t, daysAgo, 1)
				assert.LessOrEqual(t, daysAgo, 30)

				require.NotNil(t, a.Notes)
				assert.Equal(t, fmt.Sprintf("%s session by %s", a.ActivityType, user.Name), *a.Notes)
			}
		}
	})

	t.Run("leaderboard matches activities", func(t *testing.T) {
		entries, err := f.repos.Leaderboard.List(ctx)
		require.NoError(t, err)

		for i, e := range entries {
			activities, err := f.repos.Activities.ListByUser(ctx, e.UserID, 0)
			require.NoError(t, err)

			totals := domain.ComputeTotals(activities)
			assert.Equal(t, totals.TotalPoints, e.TotalPoints)
			assert.Equal(t, totals.TotalCalories, e.TotalCalories)
			assert.Equal(t, totals.TotalActivities, e.TotalActivities)
			require.NotNil(t, e.TeamName)

			if i > 0 {
				assert.GreaterOrEqual(t, entries[i-1].TotalPoints, e.TotalPoints)
			}
		}
	})

	t.Run("workout catalogue", func(t *testing.T) {
		workouts, err := f.repos.Workouts.List(ctx)
		require.NoError(t, err)
		require.Len(t, workouts, 6)
		assert.Equal(t, "Black Widow Flexibility Flow", workouts[0].Name)
		for _, w := range workouts {
			assert.Len(t, w.Instructions, 5, w.Name)
		}
	})
}

func TestSeeder_IsRepeatable(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 30, 18, 0, 0, 0, time.UTC)

	first := newFixture(t)
	second := newFixture(t)

	a, err := newTestSeeder(first, 7, now).Seed(ctx)
	require.NoError(t, err)
	b, err := newTestSeeder(second, 7, now).Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// Seeding again replaces rather than appends
	again, err := newTestSeeder(first, 8, now).Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, again.Users)
	assert.Equal(t, 2, again.Teams)
	assert.Equal(t, 6, again.Workouts)
}
