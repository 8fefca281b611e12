package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/octofit-tracker/internal/domain"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	for _, u := range []domain.User{
		{Name: "Tony Stark", Email: "ironman@marvel.com"},
		{Name: "Bruce Wayne", Email: "batman@dc.com"},
		{Name: "Diana Prince", Email: "wonderwoman@dc.com"},
	} {
		u := u
		require.NoError(t, repo.Create(ctx, &u))
		assert.NotEmpty(t, u.ID)
		assert.False(t, u.CreatedAt.IsZero())
	}

	t.Run("duplicate email is rejected", func(t *testing.T) {
		err := repo.Create(ctx, &domain.User{Name: "Fake", Email: "batman@dc.com"})
		assert.ErrorIs(t, err, domain.ErrEmailExists)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("default ordering is by name", func(t *testing.T) {
		users, err := repo.List(ctx, domain.UserFilter{})
		require.NoError(t, err)
		require.Len(t, users, 3)
		assert.Equal(t, "Bruce Wayne", users[0].Name)
		assert.Equal(t, "Diana Prince", users[1].Name)
		assert.Equal(t, "Tony Stark", users[2].Name)
	})

	t.Run("descending email ordering", func(t *testing.T) {
		users, err := repo.List(ctx, domain.UserFilter{OrderBy: "-email"})
		require.NoError(t, err)
		require.Len(t, users, 3)
		assert.Equal(t, "wonderwoman@dc.com", users[0].Email)
		assert.Equal(t, "batman@dc.com", users[2].Email)
	})

	t.Run("search matches name or email case-insensitively", func(t *testing.T) {
		users, err := repo.List(ctx, domain.UserFilter{Search: "DC.COM"})
		require.NoError(t, err)
		assert.Len(t, users, 2)

		users, err = repo.List(ctx, domain.UserFilter{Search: "stark"})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "ironman@marvel.com", users[0].Email)
	})

	t.Run("update to a taken email is rejected", func(t *testing.T) {
		users, err := repo.List(ctx, domain.UserFilter{Search: "stark"})
		require.NoError(t, err)
		tony := users[0]

		tony.Email = "batman@dc.com"
		assert.ErrorIs(t, repo.Update(ctx, tony), domain.ErrEmailExists)

		tony.Email = "tony@stark.com"
		require.NoError(t, repo.Update(ctx, tony))

		stored, err := repo.GetByID(ctx, tony.ID)
		require.NoError(t, err)
		assert.Equal(t, "tony@stark.com", stored.Email)
	})

	t.Run("missing ids", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.ErrorIs(t, repo.Update(ctx, &domain.User{ID: "missing"}), domain.ErrUserNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, "missing"), domain.ErrUserNotFound)
	})
}

func TestActivityRepository_ListByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository()
	base := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Create(ctx, &domain.Activity{
			UserID:       "user-1",
			ActivityType: "Running",
			Calories:     100 * (i + 1),
			Date:         base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, repo.Create(ctx, &domain.Activity{UserID: "user-2", Date: base}))

	all, err := repo.ListByUser(ctx, "user-1", 0)
	require.NoError(t, err)
	assert.Len(t, all, 7)

	recent, err := repo.ListByUser(ctx, "user-1", 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, 700, recent[0].Calories, "newest activity comes first")
	assert.Equal(t, 300, recent[4].Calories)

	none, err := repo.ListByUser(ctx, "nobody", 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTeamRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewTeamRepository()

	team := &domain.Team{Name: "Team Marvel", Description: "Heroes", Members: []string{"a"}}
	require.NoError(t, repo.Create(ctx, team))

	loaded, err := repo.GetByID(ctx, team.ID)
	require.NoError(t, err)
	loaded.Members[0] = "mutated"

	again, err := repo.GetByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, again.Members)
}

func TestLeaderboardRepository_OrderAndTimestamps(t *testing.T) {
	ctx := context.Background()
	repo := NewLeaderboardRepository()

	low := &domain.LeaderboardEntry{UserID: "u1", UserName: "Low", TotalPoints: 100}
	high := &domain.LeaderboardEntry{UserID: "u2", UserName: "High", TotalPoints: 900}
	require.NoError(t, repo.Create(ctx, low))
	require.NoError(t, repo.Create(ctx, high))
	assert.False(t, low.LastUpdated.IsZero())

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "High", entries[0].UserName)

	require.NoError(t, repo.DeleteAll(ctx))
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLeaderboardRepository_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	repo := NewLeaderboardRepository()

	stale := &domain.LeaderboardEntry{UserID: "old", UserName: "Old", TotalPoints: 5}
	require.NoError(t, repo.Create(ctx, stale))

	fresh := []*domain.LeaderboardEntry{
		{UserID: "u1", UserName: "Clark Kent", TotalPoints: 700},
		{UserID: "u2", UserName: "Bruce Wayne", TotalPoints: 300},
	}
	require.NoError(t, repo.ReplaceAll(ctx, fresh))
	assert.NotEmpty(t, fresh[0].ID)
	assert.False(t, fresh[1].LastUpdated.IsZero())

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, fresh[0].ID, entries[0].ID)

	_, err = repo.GetByID(ctx, stale.ID)
	assert.ErrorIs(t, err, domain.ErrLeaderboardEntryNotFound)
}

func TestUserRepository_OrderingIgnoresCase(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	for i, name := range []string{"Carol", "bob", "alice", "Bob"} {
		require.NoError(t, repo.Create(ctx, &domain.User{Name: name, Email: fmt.Sprintf("user%d@octofit.io", i)}))
	}

	names := func(order string) []string {
		users, err := repo.List(ctx, domain.UserFilter{OrderBy: order})
		require.NoError(t, err)
		out := make([]string, len(users))
		for i, u := range users {
			out[i] = u.Name
		}
		return out
	}

	assert.Equal(t, []string{"alice", "Bob", "bob", "Carol"}, names("name"))
	assert.Equal(t, []string{"Carol", "bob", "Bob", "alice"}, names("-name"))
}
