//go:build integration

package app

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aidar/octofit-tracker/internal/config"
)

// newPostgresClient поднимает приложение поверх PostgreSQL из testcontainers
func newPostgresClient(t *testing.T) *testClient {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("octofit_test"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")
	t.Cleanup(func() { _ = pgContainer.Terminate(ctx) })

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Store.Driver = config.StoreDriverPostgres
	cfg.Database = config.DatabaseConfig{
		Host:        host,
		Port:        port.Port(),
		User:        "test_user",
		Password:    "test_password",
		Name:        "octofit_test",
		SSLMode:     "disable",
		MaxConns:    5,
		MinConns:    1,
		AutoMigrate: true,
	}
	cfg.Store.SeedOnStart = true

	application, err := New(cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	require.NoError(t, application.Initialize(ctx))
	t.Cleanup(application.Close)

	server := httptest.NewServer(application.Handler())
	t.Cleanup(server.Close)

	return &testClient{t: t, app: application, server: server}
}

func TestE2E_SeededPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	c := newPostgresClient(t)

	var teams []struct {
		ID      string   `json:"id"`
		Name    string   `json:"name"`
		Members []string `json:"members"`
	}
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/teams/", nil, &teams))
	require.Len(t, teams, 2)
	assert.Equal(t, "Team Marvel", teams[0].Name)
	assert.Len(t, teams[0].Members, 5)

	var users []struct {
		ID     string  `json:"id"`
		Name   string  `json:"name"`
		TeamID *string `json:"team_id"`
	}
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/users/?search=marvel.com", nil, &users))
	require.Len(t, users, 5)
	assert.Equal(t, "Bruce Banner", users[0].Name)

	var detail struct {
		TeamName   *string          `json:"team_name"`
		Activities []map[string]any `json:"activities"`
	}
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/users/"+users[0].ID+"/", nil, &detail))
	require.NotNil(t, detail.TeamName)
	assert.Equal(t, "Team Marvel", *detail.TeamName)
	assert.Len(t, detail.Activities, 5)

	var board []struct {
		UserName    string `json:"user_name"`
		TotalPoints int    `json:"total_points"`
	}
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/leaderboard/rebuild/", nil, &board))
	require.Len(t, board, 10)
	for i := 1; i < len(board); i++ {
		assert.GreaterOrEqual(t, board[i-1].TotalPoints, board[i].TotalPoints)
	}

	var apiErr apiError
	require.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/api/users/", map[string]any{
		"name": "Tony Stark", "email": "ironman@marvel.com", "password": "again",
	}, &apiErr))
	assert.Equal(t, "EMAIL_EXISTS", apiErr.Error.Code)

	// Повторное заполнение заменяет данные, а не дописывает
	summary, err := c.app.Populate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Teams)
	assert.Equal(t, 10, summary.Users)
	assert.Equal(t, 6, summary.Workouts)
}
