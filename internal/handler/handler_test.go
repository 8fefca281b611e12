package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/octofit-tracker/internal/domain"
	"github.com/aidar/octofit-tracker/internal/repository/memory"
	"github.com/aidar/octofit-tracker/internal/service"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantField  string
	}{
		{"validation", &domain.ValidationError{Field: "email", Message: "enter a valid email address"}, http.StatusBadRequest, "VALIDATION_ERROR", "email"},
		{"wrapped validation", fmt.Errorf("create: %w", &domain.ValidationError{Field: "name", Message: "required"}), http.StatusBadRequest, "VALIDATION_ERROR", "name"},
		{"email exists", domain.ErrEmailExists, http.StatusBadRequest, "EMAIL_EXISTS", ""},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "NOT_FOUND", ""},
		{"workout not found", domain.ErrWorkoutNotFound, http.StatusNotFound, "NOT_FOUND", ""},
		{"anything else", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantField, resp.Error.Field)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func newLeaderboardRouter(t *testing.T) http.Handler {
	t.Helper()

	repos := memory.NewRepositories()
	h := NewLeaderboardHandler(service.NewLeaderboardService(repos, slog.New(slog.DiscardHandler)))

	r := chi.NewRouter()
	r.Route("/leaderboard", h.Routes)
	return r
}

func TestLeaderboardHandler(t *testing.T) {
	router := newLeaderboardRouter(t)

	serve := func(method, path, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
		return rec
	}

	created := serve(http.MethodPost, "/leaderboard/", `{"user_id":"u1","user_name":"Thor Odinson","total_points":500}`)
	require.Equal(t, http.StatusCreated, created.Code)

	var entry domain.LeaderboardEntry
	require.NoError(t, json.NewDecoder(created.Body).Decode(&entry))
	assert.Equal(t, 500, entry.TotalPoints)

	t.Run("patch changes only given fields", func(t *testing.T) {
		rec := serve(http.MethodPatch, "/leaderboard/"+entry.ID, `{"total_points":650}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var patched domain.LeaderboardEntry
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&patched))
		assert.Equal(t, 650, patched.TotalPoints)
		assert.Equal(t, "Thor Odinson", patched.UserName)
	})

	t.Run("put requires all fields", func(t *testing.T) {
		rec := serve(http.MethodPut, "/leaderboard/"+entry.ID, `{"total_points":1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, serve(http.MethodDelete, "/leaderboard/"+entry.ID, "").Code)
		assert.Equal(t, http.StatusNotFound, serve(http.MethodGet, "/leaderboard/"+entry.ID, "").Code)
	})

	t.Run("rebuild is not treated as an id", func(t *testing.T) {
		rec := serve(http.MethodPost, "/leaderboard/rebuild", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}
