package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/octofit-tracker/internal/domain"
	"github.com/aidar/octofit-tracker/internal/service"
)

// LeaderboardHandler обрабатывает эндпоинты таблицы лидеров
type LeaderboardHandler struct {
	*resource[domain.LeaderboardEntry, domain.LeaderboardInput]
	leaderboardService *service.LeaderboardService
}

// NewLeaderboardHandler создает новый LeaderboardHandler
func NewLeaderboardHandler(leaderboardService *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		resource: &resource[domain.LeaderboardEntry, domain.LeaderboardInput]{
			svc:     leaderboardService,
			toInput: domain.InputFromLeaderboardEntry,
		},
		leaderboardService: leaderboardService,
	}
}

// Routes регистрирует маршруты /leaderboard
func (h *LeaderboardHandler) Routes(r chi.Router) {
	// Статический маршрут объявлен до /{id}
	r.Post("/rebuild", h.Rebuild)
	h.mount(r, h.List, nil)
}

// List обрабатывает GET /leaderboard/
func (h *LeaderboardHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.leaderboardService.List(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, entries)
}

// Rebuild обрабатывает POST /leaderboard/rebuild: пересчитывает таблицу по активностям
func (h *LeaderboardHandler) Rebuild(w http.ResponseWriter, r *http.Request) {
	entries, err := h.leaderboardService.Rebuild(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, entries)
}
