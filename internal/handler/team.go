package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/octofit-tracker/internal/domain"
	"github.com/aidar/octofit-tracker/internal/service"
)

// TeamHandler обрабатывает эндпоинты команд
type TeamHandler struct {
	*resource[domain.Team, domain.TeamInput]
	teamService *service.TeamService
}

// NewTeamHandler создает новый TeamHandler
func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{
		resource:    &resource[domain.Team, domain.TeamInput]{svc: teamService, toInput: domain.InputFromTeam},
		teamService: teamService,
	}
}

// Routes регистрирует маршруты /teams
func (h *TeamHandler) Routes(r chi.Router) {
	h.mount(r, h.List, nil)
}

// List обрабатывает GET /teams/
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.List(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, teams)
}
