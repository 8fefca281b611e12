package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/octofit-tracker/internal/domain"
	"github.com/aidar/octofit-tracker/internal/service"
)

// WorkoutHandler обрабатывает эндпоинты каталога тренировок
type WorkoutHandler struct {
	*resource[domain.Workout, domain.WorkoutInput]
	workoutService *service.WorkoutService
}

// NewWorkoutHandler создает новый WorkoutHandler
func NewWorkoutHandler(workoutService *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{
		resource:       &resource[domain.Workout, domain.WorkoutInput]{svc: workoutService, toInput: domain.InputFromWorkout},
		workoutService: workoutService,
	}
}

// Routes регистрирует маршруты /workouts
func (h *WorkoutHandler) Routes(r chi.Router) {
	h.mount(r, h.List, nil)
}

// List обрабатывает GET /workouts/
func (h *WorkoutHandler) List(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.workoutService.List(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, workouts)
}
