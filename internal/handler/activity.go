package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/octofit-tracker/internal/domain"
	"github.com/aidar/octofit-tracker/internal/service"
)

// ActivityHandler обрабатывает эндпоинты активностей
type ActivityHandler struct {
	*resource[domain.Activity, domain.ActivityInput]
	activityService *service.ActivityService
}

// NewActivityHandler создает новый ActivityHandler
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		resource:        &resource[domain.Activity, domain.ActivityInput]{svc: activityService, toInput: domain.InputFromActivity},
		activityService: activityService,
	}
}

// Routes регистрирует маршруты /activities
func (h *ActivityHandler) Routes(r chi.Router) {
	h.mount(r, h.List, nil)
}

// List обрабатывает GET /activities/
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activityService.List(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, activities)
}
