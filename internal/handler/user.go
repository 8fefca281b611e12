package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/octofit-tracker/internal/domain"
	"github.com/aidar/octofit-tracker/internal/service"
)

// UserHandler обрабатывает эндпоинты пользователей
type UserHandler struct {
	*resource[domain.User, domain.UserInput]
	userService *service.UserService
}

// NewUserHandler создает новый UserHandler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		resource:    &resource[domain.User, domain.UserInput]{svc: userService, toInput: domain.InputFromUser},
		userService: userService,
	}
}

// Routes регистрирует маршруты /users
func (h *UserHandler) Routes(r chi.Router) {
	h.mount(r, h.List, h.Get)
}

// List обрабатывает GET /users/?search=...&ordering=...
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	users, err := h.userService.List(r.Context(), domain.UserFilter{
		Search:  q.Get("search"),
		OrderBy: q.Get("ordering"),
	})
	if err != nil {
		HandleError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, users)
}

// Get обрабатывает GET /users/{id}: расширенное представление с командой и последними активностями
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.userService.Detail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		HandleError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, detail)
}
