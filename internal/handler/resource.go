package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// resourceService общий контракт сервисов для CRUD эндпоинтов
type resourceService[T, In any] interface {
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, in In) (*T, error)
	Update(ctx context.Context, id string, in In) (*T, error)
	Delete(ctx context.Context, id string) error
}

// resource реализует retrieve/create/update/partial update/delete для одной коллекции.
// toInput переводит сохраненную запись во входную структуру для PATCH.
type resource[T, In any] struct {
	svc     resourceService[T, In]
	toInput func(*T) In
}

// Get обрабатывает GET /{id}
func (h *resource[T, In]) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		HandleError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, item)
}

// Create обрабатывает POST /
func (h *resource[T, In]) Create(w http.ResponseWriter, r *http.Request) {
	var in In
	if !decodeBody(w, r, &in) {
		return
	}

	item, err := h.svc.Create(r.Context(), in)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusCreated, item)
}

// Update обрабатывает PUT /{id}: все изменяемые поля берутся из тела
func (h *resource[T, In]) Update(w http.ResponseWriter, r *http.Request) {
	var in In
	if !decodeBody(w, r, &in) {
		return
	}

	item, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, item)
}

// PartialUpdate обрабатывает PATCH /{id}: поля из тела накладываются на текущую запись
func (h *resource[T, In]) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	current, err := h.svc.Get(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	in := h.toInput(current)
	if !decodeBody(w, r, &in) {
		return
	}

	item, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, item)
}

// Delete обрабатывает DELETE /{id}
func (h *resource[T, In]) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		HandleError(w, r, err)
		return
	}
	RespondNoContent(w, r)
}

// mount регистрирует маршруты коллекции. get может заменить стандартный Get.
func (h *resource[T, In]) mount(r chi.Router, list, get http.HandlerFunc) {
	if get == nil {
		get = h.Get
	}
	r.Get("/", list)
	r.Post("/", h.Create)
	r.Get("/{id}", get)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}", h.PartialUpdate)
	r.Delete("/{id}", h.Delete)
}
