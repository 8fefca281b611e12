package handler

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/aidar/octofit-tracker/internal/domain"
)

// RespondWithJSON отправляет JSON ответ с указанным статус кодом
func RespondWithJSON(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) {
	render.Status(r, statusCode)
	render.JSON(w, r, data)
}

// RespondNoContent отправляет пустой ответ 204
func RespondNoContent(w http.ResponseWriter, r *http.Request) {
	render.NoContent(w, r)
}

// decodeBody читает JSON тело запроса поверх уже заполненного dst
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, string(domain.CodeBadRequest), "invalid request body")
		return false
	}
	return true
}
