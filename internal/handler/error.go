package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/aidar/octofit-tracker/internal/domain"
)

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail содержит код и описание ошибки
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// RespondWithError отправляет ответ с ошибкой
func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// HandleError преобразует доменные ошибки в HTTP ответы
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.MapErrorToCode(err)
	switch code {
	case domain.CodeValidation:
		var verr *domain.ValidationError
		errors.As(err, &verr)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{
			Error: ErrorDetail{
				Code:    string(code),
				Message: verr.Error(),
				Field:   verr.Field,
			},
		})
	case domain.CodeEmailExists:
		RespondWithError(w, r, http.StatusBadRequest, string(code), err.Error())
	case domain.CodeNotFound:
		RespondWithError(w, r, http.StatusNotFound, string(code), err.Error())
	default:
		slog.ErrorContext(r.Context(), "Request failed", "path", r.URL.Path, "error", err)
		RespondWithError(w, r, http.StatusInternalServerError, string(domain.CodeInternal), "internal server error")
	}
}
