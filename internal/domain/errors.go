package domain

import (
	"errors"
	"fmt"
)

// Доменные ошибки
var (
	// ErrNotFound возвращается когда ресурс не найден
	ErrNotFound = errors.New("resource not found")

	// ErrUserNotFound возвращается когда пользователь не найден
	ErrUserNotFound = fmt.Errorf("user: %w", ErrNotFound)

	// ErrTeamNotFound возвращается когда команда не найдена
	ErrTeamNotFound = fmt.Errorf("team: %w", ErrNotFound)

	// ErrActivityNotFound возвращается когда активность не найдена
	ErrActivityNotFound = fmt.Errorf("activity: %w", ErrNotFound)

	// ErrLeaderboardEntryNotFound возвращается когда строка таблицы лидеров не найдена
	ErrLeaderboardEntryNotFound = fmt.Errorf("leaderboard entry: %w", ErrNotFound)

	// ErrWorkoutNotFound возвращается когда тренировка не найдена
	ErrWorkoutNotFound = fmt.Errorf("workout: %w", ErrNotFound)

	// ErrEmailExists возвращается при попытке занять уже существующий email
	ErrEmailExists = errors.New("user with this email already exists")
)

// ValidationError описывает некорректное значение поля во входных данных
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ErrorCode представляет коды ошибок API
type ErrorCode string

// Коды ошибок API
const (
	CodeBadRequest  ErrorCode = "BAD_REQUEST"      // Некорректное тело запроса
	CodeValidation  ErrorCode = "VALIDATION_ERROR" // Поле не прошло проверку
	CodeEmailExists ErrorCode = "EMAIL_EXISTS"     // Email уже занят
	CodeNotFound    ErrorCode = "NOT_FOUND"        // Ресурс не найден
	CodeInternal    ErrorCode = "INTERNAL_ERROR"   // Все остальное
)

// MapErrorToCode преобразует доменные ошибки в коды ошибок API
func MapErrorToCode(err error) ErrorCode {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return CodeValidation
	case errors.Is(err, ErrEmailExists):
		return CodeEmailExists
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	default:
		return CodeInternal
	}
}
