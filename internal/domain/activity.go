package domain

import "time"

// Activity представляет одну тренировку пользователя
type Activity struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ActivityType string    `json:"activity_type"`
	Duration     int       `json:"duration"` // в минутах
	Distance     *float64  `json:"distance"` // в километрах
	Calories     int       `json:"calories"`
	Date         time.Time `json:"date"`
	Notes        *string   `json:"notes"`
}

// ActivityInput содержит изменяемые поля активности
type ActivityInput struct {
	UserID       string    `json:"user_id" validate:"required,max=100"`
	ActivityType string    `json:"activity_type" validate:"required,max=100"`
	Duration     int       `json:"duration" validate:"gte=0"`
	Distance     *float64  `json:"distance" validate:"omitempty,gte=0"`
	Calories     int       `json:"calories" validate:"gte=0"`
	Date         time.Time `json:"date" validate:"required"`
	Notes        *string   `json:"notes"`
}

// InputFromActivity строит ActivityInput из существующей активности (для PATCH)
func InputFromActivity(a *Activity) ActivityInput {
	return ActivityInput{
		UserID:       a.UserID,
		ActivityType: a.ActivityType,
		Duration:     a.Duration,
		Distance:     a.Distance,
		Calories:     a.Calories,
		Date:         a.Date,
		Notes:        a.Notes,
	}
}

// EnduranceActivity возвращает true для видов активности, у которых есть дистанция
func EnduranceActivity(activityType string) bool {
	switch activityType {
	case "Running", "Cycling", "Swimming":
		return true
	default:
		return false
	}
}
