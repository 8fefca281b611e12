package domain

import "time"

// PointsPerActivity количество очков, начисляемых за каждую активность
const PointsPerActivity = 100

// LeaderboardEntry представляет строку таблицы лидеров (денормализованная сводка по пользователю)
type LeaderboardEntry struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	UserName        string    `json:"user_name"`
	TeamID          *string   `json:"team_id"`
	TeamName        *string   `json:"team_name"`
	TotalPoints     int       `json:"total_points"`
	TotalActivities int       `json:"total_activities"`
	TotalCalories   int       `json:"total_calories"`
	LastUpdated     time.Time `json:"last_updated"`
}

// LeaderboardInput содержит изменяемые поля строки таблицы лидеров
type LeaderboardInput struct {
	UserID          string  `json:"user_id" validate:"required,max=100"`
	UserName        string  `json:"user_name" validate:"required,max=200"`
	TeamID          *string `json:"team_id" validate:"omitempty,max=100"`
	TeamName        *string `json:"team_name" validate:"omitempty,max=200"`
	TotalPoints     int     `json:"total_points" validate:"gte=0"`
	TotalActivities int     `json:"total_activities" validate:"gte=0"`
	TotalCalories   int     `json:"total_calories" validate:"gte=0"`
}

// InputFromLeaderboardEntry строит LeaderboardInput из существующей строки (для PATCH)
func InputFromLeaderboardEntry(e *LeaderboardEntry) LeaderboardInput {
	return LeaderboardInput{
		UserID:          e.UserID,
		UserName:        e.UserName,
		TeamID:          e.TeamID,
		TeamName:        e.TeamName,
		TotalPoints:     e.TotalPoints,
		TotalActivities: e.TotalActivities,
		TotalCalories:   e.TotalCalories,
	}
}

// Totals итоговые показатели пользователя по его активностям
type Totals struct {
	TotalActivities int
	TotalCalories   int
	TotalPoints     int
}

// ComputeTotals считает итоги по активностям одного пользователя.
// Пустой набор дает нулевые итоги.
func ComputeTotals(activities []*Activity) Totals {
	var t Totals
	for _, a := range activities {
		t.TotalCalories += a.Calories
	}
	t.TotalActivities = len(activities)
	t.TotalPoints = t.TotalCalories + t.TotalActivities*PointsPerActivity
	return t
}
