package domain

// Workout представляет тренировку из каталога рекомендаций
type Workout struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	Difficulty       string   `json:"difficulty"`
	Duration         int      `json:"duration"` // в минутах
	CaloriesEstimate int      `json:"calories_estimate"`
	Instructions     []string `json:"instructions"`
}

// WorkoutInput содержит изменяемые поля тренировки
type WorkoutInput struct {
	Name             string   `json:"name" validate:"required,max=200"`
	Description      string   `json:"description" validate:"required"`
	Category         string   `json:"category" validate:"required,max=100"`
	Difficulty       string   `json:"difficulty" validate:"required,max=50"`
	Duration         int      `json:"duration" validate:"gte=0"`
	CaloriesEstimate int      `json:"calories_estimate" validate:"gte=0"`
	Instructions     []string `json:"instructions"`
}

// InputFromWorkout строит WorkoutInput из существующей тренировки (для PATCH)
func InputFromWorkout(w *Workout) WorkoutInput {
	return WorkoutInput{
		Name:             w.Name,
		Description:      w.Description,
		Category:         w.Category,
		Difficulty:       w.Difficulty,
		Duration:         w.Duration,
		CaloriesEstimate: w.CaloriesEstimate,
		Instructions:     w.Instructions,
	}
}
