package domain

import "strings"

// Normalize обрезает пробелы в текстовых полях. Пароль не трогается.
func (in *UserInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.TeamID = trimPtr(in.TeamID)
}

// Normalize обрезает пробелы в текстовых полях
func (in *TeamInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
}

// Normalize обрезает пробелы в текстовых полях
func (in *ActivityInput) Normalize() {
	in.UserID = strings.TrimSpace(in.UserID)
	in.ActivityType = strings.TrimSpace(in.ActivityType)
	in.Notes = trimPtr(in.Notes)
}

// Normalize обрезает пробелы в текстовых полях
func (in *LeaderboardInput) Normalize() {
	in.UserID = strings.TrimSpace(in.UserID)
	in.UserName = strings.TrimSpace(in.UserName)
	in.TeamID = trimPtr(in.TeamID)
	in.TeamName = trimPtr(in.TeamName)
}

// Normalize обрезает пробелы в текстовых полях
func (in *WorkoutInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	in.Difficulty = strings.TrimSpace(in.Difficulty)
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
