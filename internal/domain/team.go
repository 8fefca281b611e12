package domain

import "time"

// Team представляет команду участников
type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Members     []string  `json:"members"`
	CreatedAt   time.Time `json:"created_at"`
}

// TeamInput содержит изменяемые поля команды
type TeamInput struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Members     []string `json:"members"`
}

// InputFromTeam строит TeamInput из существующей команды (для PATCH)
func InputFromTeam(t *Team) TeamInput {
	return TeamInput{
		Name:        t.Name,
		Description: t.Description,
		Members:     t.Members,
	}
}
