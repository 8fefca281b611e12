package domain

import "time"

// User представляет участника OctoFit
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Никогда не отдается наружу
	TeamID       *string   `json:"team_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserInput содержит поля пользователя, принимаемые API при создании и изменении.
// Пустой Password при изменении оставляет прежний пароль.
type UserInput struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Email    string  `json:"email" validate:"required,email,max=254"`
	Password string  `json:"password,omitempty" validate:"omitempty,max=255"`
	TeamID   *string `json:"team_id" validate:"omitempty,max=100"`
}

// InputFromUser строит UserInput из существующего пользователя (для PATCH)
func InputFromUser(u *User) UserInput {
	return UserInput{
		Name:   u.Name,
		Email:  u.Email,
		TeamID: u.TeamID,
	}
}

// UserDetail расширенное представление пользователя: название команды и последние активности
type UserDetail struct {
	User
	TeamName   *string     `json:"team_name"`
	Activities []*Activity `json:"activities"`
}

// UserOrdering перечисляет поля, по которым разрешена сортировка списка пользователей
var UserOrdering = map[string]bool{
	"name":       true,
	"email":      true,
	"created_at": true,
}

// DefaultUserOrdering сортировка по умолчанию
const DefaultUserOrdering = "name"

// UserFilter параметры выборки списка пользователей
type UserFilter struct {
	// Search ищет подстроку в name и email без учета регистра
	Search string
	// OrderBy имя поля из UserOrdering, префикс "-" означает обратный порядок
	OrderBy string
}

// OrderField разбирает OrderBy на имя поля и направление.
// Неизвестные поля заменяются сортировкой по умолчанию.
func (f UserFilter) OrderField() (field string, desc bool) {
	field = f.OrderBy
	if len(field) > 0 && field[0] == '-' {
		desc = true
		field = field[1:]
	}
	if !UserOrdering[field] {
		return DefaultUserOrdering, false
	}
	return field, desc
}
