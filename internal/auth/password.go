// Package auth хранит пароли пользователей в виде bcrypt-хэшей.
// Проверка пароля и выдача токенов в сервисе не используются.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong возвращается для паролей длиннее 72 байт (ограничение bcrypt)
var ErrPasswordTooLong = errors.New("password must be at most 72 bytes")

// PasswordHasher хэширует пароли с заданной стоимостью bcrypt
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher создает PasswordHasher.
// Стоимость вне допустимого диапазона bcrypt заменяется на bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash возвращает bcrypt-хэш пароля
func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
