// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user in the GoalFlow system.
type User struct {
	ID             uuid.UUID
	Email          string
	Name           string
	PasswordHash   string
	TelegramChatID string // empty until the user links a Telegram account
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// HasTelegramLinked reports whether the user has linked a Telegram chat.
func (u *User) HasTelegramLinked() bool {
	return u.TelegramChatID != ""
}
