package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// User описывает сущность пользователя платформы.
type User struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	Name         string         `db:"name" json:"name"`
	Email        string         `db:"email" json:"email"`
	PasswordHash string         `db:"password_hash" json:"-"`
	Role         string         `db:"role" json:"role"`
	Bio          *string        `db:"bio" json:"bio,omitempty"`
	Location     *string        `db:"location" json:"location,omitempty"`
	PhotoURL     *string        `db:"photo_url" json:"photo_url,omitempty"`
	Availability pq.StringArray `db:"availability" json:"availability"`
	IsPublic     bool           `db:"is_public" json:"is_public"`
	IsActive     bool           `db:"is_active" json:"is_active"`
	LastLoginAt  *time.Time     `db:"last_login_at" json:"last_login_at,omitempty"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

// PublicUser — публичное представление профиля без приватных полей.
type PublicUser struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	Name         string         `db:"name" json:"name"`
	Bio          *string        `db:"bio" json:"bio,omitempty"`
	Location     *string        `db:"location" json:"location,omitempty"`
	PhotoURL     *string        `db:"photo_url" json:"photo_url,omitempty"`
	Availability pq.StringArray `db:"availability" json:"availability"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
}

// Session представляет сохранённую сессию пользователя.
type Session struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UserID       uuid.UUID `db:"user_id" json:"user_id"`
	RefreshToken string    `db:"refresh_token" json:"refresh_token"`
	UserAgent    *string   `db:"user_agent" json:"user_agent,omitempty"`
	IPAddress    *string   `db:"ip_address" json:"ip_address,omitempty"`
	ExpiresAt    time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
