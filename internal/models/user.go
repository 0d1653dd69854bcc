package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Email        string    `json:"email" db:"email"`           // Unique email
	Name         string    `json:"name" db:"name"`             // Display name
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// AuthUser is the user payload returned from register/login responses.
type AuthUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}
