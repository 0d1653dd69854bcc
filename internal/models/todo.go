package models

import (
	"time"

	"github.com/google/uuid"
)

// TodoDB represents a todo record in the database.
type TodoDB struct {
	TodoID    uuid.UUID `json:"id" db:"todo_id"`            // Primary key
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owning user
	Title     string    `json:"title" db:"title"`           // Todo title
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
