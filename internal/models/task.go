package models

import (
	"time"

	"github.com/google/uuid"
)

// Task status values.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// ValidTaskStatus reports whether s is a known task status.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// TaskDB represents a task record in the database.
type TaskDB struct {
	TaskID      uuid.UUID  `json:"id" db:"task_id"`              // Primary key
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`         // Owning user
	Title       string     `json:"title" db:"title"`             // Task title
	Description *string    `json:"description" db:"description"` // Optional description
	DueDate     *time.Time `json:"due_date" db:"due_date"`       // Optional due timestamp
	Status      string     `json:"status" db:"status"`           // pending, in_progress or done
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`   // Last update timestamp
}
