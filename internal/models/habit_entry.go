package models

import (
	"time"

	"github.com/google/uuid"
)

// HabitEntryDB represents one check-in row in the database.
// At most one row exists per (habit_id, entry_date), enforced by a unique
// constraint and upsert-on-conflict writes.
type HabitEntryDB struct {
	EntryID   uuid.UUID `json:"id" db:"entry_id"`           // Primary key
	HabitID   uuid.UUID `json:"habit_id" db:"habit_id"`     // Owning habit
	EntryDate time.Time `json:"entry_date" db:"entry_date"` // Calendar date, time-of-day is irrelevant
	Completed bool      `json:"completed" db:"completed"`   // Completion flag
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
