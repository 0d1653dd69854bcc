package models

import (
	"time"

	"github.com/google/uuid"
)

// HabitDB represents a habit record in the database.
type HabitDB struct {
	HabitID     uuid.UUID `json:"id" db:"habit_id"`            // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`        // Owning user
	Name        string    `json:"name" db:"name"`              // Habit name
	Description *string   `json:"description" db:"description"` // Optional description, NULL when blank
	CreatedAt   time.Time `json:"created_at" db:"created_at"`  // Creation timestamp
}

// HabitEntryView is a single check-in as returned by the habit list endpoint.
type HabitEntryView struct {
	Date      string `json:"date"`      // Calendar date YYYY-MM-DD
	Completed bool   `json:"completed"` // Completion flag for that date
}

// HabitWithEntries is a habit together with its check-ins in the
// requested date range, newest first.
type HabitWithEntries struct {
	HabitDB
	Entries []HabitEntryView `json:"entries"`
}
