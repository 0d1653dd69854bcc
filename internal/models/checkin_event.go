package models

// Check-in event actions.
const (
	CheckinActionMarked  = "marked"
	CheckinActionCleared = "cleared"
)

// CheckinEvent is the Kafka payload published after a check-in is
// marked or cleared.
type CheckinEvent struct {
	EventID   string `json:"event_id"`  // Unique event id
	HabitID   string `json:"habit_id"`  // Habit the check-in belongs to
	UserID    string `json:"user_id"`   // Owning user
	Date      string `json:"date"`      // Calendar date YYYY-MM-DD
	Completed bool   `json:"completed"` // Completion flag, false for cleared
	Action    string `json:"action"`    // marked or cleared
	Timestamp int64  `json:"timestamp"` // Unix timestamp of the event
}
