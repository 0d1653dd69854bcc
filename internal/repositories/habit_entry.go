package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/habit-tracker/internal/logger"
	"github.com/sbilibin2017/habit-tracker/internal/models"
)

type HabitEntryReadRepository struct {
	db *sqlx.DB
}

func NewHabitEntryReadRepository(db *sqlx.DB) *HabitEntryReadRepository {
	return &HabitEntryReadRepository{db: db}
}

// ListByHabitInRange returns the habit's entries with entry_date in the
// inclusive [start, end] range, newest first.
func (r *HabitEntryReadRepository) ListByHabitInRange(ctx context.Context, habitID uuid.UUID, start, end string) ([]models.HabitEntryDB, error) {
	const query = `
		SELECT entry_id, habit_id, entry_date, completed, created_at
		FROM habit_entries
		WHERE habit_id = $1 AND entry_date BETWEEN $2::date AND $3::date
		ORDER BY entry_date DESC
	`
	args := []any{habitID, start, end}

	entries := []models.HabitEntryDB{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &entries, query, args...)

	logger.Log.Infow("habit entry select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return entries, nil
}

type HabitEntryWriteRepository struct {
	db *sqlx.DB
}

func NewHabitEntryWriteRepository(db *sqlx.DB) *HabitEntryWriteRepository {
	return &HabitEntryWriteRepository{db: db}
}

// Upsert inserts a check-in for (habit, date) or overwrites the completed
// flag of the existing row. One statement, so concurrent marks for the
// same pair resolve to last writer wins.
func (r *HabitEntryWriteRepository) Upsert(ctx context.Context, habitID uuid.UUID, date string, completed bool) error {
	const query = `
		INSERT INTO habit_entries (habit_id, entry_date, completed)
		VALUES ($1, $2::date, $3)
		ON CONFLICT (habit_id, entry_date)
		DO UPDATE SET completed = EXCLUDED.completed
	`
	args := []any{habitID, date, completed}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("habit entry upsert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes the check-in for (habit, date). Returns false if no row
// matched.
func (r *HabitEntryWriteRepository) Delete(ctx context.Context, habitID uuid.UUID, date string) (bool, error) {
	const query = `
		DELETE FROM habit_entries
		WHERE habit_id = $1 AND entry_date = $2::date
	`
	args := []any{habitID, date}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("habit entry delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
