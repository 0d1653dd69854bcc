package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/habit-tracker/internal/logger"
	"github.com/sbilibin2017/habit-tracker/internal/models"
)

type HabitReadRepository struct {
	db *sqlx.DB
}

func NewHabitReadRepository(db *sqlx.DB) *HabitReadRepository {
	return &HabitReadRepository{db: db}
}

// GetByID returns the habit with the given id, or nil if none exists.
// Ownership is checked by the caller so that a foreign habit and a missing
// habit are indistinguishable in the response.
func (r *HabitReadRepository) GetByID(ctx context.Context, habitID uuid.UUID) (*models.HabitDB, error) {
	const query = `
		SELECT habit_id, user_id, name, description, created_at
		FROM habits
		WHERE habit_id = $1
	`

	var habit models.HabitDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &habit, query, habitID)

	logger.Log.Infow("habit select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{habitID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &habit, nil
}

// ListByUserID returns the user's habits, newest first.
func (r *HabitReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.HabitDB, error) {
	const query = `
		SELECT habit_id, user_id, name, description, created_at
		FROM habits
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	habits := []models.HabitDB{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &habits, query, userID)

	logger.Log.Infow("habit select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return habits, nil
}

type HabitWriteRepository struct {
	db *sqlx.DB
}

func NewHabitWriteRepository(db *sqlx.DB) *HabitWriteRepository {
	return &HabitWriteRepository{db: db}
}

// Save inserts a new habit and returns the stored row.
func (r *HabitWriteRepository) Save(ctx context.Context, userID uuid.UUID, name string, description *string) (*models.HabitDB, error) {
	const query = `
		INSERT INTO habits (user_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING habit_id, user_id, name, description, created_at
	`
	args := []any{userID, name, description}

	var habit models.HabitDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &habit, query, args...)

	logger.Log.Infow("habit insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &habit, nil
}

// Update changes name and/or description of an owner-scoped habit. A nil
// name leaves it unchanged; the description is written only when
// setDescription is true, so "absent" and "set to NULL" stay distinct.
// Returns nil if the habit does not exist or belongs to another user.
func (r *HabitWriteRepository) Update(ctx context.Context, habitID, userID uuid.UUID, name *string, description *string, setDescription bool) (*models.HabitDB, error) {
	const query = `
		UPDATE habits
		SET name        = COALESCE($3::text, name),
		    description = CASE WHEN $4 THEN $5::text ELSE description END
		WHERE habit_id = $1 AND user_id = $2
		RETURNING habit_id, user_id, name, description, created_at
	`
	args := []any{habitID, userID, name, setDescription, description}

	var habit models.HabitDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &habit, query, args...)

	logger.Log.Infow("habit update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &habit, nil
}

// Delete removes an owner-scoped habit. Entries go with it via the
// ON DELETE CASCADE constraint. Returns false if no row matched.
func (r *HabitWriteRepository) Delete(ctx context.Context, habitID, userID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM habits
		WHERE habit_id = $1 AND user_id = $2
	`
	args := []any{habitID, userID}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("habit delete",
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
