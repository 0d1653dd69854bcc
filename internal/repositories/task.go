package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/habit-tracker/internal/logger"
	"github.com/sbilibin2017/habit-tracker/internal/models"
)

type TaskReadRepository struct {
	db *sqlx.DB
}

func NewTaskReadRepository(db *sqlx.DB) *TaskReadRepository {
	return &TaskReadRepository{db: db}
}

// GetByID returns the owner-scoped task, or nil if no row matched.
func (r *TaskReadRepository) GetByID(ctx context.Context, taskID, userID uuid.UUID) (*models.TaskDB, error) {
	const query = `
		SELECT task_id, user_id, title, description, due_date, status, created_at, updated_at
		FROM tasks
		WHERE task_id = $1 AND user_id = $2
	`
	args := []any{taskID, userID}

	var task models.TaskDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &task, query, args...)

	logger.Log.Infow("task select",
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

	return &task, nil
}

// ListByUserID returns the user's tasks, newest first.
func (r *TaskReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.TaskDB, error) {
	const query = `
		SELECT task_id, user_id, title, description, due_date, status, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	tasks := []models.TaskDB{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &tasks, query, userID)

	logger.Log.Infow("task select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return tasks, nil
}

type TaskWriteRepository struct {
	db *sqlx.DB
}

func NewTaskWriteRepository(db *sqlx.DB) *TaskWriteRepository {
	return &TaskWriteRepository{db: db}
}

// Save inserts a new task and returns the stored row.
func (r *TaskWriteRepository) Save(ctx context.Context, userID uuid.UUID, title string, description *string, dueDate *time.Time) (*models.TaskDB, error) {
	const query = `
		INSERT INTO tasks (user_id, title, description, due_date)
		VALUES ($1, $2, $3, $4)
		RETURNING task_id, user_id, title, description, due_date, status, created_at, updated_at
	`
	args := []any{userID, title, description, dueDate}

	var task models.TaskDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &task, query, args...)

	logger.Log.Infow("task insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &task, nil
}

// Update applies a partial update to an owner-scoped task. Nil pointers
// leave the field unchanged; description and due date carry explicit set
// flags so they can be cleared to NULL. Returns nil if no row matched.
func (r *TaskWriteRepository) Update(
	ctx context.Context,
	taskID, userID uuid.UUID,
	title *string,
	description *string, setDescription bool,
	dueDate *time.Time, setDueDate bool,
	status *string,
) (*models.TaskDB, error) {
	const query = `
		UPDATE tasks
		SET title       = COALESCE($3::text, title),
		    description = CASE WHEN $4 THEN $5::text ELSE description END,
		    due_date    = CASE WHEN $6 THEN $7::timestamptz ELSE due_date END,
		    status      = COALESCE($8::text, status),
		    updated_at  = NOW()
		WHERE task_id = $1 AND user_id = $2
		RETURNING task_id, user_id, title, description, due_date, status, created_at, updated_at
	`
	args := []any{taskID, userID, title, setDescription, description, setDueDate, dueDate, status}

	var task models.TaskDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &task, query, args...)

	logger.Log.Infow("task update",
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

	return &task, nil
}

// Delete removes an owner-scoped task. Returns false if no row matched.
func (r *TaskWriteRepository) Delete(ctx context.Context, taskID, userID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM tasks
		WHERE task_id = $1 AND user_id = $2
	`
	args := []any{taskID, userID}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("task delete",
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
