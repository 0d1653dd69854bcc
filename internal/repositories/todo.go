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

type TodoReadRepository struct {
	db *sqlx.DB
}

func NewTodoReadRepository(db *sqlx.DB) *TodoReadRepository {
	return &TodoReadRepository{db: db}
}

// ListByUserID returns the user's todos, newest first.
func (r *TodoReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.TodoDB, error) {
	const query = `
		SELECT todo_id, user_id, title, created_at
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	todos := []models.TodoDB{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &todos, query, userID)

	logger.Log.Infow("todo select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return todos, nil
}

type TodoWriteRepository struct {
	db *sqlx.DB
}

func NewTodoWriteRepository(db *sqlx.DB) *TodoWriteRepository {
	return &TodoWriteRepository{db: db}
}

// Save inserts a new todo and returns the stored row.
func (r *TodoWriteRepository) Save(ctx context.Context, userID uuid.UUID, title string) (*models.TodoDB, error) {
	const query = `
		INSERT INTO todos (user_id, title)
		VALUES ($1, $2)
		RETURNING todo_id, user_id, title, created_at
	`
	args := []any{userID, title}

	var todo models.TodoDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &todo, query, args...)

	logger.Log.Infow("todo insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &todo, nil
}

// Update changes the title of an owner-scoped todo. A nil title leaves the
// row unchanged. Returns nil if the todo does not exist or belongs to
// another user.
func (r *TodoWriteRepository) Update(ctx context.Context, todoID, userID uuid.UUID, title *string) (*models.TodoDB, error) {
	const query = `
		UPDATE todos
		SET title = COALESCE($3::text, title)
		WHERE todo_id = $1 AND user_id = $2
		RETURNING todo_id, user_id, title, created_at
	`
	args := []any{todoID, userID, title}

	var todo models.TodoDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &todo, query, args...)

	logger.Log.Infow("todo update",
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

	return &todo, nil
}

// Delete removes an owner-scoped todo. Returns false if no row matched.
func (r *TodoWriteRepository) Delete(ctx context.Context, todoID, userID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM todos
		WHERE todo_id = $1 AND user_id = $2
	`
	args := []any{todoID, userID}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("todo delete",
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
