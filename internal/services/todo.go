package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/habit-tracker/internal/logger"
	"github.com/sbilibin2017/habit-tracker/internal/models"
)

// Error variables
var (
	ErrTodoNotFound      = errors.New("todo not found")
	ErrTodoTitleRequired = errors.New("title is required")
)

// TodoReader defines read-only operations for todos.
type TodoReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.TodoDB, error)
}

// TodoWriter defines write operations for todos.
type TodoWriter interface {
	Save(ctx context.Context, userID uuid.UUID, title string) (*models.TodoDB, error)
	Update(ctx context.Context, todoID, userID uuid.UUID, title *string) (*models.TodoDB, error)
	Delete(ctx context.Context, todoID, userID uuid.UUID) (bool, error)
}

// TodoService handles owner-scoped todo CRUD.
type TodoService struct {
	reader TodoReader
	writer TodoWriter
}

// NewTodoService creates a new TodoService instance.
func NewTodoService(reader TodoReader, writer TodoWriter) *TodoService {
	return &TodoService{
		reader: reader,
		writer: writer,
	}
}

// Create stores a new todo with a trimmed, non-empty title.
func (svc *TodoService) Create(ctx context.Context, userID uuid.UUID, title string) (*models.TodoDB, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTodoTitleRequired
	}

	todo, err := svc.writer.Save(ctx, userID, title)
	if err != nil {
		logger.Log.Errorw("failed to save todo", "err", err)
		return nil, err
	}

	return todo, nil
}

// List returns the user's todos, newest first.
func (svc *TodoService) List(ctx context.Context, userID uuid.UUID) ([]models.TodoDB, error) {
	todos, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list todos", "err", err)
		return nil, err
	}
	return todos, nil
}

// Update changes the title of an owner-scoped todo. A nil title is a no-op
// that returns the current row.
func (svc *TodoService) Update(ctx context.Context, todoID, userID uuid.UUID, title *string) (*models.TodoDB, error) {
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return nil, ErrTodoTitleRequired
		}
		title = &trimmed
	}

	todo, err := svc.writer.Update(ctx, todoID, userID, title)
	if err != nil {
		logger.Log.Errorw("failed to update todo", "err", err)
		return nil, err
	}
	if todo == nil {
		return nil, ErrTodoNotFound
	}

	return todo, nil
}

// Delete removes an owner-scoped todo.
func (svc *TodoService) Delete(ctx context.Context, todoID, userID uuid.UUID) error {
	ok, err := svc.writer.Delete(ctx, todoID, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete todo", "err", err)
		return err
	}
	if !ok {
		return ErrTodoNotFound
	}
	return nil
}
