package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/habit-tracker/internal/logger"
	"github.com/sbilibin2017/habit-tracker/internal/models"
)

// Error variables
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskTitleRequired = errors.New("title is required")
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// TaskReader defines read-only operations for tasks.
type TaskReader interface {
	GetByID(ctx context.Context, taskID, userID uuid.UUID) (*models.TaskDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.TaskDB, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	Save(ctx context.Context, userID uuid.UUID, title string, description *string, dueDate *time.Time) (*models.TaskDB, error)
	Update(ctx context.Context, taskID, userID uuid.UUID, title *string, description *string, setDescription bool, dueDate *time.Time, setDueDate bool, status *string) (*models.TaskDB, error)
	Delete(ctx context.Context, taskID, userID uuid.UUID) (bool, error)
}

// TaskService handles owner-scoped task CRUD.
type TaskService struct {
	reader TaskReader
	writer TaskWriter
}

// NewTaskService creates a new TaskService instance.
func NewTaskService(reader TaskReader, writer TaskWriter) *TaskService {
	return &TaskService{
		reader: reader,
		writer: writer,
	}
}

// Create stores a new task. Status starts as pending.
func (svc *TaskService) Create(ctx context.Context, userID uuid.UUID, title string, description *string, dueDate *time.Time) (*models.TaskDB, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTaskTitleRequired
	}

	task, err := svc.writer.Save(ctx, userID, title, normalizeDescription(description), dueDate)
	if err != nil {
		logger.Log.Errorw("failed to save task", "err", err)
		return nil, err
	}

	return task, nil
}

// List returns the user's tasks, newest first.
func (svc *TaskService) List(ctx context.Context, userID uuid.UUID) ([]models.TaskDB, error) {
	tasks, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list tasks", "err", err)
		return nil, err
	}
	return tasks, nil
}

// Get returns one owner-scoped task.
func (svc *TaskService) Get(ctx context.Context, taskID, userID uuid.UUID) (*models.TaskDB, error) {
	task, err := svc.reader.GetByID(ctx, taskID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get task", "err", err)
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// Update applies a partial update to an owner-scoped task. All-nil input is
// a no-op that returns the current row.
func (svc *TaskService) Update(
	ctx context.Context,
	taskID, userID uuid.UUID,
	title *string,
	description *string, setDescription bool,
	dueDate *time.Time, setDueDate bool,
	status *string,
) (*models.TaskDB, error) {
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return nil, ErrTaskTitleRequired
		}
		title = &trimmed
	}
	if status != nil && !models.ValidTaskStatus(*status) {
		return nil, ErrInvalidTaskStatus
	}
	if setDescription {
		description = normalizeDescription(description)
	}

	task, err := svc.writer.Update(ctx, taskID, userID, title, description, setDescription, dueDate, setDueDate, status)
	if err != nil {
		logger.Log.Errorw("failed to update task", "err", err)
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	return task, nil
}

// Delete removes an owner-scoped task.
func (svc *TaskService) Delete(ctx context.Context, taskID, userID uuid.UUID) error {
	ok, err := svc.writer.Delete(ctx, taskID, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete task", "err", err)
		return err
	}
	if !ok {
		return ErrTaskNotFound
	}
	return nil
}
