package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/habit-tracker/internal/logger"
	"github.com/sbilibin2017/habit-tracker/internal/models"
	"github.com/sbilibin2017/habit-tracker/internal/services"
)

// TaskManager defines the task operations consumed by the task handlers.
type TaskManager interface {
	Create(ctx context.Context, userID uuid.UUID, title string, description *string, dueDate *time.Time) (*models.TaskDB, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.TaskDB, error)
	Get(ctx context.Context, taskID, userID uuid.UUID) (*models.TaskDB, error)
	Update(ctx context.Context, taskID, userID uuid.UUID, title *string, description *string, setDescription bool, dueDate *time.Time, setDueDate bool, status *string) (*models.TaskDB, error)
	Delete(ctx context.Context, taskID, userID uuid.UUID) error
}

// TaskRequest represents the JSON body for creating or updating a task.
// Description and due date distinguish "absent" from "set to null" via the
// raw values.
// swagger:model TaskRequest
type TaskRequest struct {
	// Task title
	// example: File taxes
	Title *string `json:"title"`

	// Optional description, null clears it
	Description json.RawMessage `json:"description"`

	// Optional due timestamp in RFC3339, null clears it
	// example: 2025-06-01T12:00:00Z
	DueDate json.RawMessage `json:"dueDate"`

	// Task status
	// example: in_progress
	Status *string `json:"status"`
}

// description decodes the raw description field and reports presence.
func (r *TaskRequest) description() (*string, bool, error) {
	if len(r.Description) == 0 {
		return nil, false, nil
	}
	var value *string
	if err := json.Unmarshal(r.Description, &value); err != nil {
		return nil, true, err
	}
	return value, true, nil
}

// dueDate decodes the raw due date field and reports presence.
func (r *TaskRequest) dueDate() (*time.Time, bool, error) {
	if len(r.DueDate) == 0 {
		return nil, false, nil
	}
	var value *time.Time
	if err := json.Unmarshal(r.DueDate, &value); err != nil {
		return nil, true, err
	}
	return value, true, nil
}

// TaskResponse wraps a single task
// swagger:model TaskResponse
type TaskResponse struct {
	Task models.TaskDB `json:"task"`
}

// TaskListResponse wraps the task list
// swagger:model TaskListResponse
type TaskListResponse struct {
	Tasks []models.TaskDB `json:"tasks"`
}

// NewTaskListHandler returns an HTTP handler listing the caller's tasks.
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Success 200 {object} handlers.TaskListResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /tasks [get]
func NewTaskListHandler(svc TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		tasks, err := svc.List(r.Context(), user.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TaskListResponse{Tasks: tasks})
	}
}

// NewTaskCreateHandler returns an HTTP handler creating a task.
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param taskRequest body handlers.TaskRequest true "Task create request"
// @Success 201 {object} handlers.TaskResponse
// @Failure 400 {object} handlers.ErrorResponse "Empty title or bad due date"
// @Failure 401 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /tasks [post]
func NewTaskCreateHandler(svc TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req TaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		description, _, err := req.description()
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}
		dueDate, _, err := req.dueDate()
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid due date"})
			return
		}

		title := ""
		if req.Title != nil {
			title = *req.Title
		}

		task, err := svc.Create(r.Context(), user.UserID, title, description, dueDate)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTaskTitleRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(TaskResponse{Task: *task})
	}
}

// NewTaskGetHandler returns an HTTP handler fetching one task.
// @Summary Get a task
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} handlers.TaskResponse
// @Failure 404 {object} handlers.ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /tasks/{id} [get]
func NewTaskGetHandler(svc TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		taskID, ok := parseIDParam(w, r, "id", "Task")
		if !ok {
			return
		}

		task, err := svc.Get(r.Context(), taskID, user.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTaskNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Task not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TaskResponse{Task: *task})
	}
}

// NewTaskUpdateHandler returns an HTTP handler applying a partial task update.
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param taskRequest body handlers.TaskRequest true "Task update request"
// @Success 200 {object} handlers.TaskResponse
// @Failure 400 {object} handlers.ErrorResponse "Empty title or invalid status"
// @Failure 404 {object} handlers.ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /tasks/{id} [put]
func NewTaskUpdateHandler(svc TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		taskID, ok := parseIDParam(w, r, "id", "Task")
		if !ok {
			return
		}

		var req TaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		description, setDescription, err := req.description()
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}
		dueDate, setDueDate, err := req.dueDate()
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid due date"})
			return
		}

		task, err := svc.Update(r.Context(), taskID, user.UserID, req.Title, description, setDescription, dueDate, setDueDate, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTaskTitleRequired),
				errors.Is(err, services.ErrInvalidTaskStatus):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrTaskNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Task not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TaskResponse{Task: *task})
	}
}

// NewTaskDeleteHandler returns an HTTP handler deleting a task.
// @Summary Delete a task
// @Tags tasks
// @Param id path string true "Task ID"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func NewTaskDeleteHandler(svc TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		taskID, ok := parseIDParam(w, r, "id", "Task")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), taskID, user.UserID); err != nil {
			switch {
			case errors.Is(err, services.ErrTaskNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Task not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
