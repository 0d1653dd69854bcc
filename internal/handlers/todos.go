package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/habit-tracker/internal/logger"
	"github.com/sbilibin2017/habit-tracker/internal/models"
	"github.com/sbilibin2017/habit-tracker/internal/services"
)

// TodoManager defines the todo operations consumed by the todo handlers.
type TodoManager interface {
	Create(ctx context.Context, userID uuid.UUID, title string) (*models.TodoDB, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.TodoDB, error)
	Update(ctx context.Context, todoID, userID uuid.UUID, title *string) (*models.TodoDB, error)
	Delete(ctx context.Context, todoID, userID uuid.UUID) error
}

// TodoRequest represents the JSON body for creating or updating a todo
// swagger:model TodoRequest
type TodoRequest struct {
	// Todo title
	// example: Buy milk
	Title *string `json:"title"`
}

// TodoResponse wraps a single todo
// swagger:model TodoResponse
type TodoResponse struct {
	Todo models.TodoDB `json:"todo"`
}

// TodoListResponse wraps the todo list
// swagger:model TodoListResponse
type TodoListResponse struct {
	Todos []models.TodoDB `json:"todos"`
}

// NewTodoListHandler returns an HTTP handler listing the caller's todos.
// @Summary List todos
// @Tags todos
// @Produce json
// @Success 200 {object} handlers.TodoListResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /todos [get]
func NewTodoListHandler(svc TodoManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		todos, err := svc.List(r.Context(), user.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TodoListResponse{Todos: todos})
	}
}

// NewTodoCreateHandler returns an HTTP handler creating a todo.
// @Summary Create a todo
// @Tags todos
// @Accept json
// @Produce json
// @Param todoRequest body handlers.TodoRequest true "Todo create request"
// @Success 201 {object} handlers.TodoResponse
// @Failure 400 {object} handlers.ErrorResponse "Empty title"
// @Failure 401 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /todos [post]
func NewTodoCreateHandler(svc TodoManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req TodoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		title := ""
		if req.Title != nil {
			title = *req.Title
		}

		todo, err := svc.Create(r.Context(), user.UserID, title)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTodoTitleRequired):
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
		json.NewEncoder(w).Encode(TodoResponse{Todo: *todo})
	}
}

// NewTodoUpdateHandler returns an HTTP handler updating a todo title.
// @Summary Update a todo
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Param todoRequest body handlers.TodoRequest true "Todo update request"
// @Success 200 {object} handlers.TodoResponse
// @Failure 400 {object} handlers.ErrorResponse "Empty title"
// @Failure 404 {object} handlers.ErrorResponse "Todo not found"
// @Security BearerAuth
// @Router /todos/{id} [put]
func NewTodoUpdateHandler(svc TodoManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		todoID, ok := parseIDParam(w, r, "id", "Todo")
		if !ok {
			return
		}

		var req TodoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		todo, err := svc.Update(r.Context(), todoID, user.UserID, req.Title)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTodoTitleRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrTodoNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Todo not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TodoResponse{Todo: *todo})
	}
}

// NewTodoDeleteHandler returns an HTTP handler deleting a todo.
// @Summary Delete a todo
// @Tags todos
// @Param id path string true "Todo ID"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Todo not found"
// @Security BearerAuth
// @Router /todos/{id} [delete]
func NewTodoDeleteHandler(svc TodoManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		todoID, ok := parseIDParam(w, r, "id", "Todo")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), todoID, user.UserID); err != nil {
			switch {
			case errors.Is(err, services.ErrTodoNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Todo not found"})
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
