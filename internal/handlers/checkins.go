package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/habit-tracker/internal/dates"
	"github.com/sbilibin2017/habit-tracker/internal/logger"
	"github.com/sbilibin2017/habit-tracker/internal/services"
)

// CheckinManager defines the check-in operations consumed by the handlers.
type CheckinManager interface {
	MarkCompletion(ctx context.Context, habitID, userID uuid.UUID, date *string, completed *bool) error
	ClearCompletion(ctx context.Context, habitID, userID uuid.UUID, date string) error
}

// CheckinRequest represents the JSON body for marking a check-in
// swagger:model CheckinRequest
type CheckinRequest struct {
	// Calendar date YYYY-MM-DD, defaults to today
	// example: 2025-06-01
	Date *string `json:"date"`

	// Completion flag, defaults to true
	// example: true
	Completed *bool `json:"completed"`
}

// NewCheckinMarkHandler returns an HTTP handler upserting a check-in.
// Marking the same (habit, date) twice overwrites the completed flag, so
// the operation is safe to retry.
// @Summary Mark a habit check-in
// @Tags habits
// @Accept json
// @Param id path string true "Habit ID"
// @Param checkinRequest body handlers.CheckinRequest false "Check-in request"
// @Success 204 "Marked"
// @Failure 400 {object} handlers.ErrorResponse "Invalid date"
// @Failure 404 {object} handlers.ErrorResponse "Habit not found"
// @Security BearerAuth
// @Router /habits/{id}/checkins [post]
func NewCheckinMarkHandler(svc CheckinManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		habitID, ok := parseIDParam(w, r, "id", "Habit")
		if !ok {
			return
		}

		var req CheckinRequest
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
				return
			}
		}

		err := svc.MarkCompletion(r.Context(), habitID, user.UserID, req.Date, req.Completed)
		if err != nil {
			switch {
			case errors.Is(err, dates.ErrInvalidDate):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrHabitNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Habit not found"})
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

// NewCheckinClearHandler returns an HTTP handler deleting a check-in.
// @Summary Clear a habit check-in
// @Tags habits
// @Param id path string true "Habit ID"
// @Param date path string true "Calendar date YYYY-MM-DD"
// @Success 204 "Cleared"
// @Failure 400 {object} handlers.ErrorResponse "Invalid date"
// @Failure 404 {object} handlers.ErrorResponse "Habit or check-in not found"
// @Security BearerAuth
// @Router /habits/{id}/checkins/{date} [delete]
func NewCheckinClearHandler(svc CheckinManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		habitID, ok := parseIDParam(w, r, "id", "Habit")
		if !ok {
			return
		}

		date := chi.URLParam(r, "date")

		err := svc.ClearCompletion(r.Context(), habitID, user.UserID, date)
		if err != nil {
			switch {
			case errors.Is(err, dates.ErrInvalidDate):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrHabitNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Habit not found"})
			case errors.Is(err, services.ErrCheckinNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Habit check-in not found"})
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
