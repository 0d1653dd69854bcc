package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/habit-tracker/internal/dates"
	"github.com/sbilibin2017/habit-tracker/internal/logger"
	"github.com/sbilibin2017/habit-tracker/internal/models"
	"github.com/sbilibin2017/habit-tracker/internal/services"
)

// HabitManager defines the habit operations consumed by the habit handlers.
type HabitManager interface {
	Create(ctx context.Context, userID uuid.UUID, name string, description *string) (*models.HabitDB, error)
	Update(ctx context.Context, habitID, userID uuid.UUID, name *string, description *string, setDescription bool) (*models.HabitDB, error)
	Delete(ctx context.Context, habitID, userID uuid.UUID) error
	ListWithEntries(ctx context.Context, userID uuid.UUID, start, end *string, days *int) ([]models.HabitWithEntries, error)
}

// HabitRequest represents the JSON body for creating or updating a habit.
// Description distinguishes "absent" from "set to null" via the raw value.
// swagger:model HabitRequest
type HabitRequest struct {
	// Habit name
	// example: Read
	Name *string `json:"name"`

	// Optional description, null clears it
	// example: 20 pages a day
	Description json.RawMessage `json:"description"`
}

// description decodes the raw description field. The second return value
// reports whether the field was present in the body at all.
func (r *HabitRequest) description() (*string, bool, error) {
	if len(r.Description) == 0 {
		return nil, false, nil
	}
	var value *string
	if err := json.Unmarshal(r.Description, &value); err != nil {
		return nil, true, err
	}
	return value, true, nil
}

// HabitResponse wraps a single habit
// swagger:model HabitResponse
type HabitResponse struct {
	Habit models.HabitDB `json:"habit"`
}

// HabitListResponse wraps the habit list with entries
// swagger:model HabitListResponse
type HabitListResponse struct {
	Habits []models.HabitWithEntries `json:"habits"`
}

// NewHabitListHandler returns an HTTP handler listing the caller's habits
// with their check-ins in the requested date range.
// @Summary List habits with check-ins
// @Description Returns habits with entries for an explicit [start, end] range or the trailing days window (default 14).
// @Tags habits
// @Produce json
// @Param start query string false "Range start YYYY-MM-DD, requires end"
// @Param end query string false "Range end YYYY-MM-DD, requires start"
// @Param days query int false "Trailing window in days, ignored when start/end are set"
// @Success 200 {object} handlers.HabitListResponse
// @Failure 400 {object} handlers.ErrorResponse "Bad range"
// @Failure 401 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /habits [get]
func NewHabitListHandler(svc HabitManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var start, end *string
		if v := r.URL.Query().Get("start"); v != "" {
			start = &v
		}
		if v := r.URL.Query().Get("end"); v != "" {
			end = &v
		}

		var days *int
		if v := r.URL.Query().Get("days"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: dates.ErrInvalidRangeDays.Error()})
				return
			}
			days = &n
		}

		habits, err := svc.ListWithEntries(r.Context(), user.UserID, start, end, days)
		if err != nil {
			switch {
			case errors.Is(err, dates.ErrInvalidDate),
				errors.Is(err, dates.ErrMissingRangeBound),
				errors.Is(err, dates.ErrInvalidRange),
				errors.Is(err, dates.ErrInvalidRangeDays):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HabitListResponse{Habits: habits})
	}
}

// NewHabitCreateHandler returns an HTTP handler creating a habit.
// @Summary Create a habit
// @Tags habits
// @Accept json
// @Produce json
// @Param habitRequest body handlers.HabitRequest true "Habit create request"
// @Success 201 {object} handlers.HabitResponse
// @Failure 400 {object} handlers.ErrorResponse "Empty name"
// @Failure 401 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /habits [post]
func NewHabitCreateHandler(svc HabitManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req HabitRequest
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

		name := ""
		if req.Name != nil {
			name = *req.Name
		}

		habit, err := svc.Create(r.Context(), user.UserID, name, description)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrHabitNameRequired):
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
		json.NewEncoder(w).Encode(HabitResponse{Habit: *habit})
	}
}

// NewHabitUpdateHandler returns an HTTP handler applying a partial habit update.
// @Summary Update a habit
// @Tags habits
// @Accept json
// @Produce json
// @Param id path string true "Habit ID"
// @Param habitRequest body handlers.HabitRequest true "Habit update request"
// @Success 200 {object} handlers.HabitResponse
// @Failure 400 {object} handlers.ErrorResponse "Empty name"
// @Failure 404 {object} handlers.ErrorResponse "Habit not found"
// @Security BearerAuth
// @Router /habits/{id} [put]
func NewHabitUpdateHandler(svc HabitManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		habitID, ok := parseIDParam(w, r, "id", "Habit")
		if !ok {
			return
		}

		var req HabitRequest
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

		habit, err := svc.Update(r.Context(), habitID, user.UserID, req.Name, description, setDescription)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrHabitNameRequired):
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HabitResponse{Habit: *habit})
	}
}

// NewHabitDeleteHandler returns an HTTP handler deleting a habit and its
// check-ins.
// @Summary Delete a habit
// @Tags habits
// @Param id path string true "Habit ID"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Habit not found"
// @Security BearerAuth
// @Router /habits/{id} [delete]
func NewHabitDeleteHandler(svc HabitManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		habitID, ok := parseIDParam(w, r, "id", "Habit")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), habitID, user.UserID); err != nil {
			switch {
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
