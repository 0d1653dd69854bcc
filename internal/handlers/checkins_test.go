package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/habit-tracker/internal/dates"
	"github.com/sbilibin2017/habit-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCheckinMarkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := testClaims()
	mockSvc := NewMockCheckinManager(ctrl)

	router := newTestRouter(t, claims, func(r chi.Router) {
		r.Post("/habits/{id}/checkins", NewCheckinMarkHandler(mockSvc))
	})

	habitID := uuid.New()
	date := "2026-08-14"
	completed := false

	t.Run("explicit date and completed", func(t *testing.T) {
		mockSvc.EXPECT().
			MarkCompletion(gomock.Any(), habitID, claims.UserID, &date, &completed).
			Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/habits/"+habitID.String()+"/checkins",
			bytes.NewBufferString(`{"date": "2026-08-14", "completed": false}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("empty body uses defaults", func(t *testing.T) {
		mockSvc.EXPECT().
			MarkCompletion(gomock.Any(), habitID, claims.UserID, (*string)(nil), (*bool)(nil)).
			Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/habits/"+habitID.String()+"/checkins", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("invalid date", func(t *testing.T) {
		bad := "14-08-2026"
		mockSvc.EXPECT().
			MarkCompletion(gomock.Any(), habitID, claims.UserID, &bad, (*bool)(nil)).
			Return(dates.ErrInvalidDate)

		req := httptest.NewRequest(http.MethodPost, "/habits/"+habitID.String()+"/checkins",
			bytes.NewBufferString(`{"date": "14-08-2026"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("habit not found", func(t *testing.T) {
		mockSvc.EXPECT().
			MarkCompletion(gomock.Any(), habitID, claims.UserID, (*string)(nil), (*bool)(nil)).
			Return(services.ErrHabitNotFound)

		req := httptest.NewRequest(http.MethodPost, "/habits/"+habitID.String()+"/checkins", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("malformed habit id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/habits/nope/checkins", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/habits/"+habitID.String()+"/checkins",
			bytes.NewBufferString("{invalid"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCheckinClearHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := testClaims()
	mockSvc := NewMockCheckinManager(ctrl)

	router := newTestRouter(t, claims, func(r chi.Router) {
		r.Delete("/habits/{id}/checkins/{date}", NewCheckinClearHandler(mockSvc))
	})

	habitID := uuid.New()
	date := "2026-08-14"

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().
			ClearCompletion(gomock.Any(), habitID, claims.UserID, date).
			Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/habits/"+habitID.String()+"/checkins/"+date, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("check-in not found", func(t *testing.T) {
		mockSvc.EXPECT().
			ClearCompletion(gomock.Any(), habitID, claims.UserID, date).
			Return(services.ErrCheckinNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/habits/"+habitID.String()+"/checkins/"+date, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid date", func(t *testing.T) {
		mockSvc.EXPECT().
			ClearCompletion(gomock.Any(), habitID, claims.UserID, "yesterday").
			Return(dates.ErrInvalidDate)

		req := httptest.NewRequest(http.MethodDelete, "/habits/"+habitID.String()+"/checkins/yesterday", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("habit not found", func(t *testing.T) {
		mockSvc.EXPECT().
			ClearCompletion(gomock.Any(), habitID, claims.UserID, date).
			Return(services.ErrHabitNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/habits/"+habitID.String()+"/checkins/"+date, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
