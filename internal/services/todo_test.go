package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/habit-tracker/internal/models"
	"github.com/sbilibin2017/habit-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestTodoService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTodoReader(ctrl)
	mockWriter := services.NewMockTodoWriter(ctrl)

	svc := services.NewTodoService(mockReader, mockWriter)

	userID := uuid.New()

	tests := []struct {
		name      string
		title     string
		savedWith string
		writerErr error
		wantErr   error
	}{
		{
			name:      "successful create",
			title:     "Buy milk",
			savedWith: "Buy milk",
		},
		{
			name:      "title is trimmed",
			title:     "  Buy milk  ",
			savedWith: "Buy milk",
		},
		{
			name:    "empty title",
			title:   "   ",
			wantErr: services.ErrTodoTitleRequired,
		},
		{
			name:      "writer error",
			title:     "Buy milk",
			savedWith: "Buy milk",
			writerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.savedWith != "" {
				var saved *models.TodoDB
				if tt.writerErr == nil {
					saved = &models.TodoDB{TodoID: uuid.New(), UserID: userID, Title: tt.savedWith}
				}
				mockWriter.EXPECT().
					Save(gomock.Any(), userID, tt.savedWith).
					Return(saved, tt.writerErr)
			}

			todo, err := svc.Create(context.Background(), userID, tt.title)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, todo)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.savedWith, todo.Title)
			}
		})
	}
}

func TestTodoService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTodoReader(ctrl)
	mockWriter := services.NewMockTodoWriter(ctrl)

	svc := services.NewTodoService(mockReader, mockWriter)

	userID := uuid.New()
	todos := []models.TodoDB{
		{TodoID: uuid.New(), UserID: userID, Title: "newest"},
		{TodoID: uuid.New(), UserID: userID, Title: "oldest"},
	}

	t.Run("returns todos", func(t *testing.T) {
		mockReader.EXPECT().ListByUserID(gomock.Any(), userID).Return(todos, nil)

		got, err := svc.List(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, todos, got)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().ListByUserID(gomock.Any(), userID).Return(nil, errors.New("db error"))

		got, err := svc.List(context.Background(), userID)
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestTodoService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTodoReader(ctrl)
	mockWriter := services.NewMockTodoWriter(ctrl)

	svc := services.NewTodoService(mockReader, mockWriter)

	userID := uuid.New()
	todoID := uuid.New()
	title := "Buy oat milk"
	padded := "  Buy oat milk  "
	blank := "   "

	t.Run("successful update", func(t *testing.T) {
		mockWriter.EXPECT().
			Update(gomock.Any(), todoID, userID, &title).
			Return(&models.TodoDB{TodoID: todoID, UserID: userID, Title: title}, nil)

		todo, err := svc.Update(context.Background(), todoID, userID, &title)
		assert.NoError(t, err)
		assert.Equal(t, title, todo.Title)
	})

	t.Run("title is trimmed", func(t *testing.T) {
		mockWriter.EXPECT().
			Update(gomock.Any(), todoID, userID, &title).
			Return(&models.TodoDB{TodoID: todoID, UserID: userID, Title: title}, nil)

		todo, err := svc.Update(context.Background(), todoID, userID, &padded)
		assert.NoError(t, err)
		assert.Equal(t, title, todo.Title)
	})

	t.Run("blank title", func(t *testing.T) {
		_, err := svc.Update(context.Background(), todoID, userID, &blank)
		assert.ErrorIs(t, err, services.ErrTodoTitleRequired)
	})

	t.Run("nil title is a no-op", func(t *testing.T) {
		mockWriter.EXPECT().
			Update(gomock.Any(), todoID, userID, (*string)(nil)).
			Return(&models.TodoDB{TodoID: todoID, UserID: userID, Title: "unchanged"}, nil)

		todo, err := svc.Update(context.Background(), todoID, userID, nil)
		assert.NoError(t, err)
		assert.Equal(t, "unchanged", todo.Title)
	})

	t.Run("todo not found", func(t *testing.T) {
		mockWriter.EXPECT().
			Update(gomock.Any(), todoID, userID, &title).
			Return(nil, nil)

		_, err := svc.Update(context.Background(), todoID, userID, &title)
		assert.ErrorIs(t, err, services.ErrTodoNotFound)
	})

	t.Run("writer error", func(t *testing.T) {
		mockWriter.EXPECT().
			Update(gomock.Any(), todoID, userID, &title).
			Return(nil, errors.New("db error"))

		_, err := svc.Update(context.Background(), todoID, userID, &title)
		assert.EqualError(t, err, "db error")
	})
}

func TestTodoService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTodoReader(ctrl)
	mockWriter := services.NewMockTodoWriter(ctrl)

	svc := services.NewTodoService(mockReader, mockWriter)

	userID := uuid.New()
	todoID := uuid.New()

	t.Run("successful delete", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), todoID, userID).Return(true, nil)

		err := svc.Delete(context.Background(), todoID, userID)
		assert.NoError(t, err)
	})

	t.Run("todo not found", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), todoID, userID).Return(false, nil)

		err := svc.Delete(context.Background(), todoID, userID)
		assert.ErrorIs(t, err, services.ErrTodoNotFound)
	})

	t.Run("writer error", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), todoID, userID).Return(false, errors.New("db error"))

		err := svc.Delete(context.Background(), todoID, userID)
		assert.EqualError(t, err, "db error")
	})
}
