package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	kafka "github.com/segmentio/kafka-go"
	"github.com/sbilibin2017/habit-tracker/internal/dates"
	"github.com/sbilibin2017/habit-tracker/internal/models"
	"github.com/sbilibin2017/habit-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func newHabitService(ctrl *gomock.Controller) (
	*services.HabitService,
	*services.MockHabitReader,
	*services.MockHabitWriter,
	*services.MockHabitEntryReader,
	*services.MockHabitEntryWriter,
	*services.MockKafkaWriter,
) {
	mockReader := services.NewMockHabitReader(ctrl)
	mockWriter := services.NewMockHabitWriter(ctrl)
	mockEntryReader := services.NewMockHabitEntryReader(ctrl)
	mockEntryWriter := services.NewMockHabitEntryWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewHabitService(mockReader, mockWriter, mockEntryReader, mockEntryWriter, mockKafka)
	return svc, mockReader, mockWriter, mockEntryReader, mockEntryWriter, mockKafka
}

func TestHabitService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockWriter, _, _, _ := newHabitService(ctrl)

	userID := uuid.New()
	desc := "every morning"
	blank := "   "

	t.Run("successful create", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), userID, "Read", &desc).
			Return(&models.HabitDB{HabitID: uuid.New(), UserID: userID, Name: "Read", Description: &desc}, nil)

		habit, err := svc.Create(context.Background(), userID, " Read ", &desc)
		assert.NoError(t, err)
		assert.Equal(t, "Read", habit.Name)
	})

	t.Run("blank description becomes nil", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), userID, "Read", (*string)(nil)).
			Return(&models.HabitDB{HabitID: uuid.New(), UserID: userID, Name: "Read"}, nil)

		habit, err := svc.Create(context.Background(), userID, "Read", &blank)
		assert.NoError(t, err)
		assert.Nil(t, habit.Description)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := svc.Create(context.Background(), userID, "   ", nil)
		assert.ErrorIs(t, err, services.ErrHabitNameRequired)
	})

	t.Run("writer error", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), userID, "Read", (*string)(nil)).
			Return(nil, errors.New("db error"))

		_, err := svc.Create(context.Background(), userID, "Read", nil)
		assert.EqualError(t, err, "db error")
	})
}

func TestHabitService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockWriter, _, _, _ := newHabitService(ctrl)

	userID := uuid.New()
	habitID := uuid.New()
	name := "Read more"
	blank := "   "

	t.Run("successful update", func(t *testing.T) {
		mockWriter.EXPECT().
			Update(gomock.Any(), habitID, userID, &name, (*string)(nil), false).
			Return(&models.HabitDB{HabitID: habitID, UserID: userID, Name: name}, nil)

		habit, err := svc.Update(context.Background(), habitID, userID, &name, nil, false)
		assert.NoError(t, err)
		assert.Equal(t, name, habit.Name)
	})

	t.Run("clearing description", func(t *testing.T) {
		mockWriter.EXPECT().
			Update(gomock.Any(), habitID, userID, (*string)(nil), (*string)(nil), true).
			Return(&models.HabitDB{HabitID: habitID, UserID: userID, Name: "Read"}, nil)

		habit, err := svc.Update(context.Background(), habitID, userID, nil, &blank, true)
		assert.NoError(t, err)
		assert.Nil(t, habit.Description)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := svc.Update(context.Background(), habitID, userID, &blank, nil, false)
		assert.ErrorIs(t, err, services.ErrHabitNameRequired)
	})

	t.Run("habit not found", func(t *testing.T) {
		mockWriter.EXPECT().
			Update(gomock.Any(), habitID, userID, &name, (*string)(nil), false).
			Return(nil, nil)

		_, err := svc.Update(context.Background(), habitID, userID, &name, nil, false)
		assert.ErrorIs(t, err, services.ErrHabitNotFound)
	})
}

func TestHabitService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockWriter, _, _, _ := newHabitService(ctrl)

	userID := uuid.New()
	habitID := uuid.New()

	t.Run("successful delete", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), habitID, userID).Return(true, nil)

		err := svc.Delete(context.Background(), habitID, userID)
		assert.NoError(t, err)
	})

	t.Run("habit not found", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), habitID, userID).Return(false, nil)

		err := svc.Delete(context.Background(), habitID, userID)
		assert.ErrorIs(t, err, services.ErrHabitNotFound)
	})
}

func TestHabitService_ListWithEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockReader, _, mockEntryReader, _, _ := newHabitService(ctrl)

	userID := uuid.New()
	habitID := uuid.New()
	start := "2026-08-01"
	end := "2026-08-14"

	t.Run("entries normalized and sorted newest first", func(t *testing.T) {
		mockReader.EXPECT().
			ListByUserID(gomock.Any(), userID).
			Return([]models.HabitDB{{HabitID: habitID, UserID: userID, Name: "Read"}}, nil)

		// Rows arrive oldest first on purpose; the service re-sorts.
		mockEntryReader.EXPECT().
			ListByHabitInRange(gomock.Any(), habitID, start, end).
			Return([]models.HabitEntryDB{
				{HabitID: habitID, EntryDate: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC), Completed: true},
				{HabitID: habitID, EntryDate: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), Completed: false},
				{HabitID: habitID, EntryDate: time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC), Completed: true},
			}, nil)

		habits, err := svc.ListWithEntries(context.Background(), userID, &start, &end, nil)
		assert.NoError(t, err)
		assert.Len(t, habits, 1)
		assert.Equal(t, []models.HabitEntryView{
			{Date: "2026-08-10", Completed: false},
			{Date: "2026-08-05", Completed: true},
			{Date: "2026-08-02", Completed: true},
		}, habits[0].Entries)
	})

	t.Run("habit without entries gets an empty slice", func(t *testing.T) {
		mockReader.EXPECT().
			ListByUserID(gomock.Any(), userID).
			Return([]models.HabitDB{{HabitID: habitID, UserID: userID, Name: "Read"}}, nil)
		mockEntryReader.EXPECT().
			ListByHabitInRange(gomock.Any(), habitID, start, end).
			Return(nil, nil)

		habits, err := svc.ListWithEntries(context.Background(), userID, &start, &end, nil)
		assert.NoError(t, err)
		assert.NotNil(t, habits[0].Entries)
		assert.Empty(t, habits[0].Entries)
	})

	t.Run("invalid range", func(t *testing.T) {
		_, err := svc.ListWithEntries(context.Background(), userID, &end, &start, nil)
		assert.ErrorIs(t, err, dates.ErrInvalidRange)
	})

	t.Run("one bound missing", func(t *testing.T) {
		_, err := svc.ListWithEntries(context.Background(), userID, &start, nil, nil)
		assert.ErrorIs(t, err, dates.ErrMissingRangeBound)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().
			ListByUserID(gomock.Any(), userID).
			Return(nil, errors.New("db error"))

		_, err := svc.ListWithEntries(context.Background(), userID, &start, &end, nil)
		assert.EqualError(t, err, "db error")
	})
}

func TestHabitService_MarkCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockReader, _, _, mockEntryWriter, mockKafka := newHabitService(ctrl)

	userID := uuid.New()
	habitID := uuid.New()
	owned := &models.HabitDB{HabitID: habitID, UserID: userID, Name: "Read"}
	date := "2026-08-14"
	completed := false

	t.Run("explicit date and completed", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), habitID).Return(owned, nil)
		mockEntryWriter.EXPECT().Upsert(gomock.Any(), habitID, date, false).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				assert.Len(t, msgs, 1)
				var event models.CheckinEvent
				assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, habitID.String(), event.HabitID)
				assert.Equal(t, date, event.Date)
				assert.False(t, event.Completed)
				assert.Equal(t, models.CheckinActionMarked, event.Action)
				return nil
			})

		err := svc.MarkCompletion(context.Background(), habitID, userID, &date, &completed)
		assert.NoError(t, err)
	})

	t.Run("defaults to today and completed", func(t *testing.T) {
		today := dates.TodayLocal()
		mockReader.EXPECT().GetByID(gomock.Any(), habitID).Return(owned, nil)
		mockEntryWriter.EXPECT().Upsert(gomock.Any(), habitID, today, true).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.MarkCompletion(context.Background(), habitID, userID, nil, nil)
		assert.NoError(t, err)
	})

	t.Run("kafka failure does not fail the mark", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), habitID).Return(owned, nil)
		mockEntryWriter.EXPECT().Upsert(gomock.Any(), habitID, date, true).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		err := svc.MarkCompletion(context.Background(), habitID, userID, &date, nil)
		assert.NoError(t, err)
	})

	t.Run("invalid date", func(t *testing.T) {
		bad := "14-08-2026"
		mockReader.EXPECT().GetByID(gomock.Any(), habitID).Return(owned, nil)

		err := svc.MarkCompletion(context.Background(), habitID, userID, &bad, nil)
		assert.ErrorIs(t, err, dates.ErrInvalidDate)
	})

	t.Run("habit not found", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), habitID).Return(nil, nil)

		err := svc.MarkCompletion(context.Background(), habitID, userID, &date, nil)
		assert.ErrorIs(t, err, services.ErrHabitNotFound)
	})

	t.Run("habit owned by someone else", func(t *testing.T) {
		other := &models.HabitDB{HabitID: habitID, UserID: uuid.New(), Name: "Read"}
		mockReader.EXPECT().GetByID(gomock.Any(), habitID).Return(other, nil)

		err := svc.MarkCompletion(context.Background(), habitID, userID, &date, nil)
		assert.ErrorIs(t, err, services.ErrHabitNotFound)
	})

	t.Run("upsert error", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), habitID).Return(owned, nil)
		mockEntryWriter.EXPECT().Upsert(gomock.Any(), habitID, date, true).Return(errors.New("db error"))

		err := svc.MarkCompletion(context.Background(), habitID, userID, &date, nil)
		assert.EqualError(t, err, "db error")
	})
}

func TestHabitService_ClearCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockReader, _, _, mockEntryWriter, mockKafka := newHabitService(ctrl)

	userID := uuid.New()
	habitID := uuid.New()
	owned := &models.HabitDB{HabitID: habitID, UserID: userID, Name: "Read"}
	date := "2026-08-14"

	t.Run("successful clear", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), habitID).Return(owned, nil)
		mockEntryWriter.EXPECT().Delete(gomock.Any(), habitID, date).Return(true, nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				var event models.CheckinEvent
				assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, models.CheckinActionCleared, event.Action)
				assert.False(t, event.Completed)
				return nil
			})

		err := svc.ClearCompletion(context.Background(), habitID, userID, date)
		assert.NoError(t, err)
	})

	t.Run("check-in never marked", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), habitID).Return(owned, nil)
		mockEntryWriter.EXPECT().Delete(gomock.Any(), habitID, date).Return(false, nil)

		err := svc.ClearCompletion(context.Background(), habitID, userID, date)
		assert.ErrorIs(t, err, services.ErrCheckinNotFound)
	})

	t.Run("invalid date", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), habitID).Return(owned, nil)

		err := svc.ClearCompletion(context.Background(), habitID, userID, "not-a-date")
		assert.ErrorIs(t, err, dates.ErrInvalidDate)
	})

	t.Run("habit not found", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), habitID).Return(nil, nil)

		err := svc.ClearCompletion(context.Background(), habitID, userID, date)
		assert.ErrorIs(t, err, services.ErrHabitNotFound)
	})
}

func TestHabitService_NilKafkaWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockHabitReader(ctrl)
	mockWriter := services.NewMockHabitWriter(ctrl)
	mockEntryReader := services.NewMockHabitEntryReader(ctrl)
	mockEntryWriter := services.NewMockHabitEntryWriter(ctrl)

	svc := services.NewHabitService(mockReader, mockWriter, mockEntryReader, mockEntryWriter, nil)

	userID := uuid.New()
	habitID := uuid.New()
	owned := &models.HabitDB{HabitID: habitID, UserID: userID, Name: "Read"}
	date := "2026-08-14"

	mockReader.EXPECT().GetByID(gomock.Any(), habitID).Return(owned, nil)
	mockEntryWriter.EXPECT().Upsert(gomock.Any(), habitID, date, true).Return(nil)

	err := svc.MarkCompletion(context.Background(), habitID, userID, &date, nil)
	assert.NoError(t, err)
}
