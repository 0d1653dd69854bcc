package services

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/habit-tracker/internal/dates"
	"github.com/sbilibin2017/habit-tracker/internal/logger"
	"github.com/sbilibin2017/habit-tracker/internal/models"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrHabitNotFound     = errors.New("habit not found")
	ErrHabitNameRequired = errors.New("name is required")
	ErrCheckinNotFound   = errors.New("habit check-in not found")
)

// HabitReader defines read-only operations for habits.
type HabitReader interface {
	GetByID(ctx context.Context, habitID uuid.UUID) (*models.HabitDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.HabitDB, error)
}

// HabitWriter defines write operations for habits.
type HabitWriter interface {
	Save(ctx context.Context, userID uuid.UUID, name string, description *string) (*models.HabitDB, error)
	Update(ctx context.Context, habitID, userID uuid.UUID, name *string, description *string, setDescription bool) (*models.HabitDB, error)
	Delete(ctx context.Context, habitID, userID uuid.UUID) (bool, error)
}

// HabitEntryReader defines read-only operations for check-ins.
type HabitEntryReader interface {
	ListByHabitInRange(ctx context.Context, habitID uuid.UUID, start, end string) ([]models.HabitEntryDB, error)
}

// HabitEntryWriter defines write operations for check-ins.
type HabitEntryWriter interface {
	Upsert(ctx context.Context, habitID uuid.UUID, date string, completed bool) error
	Delete(ctx context.Context, habitID uuid.UUID, date string) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// HabitService handles habit CRUD, check-ins and range aggregation.
type HabitService struct {
	reader      HabitReader
	writer      HabitWriter
	entryReader HabitEntryReader
	entryWriter HabitEntryWriter
	kafkaWriter KafkaWriter
}

// NewHabitService creates a new HabitService.
func NewHabitService(
	reader HabitReader,
	writer HabitWriter,
	entryReader HabitEntryReader,
	entryWriter HabitEntryWriter,
	kafkaWriter KafkaWriter,
) *HabitService {
	return &HabitService{
		reader:      reader,
		writer:      writer,
		entryReader: entryReader,
		entryWriter: entryWriter,
		kafkaWriter: kafkaWriter,
	}
}

// normalizeDescription trims the description and maps blank to nil so the
// store keeps NULL instead of empty strings.
func normalizeDescription(description *string) *string {
	if description == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Create stores a new habit with a trimmed, non-empty name.
func (svc *HabitService) Create(ctx context.Context, userID uuid.UUID, name string, description *string) (*models.HabitDB, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrHabitNameRequired
	}

	habit, err := svc.writer.Save(ctx, userID, name, normalizeDescription(description))
	if err != nil {
		logger.Log.Errorw("failed to save habit", "err", err)
		return nil, err
	}

	return habit, nil
}

// Update applies a partial update to an owner-scoped habit. All-nil input
// is a no-op that returns the current row.
func (svc *HabitService) Update(ctx context.Context, habitID, userID uuid.UUID, name *string, description *string, setDescription bool) (*models.HabitDB, error) {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, ErrHabitNameRequired
		}
		name = &trimmed
	}
	if setDescription {
		description = normalizeDescription(description)
	}

	habit, err := svc.writer.Update(ctx, habitID, userID, name, description, setDescription)
	if err != nil {
		logger.Log.Errorw("failed to update habit", "err", err)
		return nil, err
	}
	if habit == nil {
		return nil, ErrHabitNotFound
	}

	return habit, nil
}

// Delete removes an owner-scoped habit and, via the storage cascade, all of
// its check-ins.
func (svc *HabitService) Delete(ctx context.Context, habitID, userID uuid.UUID) error {
	ok, err := svc.writer.Delete(ctx, habitID, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete habit", "err", err)
		return err
	}
	if !ok {
		return ErrHabitNotFound
	}
	return nil
}

// ListWithEntries returns the user's habits with their check-ins in the
// resolved date range. Entry dates are normalized to YYYY-MM-DD and sorted
// newest first here; row order from the store is not relied on.
func (svc *HabitService) ListWithEntries(ctx context.Context, userID uuid.UUID, start, end *string, days *int) ([]models.HabitWithEntries, error) {
	rangeStart, rangeEnd, err := dates.ResolveRange(start, end, days)
	if err != nil {
		return nil, err
	}

	habits, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list habits", "err", err)
		return nil, err
	}

	result := make([]models.HabitWithEntries, 0, len(habits))
	for _, habit := range habits {
		entries, err := svc.entryReader.ListByHabitInRange(ctx, habit.HabitID, rangeStart, rangeEnd)
		if err != nil {
			logger.Log.Errorw("failed to list habit entries", "habit_id", habit.HabitID, "err", err)
			return nil, err
		}

		views := make([]models.HabitEntryView, 0, len(entries))
		for _, entry := range entries {
			views = append(views, models.HabitEntryView{
				Date:      entry.EntryDate.Format(dates.ISOLayout),
				Completed: entry.Completed,
			})
		}
		sort.Slice(views, func(i, j int) bool {
			return views[i].Date > views[j].Date
		})

		result = append(result, models.HabitWithEntries{
			HabitDB: habit,
			Entries: views,
		})
	}

	return result, nil
}

// ensureOwned loads the habit and verifies ownership. A missing habit and a
// habit owned by someone else produce the same error.
func (svc *HabitService) ensureOwned(ctx context.Context, habitID, userID uuid.UUID) error {
	habit, err := svc.reader.GetByID(ctx, habitID)
	if err != nil {
		logger.Log.Errorw("failed to get habit", "habit_id", habitID, "err", err)
		return err
	}
	if habit == nil || habit.UserID != userID {
		return ErrHabitNotFound
	}
	return nil
}

// MarkCompletion upserts the check-in for (habit, date). Date defaults to
// today local, completed defaults to true. Repeated calls with the same
// arguments converge to the same stored state.
func (svc *HabitService) MarkCompletion(ctx context.Context, habitID, userID uuid.UUID, date *string, completed *bool) error {
	if err := svc.ensureOwned(ctx, habitID, userID); err != nil {
		return err
	}

	entryDate := dates.TodayLocal()
	if date != nil {
		if err := dates.ValidateISODate(*date); err != nil {
			return err
		}
		entryDate = *date
	}

	entryCompleted := true
	if completed != nil {
		entryCompleted = *completed
	}

	if err := svc.entryWriter.Upsert(ctx, habitID, entryDate, entryCompleted); err != nil {
		logger.Log.Errorw("failed to upsert habit entry", "habit_id", habitID, "date", entryDate, "err", err)
		return err
	}

	svc.publishCheckin(ctx, models.CheckinEvent{
		EventID:   uuid.NewString(),
		HabitID:   habitID.String(),
		UserID:    userID.String(),
		Date:      entryDate,
		Completed: entryCompleted,
		Action:    models.CheckinActionMarked,
		Timestamp: time.Now().Unix(),
	})

	return nil
}

// ClearCompletion deletes the check-in for (habit, date). Clearing a date
// that was never marked fails with ErrCheckinNotFound.
func (svc *HabitService) ClearCompletion(ctx context.Context, habitID, userID uuid.UUID, date string) error {
	if err := svc.ensureOwned(ctx, habitID, userID); err != nil {
		return err
	}

	if err := dates.ValidateISODate(date); err != nil {
		return err
	}

	ok, err := svc.entryWriter.Delete(ctx, habitID, date)
	if err != nil {
		logger.Log.Errorw("failed to delete habit entry", "habit_id", habitID, "date", date, "err", err)
		return err
	}
	if !ok {
		return ErrCheckinNotFound
	}

	svc.publishCheckin(ctx, models.CheckinEvent{
		EventID:   uuid.NewString(),
		HabitID:   habitID.String(),
		UserID:    userID.String(),
		Date:      date,
		Completed: false,
		Action:    models.CheckinActionCleared,
		Timestamp: time.Now().Unix(),
	})

	return nil
}

// publishCheckin publishes a check-in event to Kafka. The store write is the
// source of truth, so publish failures are logged and swallowed.
func (svc *HabitService) publishCheckin(ctx context.Context, event models.CheckinEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal check-in event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.HabitID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish check-in event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Check-in event published to Kafka", "event_id", event.EventID, "action", event.Action)
	}
}
