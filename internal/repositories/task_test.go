package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/habit-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTaskPostgresContainer(t *testing.T) (*sqlx.DB, uuid.UUID, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(100) NOT NULL UNIQUE,
		name VARCHAR(100) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS tasks (
		task_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		description TEXT,
		due_date TIMESTAMPTZ,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	var userID uuid.UUID
	err = db.Get(&userID, `
		INSERT INTO users (email, name, password_hash)
		VALUES ('owner@example.com', 'Owner', 'hash')
		RETURNING user_id
	`)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, userID, teardown
}

func TestTaskWriteRepository_Save(t *testing.T) {
	db, userID, teardown := setupTaskPostgresContainer(t)
	defer teardown()

	repo := NewTaskWriteRepository(db)
	ctx := context.Background()

	t.Run("MinimalTask", func(t *testing.T) {
		task, err := repo.Save(ctx, userID, "Report", nil, nil)
		assert.NoError(t, err)
		assert.NotNil(t, task)
		assert.Equal(t, "Report", task.Title)
		assert.Equal(t, models.TaskStatusPending, task.Status)
		assert.Nil(t, task.Description)
		assert.Nil(t, task.DueDate)
	})

	t.Run("WithDescriptionAndDueDate", func(t *testing.T) {
		desc := "quarterly numbers"
		due := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		task, err := repo.Save(ctx, userID, "Report", &desc, &due)
		assert.NoError(t, err)
		assert.NotNil(t, task)
		assert.NotNil(t, task.Description)
		assert.Equal(t, desc, *task.Description)
		assert.NotNil(t, task.DueDate)
		assert.True(t, task.DueDate.Equal(due))
	})
}

func TestTaskReadRepository_GetByID(t *testing.T) {
	db, userID, teardown := setupTaskPostgresContainer(t)
	defer teardown()

	writeRepo := NewTaskWriteRepository(db)
	readRepo := NewTaskReadRepository(db)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, userID, "Report", nil, nil)
	assert.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		task, err := readRepo.GetByID(ctx, saved.TaskID, userID)
		assert.NoError(t, err)
		assert.NotNil(t, task)
		assert.Equal(t, "Report", task.Title)
	})

	t.Run("ForeignOwnerNotFound", func(t *testing.T) {
		task, err := readRepo.GetByID(ctx, saved.TaskID, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, task)
	})

	t.Run("MissingTaskNotFound", func(t *testing.T) {
		task, err := readRepo.GetByID(ctx, uuid.New(), userID)
		assert.NoError(t, err)
		assert.Nil(t, task)
	})
}

func TestTaskReadRepository_ListByUserID(t *testing.T) {
	db, userID, teardown := setupTaskPostgresContainer(t)
	defer teardown()

	writeRepo := NewTaskWriteRepository(db)
	readRepo := NewTaskReadRepository(db)
	ctx := context.Background()

	_, err := writeRepo.Save(ctx, userID, "First", nil, nil)
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, userID, "Second", nil, nil)
	assert.NoError(t, err)

	tasks, err := readRepo.ListByUserID(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, tasks, 2)

	tasks, err = readRepo.ListByUserID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskWriteRepository_Update(t *testing.T) {
	db, userID, teardown := setupTaskPostgresContainer(t)
	defer teardown()

	repo := NewTaskWriteRepository(db)
	ctx := context.Background()

	desc := "initial"
	due := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	task, err := repo.Save(ctx, userID, "Report", &desc, &due)
	assert.NoError(t, err)

	t.Run("StatusOnly", func(t *testing.T) {
		status := models.TaskStatusInProgress
		updated, err := repo.Update(ctx, task.TaskID, userID, nil, nil, false, nil, false, &status)
		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Equal(t, models.TaskStatusInProgress, updated.Status)
		assert.Equal(t, "Report", updated.Title)
		assert.NotNil(t, updated.Description)
		assert.NotNil(t, updated.DueDate)
	})

	t.Run("ClearDueDate", func(t *testing.T) {
		updated, err := repo.Update(ctx, task.TaskID, userID, nil, nil, false, nil, true, nil)
		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Nil(t, updated.DueDate)
	})

	t.Run("ClearDescription", func(t *testing.T) {
		updated, err := repo.Update(ctx, task.TaskID, userID, nil, nil, true, nil, false, nil)
		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Nil(t, updated.Description)
	})

	t.Run("RetitleAndReschedule", func(t *testing.T) {
		title := "Annual report"
		next := time.Date(2026, 12, 1, 9, 0, 0, 0, time.UTC)
		updated, err := repo.Update(ctx, task.TaskID, userID, &title, nil, false, &next, true, nil)
		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Equal(t, "Annual report", updated.Title)
		assert.NotNil(t, updated.DueDate)
		assert.True(t, updated.DueDate.Equal(next))
	})

	t.Run("ForeignOwnerNotFound", func(t *testing.T) {
		status := models.TaskStatusDone
		updated, err := repo.Update(ctx, task.TaskID, uuid.New(), nil, nil, false, nil, false, &status)
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestTaskWriteRepository_Delete(t *testing.T) {
	db, userID, teardown := setupTaskPostgresContainer(t)
	defer teardown()

	repo := NewTaskWriteRepository(db)
	ctx := context.Background()

	task, err := repo.Save(ctx, userID, "Disposable", nil, nil)
	assert.NoError(t, err)

	t.Run("ForeignOwnerNoMatch", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, task.TaskID, uuid.New())
		assert.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("Deletes", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, task.TaskID, userID)
		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("AlreadyGoneNoMatch", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, task.TaskID, userID)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}
