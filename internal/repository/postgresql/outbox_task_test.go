package postgresql_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/equipped-hq/tradein-service/internal/db/mocks"
	"github.com/equipped-hq/tradein-service/internal/repository"
	"github.com/equipped-hq/tradein-service/internal/repository/postgresql"
)

func TestOutboxTaskRepo_CreateTaskTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOutboxTaskRepo(mockDB)

		payload := json.RawMessage(`{"type":"tradein.created"}`)

		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(repository.TaskStatusCreated),
			gomock.Eq("tradein_events"),
			gomock.Eq(payload),
			gomock.Any(),
		).Return(nil, nil)

		err := repo.CreateTaskTx(ctx, mockTx, "tradein_events", payload)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOutboxTaskRepo(mockDB)

		expectedErr := errors.New("database error")
		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.CreateTaskTx(ctx, mockTx, "tradein_events", json.RawMessage(`{}`))
		assert.Equal(t, expectedErr, err)
	})
}

func TestOutboxTaskRepo_GetProcessableTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOutboxTaskRepo(mockDB)

		tasks := []*repository.OutboxTask{
			{ID: uuid.New(), Status: repository.TaskStatusCreated, Topic: "tradein_events"},
			{ID: uuid.New(), Status: repository.TaskStatusFailed, Topic: "tradein_events", Attempts: 2},
		}

		mockTx.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(20), gomock.Eq(5)).
			DoAndReturn(func(_ context.Context, dest *[]*repository.OutboxTask, query string, _ ...interface{}) error {
				assert.Contains(t, query, "FOR UPDATE SKIP LOCKED")
				*dest = tasks
				return nil
			})

		got, err := repo.GetProcessableTasks(ctx, mockTx, 20, 5)
		assert.NoError(t, err)
		assert.Equal(t, tasks, got)
	})
}

func TestOutboxTaskRepo_UpdateTaskStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("marks a task done", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOutboxTaskRepo(mockDB)

		id := uuid.New()
		doneAt := time.Now().UTC()

		mockDB.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(repository.TaskStatusDone),
			gomock.Eq(0),
			gomock.Nil(),
			gomock.Eq(&doneAt),
			gomock.Any(),
			gomock.Eq(id),
		).Return(nil, nil)

		err := repo.UpdateTaskStatus(ctx, id, repository.TaskStatusDone, 0, nil, &doneAt)
		assert.NoError(t, err)
	})
}
