package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/equipped-hq/tradein-service/internal/db/mocks"
	"github.com/equipped-hq/tradein-service/internal/repository"
	"github.com/equipped-hq/tradein-service/internal/repository/postgresql"
)

func testTradeIn(now time.Time) *repository.TradeIn {
	return &repository.TradeIn{
		ID:             "TI-1-deadbeef",
		Serial:         "C02XK1TYJHD3",
		Model:          "MacBook Air M1",
		Year:           "2020",
		Color:          "Space Gray",
		ConditionGrade: "good",
		EstimatedValue: 450,
		ValuationID:    "VAL-1-000001",
		Status:         "quote",
		ExpiresAt:      now.Add(30 * 24 * time.Hour),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestTradeInRepo_CreateTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewTradeInRepo(mockDB)

		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		item := testTradeIn(now)

		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(item.ID),
			gomock.Eq(item.Serial),
			gomock.Eq(item.Model),
			gomock.Eq(item.Year),
			gomock.Eq(item.Color),
			gomock.Eq(item.ConditionGrade),
			gomock.Eq(item.EstimatedValue),
			gomock.Eq(item.FinalValue),
			gomock.Eq(item.ValuationID),
			gomock.Eq(item.Status),
			gomock.Eq(item.ExpiresAt),
			gomock.Eq(item.CreatedAt),
			gomock.Eq(item.UpdatedAt),
		).Return(nil, nil)

		err := repo.CreateTx(ctx, mockTx, item)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewTradeInRepo(mockDB)

		expectedErr := errors.New("database error")
		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any()).Return(nil, expectedErr)

		err := repo.CreateTx(ctx, mockTx, &repository.TradeIn{ID: "TI-1-deadbeef"})
		assert.Equal(t, expectedErr, err)
	})
}

func TestTradeInRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewTradeInRepo(mockDB)

		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		item := testTradeIn(now)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(item.ID)).
			DoAndReturn(func(_ context.Context, dest *repository.TradeIn, _ string, _ string) error {
				*dest = *item
				return nil
			})

		got, err := repo.GetByID(ctx, item.ID)
		assert.NoError(t, err)
		assert.Equal(t, item, got)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewTradeInRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		got, err := repo.GetByID(ctx, "TI-404")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, got)
	})
}

func TestTradeInRepo_GetByIDTx(t *testing.T) {
	ctx := context.Background()

	t.Run("locks the row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewTradeInRepo(mockDB)

		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		item := testTradeIn(now)

		mockTx.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(item.ID)).
			DoAndReturn(func(_ context.Context, dest *repository.TradeIn, query string, _ string) error {
				assert.Contains(t, query, "FOR UPDATE")
				*dest = *item
				return nil
			})

		got, err := repo.GetByIDTx(ctx, mockTx, item.ID)
		assert.NoError(t, err)
		assert.Equal(t, item, got)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewTradeInRepo(mockDB)

		mockTx.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		got, err := repo.GetByIDTx(ctx, mockTx, "TI-404")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, got)
	})
}

func TestTradeInRepo_UpdateTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewTradeInRepo(mockDB)

		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		item := testTradeIn(now)
		item.Status = "label_sent"

		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(item.Serial),
			gomock.Eq(item.Model),
			gomock.Eq(item.Year),
			gomock.Eq(item.Color),
			gomock.Eq(item.ConditionGrade),
			gomock.Eq(item.EstimatedValue),
			gomock.Eq(item.FinalValue),
			gomock.Eq(item.Status),
			gomock.Eq(item.CreditAmount),
			gomock.Eq(item.CreditedAt),
			gomock.Eq(item.UpdatedAt),
			gomock.Eq(item.ID),
		).Return(nil, nil)

		err := repo.UpdateTx(ctx, mockTx, item)
		assert.NoError(t, err)
	})
}

func TestTradeInRepo_GetAllActive(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewTradeInRepo(mockDB)

		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		items := []*repository.TradeIn{testTradeIn(now)}

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dest *[]*repository.TradeIn, query string, _ ...interface{}) error {
				assert.Contains(t, query, "NOT IN ('credited', 'disputed')")
				*dest = items
				return nil
			})

		got, err := repo.GetAllActive(ctx)
		assert.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewTradeInRepo(mockDB)

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		got, err := repo.GetAllActive(ctx)
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}
