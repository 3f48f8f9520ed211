package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	mock_database "github.com/equipped-hq/tradein-service/internal/db/mocks"
	"github.com/equipped-hq/tradein-service/internal/repository/postgresql"
)

// scanFuncRow lets a test control what ExecQueryRow scans into dest.
type scanFuncRow func(dest ...interface{}) error

func (f scanFuncRow) Scan(dest ...interface{}) error { return f(dest...) }

func TestUserRepo_EnsureUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates missing user with hashed password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().
			ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("ops")).
			Return(scanFuncRow(func(dest ...interface{}) error {
				*(dest[0].(*int)) = 0
				return nil
			}))
		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Eq("ops"), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, args ...interface{}) (pgconn.CommandTag, error) {
				hashed := args[1].(string)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("secret")))
				return nil, nil
			})

		err := repo.EnsureUser(ctx, "ops", "secret")
		require.NoError(t, err)
	})

	t.Run("existing user is left untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().
			ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("ops")).
			Return(scanFuncRow(func(dest ...interface{}) error {
				*(dest[0].(*int)) = 1
				return nil
			}))

		err := repo.EnsureUser(ctx, "ops", "secret")
		require.NoError(t, err)
	})

	t.Run("count query failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().
			ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("ops")).
			Return(scanFuncRow(func(...interface{}) error {
				return errors.New("connection refused")
			}))

		err := repo.EnsureUser(ctx, "ops", "secret")
		assert.Error(t, err)
	})
}

func TestUserRepo_ValidateUser(t *testing.T) {
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	returnHash := func(dest ...interface{}) error {
		*(dest[0].(*string)) = string(hashed)
		return nil
	}

	t.Run("valid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().
			ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("ops")).
			Return(scanFuncRow(returnHash))

		valid, err := repo.ValidateUser(ctx, "ops", "secret")
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().
			ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("ops")).
			Return(scanFuncRow(returnHash))

		valid, err := repo.ValidateUser(ctx, "ops", "nope")
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().
			ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("ghost")).
			Return(scanFuncRow(func(...interface{}) error {
				return pgx.ErrNoRows
			}))

		valid, err := repo.ValidateUser(ctx, "ghost", "secret")
		require.NoError(t, err)
		assert.False(t, valid)
	})
}
