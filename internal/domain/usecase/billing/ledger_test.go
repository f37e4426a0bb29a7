package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nsokolova/prediction-service/internal/domain/entity"
	errs "github.com/nsokolova/prediction-service/internal/domain/error"
	coremocks "github.com/nsokolova/prediction-service/mocks/port/core"
	persistencemocks "github.com/nsokolova/prediction-service/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userWithBalance builds a user whose private balance is set through the
// entity API so tests never touch storage internals
func userWithBalance(t *testing.T, id uint64, cents int64) *entity.User {
	t.Helper()
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)).Once()
	user := &entity.User{ID: id, Username: "alice"}
	user.SetBalance(cents, mockTime)
	return user
}

func TestGetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the formatted balance", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetByID(mock.Anything, uint64(7)).
			Return(userWithBalance(t, 7, 30000), nil).Once()

		ledger := NewLedger(mockRepo, mockLogger)

		balance, err := ledger.GetBalance(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, "300.00", balance)
	})

	t.Run("Zero user id is rejected", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		ledger := NewLedger(mockRepo, mockLogger)

		_, err := ledger.GetBalance(ctx, 0)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Unknown user fails with ErrUserNotFound", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetByID(mock.Anything, uint64(99)).
			Return(nil, errs.ErrUserNotFound).Once()

		ledger := NewLedger(mockRepo, mockLogger)

		_, err := ledger.GetBalance(ctx, 99)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestCredit(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid amount credits the balance", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().Credit(mock.Anything, uint64(7), int64(5000)).
			Return(userWithBalance(t, 7, 35000), nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		ledger := NewLedger(mockRepo, mockLogger)

		user, err := ledger.Credit(ctx, 7, "50.00")

		require.NoError(t, err)
		assert.Equal(t, "350.00", user.GetBalance())
	})

	t.Run("Invalid amount format never reaches the repository", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		ledger := NewLedger(mockRepo, mockLogger)

		user, err := ledger.Credit(ctx, 7, "abc")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Negative amount is rejected", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		ledger := NewLedger(mockRepo, mockLogger)

		user, err := ledger.Credit(ctx, 7, "-10.00")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("Repository failure is logged and passed through", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		databaseError := errors.New("database connection error")
		mockRepo.EXPECT().Credit(mock.Anything, uint64(7), int64(5000)).
			Return(nil, databaseError).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		ledger := NewLedger(mockRepo, mockLogger)

		user, err := ledger.Credit(ctx, 7, "50.00")

		assert.Nil(t, user)
		assert.Equal(t, databaseError, err)
	})
}

func TestDebit(t *testing.T) {
	ctx := context.Background()

	t.Run("Sufficient balance debits the exact amount", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().DebitIfSufficient(mock.Anything, uint64(7), int64(7000)).
			Return(userWithBalance(t, 7, 23000), nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		ledger := NewLedger(mockRepo, mockLogger)

		user, err := ledger.Debit(ctx, 7, 7000)

		require.NoError(t, err)
		assert.Equal(t, "230.00", user.GetBalance())
	})

	t.Run("Insufficient balance returns a detailed error", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().DebitIfSufficient(mock.Anything, uint64(7), int64(13000)).
			Return(nil, errs.ErrInsufficientBalance).Once()
		mockRepo.EXPECT().GetByID(mock.Anything, uint64(7)).
			Return(userWithBalance(t, 7, 2000), nil).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		ledger := NewLedger(mockRepo, mockLogger)

		user, err := ledger.Debit(ctx, 7, 13000)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)

		var detailed *errs.InsufficientBalanceError
		require.ErrorAs(t, err, &detailed)
		assert.Equal(t, "130.00", detailed.Required)
		assert.Equal(t, "20.00", detailed.CurrBalance)
	})

	t.Run("Unknown user fails with ErrUserNotFound", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().DebitIfSufficient(mock.Anything, uint64(99), int64(7000)).
			Return(nil, errs.ErrUserNotFound).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		ledger := NewLedger(mockRepo, mockLogger)

		user, err := ledger.Debit(ctx, 99, 7000)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Zero user id is rejected", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		ledger := NewLedger(mockRepo, mockLogger)

		user, err := ledger.Debit(ctx, 0, 7000)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestCreditCents(t *testing.T) {
	ctx := context.Background()

	t.Run("Credits an exact cent amount", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().Credit(mock.Anything, uint64(7), int64(7000)).
			Return(userWithBalance(t, 7, 30000), nil).Once()

		ledger := NewLedger(mockRepo, mockLogger)

		user, err := ledger.CreditCents(ctx, 7, 7000)

		require.NoError(t, err)
		assert.Equal(t, "300.00", user.GetBalance())
	})
}
