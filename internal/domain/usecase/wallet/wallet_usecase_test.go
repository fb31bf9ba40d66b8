package wallet

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	mockcore "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/wallet-ledger/mocks/port/persistence"
)

type walletMocks struct {
	uow      *mockpersistence.MockUnitOfWork
	userRepo *mockpersistence.MockUserRepository
	txnRepo  *mockpersistence.MockTransactionRepository
	clock    *mockcore.MockTimeProvider
	logger   *mockcore.MockLogger
}

func setup(t *testing.T) (*WalletUseCase, *walletMocks) {
	m := &walletMocks{
		uow:      mockpersistence.NewMockUnitOfWork(t),
		userRepo: mockpersistence.NewMockUserRepository(t),
		txnRepo:  mockpersistence.NewMockTransactionRepository(t),
		clock:    mockcore.NewMockTimeProvider(t),
		logger:   mockcore.NewMockLogger(t),
	}
	m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.userRepo).Maybe()
	m.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(m.txnRepo).Maybe()
	return NewWalletUseCase(m.uow, m.clock, m.logger), m
}

func TestGetFormattedUserBalance(t *testing.T) {
	t.Run("Existing user", func(t *testing.T) {
		uc, m := setup(t)
		m.userRepo.EXPECT().GetByID(mock.Anything, "u1").
			Return(&entity.User{ID: "u1", WalletBalance: decimal.NewFromInt(6000)}, nil)

		res, err := uc.GetFormattedUserBalance(context.Background(), "u1")

		require.NoError(t, err)
		assert.Equal(t, &entity.BalanceResponse{UserID: "u1", Balance: "6000.00"}, res)
	})

	t.Run("Missing user is not logged as an error", func(t *testing.T) {
		uc, m := setup(t)
		m.userRepo.EXPECT().GetByID(mock.Anything, "nobody").Return(nil, errs.ErrUserNotFound)

		_, err := uc.GetFormattedUserBalance(context.Background(), "nobody")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Storage failure is logged", func(t *testing.T) {
		uc, m := setup(t)
		m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(nil, errs.ErrDatabaseConnection)
		m.logger.EXPECT().Error("Failed to load user balance", mock.Anything).Return().Once()

		_, err := uc.GetFormattedUserBalance(context.Background(), "u1")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("Empty ID", func(t *testing.T) {
		uc, _ := setup(t)
		_, err := uc.GetFormattedUserBalance(context.Background(), "")
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestListTransactions(t *testing.T) {
	testCases := []struct {
		name          string
		limit         int
		expectedLimit int
	}{
		{"default limit", 0, defaultHistoryLimit},
		{"explicit limit", 5, 5},
		{"capped limit", 1000, maxHistoryLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := setup(t)
			txns := []*entity.Transaction{{Reference: "TX2"}, {Reference: "TX1"}}
			m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&entity.User{ID: "u1"}, nil)
			m.txnRepo.EXPECT().ListByUser(mock.Anything, "u1", tc.expectedLimit).Return(txns, nil)

			res, err := uc.ListTransactions(context.Background(), "u1", tc.limit)

			require.NoError(t, err)
			assert.Equal(t, txns, res)
		})
	}

	t.Run("unknown user", func(t *testing.T) {
		uc, m := setup(t)
		m.userRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, errs.ErrUserNotFound)

		_, err := uc.ListTransactions(context.Background(), "ghost", 10)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestRegisterUser(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates the user", func(t *testing.T) {
		uc, m := setup(t)
		m.clock.EXPECT().Now().Return(fixedTime)
		m.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == "u1" && u.Email == "ada@example.com" && u.WalletBalance.Equal(decimal.NewFromInt(1000))
		})).Return(nil)
		m.logger.EXPECT().Info("User registered", mock.Anything).Return()

		user, err := uc.RegisterUser(context.Background(), "u1", "ada@example.com", decimal.NewFromInt(1000))

		require.NoError(t, err)
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("duplicate is rejected by storage", func(t *testing.T) {
		uc, m := setup(t)
		m.clock.EXPECT().Now().Return(fixedTime)
		m.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrConstraintViolation)

		_, err := uc.RegisterUser(context.Background(), "u1", "ada@example.com", decimal.Zero)

		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})

	t.Run("negative balance", func(t *testing.T) {
		uc, m := setup(t)
		m.clock.EXPECT().Now().Return(fixedTime).Maybe()

		_, err := uc.RegisterUser(context.Background(), "u1", "ada@example.com", decimal.NewFromInt(-5))

		assert.ErrorIs(t, err, errs.ErrNegativeBalance)
	})
}
