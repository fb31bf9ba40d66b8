package migration

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	mockusecase "github.com/amirhossein-jamali/wallet-ledger/mocks/port/usecase"
)

func TestCreateDefaultUsers(t *testing.T) {
	users := []DefaultUser{
		{ID: "existing", Email: "a@example.com", Balance: decimal.Zero},
		{ID: "missing", Email: "b@example.com", Balance: decimal.NewFromInt(10)},
	}

	t.Run("registers only missing users", func(t *testing.T) {
		wallets := mockusecase.NewMockWalletUseCase(t)
		wallets.EXPECT().GetFormattedUserBalance(mock.Anything, "existing").
			Return(&entity.BalanceResponse{UserID: "existing", Balance: "0.00"}, nil)
		wallets.EXPECT().GetFormattedUserBalance(mock.Anything, "missing").Return(nil, errs.ErrUserNotFound)
		wallets.EXPECT().RegisterUser(mock.Anything, "missing", "b@example.com", decimal.NewFromInt(10)).
			Return(&entity.User{ID: "missing"}, nil)

		assert.NoError(t, CreateDefaultUsers(context.Background(), wallets, users))
	})

	t.Run("stops on storage failure", func(t *testing.T) {
		wallets := mockusecase.NewMockWalletUseCase(t)
		wallets.EXPECT().GetFormattedUserBalance(mock.Anything, "existing").Return(nil, errs.ErrDatabaseConnection)

		err := CreateDefaultUsers(context.Background(), wallets, users)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
