package migration

import (
	"context"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// DefaultUser describes a development wallet owner
type DefaultUser struct {
	ID      string
	Email   string
	Balance decimal.Decimal
}

// DefaultUsers are seeded into development databases
var DefaultUsers = []DefaultUser{
	{ID: "user-1", Email: "ada@example.com", Balance: decimal.Zero},
	{ID: "user-2", Email: "grace@example.com", Balance: decimal.NewFromInt(1000)},
}

// CreateDefaultUsers registers users that don't exist yet
func CreateDefaultUsers(ctx context.Context, wallets usecase.WalletUseCase, users []DefaultUser) error {
	for _, u := range users {
		_, err := wallets.GetFormattedUserBalance(ctx, u.ID)
		if err == nil {
			continue
		}
		if !errs.IsUserNotFoundError(err) {
			return err
		}

		if _, err := wallets.RegisterUser(ctx, u.ID, u.Email, u.Balance); err != nil {
			return err
		}
	}
	return nil
}
