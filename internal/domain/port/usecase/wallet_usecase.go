package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// WalletUseCase exposes wallet state to operators
type WalletUseCase interface {
	// GetFormattedUserBalance retrieves a user's balance with two decimal places
	GetFormattedUserBalance(ctx context.Context, userID string) (*entity.BalanceResponse, error)

	// ListTransactions returns the newest transactions of a user
	ListTransactions(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error)

	// RegisterUser creates a wallet owner
	RegisterUser(ctx context.Context, id, email string, initialBalance decimal.Decimal) (*entity.User, error)
}
