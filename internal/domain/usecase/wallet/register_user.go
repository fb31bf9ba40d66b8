package wallet

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// RegisterUser creates a new wallet owner with an initial balance
func (w *WalletUseCase) RegisterUser(ctx context.Context, id, email string, initialBalance decimal.Decimal) (*entity.User, error) {
	user, err := entity.NewUser(id, email, initialBalance, w.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := w.uow.GetUserRepository(ctx).Create(ctx, user); err != nil {
		return nil, err
	}

	w.logger.Info("User registered", map[string]any{
		"user_id": user.ID,
		"balance": user.GetBalance(),
	})
	return user, nil
}
