package wallet

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

// ListTransactions returns the newest transactions of an existing user
func (w *WalletUseCase) ListTransactions(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.ErrInvalidUserID
	}

	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	if _, err := w.uow.GetUserRepository(ctx).GetByID(ctx, userID); err != nil {
		return nil, err
	}

	return w.uow.GetTransactionRepository(ctx).ListByUser(ctx, userID, limit)
}
