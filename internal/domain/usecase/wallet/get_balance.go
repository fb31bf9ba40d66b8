package wallet

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

// GetFormattedUserBalance retrieves user balance with properly formatted response
func (w *WalletUseCase) GetFormattedUserBalance(ctx context.Context, userID string) (*entity.BalanceResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.ErrInvalidUserID
	}

	user, err := w.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		if !errs.IsUserNotFoundError(err) {
			w.logger.Error("Failed to load user balance", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		return nil, err
	}

	response := entity.UserToBalanceResponse(user)
	return &response, nil
}
