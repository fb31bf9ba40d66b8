package ledger

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
)

// IdempotencyHandler answers whether a reference was already applied to a user.
// It is a fast path only: the unique (user_id, reference) key decides.
type IdempotencyHandler struct {
	uow persistence.UnitOfWork
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(uow persistence.UnitOfWork) *IdempotencyHandler {
	return &IdempotencyHandler{uow: uow}
}

// AlreadyProcessed checks if a transaction with the given reference exists for the user
func (h *IdempotencyHandler) AlreadyProcessed(ctx context.Context, userID, reference string) (bool, error) {
	exists, err := h.uow.GetTransactionRepository(ctx).Exists(ctx, userID, reference)
	if err != nil {
		return false, fmt.Errorf("failed to check if transaction exists: %w", err)
	}
	return exists, nil
}
