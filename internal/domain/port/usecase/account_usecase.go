package usecase

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// AccountResolver maps a classified credit event to exactly one internal user
type AccountResolver interface {
	// Resolve returns (user, true, nil) on a unique match and (nil, false, nil) when the event
	// cannot be attributed to a single user. Errors are reserved for storage failures.
	Resolve(ctx context.Context, event *entity.CreditEvent) (*entity.User, bool, error)
}
