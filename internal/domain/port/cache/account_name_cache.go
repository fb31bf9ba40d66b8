package cache

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// AccountNameCache caches resolved bank account holders.
// Implementations report a miss as (nil, false, nil).
type AccountNameCache interface {
	Get(ctx context.Context, accountNumber, bankCode string) (*entity.AccountResolution, bool, error)
	Set(ctx context.Context, accountNumber, bankCode string, resolution *entity.AccountResolution) error
}
