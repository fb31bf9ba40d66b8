package persistence

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// TransactionRepository defines the methods to interact with the transaction audit log
type TransactionRepository interface {
	// CreateIfAbsent inserts the transaction unless one with the same (UserID, Reference) exists.
	// Returns false without error when the row already existed.
	//
	// Possible errors:
	// - ErrUserNotFound: If referenced user does not exist
	// - ErrDatabaseConnection: If database connection fails
	CreateIfAbsent(ctx context.Context, transaction *entity.Transaction) (bool, error)

	// GetByReference retrieves a user's transaction by its reference
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no such transaction exists
	// - ErrDatabaseConnection: If database connection fails
	GetByReference(ctx context.Context, userID, reference string) (*entity.Transaction, error)

	// Exists checks if a transaction with the given reference exists for the user
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Exists(ctx context.Context, userID, reference string) (bool, error)

	// ListByUser returns up to limit transactions of a user, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error)
}
