package persistence

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// UserRepository defines the methods the ledger needs from user storage
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// FindByDedicatedAccountID retrieves the single user bound to a dedicated account
	//
	// Possible errors:
	// - ErrUserNotFound: If no user is bound to the account
	// - ErrAmbiguousUser: If more than one user matches
	// - ErrDatabaseConnection: If database connection fails
	FindByDedicatedAccountID(ctx context.Context, dedicatedAccountID string) (*entity.User, error)

	// FindByEmail retrieves the single user with the given email
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has the email
	// - ErrAmbiguousUser: If more than one user matches
	// - ErrDatabaseConnection: If database connection fails
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create creates a new user
	//
	// Possible errors:
	// - ErrConstraintViolation: If the ID or dedicated account is already taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// BindDedicatedAccount sets the dedicated account of a user that has none.
	// Re-binding the same account is a no-op.
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrAccountAlreadyBound: If the user has another account or the account belongs to another user
	// - ErrDatabaseConnection: If database connection fails
	BindDedicatedAccount(ctx context.Context, userID, dedicatedAccountID string) error

	// IncrementBalance adds amount to the wallet balance in a single statement
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	IncrementBalance(ctx context.Context, userID string, amount decimal.Decimal) error
}
