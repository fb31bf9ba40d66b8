package persistence

import (
	"context"
)

// UnitOfWork coordinates repository operations that must commit or roll back together
type UnitOfWork interface {
	// Execute runs fn inside a database transaction. The transaction commits when fn
	// returns nil and rolls back otherwise. Transient storage failures restart fn in
	// a fresh transaction.
	Execute(ctx context.Context, fn func(ctx context.Context) error) error

	// GetUserRepository returns a user repository bound to the transaction in ctx, if any
	GetUserRepository(ctx context.Context) UserRepository

	// GetTransactionRepository returns a transaction repository bound to the transaction in ctx, if any
	GetTransactionRepository(ctx context.Context) TransactionRepository
}
