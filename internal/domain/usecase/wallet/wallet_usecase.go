package wallet

import (
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// WalletUseCase implements usecase.WalletUseCase
type WalletUseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewWalletUseCase creates a new wallet use case instance
func NewWalletUseCase(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *WalletUseCase {
	return &WalletUseCase{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
