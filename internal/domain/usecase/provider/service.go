package provider

import (
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
)

// Options holds provider defaults
type Options struct {
	PreferredBank string
	Currency      string
}

// Service orchestrates the payment gateway for administrative endpoints
type Service struct {
	gateway      gateway.PaymentGateway
	names        cache.AccountNameCache
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	opts         Options
}

// NewProviderService creates a new provider service
func NewProviderService(
	gw gateway.PaymentGateway,
	names cache.AccountNameCache,
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts Options,
) *Service {
	if opts.Currency == "" {
		opts.Currency = "NGN"
	}
	return &Service{
		gateway:      gw,
		names:        names,
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		opts:         opts,
	}
}
