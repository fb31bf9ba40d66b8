package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

const defaultCreditTitle = "Wallet funding"

// Service applies idempotent wallet credits
type Service struct {
	uow                persistence.UnitOfWork
	validator          *CreditValidator
	idempotencyHandler *IdempotencyHandler
	timeProvider       coreport.TimeProvider
	logger             coreport.Logger
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:                uow,
		validator:          NewCreditValidator(),
		idempotencyHandler: NewIdempotencyHandler(uow),
		timeProvider:       timeProvider,
		logger:             logger,
	}
}

// Credit validates the request, short-circuits known references and otherwise inserts the
// audit row and increments the balance in one transaction. A concurrent duplicate loses on the
// unique (user_id, reference) key and is reported as already processed.
func (s *Service) Credit(ctx context.Context, req usecase.CreditRequest) (*usecase.CreditResult, error) {
	if err := s.validator.ValidateCredit(req); err != nil {
		return &usecase.CreditResult{Status: usecase.CreditFailed}, fmt.Errorf("invalid credit: %w", err)
	}

	processed, err := s.idempotencyHandler.AlreadyProcessed(ctx, req.UserID, req.Reference)
	if err != nil {
		return s.failed(req, err)
	}
	if processed {
		s.logger.Info("Credit already processed", map[string]any{
			"user_id":   req.UserID,
			"reference": req.Reference,
		})
		return &usecase.CreditResult{Status: usecase.CreditAlreadyProcessed}, nil
	}

	title := req.Title
	if title == "" {
		title = defaultCreditTitle
	}

	txn, err := entity.NewTransaction(
		req.UserID,
		entity.TypeCredit,
		req.Amount,
		req.Reference,
		title,
		req.Description,
		s.timeProvider,
		entity.WithMetadata(req.Metadata),
		entity.WithEventType(req.EventType),
	)
	if err != nil {
		return &usecase.CreditResult{Status: usecase.CreditFailed}, fmt.Errorf("invalid credit: %w", err)
	}

	err = s.uow.Execute(ctx, func(txCtx context.Context) error {
		inserted, err := s.uow.GetTransactionRepository(txCtx).CreateIfAbsent(txCtx, txn)
		if err != nil {
			return err
		}
		if !inserted {
			return errs.NewDuplicateTransactionError(req.UserID, req.Reference)
		}
		return s.uow.GetUserRepository(txCtx).IncrementBalance(txCtx, req.UserID, req.Amount)
	})

	switch {
	case err == nil:
		s.logger.Info("Wallet credited", map[string]any{
			"user_id":        req.UserID,
			"reference":      req.Reference,
			"amount":         entity.FormatAmount(req.Amount),
			"transaction_id": txn.ID.String(),
		})
		return &usecase.CreditResult{Status: usecase.CreditApplied, TransactionID: txn.ID.String()}, nil
	case errors.Is(err, errs.ErrDuplicateTransaction):
		s.logger.Info("Concurrent duplicate credit rejected by storage", map[string]any{
			"user_id":   req.UserID,
			"reference": req.Reference,
		})
		return &usecase.CreditResult{Status: usecase.CreditAlreadyProcessed}, nil
	default:
		return s.failed(req, err)
	}
}

func (s *Service) failed(req usecase.CreditRequest, err error) (*usecase.CreditResult, error) {
	creditErr := errs.NewCreditError(req.UserID, req.Reference, entity.FormatAmount(req.Amount), err)
	s.logger.Error("Credit failed", errs.LogFields(creditErr))
	return &usecase.CreditResult{Status: usecase.CreditFailed}, creditErr
}
