package usecase

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CreditStatus is the result of an idempotent credit
type CreditStatus string

// Credit statuses
const (
	CreditApplied          CreditStatus = "credited"
	CreditAlreadyProcessed CreditStatus = "already_processed"
	CreditFailed           CreditStatus = "failed"
)

// CreditRequest asks the ledger to credit a wallet exactly once per (UserID, Reference)
type CreditRequest struct {
	UserID      string
	Reference   string
	Amount      decimal.Decimal
	Title       string
	Description string
	EventType   string
	Metadata    json.RawMessage
}

// CreditResult reports the outcome of a credit
type CreditResult struct {
	Status        CreditStatus
	TransactionID string
}

// LedgerUseCase applies idempotent balance credits
type LedgerUseCase interface {
	// Credit returns CreditFailed together with a non-nil error when storage failed
	Credit(ctx context.Context, req CreditRequest) (*CreditResult, error)
}
