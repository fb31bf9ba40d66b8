package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	tport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// TransactionType is the direction of a balance movement
type TransactionType string

// Transaction types
const (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// TransactionStatus constants
const (
	StatusSuccess TransactionStatus = "success"
	StatusPending TransactionStatus = "pending"
	StatusFailed  TransactionStatus = "failed"
)

// Transaction is the append-only audit record of a balance movement.
// (UserID, Reference) is unique.
type Transaction struct {
	ID          uuid.UUID
	UserID      string
	Type        TransactionType
	Amount      decimal.Decimal
	Title       string
	Description string
	Reference   string
	Status      TransactionStatus
	EventType   string
	Timestamp   time.Time
	Metadata    json.RawMessage
}

// TransactionOption customizes a new transaction
type TransactionOption func(*Transaction)

// WithStatus overrides the default success status
func WithStatus(status TransactionStatus) TransactionOption {
	return func(t *Transaction) {
		t.Status = status
	}
}

// WithMetadata attaches an opaque payload snapshot
func WithMetadata(metadata json.RawMessage) TransactionOption {
	return func(t *Transaction) {
		t.Metadata = metadata
	}
}

// WithEventType records the provider event that produced the transaction
func WithEventType(eventType string) TransactionOption {
	return func(t *Transaction) {
		t.EventType = eventType
	}
}

// NewTransaction creates a new transaction with basic validation
func NewTransaction(
	userID string,
	txType TransactionType,
	amount decimal.Decimal,
	reference string,
	title string,
	description string,
	timeProvider tport.TimeProvider,
	opts ...TransactionOption,
) (*Transaction, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.ErrInvalidUserID
	}
	if strings.TrimSpace(reference) == "" {
		return nil, errs.ErrInvalidReference
	}
	if !isValidType(txType) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, txType)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}

	tx := &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        txType,
		Amount:      amount,
		Title:       title,
		Description: description,
		Reference:   reference,
		Status:      StatusSuccess,
		Timestamp:   timeProvider.Now(),
	}
	for _, opt := range opts {
		opt(tx)
	}

	if !isValidStatus(tx.Status) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidStatus, tx.Status)
	}

	return tx, nil
}

// IsCredit returns true if this transaction increases the user's balance
func (t *Transaction) IsCredit() bool {
	return t.Type == TypeCredit
}

func isValidType(txType TransactionType) bool {
	return txType == TypeCredit || txType == TypeDebit
}

func isValidStatus(status TransactionStatus) bool {
	return status == StatusSuccess || status == StatusPending || status == StatusFailed
}
