package gateway

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// CustomerRequest creates or fetches a provider customer. The provider treats email as the customer key.
type CustomerRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone,omitempty"`
}

// CustomerUpdate changes mutable fields of a provider customer
type CustomerUpdate struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone" validate:"required"`
}

// DedicatedAccountRequest provisions a receiving account for a customer
type DedicatedAccountRequest struct {
	CustomerCode  string `json:"customer" validate:"required"`
	PreferredBank string `json:"preferred_bank,omitempty"`
}

// RecipientRequest registers a payout destination
type RecipientRequest struct {
	Type          string `json:"type" validate:"required"`
	Name          string `json:"name" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required,numeric"`
	BankCode      string `json:"bank_code" validate:"required"`
	Currency      string `json:"currency" validate:"required,len=3"`
}

// TransferRequest initiates a payout. Amount is in minor units.
type TransferRequest struct {
	Source        string `json:"source" validate:"required"`
	Amount        int64  `json:"amount" validate:"gt=0"`
	RecipientCode string `json:"recipient" validate:"required"`
	Reference     string `json:"reference" validate:"required"`
	Reason        string `json:"reason,omitempty"`
	Currency      string `json:"currency" validate:"required,len=3"`
}

// PaymentGateway is the payment provider's API
type PaymentGateway interface {
	// ResolveAccount returns the holder of a bank account
	ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*entity.AccountResolution, error)

	// CreateCustomer creates a customer, or returns the existing one for the same email
	CreateCustomer(ctx context.Context, req CustomerRequest) (*entity.Customer, error)

	// UpdateCustomer updates a customer identified by its code
	UpdateCustomer(ctx context.Context, customerCode string, req CustomerUpdate) (*entity.Customer, error)

	// CreateDedicatedAccount provisions a dedicated receiving account
	CreateDedicatedAccount(ctx context.Context, req DedicatedAccountRequest) (*entity.DedicatedAccount, error)

	// CreateTransferRecipient registers a payout destination
	CreateTransferRecipient(ctx context.Context, req RecipientRequest) (*entity.TransferRecipient, error)

	// InitiateTransfer sends money to a previously registered recipient
	InitiateTransfer(ctx context.Context, req TransferRequest) (*entity.Transfer, error)
}
