package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// VerifyAccountRequest identifies a bank account to resolve
type VerifyAccountRequest struct {
	AccountNumber string
	BankCode      string
}

// CreateVirtualAccountRequest provisions a dedicated account.
// When UserID is set the resulting account is bound to that user.
type CreateVirtualAccountRequest struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	UserID    string
}

// TransferRequest sends money to a bank account
type TransferRequest struct {
	AccountNumber string
	BankCode      string
	AccountName   string
	Amount        decimal.Decimal
	Reference     string
	Reason        string
}

// ProviderUseCase fronts the payment gateway for administrative callers
type ProviderUseCase interface {
	VerifyAccount(ctx context.Context, req VerifyAccountRequest) (*entity.AccountResolution, error)
	CreateVirtualAccount(ctx context.Context, req CreateVirtualAccountRequest) (*entity.VirtualAccount, error)
	Transfer(ctx context.Context, req TransferRequest) (*entity.Transfer, error)
}
