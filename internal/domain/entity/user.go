package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// User represents a wallet owner
type User struct {
	ID                 string          // Unique identifier for the user
	Email              string          // Contact email, used to match card payments
	WalletBalance      decimal.Decimal // Balance in major currency units, never negative
	DedicatedAccountID *string         // Provider dedicated account bound to this user (nullable)
	CreatedAt          time.Time       // When the user was created
	UpdatedAt          time.Time       // When the user was last updated
}

// NewUser creates a new user with the given ID, email and initial balance
func NewUser(id, email string, initialBalance decimal.Decimal, timeProvider coreport.TimeProvider) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.ErrInvalidUserID
	}
	if initialBalance.IsNegative() {
		return nil, errs.ErrNegativeBalance
	}

	now := timeProvider.Now()
	return &User{
		ID:            id,
		Email:         strings.TrimSpace(email),
		WalletBalance: initialBalance,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// GetBalance returns the balance as a string with 2 decimal places
func (u *User) GetBalance() string {
	return FormatAmount(u.WalletBalance)
}

// HasDedicatedAccount reports whether a dedicated account is already bound
func (u *User) HasDedicatedAccount() bool {
	return u.DedicatedAccountID != nil && *u.DedicatedAccountID != ""
}

// Credit adds a positive amount to the wallet balance
func (u *User) Credit(amount decimal.Decimal, timeProvider coreport.TimeProvider) error {
	if !amount.IsPositive() {
		return errs.ErrInvalidAmount
	}
	u.WalletBalance = u.WalletBalance.Add(amount)
	u.UpdatedAt = timeProvider.Now()
	return nil
}
