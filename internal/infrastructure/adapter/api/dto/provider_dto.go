package dto

import "github.com/shopspring/decimal"

// VerifyAccountRequest is the body of POST /verify-account
type VerifyAccountRequest struct {
	AccountNumber string `json:"accountNumber" binding:"required"`
	BankCode      string `json:"bankCode" binding:"required"`
}

// CreateVirtualAccountRequest is the body of POST /create-virtual-account
type CreateVirtualAccountRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	UserID    string `json:"userId"`
}

// TransferRequest is the body of POST /transfer. Amount is in major units and may be a JSON
// number or string.
type TransferRequest struct {
	AccountNumber string          `json:"accountNumber" binding:"required"`
	BankCode      string          `json:"bankCode" binding:"required"`
	AccountName   string          `json:"accountName" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Reference     string          `json:"reference"`
	Reason        string          `json:"reason"`
}
