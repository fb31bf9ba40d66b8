package dto

import (
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// BalanceResponse represents the API response for a user's balance
type BalanceResponse struct {
	UserID             string `json:"userId"`
	Balance            string `json:"balance"`
	DedicatedAccountID string `json:"dedicatedAccountId,omitempty"`
}

// RegisterUserRequest is the body of POST /users
type RegisterUserRequest struct {
	ID             string `json:"id" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	InitialBalance string `json:"initialBalance"`
}

// UserResponse is a wallet owner as exposed by the API
type UserResponse struct {
	ID                 string  `json:"id"`
	Email              string  `json:"email,omitempty"`
	Balance            string  `json:"balance"`
	DedicatedAccountID *string `json:"dedicatedAccountId,omitempty"`
}

// NewUserResponse maps a user entity
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:                 user.ID,
		Email:              user.Email,
		Balance:            user.GetBalance(),
		DedicatedAccountID: user.DedicatedAccountID,
	}
}

// TransactionResponse is one audit record as exposed by the API
type TransactionResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Reference   string    `json:"reference"`
	Status      string    `json:"status"`
	EventType   string    `json:"eventType,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewTransactionResponses maps audit records, preserving order
func NewTransactionResponses(txs []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, TransactionResponse{
			ID:          tx.ID.String(),
			Type:        string(tx.Type),
			Amount:      entity.FormatAmount(tx.Amount),
			Title:       tx.Title,
			Description: tx.Description,
			Reference:   tx.Reference,
			Status:      string(tx.Status),
			EventType:   tx.EventType,
			Timestamp:   tx.Timestamp,
		})
	}
	return out
}
