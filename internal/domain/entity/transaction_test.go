package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	amount := decimal.NewFromInt(5000)

	t.Run("Valid transaction creation", func(t *testing.T) {
		tx, err := NewTransaction("u1", TypeCredit, amount, "TX1", "Wallet funding", "Bank transfer", mockTime)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, tx.ID)
		assert.Equal(t, "u1", tx.UserID)
		assert.Equal(t, TypeCredit, tx.Type)
		assert.True(t, tx.Amount.Equal(amount))
		assert.Equal(t, "TX1", tx.Reference)
		assert.Equal(t, StatusSuccess, tx.Status)
		assert.Equal(t, fixedTime, tx.Timestamp)
		assert.True(t, tx.IsCredit())
	})

	t.Run("With options", func(t *testing.T) {
		meta := json.RawMessage(`{"event":"charge.success"}`)
		tx, err := NewTransaction("u1", TypeCredit, amount, "TX1", "t", "d", mockTime,
			WithStatus(StatusPending), WithMetadata(meta), WithEventType(EventChargeSuccess))

		require.NoError(t, err)
		assert.Equal(t, StatusPending, tx.Status)
		assert.JSONEq(t, string(meta), string(tx.Metadata))
		assert.Equal(t, EventChargeSuccess, tx.EventType)
	})

	testCases := []struct {
		name        string
		userID      string
		txType      TransactionType
		amount      decimal.Decimal
		reference   string
		opts        []TransactionOption
		expectedErr error
	}{
		{"Empty userID", "", TypeCredit, amount, "TX1", nil, errs.ErrInvalidUserID},
		{"Empty reference", "u1", TypeCredit, amount, " ", nil, errs.ErrInvalidReference},
		{"Invalid type", "u1", TransactionType("refund"), amount, "TX1", nil, errs.ErrInvalidTransactionType},
		{"Zero amount", "u1", TypeCredit, decimal.Zero, "TX1", nil, errs.ErrInvalidAmount},
		{"Negative amount", "u1", TypeDebit, decimal.NewFromInt(-5), "TX1", nil, errs.ErrInvalidAmount},
		{"Invalid status", "u1", TypeCredit, amount, "TX1", []TransactionOption{WithStatus("done")}, errs.ErrInvalidStatus},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx, err := NewTransaction(tc.userID, tc.txType, tc.amount, tc.reference, "t", "d", mockTime, tc.opts...)
			assert.ErrorIs(t, err, tc.expectedErr)
			assert.Nil(t, tx)
		})
	}
}
