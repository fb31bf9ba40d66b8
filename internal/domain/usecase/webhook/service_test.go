package webhook

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	mockusecase "github.com/amirhossein-jamali/wallet-ledger/mocks/port/usecase"
)

const scenarioBody = `{"event":"transfer.success","data":{"amount":500000,"reference":"TX1","recipient":{"recipient_code":"ACC123"}}}`

func newTestService(t *testing.T) (*Service, *SignatureVerifier, *mockusecase.MockAccountResolver, *mockusecase.MockLedgerUseCase) {
	verifier, err := NewSignatureVerifier(testSecret)
	require.NoError(t, err)
	resolver := mockusecase.NewMockAccountResolver(t)
	ledger := mockusecase.NewMockLedgerUseCase(t)
	return NewWebhookService(verifier, resolver, ledger, logger.NewNoopLogger()), verifier, resolver, ledger
}

func TestService_HandleWebhook(t *testing.T) {
	code := "ACC123"
	user := &entity.User{ID: "u1", WalletBalance: decimal.NewFromInt(1000), DedicatedAccountID: &code}

	t.Run("credits a resolved transfer", func(t *testing.T) {
		svc, verifier, resolver, ledger := newTestService(t)
		body := []byte(scenarioBody)

		resolver.EXPECT().Resolve(mock.Anything, mock.MatchedBy(func(e *entity.CreditEvent) bool {
			return e.RecipientCode == "ACC123" && e.Reference == "TX1"
		})).Return(user, true, nil)
		ledger.EXPECT().Credit(mock.Anything, mock.MatchedBy(func(req usecase.CreditRequest) bool {
			return req.UserID == "u1" &&
				req.Reference == "TX1" &&
				req.Amount.Equal(decimal.NewFromInt(5000)) &&
				req.EventType == entity.EventTransferSuccess &&
				req.Title == "Bank transfer"
		})).Return(&usecase.CreditResult{Status: usecase.CreditApplied}, nil)

		result, err := svc.HandleWebhook(context.Background(), body, verifier.Sign(body))

		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeCredited, result.Outcome)
		assert.Equal(t, "u1", result.UserID)
		assert.Equal(t, "TX1", result.Reference)
	})

	t.Run("replay is acknowledged as already processed", func(t *testing.T) {
		svc, verifier, resolver, ledger := newTestService(t)
		body := []byte(scenarioBody)

		resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(user, true, nil)
		ledger.EXPECT().Credit(mock.Anything, mock.Anything).
			Return(&usecase.CreditResult{Status: usecase.CreditAlreadyProcessed}, nil)

		result, err := svc.HandleWebhook(context.Background(), body, verifier.Sign(body))

		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeAlreadyProcessed, result.Outcome)
	})

	t.Run("bad signature stops before classification", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		result, err := svc.HandleWebhook(context.Background(), []byte(scenarioBody), "deadbeef")

		assert.ErrorIs(t, err, errs.ErrInvalidSignature)
		assert.Nil(t, result)
	})

	t.Run("unresolvable recipient is acknowledged without credit", func(t *testing.T) {
		svc, verifier, resolver, _ := newTestService(t)
		body := []byte(scenarioBody)

		resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(nil, false, nil)

		result, err := svc.HandleWebhook(context.Background(), body, verifier.Sign(body))

		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeUnresolved, result.Outcome)
		assert.Empty(t, result.UserID)
	})

	t.Run("unmodeled event is ignored", func(t *testing.T) {
		svc, verifier, _, _ := newTestService(t)
		body := []byte(`{"event":"customeridentification.success","data":{}}`)

		result, err := svc.HandleWebhook(context.Background(), body, verifier.Sign(body))

		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeIgnored, result.Outcome)
	})

	t.Run("invalid payload after authentication", func(t *testing.T) {
		svc, verifier, _, _ := newTestService(t)
		body := []byte(`{"event":`)

		_, err := svc.HandleWebhook(context.Background(), body, verifier.Sign(body))

		assert.ErrorIs(t, err, errs.ErrInvalidPayload)
	})

	t.Run("resolver storage failure surfaces", func(t *testing.T) {
		svc, verifier, resolver, _ := newTestService(t)
		body := []byte(scenarioBody)

		resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(nil, false, errs.ErrDatabaseConnection)

		_, err := svc.HandleWebhook(context.Background(), body, verifier.Sign(body))

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("ledger failure surfaces for provider retry", func(t *testing.T) {
		svc, verifier, resolver, ledger := newTestService(t)
		body := []byte(scenarioBody)

		resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(user, true, nil)
		ledger.EXPECT().Credit(mock.Anything, mock.Anything).
			Return(&usecase.CreditResult{Status: usecase.CreditFailed}, errs.NewCreditError("u1", "TX1", "5000.00", errs.ErrDatabaseConnection))

		_, err := svc.HandleWebhook(context.Background(), body, verifier.Sign(body))

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("processing survives caller cancellation", func(t *testing.T) {
		svc, verifier, resolver, ledger := newTestService(t)
		body := []byte(scenarioBody)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		resolver.EXPECT().Resolve(mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }), mock.Anything).
			Return(user, true, nil)
		ledger.EXPECT().Credit(mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }), mock.Anything).
			Return(&usecase.CreditResult{Status: usecase.CreditApplied}, nil)

		result, err := svc.HandleWebhook(ctx, body, verifier.Sign(body))

		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeCredited, result.Outcome)
	})
}
