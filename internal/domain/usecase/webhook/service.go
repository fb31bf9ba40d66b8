package webhook

import (
	"context"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// Service is the webhook ingestion pipeline: verify, classify, resolve, credit
type Service struct {
	verifier   *SignatureVerifier
	classifier *Classifier
	resolver   usecase.AccountResolver
	ledger     usecase.LedgerUseCase
	logger     coreport.Logger
}

// NewWebhookService creates a new webhook service
func NewWebhookService(
	verifier *SignatureVerifier,
	resolver usecase.AccountResolver,
	ledger usecase.LedgerUseCase,
	logger coreport.Logger,
) *Service {
	return &Service{
		verifier:   verifier,
		classifier: NewClassifier(),
		resolver:   resolver,
		ledger:     ledger,
		logger:     logger,
	}
}

// HandleWebhook processes one delivery. Once the signature is accepted the remaining
// steps ignore caller cancellation so the delivery always reaches a terminal state.
func (s *Service) HandleWebhook(ctx context.Context, body []byte, signature string) (*usecase.WebhookResult, error) {
	if !s.verifier.Verify(body, signature) {
		s.logger.Warn("Rejected webhook with invalid signature", map[string]any{
			"body_size": len(body),
		})
		return nil, errs.ErrInvalidSignature
	}

	ctx = context.WithoutCancel(ctx)

	eventType, credit, err := s.classifier.Classify(body)
	if err != nil {
		s.logger.Warn("Rejected unusable webhook payload", map[string]any{
			"event": eventType,
			"error": err.Error(),
		})
		return nil, err
	}

	if credit == nil {
		s.logger.Info("Acknowledged unhandled webhook event", map[string]any{"event": eventType})
		return &usecase.WebhookResult{Event: eventType, Outcome: usecase.OutcomeIgnored}, nil
	}

	result := &usecase.WebhookResult{Event: eventType, Reference: credit.Reference}

	user, found, err := s.resolver.Resolve(ctx, credit)
	if err != nil {
		s.logger.Error("Account resolution failed", map[string]any{
			"event":     eventType,
			"reference": credit.Reference,
			"error":     err.Error(),
		})
		return nil, err
	}
	if !found {
		result.Outcome = usecase.OutcomeUnresolved
		s.logOutcome(result)
		return result, nil
	}
	result.UserID = user.ID

	credited, err := s.ledger.Credit(ctx, usecase.CreditRequest{
		UserID:      user.ID,
		Reference:   credit.Reference,
		Amount:      credit.Amount,
		Title:       creditTitle(credit),
		Description: creditDescription(credit),
		EventType:   eventType,
		Metadata:    credit.Payload,
	})
	if err != nil {
		return nil, err
	}

	switch credited.Status {
	case usecase.CreditApplied:
		result.Outcome = usecase.OutcomeCredited
	case usecase.CreditAlreadyProcessed:
		result.Outcome = usecase.OutcomeAlreadyProcessed
	default:
		return nil, errs.ErrInternalServer
	}

	s.logOutcome(result)
	return result, nil
}

func (s *Service) logOutcome(result *usecase.WebhookResult) {
	s.logger.Info("Webhook processed", map[string]any{
		"event":     result.Event,
		"reference": result.Reference,
		"user_id":   result.UserID,
		"outcome":   string(result.Outcome),
	})
}
