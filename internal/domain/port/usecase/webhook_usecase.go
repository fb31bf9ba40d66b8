package usecase

import (
	"context"
)

// WebhookOutcome is the terminal state of an accepted webhook
type WebhookOutcome string

// Webhook outcomes
const (
	OutcomeCredited         WebhookOutcome = "credited"
	OutcomeAlreadyProcessed WebhookOutcome = "already_processed"
	OutcomeUnresolved       WebhookOutcome = "unresolved"
	OutcomeIgnored          WebhookOutcome = "ignored"
)

// WebhookResult describes what happened to an accepted webhook
type WebhookResult struct {
	Event     string         `json:"event"`
	Reference string         `json:"reference,omitempty"`
	UserID    string         `json:"userId,omitempty"`
	Outcome   WebhookOutcome `json:"outcome"`
}

// WebhookUseCase authenticates and applies provider notifications
type WebhookUseCase interface {
	// HandleWebhook verifies signature over the raw body and applies the event.
	// Returns ErrInvalidSignature on authentication failure, ErrInvalidPayload when an
	// authenticated body cannot be parsed, and a storage error when a credit could not be applied.
	HandleWebhook(ctx context.Context, body []byte, signature string) (*WebhookResult, error)
}
