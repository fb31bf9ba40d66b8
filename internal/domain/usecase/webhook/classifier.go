package webhook

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

// Classifier turns a verified body into a credit event, or nothing for event types the ledger does not model
type Classifier struct{}

// NewClassifier creates a new event classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify parses body and returns the event type together with a credit event for
// transfer.success and charge.success. Other event types yield a nil credit event.
func (c *Classifier) Classify(body []byte) (string, *entity.CreditEvent, error) {
	var evt entity.WebhookEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		return "", nil, fmt.Errorf("%w: %s", errs.ErrInvalidPayload, err.Error())
	}

	var kind entity.CreditKind
	switch evt.Event {
	case entity.EventTransferSuccess:
		kind = entity.CreditByDedicatedAccount
	case entity.EventChargeSuccess:
		kind = entity.CreditByEmail
	default:
		return evt.Event, nil, nil
	}

	reference := strings.TrimSpace(evt.Data.Reference)
	if reference == "" {
		return evt.Event, nil, fmt.Errorf("%w: missing reference", errs.ErrInvalidPayload)
	}

	amount, err := entity.ParseMinorUnits(evt.Data.Amount.String())
	if err != nil {
		return evt.Event, nil, fmt.Errorf("%w: %s", errs.ErrInvalidPayload, err.Error())
	}
	if !amount.IsPositive() {
		return evt.Event, nil, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidPayload)
	}

	return evt.Event, &entity.CreditEvent{
		EventType:     evt.Event,
		Kind:          kind,
		Reference:     reference,
		Amount:        amount,
		RecipientCode: evt.Data.RecipientCode(),
		PayerEmail:    evt.Data.PayerEmail(),
		SenderName:    evt.Data.SenderName(),
		Payload:       json.RawMessage(body),
	}, nil
}

// creditTitle and creditDescription label the audit record
func creditTitle(event *entity.CreditEvent) string {
	if event.Kind == entity.CreditByEmail {
		return "Card payment"
	}
	return "Bank transfer"
}

func creditDescription(event *entity.CreditEvent) string {
	switch {
	case event.Kind == entity.CreditByEmail:
		return "Wallet funded by card payment from " + event.PayerEmail
	case event.SenderName != "":
		return "Wallet funded by bank transfer from " + event.SenderName
	default:
		return "Wallet funded by bank transfer"
	}
}
