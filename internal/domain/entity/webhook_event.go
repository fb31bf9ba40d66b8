package entity

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Provider event types
const (
	EventTransferSuccess = "transfer.success"
	EventChargeSuccess   = "charge.success"
)

// WebhookEvent is the envelope of a provider notification
type WebhookEvent struct {
	Event string           `json:"event"`
	Data  WebhookEventData `json:"data"`
}

// WebhookEventData holds the fields of a notification consumed by the ledger
type WebhookEventData struct {
	Amount    json.Number       `json:"amount"`
	Reference string            `json:"reference"`
	Recipient *WebhookRecipient `json:"recipient,omitempty"`
	Customer  *WebhookCustomer  `json:"customer,omitempty"`
	Source    *WebhookSource    `json:"source,omitempty"`
}

// WebhookRecipient is sent either as an object carrying recipient_code or as the bare code string
type WebhookRecipient struct {
	RecipientCode string `json:"recipient_code"`
}

// UnmarshalJSON accepts both {"recipient_code": "..."} and "..."
func (r *WebhookRecipient) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &r.RecipientCode)
	}
	type plain WebhookRecipient
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("recipient: %w", err)
	}
	*r = WebhookRecipient(p)
	return nil
}

// WebhookCustomer identifies the payer of a card charge
type WebhookCustomer struct {
	Email string `json:"email"`
}

// WebhookSource describes the origin of an inbound transfer
type WebhookSource struct {
	Details *WebhookSourceDetails `json:"details,omitempty"`
}

// WebhookSourceDetails carries the sender's account name when the provider knows it
type WebhookSourceDetails struct {
	AccountName string `json:"account_name"`
}

// CreditKind identifies how an event is matched to a user
type CreditKind string

// Credit kinds
const (
	CreditByDedicatedAccount CreditKind = "dedicated_account"
	CreditByEmail            CreditKind = "email"
)

// CreditEvent is a classified, amount-normalized notification ready to be applied to a wallet
type CreditEvent struct {
	EventType     string
	Kind          CreditKind
	Reference     string
	Amount        decimal.Decimal
	RecipientCode string
	PayerEmail    string
	SenderName    string
	Payload       json.RawMessage
}

// RecipientCode returns the recipient code or an empty string
func (d WebhookEventData) RecipientCode() string {
	if d.Recipient == nil {
		return ""
	}
	return d.Recipient.RecipientCode
}

// PayerEmail returns the customer email or an empty string
func (d WebhookEventData) PayerEmail() string {
	if d.Customer == nil {
		return ""
	}
	return d.Customer.Email
}

// SenderName returns the originating account name or an empty string
func (d WebhookEventData) SenderName() string {
	if d.Source == nil || d.Source.Details == nil {
		return ""
	}
	return d.Source.Details.AccountName
}
