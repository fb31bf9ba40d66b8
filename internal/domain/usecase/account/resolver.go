package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
)

// Resolver finds the wallet owner of an inbound payment
type Resolver struct {
	uow    persistence.UnitOfWork
	logger coreport.Logger
}

// NewResolver creates a new account resolver
func NewResolver(uow persistence.UnitOfWork, logger coreport.Logger) *Resolver {
	return &Resolver{uow: uow, logger: logger}
}

// Resolve matches transfers by dedicated account and charges by payer email.
// No match and more than one match both leave the event unresolved.
func (r *Resolver) Resolve(ctx context.Context, event *entity.CreditEvent) (*entity.User, bool, error) {
	users := r.uow.GetUserRepository(ctx)

	var (
		user *entity.User
		err  error
		key  string
	)

	switch event.Kind {
	case entity.CreditByDedicatedAccount:
		key = strings.TrimSpace(event.RecipientCode)
		if key == "" {
			r.unresolved(event, "missing recipient code")
			return nil, false, nil
		}
		user, err = users.FindByDedicatedAccountID(ctx, key)
	case entity.CreditByEmail:
		key = strings.ToLower(strings.TrimSpace(event.PayerEmail))
		if key == "" {
			r.unresolved(event, "missing payer email")
			return nil, false, nil
		}
		user, err = users.FindByEmail(ctx, key)
	default:
		r.unresolved(event, "unsupported credit kind")
		return nil, false, nil
	}

	switch {
	case err == nil:
		return user, true, nil
	case errors.Is(err, errs.ErrUserNotFound):
		r.unresolved(event, "no matching user")
		return nil, false, nil
	case errors.Is(err, errs.ErrAmbiguousUser):
		r.logger.Error("Ambiguous account match, refusing to credit", map[string]any{
			"event":     event.EventType,
			"reference": event.Reference,
			"kind":      string(event.Kind),
			"key":       key,
		})
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("failed to resolve account: %w", err)
	}
}

func (r *Resolver) unresolved(event *entity.CreditEvent, reason string) {
	r.logger.Warn("Webhook could not be matched to a user", map[string]any{
		"event":          event.EventType,
		"reference":      event.Reference,
		"kind":           string(event.Kind),
		"recipient_code": event.RecipientCode,
		"payer_email":    event.PayerEmail,
		"reason":         reason,
	})
}
