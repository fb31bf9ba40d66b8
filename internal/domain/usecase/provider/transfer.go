package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

const (
	recipientTypeNuban = "nuban"
	transferSource     = "balance"
)

// Transfer registers the destination as a transfer recipient and initiates a payout to it.
// The amount is sent in minor units. Without a caller reference a timestamp-based one is used,
// which makes retries of that request non-idempotent.
func (s *Service) Transfer(ctx context.Context, req usecase.TransferRequest) (*entity.Transfer, error) {
	accountNumber := strings.TrimSpace(req.AccountNumber)
	bankCode := strings.TrimSpace(req.BankCode)
	accountName := strings.TrimSpace(req.AccountName)
	if accountNumber == "" || bankCode == "" || accountName == "" {
		return nil, fmt.Errorf("%w: accountNumber, bankCode and accountName are required", errs.ErrInvalidRequest)
	}

	if err := entity.CheckAmountRange(req.Amount); err != nil {
		return nil, err
	}
	minor := entity.AmountToMinorUnits(req.Amount)
	if minor <= 0 {
		return nil, fmt.Errorf("%w: amount must be at least one minor unit", errs.ErrInvalidAmount)
	}

	reference := strings.TrimSpace(req.Reference)
	if reference == "" {
		reference = s.defaultReference()
		s.logger.Warn("Transfer requested without reference, generated one", map[string]any{
			"reference":      reference,
			"account_number": accountNumber,
		})
	}

	recipient, err := s.gateway.CreateTransferRecipient(ctx, gateway.RecipientRequest{
		Type:          recipientTypeNuban,
		Name:          accountName,
		AccountNumber: accountNumber,
		BankCode:      bankCode,
		Currency:      s.opts.Currency,
	})
	if err != nil {
		s.logger.Error("Transfer recipient creation failed", mergeFields(errs.LogFields(err), map[string]any{
			"reference": reference,
		}))
		return nil, fmt.Errorf("create transfer recipient: %w", err)
	}

	transfer, err := s.gateway.InitiateTransfer(ctx, gateway.TransferRequest{
		Source:        transferSource,
		Amount:        minor,
		RecipientCode: recipient.RecipientCode,
		Reference:     reference,
		Reason:        req.Reason,
		Currency:      s.opts.Currency,
	})
	if err != nil {
		s.logger.Error("Transfer initiation failed", mergeFields(errs.LogFields(err), map[string]any{
			"reference":      reference,
			"recipient_code": recipient.RecipientCode,
		}))
		return nil, fmt.Errorf("initiate transfer: %w", err)
	}

	s.logger.Info("Transfer initiated", map[string]any{
		"reference":      transfer.Reference,
		"transfer_code":  transfer.TransferCode,
		"status":         transfer.Status,
		"recipient_code": recipient.RecipientCode,
		"amount":         entity.FormatAmount(req.Amount),
	})

	return transfer, nil
}

func (s *Service) defaultReference() string {
	return fmt.Sprintf("TRF_%d", s.timeProvider.Now().UnixMilli())
}
