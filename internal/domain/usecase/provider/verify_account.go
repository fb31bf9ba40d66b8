package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// VerifyAccount resolves the holder of a bank account, consulting the cache first.
// A hit returns the same resolution the provider reported.
func (s *Service) VerifyAccount(ctx context.Context, req usecase.VerifyAccountRequest) (*entity.AccountResolution, error) {
	accountNumber := strings.TrimSpace(req.AccountNumber)
	bankCode := strings.TrimSpace(req.BankCode)
	if accountNumber == "" || bankCode == "" {
		return nil, fmt.Errorf("%w: accountNumber and bankCode are required", errs.ErrInvalidRequest)
	}

	cached, hit, err := s.names.Get(ctx, accountNumber, bankCode)
	if err != nil {
		s.logger.Warn("Account name cache read failed", map[string]any{"error": err.Error()})
	}
	if hit {
		return cached, nil
	}

	resolved, err := s.gateway.ResolveAccount(ctx, accountNumber, bankCode)
	if err != nil {
		s.logger.Warn("Account verification failed", mergeFields(errs.LogFields(err), map[string]any{
			"account_number": accountNumber,
			"bank_code":      bankCode,
		}))
		return nil, err
	}

	if err := s.names.Set(ctx, accountNumber, bankCode, resolved); err != nil {
		s.logger.Warn("Account name cache write failed", map[string]any{"error": err.Error()})
	}

	return resolved, nil
}

func mergeFields(base map[string]any, extra map[string]any) map[string]any {
	for k, v := range extra {
		base[k] = v
	}
	return base
}
