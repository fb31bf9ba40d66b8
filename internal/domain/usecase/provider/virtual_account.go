package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// CreateVirtualAccount provisions a dedicated receiving account in three provider steps:
// create-or-fetch the customer, set a phone number if the provider has none, then create the account.
// A failed phone update is tolerated unless the provider no longer knows the customer.
func (s *Service) CreateVirtualAccount(ctx context.Context, req usecase.CreateVirtualAccountRequest) (*entity.VirtualAccount, error) {
	req = normalizeVirtualAccountRequest(req)
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Phone == "" {
		return nil, fmt.Errorf("%w: firstName, lastName, email and phone are required", errs.ErrInvalidRequest)
	}

	if req.UserID != "" {
		if err := s.ensureBindable(ctx, req.UserID); err != nil {
			return nil, err
		}
	}

	customer, err := s.gateway.CreateCustomer(ctx, gateway.CustomerRequest{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		return nil, s.provisioningFailed(errs.StepCreateCustomer, err, req)
	}

	if !customer.HasPhone() {
		_, err := s.gateway.UpdateCustomer(ctx, customer.Code, gateway.CustomerUpdate{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
		})
		switch {
		case err == nil:
		case customerUnusable(err):
			return nil, s.provisioningFailed(errs.StepUpdateCustomer, err, req)
		default:
			s.logger.Warn("Customer phone update failed, continuing with provisioning",
				mergeFields(errs.LogFields(err), map[string]any{"customer_code": customer.Code}))
		}
	}

	account, err := s.gateway.CreateDedicatedAccount(ctx, gateway.DedicatedAccountRequest{
		CustomerCode:  customer.Code,
		PreferredBank: s.opts.PreferredBank,
	})
	if err != nil {
		return nil, s.provisioningFailed(errs.StepCreateDedicatedAccount, err, req)
	}

	va := &entity.VirtualAccount{
		AccountNumber:        account.AccountNumber,
		BankName:             account.BankName,
		BankCode:             account.BankSlug,
		AccountName:          account.AccountName,
		ProviderCustomerID:   customer.ID,
		ProviderCustomerCode: customer.Code,
		ProviderAccountID:    account.ID,
		DedicatedAccountID:   account.AccountNumber,
	}

	if req.UserID != "" {
		if err := s.uow.GetUserRepository(ctx).BindDedicatedAccount(ctx, req.UserID, va.DedicatedAccountID); err != nil {
			s.logger.Error("Provisioned dedicated account could not be bound", map[string]any{
				"user_id":              req.UserID,
				"dedicated_account_id": va.DedicatedAccountID,
				"customer_code":        customer.Code,
				"error":                err.Error(),
			})
			return nil, errs.NewProvisioningError(errs.StepBindAccount, err)
		}
	}

	s.logger.Info("Dedicated account provisioned", map[string]any{
		"customer_code":        customer.Code,
		"dedicated_account_id": va.DedicatedAccountID,
		"bank":                 va.BankName,
		"user_id":              req.UserID,
	})

	return va, nil
}

func (s *Service) ensureBindable(ctx context.Context, userID string) error {
	user, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.HasDedicatedAccount() {
		return fmt.Errorf("%w: user %s", errs.ErrAccountAlreadyBound, userID)
	}
	return nil
}

func (s *Service) provisioningFailed(step string, err error, req usecase.CreateVirtualAccountRequest) error {
	perr := errs.NewProvisioningError(step, err)
	s.logger.Error("Virtual account provisioning failed", mergeFields(errs.LogFields(perr), map[string]any{
		"email": req.Email,
	}))
	return perr
}

// customerUnusable reports whether an update failure means the customer cannot be provisioned
func customerUnusable(err error) bool {
	var ge *errs.GatewayError
	return errors.As(err, &ge) && ge.StatusCode == http.StatusNotFound
}

func normalizeVirtualAccountRequest(req usecase.CreateVirtualAccountRequest) usecase.CreateVirtualAccountRequest {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	req.UserID = strings.TrimSpace(req.UserID)
	return req
}
