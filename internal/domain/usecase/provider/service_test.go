package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	mockcache "github.com/amirhossein-jamali/wallet-ledger/mocks/port/cache"
	mockcore "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
	mockgateway "github.com/amirhossein-jamali/wallet-ledger/mocks/port/gateway"
	mockpersistence "github.com/amirhossein-jamali/wallet-ledger/mocks/port/persistence"
)

type providerMocks struct {
	gateway  *mockgateway.MockPaymentGateway
	names    *mockcache.MockAccountNameCache
	uow      *mockpersistence.MockUnitOfWork
	userRepo *mockpersistence.MockUserRepository
	clock    *mockcore.MockTimeProvider
}

func newService(t *testing.T) (*Service, *providerMocks) {
	m := &providerMocks{
		gateway:  mockgateway.NewMockPaymentGateway(t),
		names:    mockcache.NewMockAccountNameCache(t),
		uow:      mockpersistence.NewMockUnitOfWork(t),
		userRepo: mockpersistence.NewMockUserRepository(t),
		clock:    mockcore.NewMockTimeProvider(t),
	}
	m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.userRepo).Maybe()
	svc := NewProviderService(m.gateway, m.names, m.uow, m.clock, logger.NewNoopLogger(), Options{PreferredBank: "wema-bank"})
	return svc, m
}

func TestService_VerifyAccount(t *testing.T) {
	req := usecase.VerifyAccountRequest{AccountNumber: "0123456789", BankCode: "058"}

	resolved := &entity.AccountResolution{AccountNumber: "0123456789", AccountName: "ADA LOVELACE", BankID: 9}

	t.Run("resolves and caches the resolution", func(t *testing.T) {
		svc, m := newService(t)
		m.names.EXPECT().Get(mock.Anything, "0123456789", "058").Return(nil, false, nil)
		m.gateway.EXPECT().ResolveAccount(mock.Anything, "0123456789", "058").Return(resolved, nil)
		m.names.EXPECT().Set(mock.Anything, "0123456789", "058", resolved).Return(nil)

		res, err := svc.VerifyAccount(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, resolved, res)
	})

	t.Run("cache hit skips the provider and keeps the bank id", func(t *testing.T) {
		svc, m := newService(t)
		m.names.EXPECT().Get(mock.Anything, "0123456789", "058").
			Return(&entity.AccountResolution{AccountNumber: "0123456789", AccountName: "ADA LOVELACE", BankID: 9}, true, nil)

		res, err := svc.VerifyAccount(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, resolved, res)
	})

	t.Run("cache failures do not fail the request", func(t *testing.T) {
		svc, m := newService(t)
		m.names.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).Return(nil, false, errors.New("redis down"))
		m.gateway.EXPECT().ResolveAccount(mock.Anything, mock.Anything, mock.Anything).
			Return(&entity.AccountResolution{AccountName: "ADA LOVELACE"}, nil)
		m.names.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

		_, err := svc.VerifyAccount(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("provider rejection is propagated", func(t *testing.T) {
		svc, m := newService(t)
		m.names.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).Return(nil, false, nil)
		m.gateway.EXPECT().ResolveAccount(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errs.NewGatewayError("resolve_account", 422, "Could not resolve account name", []byte(`{"status":false}`)))

		_, err := svc.VerifyAccount(context.Background(), req)

		var ge *errs.GatewayError
		require.ErrorAs(t, err, &ge)
		assert.Equal(t, 422, ge.StatusCode)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _ := newService(t)
		_, err := svc.VerifyAccount(context.Background(), usecase.VerifyAccountRequest{AccountNumber: "0123456789"})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func virtualAccountRequest() usecase.CreateVirtualAccountRequest {
	return usecase.CreateVirtualAccountRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "Ada@Example.com",
		Phone:     "+2348012345678",
	}
}

func dedicatedAccount() *entity.DedicatedAccount {
	return &entity.DedicatedAccount{
		ID:            4242,
		AccountNumber: "9930000123",
		AccountName:   "KAROLO/ADA LOVELACE",
		BankName:      "Wema Bank",
		BankSlug:      "wema-bank",
		Active:        true,
	}
}

func TestService_CreateVirtualAccount(t *testing.T) {
	customer := &entity.Customer{ID: 77, Code: "CUS_abc", Email: "ada@example.com"}

	t.Run("full flow with phone update", func(t *testing.T) {
		svc, m := newService(t)
		m.gateway.EXPECT().CreateCustomer(mock.Anything, gateway.CustomerRequest{
			Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace", Phone: "+2348012345678",
		}).Return(customer, nil)
		m.gateway.EXPECT().UpdateCustomer(mock.Anything, "CUS_abc", mock.MatchedBy(func(u gateway.CustomerUpdate) bool {
			return u.Phone == "+2348012345678"
		})).Return(&entity.Customer{ID: 77, Code: "CUS_abc", Phone: "+2348012345678"}, nil)
		m.gateway.EXPECT().CreateDedicatedAccount(mock.Anything, gateway.DedicatedAccountRequest{
			CustomerCode: "CUS_abc", PreferredBank: "wema-bank",
		}).Return(dedicatedAccount(), nil)

		va, err := svc.CreateVirtualAccount(context.Background(), virtualAccountRequest())

		require.NoError(t, err)
		assert.Equal(t, &entity.VirtualAccount{
			AccountNumber:        "9930000123",
			BankName:             "Wema Bank",
			BankCode:             "wema-bank",
			AccountName:          "KAROLO/ADA LOVELACE",
			ProviderCustomerID:   77,
			ProviderCustomerCode: "CUS_abc",
			ProviderAccountID:    4242,
			DedicatedAccountID:   "9930000123",
		}, va)
	})

	t.Run("customer with phone skips update", func(t *testing.T) {
		svc, m := newService(t)
		m.gateway.EXPECT().CreateCustomer(mock.Anything, mock.Anything).
			Return(&entity.Customer{ID: 77, Code: "CUS_abc", Phone: "+2348000000000"}, nil)
		m.gateway.EXPECT().CreateDedicatedAccount(mock.Anything, mock.Anything).Return(dedicatedAccount(), nil)

		_, err := svc.CreateVirtualAccount(context.Background(), virtualAccountRequest())

		require.NoError(t, err)
	})

	t.Run("failed phone update is tolerated", func(t *testing.T) {
		svc, m := newService(t)
		m.gateway.EXPECT().CreateCustomer(mock.Anything, mock.Anything).Return(customer, nil)
		m.gateway.EXPECT().UpdateCustomer(mock.Anything, "CUS_abc", mock.Anything).
			Return(nil, errs.NewGatewayError("update_customer", 400, "Invalid phone number", nil))
		m.gateway.EXPECT().CreateDedicatedAccount(mock.Anything, mock.Anything).Return(dedicatedAccount(), nil)

		va, err := svc.CreateVirtualAccount(context.Background(), virtualAccountRequest())

		require.NoError(t, err)
		assert.Equal(t, "9930000123", va.AccountNumber)
	})

	t.Run("phone update transport failure is tolerated", func(t *testing.T) {
		svc, m := newService(t)
		m.gateway.EXPECT().CreateCustomer(mock.Anything, mock.Anything).Return(customer, nil)
		m.gateway.EXPECT().UpdateCustomer(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errs.NewTransportError("update_customer", context.DeadlineExceeded))
		m.gateway.EXPECT().CreateDedicatedAccount(mock.Anything, mock.Anything).Return(dedicatedAccount(), nil)

		_, err := svc.CreateVirtualAccount(context.Background(), virtualAccountRequest())

		require.NoError(t, err)
	})

	t.Run("unknown customer on update aborts", func(t *testing.T) {
		svc, m := newService(t)
		m.gateway.EXPECT().CreateCustomer(mock.Anything, mock.Anything).Return(customer, nil)
		m.gateway.EXPECT().UpdateCustomer(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errs.NewGatewayError("update_customer", 404, "Customer not found", nil))

		_, err := svc.CreateVirtualAccount(context.Background(), virtualAccountRequest())

		var pe *errs.ProvisioningError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, errs.StepUpdateCustomer, pe.Step)
	})

	t.Run("customer creation failure names the step", func(t *testing.T) {
		svc, m := newService(t)
		m.gateway.EXPECT().CreateCustomer(mock.Anything, mock.Anything).
			Return(nil, errs.NewGatewayError("create_customer", 400, "Invalid email", nil))

		_, err := svc.CreateVirtualAccount(context.Background(), virtualAccountRequest())

		var pe *errs.ProvisioningError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, errs.StepCreateCustomer, pe.Step)
	})

	t.Run("dedicated account failure names the step", func(t *testing.T) {
		svc, m := newService(t)
		m.gateway.EXPECT().CreateCustomer(mock.Anything, mock.Anything).
			Return(&entity.Customer{ID: 77, Code: "CUS_abc", Phone: "+2348000000000"}, nil)
		m.gateway.EXPECT().CreateDedicatedAccount(mock.Anything, mock.Anything).
			Return(nil, errs.NewGatewayError("create_dedicated_account", 400, "Dedicated NUBAN not available", nil))

		_, err := svc.CreateVirtualAccount(context.Background(), virtualAccountRequest())

		var pe *errs.ProvisioningError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, errs.StepCreateDedicatedAccount, pe.Step)
	})

	t.Run("binds the account to a user", func(t *testing.T) {
		svc, m := newService(t)
		req := virtualAccountRequest()
		req.UserID = "u1"

		m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&entity.User{ID: "u1"}, nil)
		m.gateway.EXPECT().CreateCustomer(mock.Anything, mock.Anything).
			Return(&entity.Customer{ID: 77, Code: "CUS_abc", Phone: "+2348000000000"}, nil)
		m.gateway.EXPECT().CreateDedicatedAccount(mock.Anything, mock.Anything).Return(dedicatedAccount(), nil)
		m.userRepo.EXPECT().BindDedicatedAccount(mock.Anything, "u1", "9930000123").Return(nil)

		_, err := svc.CreateVirtualAccount(context.Background(), req)

		require.NoError(t, err)
	})

	t.Run("user already bound is rejected before provisioning", func(t *testing.T) {
		svc, m := newService(t)
		req := virtualAccountRequest()
		req.UserID = "u1"
		existing := "9930000999"

		m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&entity.User{ID: "u1", DedicatedAccountID: &existing}, nil)

		_, err := svc.CreateVirtualAccount(context.Background(), req)

		assert.ErrorIs(t, err, errs.ErrAccountAlreadyBound)
	})

	t.Run("bind conflict is reported", func(t *testing.T) {
		svc, m := newService(t)
		req := virtualAccountRequest()
		req.UserID = "u1"

		m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&entity.User{ID: "u1"}, nil)
		m.gateway.EXPECT().CreateCustomer(mock.Anything, mock.Anything).
			Return(&entity.Customer{ID: 77, Code: "CUS_abc", Phone: "+2348000000000"}, nil)
		m.gateway.EXPECT().CreateDedicatedAccount(mock.Anything, mock.Anything).Return(dedicatedAccount(), nil)
		m.userRepo.EXPECT().BindDedicatedAccount(mock.Anything, "u1", "9930000123").Return(errs.ErrAccountAlreadyBound)

		_, err := svc.CreateVirtualAccount(context.Background(), req)

		var pe *errs.ProvisioningError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, errs.StepBindAccount, pe.Step)
		assert.ErrorIs(t, err, errs.ErrAccountAlreadyBound)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _ := newService(t)
		req := virtualAccountRequest()
		req.Phone = " "

		_, err := svc.CreateVirtualAccount(context.Background(), req)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestService_Transfer(t *testing.T) {
	req := usecase.TransferRequest{
		AccountNumber: "0123456789",
		BankCode:      "058",
		AccountName:   "ADA LOVELACE",
		Amount:        decimal.RequireFromString("1500.255"),
		Reference:     "payout-1",
	}
	recipient := &entity.TransferRecipient{ID: 1, RecipientCode: "RCP_xyz"}

	t.Run("creates recipient then initiates in minor units", func(t *testing.T) {
		svc, m := newService(t)
		m.gateway.EXPECT().CreateTransferRecipient(mock.Anything, gateway.RecipientRequest{
			Type: "nuban", Name: "ADA LOVELACE", AccountNumber: "0123456789", BankCode: "058", Currency: "NGN",
		}).Return(recipient, nil)
		m.gateway.EXPECT().InitiateTransfer(mock.Anything, gateway.TransferRequest{
			Source: "balance", Amount: 150026, RecipientCode: "RCP_xyz", Reference: "payout-1", Currency: "NGN",
		}).Return(&entity.Transfer{TransferCode: "TRF_1", Reference: "payout-1", Status: "pending"}, nil)

		transfer, err := svc.Transfer(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "TRF_1", transfer.TransferCode)
	})

	t.Run("defaults reference from the clock", func(t *testing.T) {
		svc, m := newService(t)
		now := time.UnixMilli(1717000000123)
		m.clock.EXPECT().Now().Return(now)
		m.gateway.EXPECT().CreateTransferRecipient(mock.Anything, mock.Anything).Return(recipient, nil)
		m.gateway.EXPECT().InitiateTransfer(mock.Anything, mock.MatchedBy(func(r gateway.TransferRequest) bool {
			return r.Reference == "TRF_1717000000123"
		})).Return(&entity.Transfer{Reference: "TRF_1717000000123"}, nil)

		noRef := req
		noRef.Reference = ""
		transfer, err := svc.Transfer(context.Background(), noRef)

		require.NoError(t, err)
		assert.Equal(t, "TRF_1717000000123", transfer.Reference)
	})

	t.Run("recipient failure stops before initiation", func(t *testing.T) {
		svc, m := newService(t)
		m.gateway.EXPECT().CreateTransferRecipient(mock.Anything, mock.Anything).
			Return(nil, errs.NewGatewayError("create_transfer_recipient", 400, "Account number is invalid", nil))

		_, err := svc.Transfer(context.Background(), req)

		assert.ErrorIs(t, err, errs.ErrGatewayRejected)
		assert.Contains(t, err.Error(), "create transfer recipient")
	})

	t.Run("initiation timeout is a transport error", func(t *testing.T) {
		svc, m := newService(t)
		m.gateway.EXPECT().CreateTransferRecipient(mock.Anything, mock.Anything).Return(recipient, nil)
		m.gateway.EXPECT().InitiateTransfer(mock.Anything, mock.Anything).
			Return(nil, errs.NewTransportError("initiate_transfer", context.DeadlineExceeded))

		_, err := svc.Transfer(context.Background(), req)

		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("validation", func(t *testing.T) {
		svc, _ := newService(t)

		missing := req
		missing.AccountName = ""
		_, err := svc.Transfer(context.Background(), missing)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		tiny := req
		tiny.Amount = decimal.RequireFromString("0.004")
		_, err = svc.Transfer(context.Background(), tiny)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("amount beyond int64 minor units never reaches the provider", func(t *testing.T) {
		svc, _ := newService(t)

		for _, raw := range []string{"92233720368547759.08", "184467440737095517.16"} {
			huge := req
			huge.Amount = decimal.RequireFromString(raw)
			_, err := svc.Transfer(context.Background(), huge)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount, raw)
		}
	})
}
