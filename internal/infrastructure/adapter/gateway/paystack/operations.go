package paystack

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/gateway"
)

var _ gateway.PaymentGateway = (*Client)(nil)

type resolveData struct {
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	BankID        int64  `json:"bank_id"`
}

type customerData struct {
	ID           int64   `json:"id"`
	CustomerCode string  `json:"customer_code"`
	Email        string  `json:"email"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Phone        *string `json:"phone"`
}

func (d customerData) toEntity() *entity.Customer {
	return &entity.Customer{
		ID:        d.ID,
		Code:      d.CustomerCode,
		Email:     d.Email,
		FirstName: deref(d.FirstName),
		LastName:  deref(d.LastName),
		Phone:     deref(d.Phone),
	}
}

type dedicatedAccountData struct {
	ID            int64  `json:"id"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	Active        bool   `json:"active"`
	Bank          struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	} `json:"bank"`
}

type recipientData struct {
	ID            int64  `json:"id"`
	RecipientCode string `json:"recipient_code"`
	Name          string `json:"name"`
	Details       struct {
		AccountNumber string `json:"account_number"`
		BankCode      string `json:"bank_code"`
	} `json:"details"`
}

type transferData struct {
	ID           int64  `json:"id"`
	TransferCode string `json:"transfer_code"`
	Reference    string `json:"reference"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ResolveAccount returns the holder of a bank account
func (c *Client) ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*entity.AccountResolution, error) {
	if err := c.validate.Var(accountNumber, "required,numeric"); err != nil {
		return nil, fmt.Errorf("%w: account number: %s", errs.ErrInvalidRequest, err.Error())
	}
	if err := c.validate.Var(bankCode, "required"); err != nil {
		return nil, fmt.Errorf("%w: bank code: %s", errs.ErrInvalidRequest, err.Error())
	}

	query := url.Values{}
	query.Set("account_number", accountNumber)
	query.Set("bank_code", bankCode)

	var data resolveData
	if err := c.do(ctx, opResolveAccount, http.MethodGet, "/bank/resolve", query, nil, &data); err != nil {
		return nil, err
	}

	return &entity.AccountResolution{
		AccountNumber: data.AccountNumber,
		AccountName:   data.AccountName,
		BankID:        data.BankID,
	}, nil
}

// CreateCustomer creates a customer. The provider returns the existing record for a known email.
func (c *Client) CreateCustomer(ctx context.Context, req gateway.CustomerRequest) (*entity.Customer, error) {
	if err := c.validateRequest(req); err != nil {
		return nil, err
	}

	var data customerData
	if err := c.do(ctx, opCreateCustomer, http.MethodPost, "/customer", nil, req, &data); err != nil {
		return nil, err
	}
	return data.toEntity(), nil
}

// UpdateCustomer updates a customer identified by its code
func (c *Client) UpdateCustomer(ctx context.Context, customerCode string, req gateway.CustomerUpdate) (*entity.Customer, error) {
	if customerCode == "" {
		return nil, fmt.Errorf("%w: customer code is required", errs.ErrInvalidRequest)
	}
	if err := c.validateRequest(req); err != nil {
		return nil, err
	}

	var data customerData
	path := "/customer/" + url.PathEscape(customerCode)
	if err := c.do(ctx, opUpdateCustomer, http.MethodPut, path, nil, req, &data); err != nil {
		return nil, err
	}
	return data.toEntity(), nil
}

// CreateDedicatedAccount provisions a dedicated receiving account
func (c *Client) CreateDedicatedAccount(ctx context.Context, req gateway.DedicatedAccountRequest) (*entity.DedicatedAccount, error) {
	if err := c.validateRequest(req); err != nil {
		return nil, err
	}

	var data dedicatedAccountData
	if err := c.do(ctx, opCreateDedicatedAccount, http.MethodPost, "/dedicated_account", nil, req, &data); err != nil {
		return nil, err
	}

	return &entity.DedicatedAccount{
		ID:            data.ID,
		AccountNumber: data.AccountNumber,
		AccountName:   data.AccountName,
		BankName:      data.Bank.Name,
		BankSlug:      data.Bank.Slug,
		BankID:        data.Bank.ID,
		Active:        data.Active,
	}, nil
}

// CreateTransferRecipient registers a payout destination
func (c *Client) CreateTransferRecipient(ctx context.Context, req gateway.RecipientRequest) (*entity.TransferRecipient, error) {
	if err := c.validateRequest(req); err != nil {
		return nil, err
	}

	var data recipientData
	if err := c.do(ctx, opCreateRecipient, http.MethodPost, "/transferrecipient", nil, req, &data); err != nil {
		return nil, err
	}

	return &entity.TransferRecipient{
		ID:            data.ID,
		RecipientCode: data.RecipientCode,
		Name:          data.Name,
		AccountNumber: data.Details.AccountNumber,
		BankCode:      data.Details.BankCode,
	}, nil
}

// InitiateTransfer sends money to a registered recipient. The request amount is in minor units.
func (c *Client) InitiateTransfer(ctx context.Context, req gateway.TransferRequest) (*entity.Transfer, error) {
	if err := c.validateRequest(req); err != nil {
		return nil, err
	}

	var data transferData
	if err := c.do(ctx, opInitiateTransfer, http.MethodPost, "/transfer", nil, req, &data); err != nil {
		return nil, err
	}

	reference := data.Reference
	if reference == "" {
		reference = req.Reference
	}

	return &entity.Transfer{
		ID:            data.ID,
		TransferCode:  data.TransferCode,
		Reference:     reference,
		Status:        data.Status,
		Amount:        entity.MinorUnitsToAmount(data.Amount),
		Currency:      data.Currency,
		RecipientCode: req.RecipientCode,
	}, nil
}
