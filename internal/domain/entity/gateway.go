package entity

import "github.com/shopspring/decimal"

// Customer is a provider-side customer record
type Customer struct {
	ID        int64
	Code      string
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

// HasPhone reports whether the provider has a phone number on file
func (c *Customer) HasPhone() bool {
	return c.Phone != ""
}

// DedicatedAccount is a provider-provisioned receiving account bound to one customer
type DedicatedAccount struct {
	ID            int64
	AccountNumber string
	AccountName   string
	BankName      string
	BankSlug      string
	BankID        int64
	Active        bool
}

// VirtualAccount is the result of provisioning a dedicated account for a customer
type VirtualAccount struct {
	AccountNumber        string `json:"accountNumber"`
	BankName             string `json:"bankName"`
	BankCode             string `json:"bankCode"`
	AccountName          string `json:"accountName"`
	ProviderCustomerID   int64  `json:"providerCustomerId"`
	ProviderCustomerCode string `json:"providerCustomerCode"`
	ProviderAccountID    int64  `json:"providerAccountId"`
	DedicatedAccountID   string `json:"dedicatedAccountId"`
}

// AccountResolution is the holder of a bank account as reported by the provider
type AccountResolution struct {
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	BankID        int64  `json:"bank_id"`
}

// TransferRecipient is a provider-side payout destination
type TransferRecipient struct {
	ID            int64
	RecipientCode string
	Name          string
	AccountNumber string
	BankCode      string
}

// Transfer is an initiated outbound payout
type Transfer struct {
	ID            int64           `json:"id"`
	TransferCode  string          `json:"transfer_code"`
	Reference     string          `json:"reference"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	RecipientCode string          `json:"recipient_code"`
}
