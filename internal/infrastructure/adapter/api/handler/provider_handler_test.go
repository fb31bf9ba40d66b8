package handler_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	mock_usecase "github.com/amirhossein-jamali/wallet-ledger/mocks/gomock/usecase"
)

func newProviderRouter(t *testing.T) (*gin.Engine, *mock_usecase.MockProviderUseCase) {
	ctrl := gomock.NewController(t)
	provider := mock_usecase.NewMockProviderUseCase(ctrl)
	h := handler.NewProviderHandler(provider, logger.NewNoopLogger())

	r := gin.New()
	r.POST("/verify-account", h.VerifyAccount)
	r.POST("/create-virtual-account", h.CreateVirtualAccount)
	r.POST("/transfer", h.Transfer)
	return r, provider
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProviderHandler_VerifyAccount(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, provider := newProviderRouter(t)
		provider.EXPECT().
			VerifyAccount(gomock.Any(), usecase.VerifyAccountRequest{AccountNumber: "0123456789", BankCode: "058"}).
			Return(&entity.AccountResolution{AccountNumber: "0123456789", AccountName: "ADA LOVELACE", BankID: 9}, nil)

		w := postJSON(r, "/verify-account", `{"accountNumber":"0123456789","bankCode":"058"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"data":{"account_number":"0123456789","account_name":"ADA LOVELACE","bank_id":9}}`, w.Body.String())
	})

	t.Run("missing fields", func(t *testing.T) {
		r, _ := newProviderRouter(t)

		w := postJSON(r, "/verify-account", `{"accountNumber":"0123456789"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("provider rejection is 400", func(t *testing.T) {
		r, provider := newProviderRouter(t)
		provider.EXPECT().VerifyAccount(gomock.Any(), gomock.Any()).
			Return(nil, domainerr.NewGatewayError("resolve_account", 422, "Could not resolve account name", nil))

		w := postJSON(r, "/verify-account", `{"accountNumber":"0123456789","bankCode":"058"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Could not resolve account name")
	})

	t.Run("provider body is attached to the error", func(t *testing.T) {
		r, provider := newProviderRouter(t)
		body := []byte(`{"status":false,"message":"Invalid bank code"}`)
		provider.EXPECT().VerifyAccount(gomock.Any(), gomock.Any()).
			Return(nil, domainerr.NewGatewayError("resolve_account", 400, "Invalid bank code", body))

		w := postJSON(r, "/verify-account", `{"accountNumber":"0123456789","bankCode":"999"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"code":4007,"message":"gateway resolve_account failed with status 400: Invalid bank code",
			"details":{"status":false,"message":"Invalid bank code"}}`, w.Body.String())
	})

	t.Run("unconfigured gateway is 500", func(t *testing.T) {
		r, provider := newProviderRouter(t)
		provider.EXPECT().VerifyAccount(gomock.Any(), gomock.Any()).Return(nil, domainerr.ErrGatewayNotConfigured)

		w := postJSON(r, "/verify-account", `{"accountNumber":"0123456789","bankCode":"058"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestProviderHandler_CreateVirtualAccount(t *testing.T) {
	body := `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","phone":"+2348012345678","userId":"u1"}`

	t.Run("success", func(t *testing.T) {
		r, provider := newProviderRouter(t)
		provider.EXPECT().CreateVirtualAccount(gomock.Any(), usecase.CreateVirtualAccountRequest{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "+2348012345678", UserID: "u1",
		}).Return(&entity.VirtualAccount{
			AccountNumber:        "9930000123",
			BankName:             "Wema Bank",
			BankCode:             "wema-bank",
			AccountName:          "KAROLO/ADA LOVELACE",
			ProviderCustomerID:   77,
			ProviderCustomerCode: "CUS_abc",
			ProviderAccountID:    4242,
			DedicatedAccountID:   "9930000123",
		}, nil)

		w := postJSON(r, "/create-virtual-account", body)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"data":{"accountNumber":"9930000123","bankName":"Wema Bank","bankCode":"wema-bank",
			"accountName":"KAROLO/ADA LOVELACE","providerCustomerId":77,"providerCustomerCode":"CUS_abc",
			"providerAccountId":4242,"dedicatedAccountId":"9930000123"}}`, w.Body.String())
	})

	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{"provider step failure", domainerr.NewProvisioningError(domainerr.StepCreateCustomer, domainerr.NewGatewayError("create_customer", 400, "Invalid email", nil)), http.StatusBadRequest},
		{"provider unreachable during provisioning", domainerr.NewProvisioningError(domainerr.StepCreateDedicatedAccount, domainerr.NewTransportError("create_dedicated_account", assert.AnError)), http.StatusBadRequest},
		{"not configured", domainerr.NewProvisioningError(domainerr.StepCreateCustomer, domainerr.ErrGatewayNotConfigured), http.StatusInternalServerError},
		{"already bound", domainerr.ErrAccountAlreadyBound, http.StatusConflict},
		{"unknown user", domainerr.ErrUserNotFound, http.StatusNotFound},
		{"storage failure", domainerr.ErrDatabaseConnection, http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, provider := newProviderRouter(t)
			provider.EXPECT().CreateVirtualAccount(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			w := postJSON(r, "/create-virtual-account", body)

			assert.Equal(t, tc.status, w.Code)
		})
	}

	t.Run("missing phone", func(t *testing.T) {
		r, _ := newProviderRouter(t)

		w := postJSON(r, "/create-virtual-account", `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProviderHandler_Transfer(t *testing.T) {
	t.Run("accepts numeric amounts", func(t *testing.T) {
		r, provider := newProviderRouter(t)
		provider.EXPECT().Transfer(gomock.Any(), gomock.AssignableToTypeOf(usecase.TransferRequest{})).
			DoAndReturn(func(_ any, req usecase.TransferRequest) (*entity.Transfer, error) {
				assert.True(t, req.Amount.Equal(decimal.RequireFromString("1500.25")))
				assert.Equal(t, "payout-1", req.Reference)
				return &entity.Transfer{TransferCode: "TRF_1", Reference: "payout-1", Status: "pending"}, nil
			})

		w := postJSON(r, "/transfer", `{"accountNumber":"0123456789","bankCode":"058","accountName":"ADA LOVELACE","amount":1500.25,"reference":"payout-1"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"transfer_code":"TRF_1"`)
	})

	t.Run("invalid amount is 400", func(t *testing.T) {
		r, provider := newProviderRouter(t)
		provider.EXPECT().Transfer(gomock.Any(), gomock.Any()).Return(nil, domainerr.ErrInvalidAmount)

		w := postJSON(r, "/transfer", `{"accountNumber":"0123456789","bankCode":"058","accountName":"ADA","amount":"0"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed amount is 400", func(t *testing.T) {
		r, _ := newProviderRouter(t)

		w := postJSON(r, "/transfer", `{"accountNumber":"0123456789","bankCode":"058","accountName":"ADA","amount":"ten"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("gateway failure is 500", func(t *testing.T) {
		r, provider := newProviderRouter(t)
		provider.EXPECT().Transfer(gomock.Any(), gomock.Any()).
			Return(nil, domainerr.NewGatewayError("create_transfer_recipient", 400, "Account number is invalid", nil))

		w := postJSON(r, "/transfer", `{"accountNumber":"0123456789","bankCode":"058","accountName":"ADA","amount":"10"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), `"code":4007`)
	})
}
