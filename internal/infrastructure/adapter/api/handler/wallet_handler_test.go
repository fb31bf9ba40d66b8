package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	mock_usecase "github.com/amirhossein-jamali/wallet-ledger/mocks/gomock/usecase"
)

func newWalletRouter(t *testing.T) (*gin.Engine, *mock_usecase.MockWalletUseCase) {
	ctrl := gomock.NewController(t)
	wallets := mock_usecase.NewMockWalletUseCase(ctrl)
	h := handler.NewWalletHandler(wallets, logger.NewNoopLogger())

	r := gin.New()
	r.POST("/users", h.RegisterUser)
	r.GET("/users/:userId/balance", h.GetBalance)
	r.GET("/users/:userId/transactions", h.ListTransactions)
	return r, wallets
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWalletHandler_GetBalance(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, wallets := newWalletRouter(t)
		wallets.EXPECT().GetFormattedUserBalance(gomock.Any(), "u1").
			Return(&entity.BalanceResponse{UserID: "u1", Balance: "6000.00"}, nil)

		w := get(r, "/users/u1/balance")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"data":{"userId":"u1","balance":"6000.00"}}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		r, wallets := newWalletRouter(t)
		wallets.EXPECT().GetFormattedUserBalance(gomock.Any(), "ghost").Return(nil, domainerr.ErrUserNotFound)

		w := get(r, "/users/ghost/balance")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `"code":4040`)
	})

	t.Run("storage failure", func(t *testing.T) {
		r, wallets := newWalletRouter(t)
		wallets.EXPECT().GetFormattedUserBalance(gomock.Any(), "u1").Return(nil, domainerr.ErrDatabaseConnection)

		w := get(r, "/users/u1/balance")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestWalletHandler_ListTransactions(t *testing.T) {
	t.Run("passes the limit and keeps order", func(t *testing.T) {
		r, wallets := newWalletRouter(t)
		ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		wallets.EXPECT().ListTransactions(gomock.Any(), "u1", 5).Return([]*entity.Transaction{
			{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Type: entity.TypeCredit, Amount: decimal.NewFromInt(5000), Reference: "TX2", Status: entity.StatusSuccess, Timestamp: ts},
			{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Type: entity.TypeCredit, Amount: decimal.NewFromInt(100), Reference: "TX1", Status: entity.StatusSuccess, Timestamp: ts.Add(-time.Hour)},
		}, nil)

		w := get(r, "/users/u1/transactions?limit=5")

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `"amount":"5000.00"`)
		assert.Less(t, strings.Index(body, "TX2"), strings.Index(body, "TX1"))
	})

	t.Run("default limit", func(t *testing.T) {
		r, wallets := newWalletRouter(t)
		wallets.EXPECT().ListTransactions(gomock.Any(), "u1", 0).Return([]*entity.Transaction{}, nil)

		w := get(r, "/users/u1/transactions")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())
	})

	t.Run("bad limit", func(t *testing.T) {
		r, _ := newWalletRouter(t)

		w := get(r, "/users/u1/transactions?limit=abc")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWalletHandler_RegisterUser(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, wallets := newWalletRouter(t)
		wallets.EXPECT().RegisterUser(gomock.Any(), "u1", "ada@example.com", gomock.Any()).
			DoAndReturn(func(_ context.Context, id, email string, initial decimal.Decimal) (*entity.User, error) {
				assert.True(t, initial.Equal(decimal.NewFromInt(1000)))
				return &entity.User{ID: id, Email: email, WalletBalance: initial}, nil
			})

		w := postJSON(r, "/users", `{"id":"u1","email":"ada@example.com","initialBalance":"1000"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"success":true,"data":{"id":"u1","email":"ada@example.com","balance":"1000.00"}}`, w.Body.String())
	})

	t.Run("duplicate", func(t *testing.T) {
		r, wallets := newWalletRouter(t)
		wallets.EXPECT().RegisterUser(gomock.Any(), "u1", "", gomock.Any()).
			Return(nil, errors.Join(domainerr.ErrConstraintViolation, errors.New("users_pkey")))

		w := postJSON(r, "/users", `{"id":"u1"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("bad initial balance", func(t *testing.T) {
		r, _ := newWalletRouter(t)

		w := postJSON(r, "/users", `{"id":"u1","initialBalance":"1.005"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
