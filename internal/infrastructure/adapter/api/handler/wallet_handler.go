package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
)

// WalletHandler handles wallet read and registration requests
type WalletHandler struct {
	wallets usecase.WalletUseCase
	logger  coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(wallets usecase.WalletUseCase, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{wallets: wallets, logger: logger}
}

// GetBalance handles GET /users/:userId/balance
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID := c.Param("userId")

	balance, err := h.wallets.GetFormattedUserBalance(c.Request.Context(), userID)
	if err != nil {
		h.respondWalletError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.BalanceResponse{
		UserID:             balance.UserID,
		Balance:            balance.Balance,
		DedicatedAccountID: balance.DedicatedAccountID,
	}))
}

// ListTransactions handles GET /users/:userId/transactions?limit=
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	userID := c.Param("userId")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(c, http.StatusBadRequest, domainerr.ErrInvalidRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	txs, err := h.wallets.ListTransactions(c.Request.Context(), userID, limit)
	if err != nil {
		h.respondWalletError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewTransactionResponses(txs)))
}

// RegisterUser handles POST /users
func (h *WalletHandler) RegisterUser(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domainerr.ErrInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	initial := decimal.Zero
	if req.InitialBalance != "" {
		parsed, err := entity.ParseAmount(req.InitialBalance)
		if err != nil {
			respondError(c, http.StatusBadRequest, err, err.Error())
			return
		}
		initial = parsed
	}

	user, err := h.wallets.RegisterUser(c.Request.Context(), req.ID, req.Email, initial)
	if err != nil {
		switch {
		case errors.Is(err, domainerr.ErrConstraintViolation):
			respondError(c, http.StatusConflict, err, "User already exists")
		case errors.Is(err, domainerr.ErrInvalidUserID), errors.Is(err, domainerr.ErrInvalidAmount),
			errors.Is(err, domainerr.ErrNegativeBalance):
			respondError(c, http.StatusBadRequest, err, err.Error())
		default:
			h.respondWalletError(c, req.ID, err)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.NewUserResponse(user)))
}

func (h *WalletHandler) respondWalletError(c *gin.Context, userID string, err error) {
	switch {
	case errors.Is(err, domainerr.ErrInvalidUserID):
		respondError(c, http.StatusBadRequest, err, "Invalid user ID")
	case errors.Is(err, domainerr.ErrUserNotFound):
		respondError(c, http.StatusNotFound, err, "User not found")
	default:
		h.logger.Error("Wallet request failed", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		respondError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
