package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
)

// ProviderHandler fronts the payment gateway for administrative callers
type ProviderHandler struct {
	provider usecase.ProviderUseCase
	logger   coreport.Logger
}

// NewProviderHandler creates a new provider handler instance
func NewProviderHandler(provider usecase.ProviderUseCase, logger coreport.Logger) *ProviderHandler {
	return &ProviderHandler{provider: provider, logger: logger}
}

// VerifyAccount handles POST /verify-account
func (h *ProviderHandler) VerifyAccount(c *gin.Context) {
	var req dto.VerifyAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domainerr.ErrInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	resolved, err := h.provider.VerifyAccount(c.Request.Context(), usecase.VerifyAccountRequest{
		AccountNumber: req.AccountNumber,
		BankCode:      req.BankCode,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domainerr.ErrInvalidRequest) || errors.Is(err, domainerr.ErrGatewayRejected) {
			status = http.StatusBadRequest
		}
		respondError(c, status, err, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.OK(resolved))
}

// CreateVirtualAccount handles POST /create-virtual-account
func (h *ProviderHandler) CreateVirtualAccount(c *gin.Context) {
	var req dto.CreateVirtualAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domainerr.ErrInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	account, err := h.provider.CreateVirtualAccount(c.Request.Context(), usecase.CreateVirtualAccountRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		UserID:    req.UserID,
	})
	if err != nil {
		respondError(c, virtualAccountStatus(err), err, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.OK(account))
}

func virtualAccountStatus(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrAccountAlreadyBound):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrGatewayNotConfigured):
		return http.StatusInternalServerError
	case errors.Is(err, domainerr.ErrInvalidRequest), errors.Is(err, domainerr.ErrGatewayRejected):
		return http.StatusBadRequest
	default:
		var pe *domainerr.ProvisioningError
		if errors.As(err, &pe) {
			return http.StatusBadRequest
		}
		return http.StatusInternalServerError
	}
}

// Transfer handles POST /transfer
func (h *ProviderHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domainerr.ErrInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	transfer, err := h.provider.Transfer(c.Request.Context(), usecase.TransferRequest{
		AccountNumber: req.AccountNumber,
		BankCode:      req.BankCode,
		AccountName:   req.AccountName,
		Amount:        req.Amount,
		Reference:     req.Reference,
		Reason:        req.Reason,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domainerr.ErrInvalidRequest) || errors.Is(err, domainerr.ErrInvalidAmount) {
			status = http.StatusBadRequest
		}
		respondError(c, status, err, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.OK(transfer))
}
