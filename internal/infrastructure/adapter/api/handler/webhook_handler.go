package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/middleware"
)

// SignatureHeader carries the provider's HMAC-SHA512 of the raw body
const SignatureHeader = "X-Paystack-Signature"

// maxWebhookBodyBytes caps an inbound webhook body
const maxWebhookBodyBytes = 1 << 20

// WebhookHandler handles provider event deliveries
type WebhookHandler struct {
	webhooks usecase.WebhookUseCase
	logger   coreport.Logger
}

// NewWebhookHandler creates a new webhook handler instance
func NewWebhookHandler(webhooks usecase.WebhookUseCase, logger coreport.Logger) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks, logger: logger}
}

// HandleWebhook handles POST /webhook. The body is read raw because the signature covers its exact bytes.
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		respondError(c, http.StatusBadRequest, domainerr.ErrInvalidPayload, "Unreadable request body")
		return
	}

	result, err := h.webhooks.HandleWebhook(c.Request.Context(), body, c.GetHeader(SignatureHeader))
	if err != nil {
		switch {
		case errors.Is(err, domainerr.ErrInvalidSignature):
			respondError(c, http.StatusUnauthorized, err, "Invalid signature")
		case errors.Is(err, domainerr.ErrInvalidPayload):
			respondError(c, http.StatusBadRequest, err, "Invalid webhook payload")
		default:
			h.logger.Error("Webhook processing failed", map[string]any{
				"request_id": middleware.GetRequestID(c),
				"error":      err.Error(),
			})
			respondError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, dto.OK(result))
}
