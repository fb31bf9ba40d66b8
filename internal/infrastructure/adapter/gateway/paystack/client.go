package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

const (
	// DefaultBaseURL is the provider's production API
	DefaultBaseURL = "https://api.paystack.co"

	// DefaultTimeout bounds every provider call
	DefaultTimeout = 30 * time.Second

	// maxBodyBytes caps how much of a response is read into memory
	maxBodyBytes = 1 << 20
)

// Gateway operation names, used in errors and logs
const (
	opResolveAccount         = "resolve_account"
	opCreateCustomer         = "create_customer"
	opUpdateCustomer         = "update_customer"
	opCreateDedicatedAccount = "create_dedicated_account"
	opCreateRecipient        = "create_transfer_recipient"
	opInitiateTransfer       = "initiate_transfer"
)

// Config holds provider connection settings
type Config struct {
	BaseURL   string
	SecretKey string
	Timeout   time.Duration
}

// Client talks to the payment provider's REST API
type Client struct {
	secretKey    string
	baseURL      string
	client       *http.Client
	validate     *validator.Validate
	timeProvider core.TimeProvider
	logger       core.Logger
}

// NewClient creates a provider client. A client without a secret key is valid but every call
// fails with ErrGatewayNotConfigured.
func NewClient(cfg Config, timeProvider core.TimeProvider, logger core.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		secretKey:    cfg.SecretKey,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		client:       &http.Client{Timeout: cfg.Timeout},
		validate:     validator.New(),
		timeProvider: timeProvider,
		logger:       logger.With(map[string]any{"component": "paystack"}),
	}
}

// envelope is the provider's common response wrapper
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do sends one request and decodes envelope.data into out.
// Non-2xx answers and status=false become GatewayError; failures before an answer become TransportError.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, payload, out any) error {
	if c.secretKey == "" {
		return errs.ErrGatewayNotConfigured
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	startTime := c.timeProvider.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("Gateway request failed", map[string]any{
			"operation": op,
			"error":     err.Error(),
			"duration":  c.timeProvider.Since(startTime).String(),
		})
		return errs.NewTransportError(op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return errs.NewTransportError(op, fmt.Errorf("failed to read response body: %w", err))
	}

	c.logger.Debug("Gateway request completed", map[string]any{
		"operation":   op,
		"method":      method,
		"path":        path,
		"status_code": resp.StatusCode,
		"duration":    c.timeProvider.Since(startTime).String(),
	})

	var env envelope
	decodeErr := json.Unmarshal(respBody, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := env.Message
		if decodeErr != nil || message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return errs.NewGatewayError(op, resp.StatusCode, message, respBody)
	}
	if decodeErr != nil {
		return errs.NewGatewayError(op, resp.StatusCode, "malformed response", respBody)
	}
	if !env.Status {
		return errs.NewGatewayError(op, resp.StatusCode, env.Message, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errs.NewGatewayError(op, resp.StatusCode, "malformed response data", respBody)
		}
	}
	return nil
}

func (c *Client) validateRequest(req any) error {
	if err := c.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error())
	}
	return nil
}
