package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest       = 4000
	CodeInvalidAmount        = 4002
	CodeInvalidUserID        = 4003
	CodeDuplicateTransaction = 4004
	CodeConstraintViolation  = 4005
	CodeInvalidReference     = 4006
	CodeGatewayRejected      = 4007
	CodeProvisioningFailed   = 4008
	CodeInvalidSignature     = 4010
	CodeUnauthorized         = 4011
	CodeUserNotFound         = 4040
	CodeAccountAlreadyBound  = 4090

	// 5xxx - Server errors
	CodeInternalServer       = 5000
	CodeGatewayNotConfigured = 5001
	CodeGatewayUnavailable   = 5002
	CodeDatabaseUnavailable  = 5003
)

// Base error types
var (
	// ErrInvalidAmount is returned when an amount is missing, malformed or not positive
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidUserID is returned when the user ID is empty
	ErrInvalidUserID = errors.New("user ID cannot be empty")

	// ErrInvalidReference is returned when the idempotency reference is empty
	ErrInvalidReference = errors.New("reference cannot be empty")

	// ErrInvalidTransactionType is returned when the transaction type is not credit or debit
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidStatus is returned when the transaction status is not one of the allowed values
	ErrInvalidStatus = errors.New("invalid transaction status")

	// ErrNegativeBalance is returned when an operation would result in negative balance
	ErrNegativeBalance = errors.New("balance cannot be negative")

	// ErrDuplicateTransaction is returned when a transaction with the same reference already exists for the user
	ErrDuplicateTransaction = errors.New("transaction with this reference already exists")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrAmbiguousUser is returned when a lookup matches more than one user
	ErrAmbiguousUser = errors.New("lookup matched more than one user")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrAccountAlreadyBound is returned when a dedicated account is already bound to a user
	ErrAccountAlreadyBound = errors.New("dedicated account already bound")

	// ErrInvalidSignature is returned when a webhook signature does not match its body
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrInvalidPayload is returned when an authenticated webhook body cannot be parsed
	ErrInvalidPayload = errors.New("invalid webhook payload")

	// ErrMissingWebhookSecret is returned when no webhook secret is configured
	ErrMissingWebhookSecret = errors.New("webhook secret is not configured")

	// ErrGatewayNotConfigured is returned when the payment provider secret key is missing
	ErrGatewayNotConfigured = errors.New("payment gateway is not configured")

	// ErrGatewayRejected is returned when the payment provider answers with a non-2xx status
	ErrGatewayRejected = errors.New("payment gateway rejected the request")

	// ErrGatewayUnavailable is returned when the payment provider cannot be reached
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnauthorized is returned when a caller has no valid credentials
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidReference):
		return CodeInvalidReference
	case errors.Is(err, ErrDuplicateTransaction):
		return CodeDuplicateTransaction
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrAccountAlreadyBound):
		return CodeAccountAlreadyBound
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrInvalidSignature):
		return CodeInvalidSignature
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidPayload):
		return CodeInvalidRequest
	case errors.Is(err, ErrGatewayNotConfigured), errors.Is(err, ErrMissingWebhookSecret):
		return CodeGatewayNotConfigured
	case isProvisioningError(err):
		return CodeProvisioningFailed
	case errors.Is(err, ErrGatewayRejected):
		return CodeGatewayRejected
	case errors.Is(err, ErrGatewayUnavailable):
		return CodeGatewayUnavailable
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseUnavailable
	default:
		return CodeInternalServer
	}
}

func isProvisioningError(err error) bool {
	var pe *ProvisioningError
	return errors.As(err, &pe)
}

// GatewayError carries a non-2xx answer from the payment provider together with its response body
type GatewayError struct {
	Operation  string
	StatusCode int
	Message    string
	Body       []byte
}

// Error implements the error interface for GatewayError
func (e *GatewayError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gateway %s failed with status %d: %s", e.Operation, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gateway %s failed with status %d", e.Operation, e.StatusCode)
}

// Is reports whether target is ErrGatewayRejected
func (e *GatewayError) Is(target error) bool {
	return target == ErrGatewayRejected
}

// LogFields returns a map of fields for structured logging
func (e *GatewayError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "gateway_error",
		"operation":   e.Operation,
		"status_code": e.StatusCode,
		"message":     e.Message,
		"body":        string(e.Body),
		"error_code":  CodeGatewayRejected,
	}
}

// NewGatewayError creates a new gateway error
func NewGatewayError(operation string, statusCode int, message string, body []byte) error {
	return &GatewayError{
		Operation:  operation,
		StatusCode: statusCode,
		Message:    message,
		Body:       body,
	}
}

// TransportError is returned when a gateway call fails before an HTTP answer is received
type TransportError struct {
	Operation string
	Err       error
}

// Error implements the error interface for TransportError
func (e *TransportError) Error() string {
	return fmt.Sprintf("gateway %s transport failure: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrGatewayUnavailable
func (e *TransportError) Is(target error) bool {
	return target == ErrGatewayUnavailable
}

// LogFields returns a map of fields for structured logging
func (e *TransportError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "transport_error",
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": CodeGatewayUnavailable,
	}
}

// NewTransportError creates a new transport error
func NewTransportError(operation string, err error) error {
	return &TransportError{Operation: operation, Err: err}
}

// Provisioning steps
const (
	StepCreateCustomer         = "create_customer"
	StepUpdateCustomer         = "update_customer"
	StepCreateDedicatedAccount = "create_dedicated_account"
	StepBindAccount            = "bind_account"
)

// ProvisioningError identifies which step of virtual account provisioning failed
type ProvisioningError struct {
	Step string
	Err  error
}

// Error implements the error interface for ProvisioningError
func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("virtual account provisioning failed at %s: %v", e.Step, e.Err)
}

// Unwrap returns the underlying error
func (e *ProvisioningError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ProvisioningError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "provisioning_error",
		"step":       e.Step,
		"error":      e.Err.Error(),
		"error_code": CodeProvisioningFailed,
	}
	var ge *GatewayError
	if errors.As(e.Err, &ge) {
		fields["status_code"] = ge.StatusCode
		fields["body"] = string(ge.Body)
	}
	return fields
}

// NewProvisioningError creates a new provisioning error
func NewProvisioningError(step string, err error) error {
	return &ProvisioningError{Step: step, Err: err}
}

// CreditError represents a failed ledger credit
type CreditError struct {
	UserID    string
	Reference string
	Amount    string
	Err       error
}

// Error implements the error interface for CreditError
func (e *CreditError) Error() string {
	return fmt.Sprintf("credit failed for user %s (reference: %s, amount: %s): %v",
		e.UserID, e.Reference, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *CreditError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *CreditError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "credit_error",
		"user_id":    e.UserID,
		"reference":  e.Reference,
		"amount":     e.Amount,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewCreditError creates a detailed credit error
func NewCreditError(userID, reference, amount string, err error) error {
	return &CreditError{
		UserID:    userID,
		Reference: reference,
		Amount:    amount,
		Err:       err,
	}
}

// DuplicateTransactionError provides detailed information about a replayed reference
type DuplicateTransactionError struct {
	UserID    string
	Reference string
}

// Error implements the error interface
func (e *DuplicateTransactionError) Error() string {
	return fmt.Sprintf("duplicate transaction detected: reference=%s for user %s", e.Reference, e.UserID)
}

// Is checks if the target error is an ErrDuplicateTransaction
func (e *DuplicateTransactionError) Is(target error) bool {
	return target == ErrDuplicateTransaction
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateTransactionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "duplicate_transaction",
		"user_id":    e.UserID,
		"reference":  e.Reference,
		"error_code": CodeDuplicateTransaction,
	}
}

// NewDuplicateTransactionError creates a new detailed duplicate transaction error
func NewDuplicateTransactionError(userID, reference string) error {
	return &DuplicateTransactionError{UserID: userID, Reference: reference}
}

// IsDuplicateTransactionError checks if the error is a duplicate transaction error
func IsDuplicateTransactionError(err error) bool {
	return errors.Is(err, ErrDuplicateTransaction)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsGatewayError checks if the error came from the payment provider, either rejected or unreachable
func IsGatewayError(err error) bool {
	return errors.Is(err, ErrGatewayRejected) || errors.Is(err, ErrGatewayUnavailable)
}

// LogFields extracts structured log fields from err when it provides them
func LogFields(err error) map[string]any {
	var lf interface{ LogFields() map[string]any }
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	return map[string]any{"error": err.Error()}
}
