package handler

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
)

// respondError writes an ErrorResponse whose code is derived from err
func respondError(c *gin.Context, status int, err error, message string) {
	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
		Details: gatewayDetails(err),
	})
}

// gatewayDetails returns the provider body of a rejected gateway call, quoted when it is not JSON
func gatewayDetails(err error) json.RawMessage {
	var ge *domainerr.GatewayError
	if !errors.As(err, &ge) || len(ge.Body) == 0 {
		return nil
	}
	if json.Valid(ge.Body) {
		return json.RawMessage(ge.Body)
	}
	quoted, mErr := json.Marshal(string(ge.Body))
	if mErr != nil {
		return nil
	}
	return quoted
}
