package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/identity"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
)

const identityKey = "identity"

// Auth requires a bearer token that resolves to an admin identity
func Auth(provider identity.Provider, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, http.StatusUnauthorized, "Missing bearer token")
			return
		}

		id, err := provider.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Warn("Rejected administrative request", map[string]any{
				"path":       c.Request.URL.Path,
				"request_id": GetRequestID(c),
				"error":      err.Error(),
			})
			abortUnauthorized(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		if !id.IsAdmin() {
			abortUnauthorized(c, http.StatusForbidden, "Insufficient role")
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// GetIdentity returns the caller authenticated by Auth
func GetIdentity(c *gin.Context) *identity.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(*identity.Identity); ok {
			return id
		}
	}
	return nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
		Message: message,
	})
}
