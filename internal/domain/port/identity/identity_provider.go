package identity

import (
	"context"
)

// Identity is the authenticated caller of an administrative endpoint
type Identity struct {
	Subject string
	Role    string
}

// IsAdmin reports whether the caller holds the admin role
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// RoleAdmin grants access to operational endpoints
const RoleAdmin = "admin"

// Provider resolves a bearer credential to the current caller
type Provider interface {
	// Authenticate returns ErrUnauthorized when the token is missing, malformed or expired
	Authenticate(ctx context.Context, token string) (*Identity, error)
}
