package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/identity"
)

// DefaultTokenTTL is the lifetime of tokens minted by IssueToken
const DefaultTokenTTL = 24 * time.Hour

// Claims carries the caller role on top of the registered claims
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTProvider authenticates HS256 bearer tokens
type JWTProvider struct {
	secret       []byte
	issuer       string
	timeProvider core.TimeProvider
}

var _ identity.Provider = (*JWTProvider)(nil)

// NewJWTProvider creates a provider for tokens signed with secret
func NewJWTProvider(secret, issuer string, timeProvider core.TimeProvider) *JWTProvider {
	return &JWTProvider{
		secret:       []byte(secret),
		issuer:       issuer,
		timeProvider: timeProvider,
	}
}

// Authenticate parses and validates token
func (p *JWTProvider) Authenticate(_ context.Context, token string) (*identity.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" || len(p.secret) == 0 {
		return nil, errs.ErrUnauthorized
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.timeProvider.Now),
	}
	if p.issuer != "" {
		opts = append(opts, jwt.WithIssuer(p.issuer))
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return p.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnauthorized, tokenErrorReason(err))
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, errs.ErrUnauthorized
	}

	return &identity.Identity{Subject: claims.Subject, Role: claims.Role}, nil
}

// IssueToken mints a signed token for subject with role
func (p *JWTProvider) IssueToken(subject, role string, ttl time.Duration) (string, error) {
	if len(p.secret) == 0 {
		return "", errors.New("jwt secret is not configured")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	now := p.timeProvider.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    p.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

func tokenErrorReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "invalid signature"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed token"
	default:
		return "invalid token"
	}
}
