package webhook

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"strings"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

// SignatureVerifier authenticates provider notifications with HMAC-SHA512 over the raw body
type SignatureVerifier struct {
	secret []byte
}

// NewSignatureVerifier creates a verifier for the shared secret. An empty secret is a configuration error.
func NewSignatureVerifier(secret string) (*SignatureVerifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errs.ErrMissingWebhookSecret
	}
	return &SignatureVerifier{secret: []byte(secret)}, nil
}

// Sign returns the hex encoded HMAC-SHA512 of body
func (v *SignatureVerifier) Sign(body []byte) string {
	return ComputeSignature(body, v.secret)
}

// Verify reports whether signature matches body. body must be the bytes as received.
func (v *SignatureVerifier) Verify(body []byte, signature string) bool {
	given, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil || len(given) != sha512.Size {
		return false
	}
	mac := hmac.New(sha512.New, v.secret)
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), given)
}

// ComputeSignature returns the hex encoded HMAC-SHA512 of body under secret
func ComputeSignature(body, secret []byte) string {
	mac := hmac.New(sha512.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
