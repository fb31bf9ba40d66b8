package webhook

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

const testSecret = "sk_test_webhook_secret"

func TestNewSignatureVerifier(t *testing.T) {
	_, err := NewSignatureVerifier("")
	assert.ErrorIs(t, err, errs.ErrMissingWebhookSecret)

	_, err = NewSignatureVerifier("   ")
	assert.ErrorIs(t, err, errs.ErrMissingWebhookSecret)

	v, err := NewSignatureVerifier(testSecret)
	require.NoError(t, err)
	assert.NotNil(t, v)
}

func TestSignatureVerifier_Verify(t *testing.T) {
	v, err := NewSignatureVerifier(testSecret)
	require.NoError(t, err)

	body := []byte(`{"event":"transfer.success","data":{"amount":500000,"reference":"TX1"}}`)
	sig := v.Sign(body)

	t.Run("Matching signature", func(t *testing.T) {
		assert.True(t, v.Verify(body, sig))
		assert.True(t, v.Verify(body, strings.ToUpper(sig)))
	})

	t.Run("Every single-byte mutation is rejected", func(t *testing.T) {
		for i := range body {
			mutated := append([]byte(nil), body...)
			mutated[i] ^= 0x01
			assert.False(t, v.Verify(mutated, sig), "mutation at byte %d accepted", i)
		}
	})

	t.Run("Re-serialized body is rejected", func(t *testing.T) {
		reformatted := []byte(`{"event": "transfer.success", "data": {"amount": 500000, "reference": "TX1"}}`)
		assert.False(t, v.Verify(reformatted, sig))
	})

	t.Run("Wrong secret is rejected", func(t *testing.T) {
		other, err := NewSignatureVerifier("another-secret")
		require.NoError(t, err)
		assert.False(t, other.Verify(body, sig))
	})

	t.Run("Malformed signatures are rejected", func(t *testing.T) {
		for _, s := range []string{"", "zz", sig[:64], sig + "00"} {
			assert.False(t, v.Verify(body, s))
		}
	})
}

func TestComputeSignatureKnownVector(t *testing.T) {
	// printf '{}' | openssl dgst -sha512 -hmac key
	assert.Equal(t,
		"55fabdaa182c70ee206b1214d44e350c994779dfc34241b286dc6d3f12a2cd70f6b9e57f19d661a86d8486048744ba18c0fe8f821783075f9089b585e5edd729",
		ComputeSignature([]byte("{}"), []byte("key")))
}
