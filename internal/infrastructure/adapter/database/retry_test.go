package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
)

var errTransient = errors.New("deadlock detected")

func isTestTransient(err error) bool { return errors.Is(err, errTransient) }

func fastRetry() RetryConfig {
	return RetryConfig{MaxRetries: 4, RetryInterval: time.Millisecond, MaxInterval: 4 * time.Millisecond}
}

func TestRetryOnTransientError(t *testing.T) {
	log := logger.NewNoopLogger()

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(), func() error {
			calls++
			if calls < 3 {
				return errTransient
			}
			return nil
		}, isTestTransient, log)

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("permanent error is not retried", func(t *testing.T) {
		calls := 0
		permanent := errors.New("duplicate key value violates unique constraint")
		err := RetryOnTransientError(context.Background(), fastRetry(), func() error {
			calls++
			return permanent
		}, isTestTransient, log)

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(), func() error {
			calls++
			return errTransient
		}, isTestTransient, log)

		assert.ErrorIs(t, err, errTransient)
		assert.Equal(t, 4, calls)
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		calls := 0
		cfg := fastRetry()
		cfg.RetryInterval = time.Hour
		cfg.MaxInterval = time.Hour

		err := RetryOnTransientError(ctx, cfg, func() error {
			calls++
			return errTransient
		}, isTestTransient, log)

		assert.ErrorIs(t, err, errTransient)
		assert.Equal(t, 1, calls)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 10 * time.Millisecond, MaxInterval: 50 * time.Millisecond}

	assert.Equal(t, 10*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 40*time.Millisecond, calculateBackoffWithJitter(2, cfg))
	assert.Equal(t, 50*time.Millisecond, calculateBackoffWithJitter(5, cfg))

	cfg.JitterFactor = 0.5
	for i := 0; i < 20; i++ {
		b := calculateBackoffWithJitter(0, cfg)
		assert.GreaterOrEqual(t, b, 10*time.Millisecond)
		assert.LessOrEqual(t, b, 15*time.Millisecond)
	}
}
