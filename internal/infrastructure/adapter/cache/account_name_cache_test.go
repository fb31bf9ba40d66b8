package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/wallet-ledger/internal/testutil"
)

func TestRedisAccountNameCache(t *testing.T) {
	rdb, teardown := testutil.SetupTestRedis(t)
	defer teardown()

	ctx := context.Background()
	names := cache.NewRedisAccountNameCache(rdb, time.Minute)

	resolution := &entity.AccountResolution{AccountNumber: "0123456789", AccountName: "ADA LOVELACE", BankID: 9}

	t.Run("miss", func(t *testing.T) {
		cached, ok, err := names.Get(ctx, "0123456789", "058")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, cached)
	})

	t.Run("set then hit returns the whole resolution", func(t *testing.T) {
		require.NoError(t, names.Set(ctx, "0123456789", "058", resolution))

		cached, ok, err := names.Get(ctx, "0123456789", "058")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, resolution, cached)

		ttl, err := rdb.TTL(ctx, "acctres:058:0123456789").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, time.Minute)
	})

	t.Run("bank code is part of the key", func(t *testing.T) {
		_, ok, err := names.Get(ctx, "0123456789", "044")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("undecodable entry is an error", func(t *testing.T) {
		require.NoError(t, rdb.Set(ctx, "acctres:058:1111111111", "ADA LOVELACE", time.Minute).Err())

		cached, ok, err := names.Get(ctx, "1111111111", "058")
		assert.Error(t, err)
		assert.False(t, ok)
		assert.Nil(t, cached)
	})
}

func TestRedisAccountNameCache_ConnectionError(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 50 * time.Millisecond})
	defer rdb.Close()

	names := cache.NewRedisAccountNameCache(rdb, 0)

	_, ok, err := names.Get(context.Background(), "0123456789", "058")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, names.Set(context.Background(), "0123456789", "058", &entity.AccountResolution{AccountName: "ADA"}))
}

func TestNoopAccountNameCache(t *testing.T) {
	names := cache.NewNoopAccountNameCache()

	require.NoError(t, names.Set(context.Background(), "0123456789", "058", &entity.AccountResolution{AccountName: "ADA"}))
	_, ok, err := names.Get(context.Background(), "0123456789", "058")
	require.NoError(t, err)
	assert.False(t, ok)
}
