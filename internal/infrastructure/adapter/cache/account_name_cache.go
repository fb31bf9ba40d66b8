package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/cache"
)

// DefaultAccountNameTTL is how long a resolved account holder is kept
const DefaultAccountNameTTL = 24 * time.Hour

const accountNameKeyPrefix = "acctres"

// RedisAccountNameCache keeps resolved account holders in Redis as JSON
type RedisAccountNameCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

var _ cache.AccountNameCache = (*RedisAccountNameCache)(nil)

// NewRedisAccountNameCache creates a Redis backed account name cache
func NewRedisAccountNameCache(rdb redis.Cmdable, ttl time.Duration) *RedisAccountNameCache {
	if ttl <= 0 {
		ttl = DefaultAccountNameTTL
	}
	return &RedisAccountNameCache{rdb: rdb, ttl: ttl}
}

func accountNameKey(accountNumber, bankCode string) string {
	return fmt.Sprintf("%s:%s:%s", accountNameKeyPrefix, bankCode, accountNumber)
}

// Get returns the cached resolution; a missing key is a miss, not an error
func (c *RedisAccountNameCache) Get(ctx context.Context, accountNumber, bankCode string) (*entity.AccountResolution, bool, error) {
	raw, err := c.rdb.Get(ctx, accountNameKey(accountNumber, bankCode)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("account name cache get: %w", err)
	}

	var resolution entity.AccountResolution
	if err := json.Unmarshal(raw, &resolution); err != nil {
		return nil, false, fmt.Errorf("account name cache decode: %w", err)
	}
	return &resolution, true, nil
}

// Set stores a resolution
func (c *RedisAccountNameCache) Set(ctx context.Context, accountNumber, bankCode string, resolution *entity.AccountResolution) error {
	raw, err := json.Marshal(resolution)
	if err != nil {
		return fmt.Errorf("account name cache encode: %w", err)
	}
	if err := c.rdb.Set(ctx, accountNameKey(accountNumber, bankCode), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("account name cache set: %w", err)
	}
	return nil
}

// NoopAccountNameCache never stores anything. Used when Redis is disabled.
type NoopAccountNameCache struct{}

// NewNoopAccountNameCache creates a cache that always misses
func NewNoopAccountNameCache() *NoopAccountNameCache {
	return &NoopAccountNameCache{}
}

func (NoopAccountNameCache) Get(context.Context, string, string) (*entity.AccountResolution, bool, error) {
	return nil, false, nil
}

func (NoopAccountNameCache) Set(context.Context, string, string, *entity.AccountResolution) error {
	return nil
}
