package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"esports-api/internal/domain/esports"

	goredis "github.com/redis/go-redis/v9"
)

// Cache key patterns:
// - team:{game}:{id}
// - player:{game}:{id}
// - match:{game}:{id}

const DefaultTTL = 5 * time.Minute

func TeamKey(game esports.Game, id int64) string {
	return fmt.Sprintf("team:%s:%d", game, id)
}

func PlayerKey(game esports.Game, id int64) string {
	return fmt.Sprintf("player:%s:%d", game, id)
}

func MatchKey(game esports.Game, id int64) string {
	return fmt.Sprintf("match:%s:%d", game, id)
}

// CacheStore keeps JSON-encoded values in Redis with a fixed TTL.
type CacheStore struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewCacheStore creates a new cache store. A non-positive ttl uses DefaultTTL.
func NewCacheStore(client *goredis.Client, ttl time.Duration) *CacheStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CacheStore{
		client: client,
		ttl:    ttl,
	}
}

// Get decodes the value at key into dst. A miss returns false and no error.
func (c *CacheStore) Get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

// Set stores v at key.
func (c *CacheStore) Set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Invalidate removes keys from the cache.
func (c *CacheStore) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// Ping checks the connection.
func (c *CacheStore) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
