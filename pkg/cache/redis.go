package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a cache backed by a Redis server, for state shared between
// processes. Values are stored as JSON under an optional key prefix.
type Redis struct {
	client     redis.UniversalClient
	prefix     string
	defaultTTL time.Duration
}

// RedisOption configures a Redis cache.
type RedisOption func(*Redis)

// WithKeyPrefix namespaces all keys, e.g. "myapp:".
func WithKeyPrefix(prefix string) RedisOption {
	return func(c *Redis) { c.prefix = prefix }
}

// WithDefaultTTL overrides the TTL applied by Set.
func WithDefaultTTL(ttl time.Duration) RedisOption {
	return func(c *Redis) {
		if ttl > 0 {
			c.defaultTTL = ttl
		}
	}
}

// NewRedis creates a Redis-backed cache around an existing client.
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	c := &Redis{
		client:     client,
		defaultTTL: DefaultTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Redis) key(key string) string { return c.prefix + key }

// Get unmarshals the cached JSON value for key into dest. Returns
// ErrCacheMiss when the key is absent or expired.
func (c *Redis) Get(ctx context.Context, key string, dest any) error {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

// Set stores value under key with the default TTL.
func (c *Redis) Set(ctx context.Context, key string, value any) error {
	return c.SetTTL(ctx, key, value, c.defaultTTL)
}

// SetTTL stores value under key with an explicit TTL.
func (c *Redis) SetTTL(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	return c.client.Set(ctx, c.key(key), raw, ttl).Err()
}

// Delete removes key.
func (c *Redis) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.key(key)).Err()
}

// Has reports whether key exists.
func (c *Redis) Has(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(key)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Clear removes every key under the cache's prefix using incremental SCAN,
// so it never blocks the server the way KEYS would.
func (c *Redis) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
