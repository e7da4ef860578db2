package cache

import "errors"

var (
	// ErrCacheMiss is returned by the Redis cache when a key is absent.
	ErrCacheMiss = errors.New("cache: key not found")

	// ErrInvalidConnectionURL is returned when the Redis URL cannot be parsed.
	ErrInvalidConnectionURL = errors.New("cache: invalid redis connection url")

	// ErrRedisNotReady is returned when Redis does not answer pings within
	// the configured retry budget.
	ErrRedisNotReady = errors.New("cache: redis did not become ready")

	// ErrHealthcheckFailed is returned when a Redis health probe fails.
	ErrHealthcheckFailed = errors.New("cache: redis healthcheck failed")
)
