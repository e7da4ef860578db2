package ratelimit

import (
	"math"
	"time"
)

// bucketState is the per-client token bucket record. tokens stays within
// [0, limit]; lastRefill never moves backward.
type bucketState struct {
	tokens     float64
	lastRefill time.Time
}

// TokenBucket admits work from a continuously refilling capacity pool,
// enforcing a smooth amortized rate of limit requests per window. Refill is
// computed lazily at access time, so idle clients cost nothing between calls.
type TokenBucket struct {
	limit      int
	window     time.Duration
	refillRate float64 // tokens per second
	clock      Clock
	store      *store[bucketState]
}

// NewTokenBucket creates a token bucket limiter admitting at most limit
// requests per window. New clients start with a full bucket.
func NewTokenBucket(limit int, window time.Duration, opts ...Option) (*TokenBucket, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if window <= 0 {
		return nil, ErrInvalidWindow
	}

	cfg := newSettings(window, opts...)
	return &TokenBucket{
		limit:      limit,
		window:     window,
		refillRate: float64(limit) / window.Seconds(),
		clock:      cfg.clock,
		store:      newStore[bucketState](cfg),
	}, nil
}

// Allow reports whether one request for key may proceed, consuming a token
// when it does. It never blocks or sleeps.
func (tb *TokenBucket) Allow(key string) bool {
	var allowed bool
	tb.store.update(key, tb.newBucket, func(b *bucketState) {
		tb.refill(b)
		if b.tokens >= 1 {
			b.tokens--
			allowed = true
		}
	})
	return allowed
}

// Remaining returns the whole tokens currently available for key without
// consuming any. Unseen clients report the full limit.
func (tb *TokenBucket) Remaining(key string) int {
	remaining := tb.limit
	tb.store.inspect(key, func(b *bucketState) {
		tb.refill(b)
		remaining = int(math.Floor(b.tokens))
	})
	return remaining
}

// ResetTime returns how long until key's bucket is full again. Unseen
// clients report zero.
func (tb *TokenBucket) ResetTime(key string) time.Duration {
	var reset time.Duration
	tb.store.inspect(key, func(b *bucketState) {
		tb.refill(b)
		if tb.refillRate > 0 {
			need := float64(tb.limit) - b.tokens
			reset = time.Duration(need / tb.refillRate * float64(time.Second))
		}
	})
	return reset
}

// Reset forgets key entirely. The next Allow sees a full bucket.
func (tb *TokenBucket) Reset(key string) {
	tb.store.remove(key)
}

// Limit returns the configured per-window admission ceiling.
func (tb *TokenBucket) Limit() int { return tb.limit }

// ActiveClients returns the number of clients with live records.
func (tb *TokenBucket) ActiveClients() int { return tb.store.size() }

// Close stops the background eviction sweeper. Safe to call multiple times.
func (tb *TokenBucket) Close() { tb.store.close() }

func (tb *TokenBucket) newBucket() bucketState {
	return bucketState{tokens: float64(tb.limit), lastRefill: tb.clock.Now()}
}

// refill adds the tokens accrued since lastRefill, capped at capacity.
// A clock that appears to move backward (VM time skew) contributes nothing
// and never rewinds lastRefill, so token deltas are never negative.
func (tb *TokenBucket) refill(b *bucketState) {
	now := tb.clock.Now()
	elapsed := now.Sub(b.lastRefill)
	if elapsed <= 0 {
		return
	}
	b.tokens = math.Min(float64(tb.limit), b.tokens+elapsed.Seconds()*tb.refillRate)
	b.lastRefill = now
}
