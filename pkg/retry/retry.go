package retry

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// Defaults used when an Option does not override the setting.
const (
	DefaultMaxAttempts   = 3
	DefaultInitialDelay  = time.Second
	DefaultMaxDelay      = time.Minute
	DefaultBackoffFactor = 2.0
)

// ErrInvalidAttempts is returned when maxAttempts is configured below one.
var ErrInvalidAttempts = errors.New("retry: max attempts must be positive")

type settings struct {
	maxAttempts   int
	initialDelay  time.Duration
	maxDelay      time.Duration
	backoffFactor float64
	jitter        bool
	retryIf       func(error) bool
	onRetry       func(err error, attempt int)
}

// Option configures a retry loop.
type Option func(*settings)

// WithMaxAttempts sets the total number of attempts, including the first one.
func WithMaxAttempts(n int) Option {
	return func(s *settings) { s.maxAttempts = n }
}

// WithInitialDelay sets the delay before the first retry.
func WithInitialDelay(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.initialDelay = d
		}
	}
}

// WithMaxDelay caps the delay between retries.
func WithMaxDelay(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.maxDelay = d
		}
	}
}

// WithBackoffFactor sets the multiplier applied to the delay after each
// failed attempt. A factor of 1 gives constant delays.
func WithBackoffFactor(f float64) Option {
	return func(s *settings) {
		if f >= 1 {
			s.backoffFactor = f
		}
	}
}

// WithoutJitter disables the randomization applied to each delay. Jitter is
// on by default to keep a fleet of clients from retrying in lockstep.
func WithoutJitter() Option {
	return func(s *settings) { s.jitter = false }
}

// WithRetryIf limits retries to errors matching the predicate; any other
// error aborts the loop immediately.
func WithRetryIf(fn func(error) bool) Option {
	return func(s *settings) { s.retryIf = fn }
}

// WithOnRetry installs a hook called before each retry, useful for logging.
func WithOnRetry(fn func(err error, attempt int)) Option {
	return func(s *settings) { s.onRetry = fn }
}

// Do runs fn until it succeeds, the attempts are exhausted, or the context
// is canceled. Delays grow exponentially and are jittered by default.
// The last error is returned wrapped with the attempt count.
func Do[T any](ctx context.Context, fn func(ctx context.Context) (T, error), opts ...Option) (T, error) {
	var zero T

	s := settings{
		maxAttempts:   DefaultMaxAttempts,
		initialDelay:  DefaultInitialDelay,
		maxDelay:      DefaultMaxDelay,
		backoffFactor: DefaultBackoffFactor,
		jitter:        true,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.maxAttempts < 1 {
		return zero, ErrInvalidAttempts
	}

	delay := s.initialDelay
	var lastErr error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if s.retryIf != nil && !s.retryIf(err) {
			return zero, err
		}
		if attempt == s.maxAttempts {
			break
		}

		if s.onRetry != nil {
			s.onRetry(err, attempt)
		}

		wait := min(delay, s.maxDelay)
		if s.jitter {
			// Scale by a random factor in [0.5, 1.5).
			wait = time.Duration(float64(wait) * (0.5 + rand.Float64()))
		}

		select {
		case <-ctx.Done():
			return zero, errors.Join(ctx.Err(), lastErr)
		case <-time.After(wait):
		}

		delay = time.Duration(float64(delay) * s.backoffFactor)
	}

	return zero, fmt.Errorf("retry: %d attempts exhausted: %w", s.maxAttempts, lastErr)
}

// Run is Do for operations with no return value.
func Run(ctx context.Context, fn func(ctx context.Context) error, opts ...Option) error {
	_, err := Do(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	}, opts...)
	return err
}
