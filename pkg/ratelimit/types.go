package ratelimit

import "time"

// Limiter is the admission contract shared by both algorithms. Callers treat
// implementations interchangeably: every operation is synchronous,
// non-blocking and safe for concurrent use from any number of goroutines.
type Limiter interface {
	// Allow reports whether one unit of work for key may proceed, consuming
	// capacity when it does.
	Allow(key string) bool

	// Remaining returns the non-negative quota left for key. Unseen clients
	// report the full limit.
	Remaining(key string) int

	// ResetTime returns how long until key's full quota is restored.
	// Unseen clients report zero.
	ResetTime(key string) time.Duration

	// Reset clears all state for key. The next access treats the client as
	// brand new, with full capacity.
	Reset(key string)

	// Limit returns the configured per-window admission ceiling.
	Limit() int
}
