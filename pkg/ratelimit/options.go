package ratelimit

import "time"

// defaultSweepInterval is how often the background eviction sweeper runs
// unless overridden.
const defaultSweepInterval = time.Minute

// maxIdleTimeout caps the derived idle eviction threshold so limiters with
// very long windows still bound their memory within the hour.
const maxIdleTimeout = time.Hour

type settings struct {
	clock         Clock
	idleTimeout   time.Duration
	sweepInterval time.Duration
}

// Option configures a limiter at construction time.
type Option func(*settings)

// WithClock injects a custom time source. Primarily used by tests to advance
// time without sleeping.
func WithClock(c Clock) Option {
	return func(s *settings) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithIdleTimeout overrides how long an untouched client record survives
// before it becomes eligible for eviction. The default is four windows,
// capped at one hour.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.idleTimeout = d
		}
	}
}

// WithSweepInterval overrides how often the eviction sweeper runs. Zero or
// negative disables the background sweep entirely.
func WithSweepInterval(d time.Duration) Option {
	return func(s *settings) {
		s.sweepInterval = d
	}
}

func newSettings(window time.Duration, opts ...Option) settings {
	s := settings{
		clock:         systemClock{},
		sweepInterval: defaultSweepInterval,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.idleTimeout == 0 {
		s.idleTimeout = min(4*window, maxIdleTimeout)
	}
	return s
}
