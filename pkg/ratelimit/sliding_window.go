package ratelimit

import "time"

// windowState is the per-client record: admission times within the trailing
// window, oldest first. Entries are pruned lazily on access, so between
// calls the slice may transiently hold stale timestamps.
type windowState struct {
	stamps []time.Time
}

// SlidingWindow admits work based on an exact count of admissions within the
// trailing window. It avoids the token bucket's boundary burst artifact
// (double throughput across a window boundary) at the cost of tracking one
// timestamp per admission.
type SlidingWindow struct {
	limit  int
	window time.Duration
	clock  Clock
	store  *store[windowState]
}

// NewSlidingWindow creates a sliding window limiter admitting at most limit
// requests within any trailing window.
func NewSlidingWindow(limit int, window time.Duration, opts ...Option) (*SlidingWindow, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if window <= 0 {
		return nil, ErrInvalidWindow
	}

	cfg := newSettings(window, opts...)
	return &SlidingWindow{
		limit:  limit,
		window: window,
		clock:  cfg.clock,
		store:  newStore[windowState](cfg),
	}, nil
}

// Allow reports whether one request for key may proceed, recording its
// admission time when it does. A denial leaves the pruned sequence unchanged.
func (sw *SlidingWindow) Allow(key string) bool {
	var allowed bool
	sw.store.update(key, func() windowState { return windowState{} }, func(ws *windowState) {
		now := sw.clock.Now()
		sw.prune(ws, now)
		if len(ws.stamps) < sw.limit {
			ws.stamps = append(ws.stamps, now)
			allowed = true
		}
	})
	return allowed
}

// Remaining returns how many admissions key has left in the current window.
// Unseen clients report the full limit.
func (sw *SlidingWindow) Remaining(key string) int {
	remaining := sw.limit
	sw.store.inspect(key, func(ws *windowState) {
		sw.prune(ws, sw.clock.Now())
		remaining = sw.limit - len(ws.stamps)
	})
	return remaining
}

// ResetTime returns how long until every recorded admission has aged out of
// the window, restoring the full quota. Unseen clients report zero.
func (sw *SlidingWindow) ResetTime(key string) time.Duration {
	var reset time.Duration
	sw.store.inspect(key, func(ws *windowState) {
		now := sw.clock.Now()
		sw.prune(ws, now)
		if len(ws.stamps) > 0 {
			newest := ws.stamps[len(ws.stamps)-1]
			reset = newest.Add(sw.window).Sub(now)
		}
	})
	return reset
}

// Reset forgets key entirely. The next Allow sees an empty window.
func (sw *SlidingWindow) Reset(key string) {
	sw.store.remove(key)
}

// Limit returns the configured per-window admission ceiling.
func (sw *SlidingWindow) Limit() int { return sw.limit }

// ActiveClients returns the number of clients with live records.
func (sw *SlidingWindow) ActiveClients() int { return sw.store.size() }

// Close stops the background eviction sweeper. Safe to call multiple times.
func (sw *SlidingWindow) Close() { sw.store.close() }

// prune drops timestamps at or before now-window. An admission made at time
// t expires exactly at t+window, not before. Stamps are appended in order,
// so survivors are always a suffix.
func (sw *SlidingWindow) prune(ws *windowState, now time.Time) {
	cutoff := now.Add(-sw.window)
	var i int
	for i < len(ws.stamps) && !ws.stamps[i].After(cutoff) {
		i++
	}
	if i > 0 {
		ws.stamps = append(ws.stamps[:0], ws.stamps[i:]...)
	}
}
