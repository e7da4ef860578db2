package ratelimit

import "time"

// Clock abstracts the time source used by limiters and their stores.
// Tests inject a fake clock and advance it deterministically instead of
// sleeping through real windows.
type Clock interface {
	Now() time.Time
}

// systemClock is the default wall-clock source.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
