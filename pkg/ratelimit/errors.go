package ratelimit

import "errors"

var (
	// ErrInvalidLimit is returned when the configured limit is not positive.
	ErrInvalidLimit = errors.New("ratelimit: limit must be positive")

	// ErrInvalidWindow is returned when the configured window is not positive.
	ErrInvalidWindow = errors.New("ratelimit: window must be positive")
)
