package ratelimit

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrymomot/apikit/pkg/response"
)

// DenyHandler renders the response for a rate-limited request.
type DenyHandler func(w http.ResponseWriter, r *http.Request, retryAfter time.Duration)

// MiddlewareOption configures the rate limiting middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	deny DenyHandler
}

// WithDenyHandler overrides how denied requests are answered.
func WithDenyHandler(h DenyHandler) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.deny = h
		}
	}
}

// defaultDeny answers with a structured 429 body carrying the retry-after
// figure, plus the standard Retry-After header.
func defaultDeny(w http.ResponseWriter, r *http.Request, retryAfter time.Duration) {
	secs := int(math.Ceil(retryAfter.Seconds()))
	if secs > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(secs))
	}
	_ = response.RateLimited(retryAfter).Render(w)
}

// Middleware creates net/http middleware that enforces l per client key and
// sets the standard X-RateLimit-* headers on every response.
func Middleware(l Limiter, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{deny: defaultDeny}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)

			allowed := l.Allow(key)
			remaining := l.Remaining(key)
			reset := l.ResetTime(key)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.Limit()))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, remaining)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(reset).Unix(), 10))

			if !allowed {
				cfg.deny(w, r, reset)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
