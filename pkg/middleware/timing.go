package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/apikit/pkg/logger"
)

// DefaultSlowRequestThreshold marks requests worth a warning-level log.
const DefaultSlowRequestThreshold = time.Second

// TimingOption configures the timing middleware.
type TimingOption func(*timingConfig)

type timingConfig struct {
	log           *slog.Logger
	slowThreshold time.Duration
}

// WithTimingLogger overrides the logger used for completion records.
func WithTimingLogger(log *slog.Logger) TimingOption {
	return func(c *timingConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// WithSlowRequestThreshold sets the duration above which a request is logged
// at warning level.
func WithSlowRequestThreshold(d time.Duration) TimingOption {
	return func(c *timingConfig) {
		if d > 0 {
			c.slowThreshold = d
		}
	}
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Timing measures request duration, exposes it in the X-Response-Time header
// and logs every completion. Requests slower than the threshold are logged at
// warning level so they stand out in aggregation.
func Timing(opts ...TimingOption) func(next http.Handler) http.Handler {
	cfg := &timingConfig{
		log:           slog.Default(),
		slowThreshold: DefaultSlowRequestThreshold,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			// Header must be set before the handler writes the response.
			tw := &timingWriter{statusRecorder: rec, start: start}
			next.ServeHTTP(tw, r)

			elapsed := time.Since(start)
			attrs := []any{
				logger.Route(r.Method, r.URL.Path),
				logger.Status(rec.status),
				logger.Duration(elapsed),
			}

			if elapsed > cfg.slowThreshold {
				cfg.log.WarnContext(r.Context(), "slow request", attrs...)
			} else {
				cfg.log.InfoContext(r.Context(), "request completed", attrs...)
			}
		})
	}
}

// timingWriter injects X-Response-Time just before the first byte of the
// response is written, the last moment headers can still change.
type timingWriter struct {
	*statusRecorder
	start       time.Time
	wroteHeader bool
}

func (w *timingWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		w.Header().Set("X-Response-Time", fmt.Sprintf("%.4fs", time.Since(w.start).Seconds()))
	}
	w.statusRecorder.WriteHeader(code)
}

func (w *timingWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.statusRecorder.ResponseWriter.Write(b)
}
