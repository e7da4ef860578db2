package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
)

// DefaultCORSMaxAge is how long browsers may cache a preflight response.
const DefaultCORSMaxAge = 24 * 60 * 60 // seconds

// CORSConfig controls cross-origin resource sharing behavior.
type CORSConfig struct {
	AllowOrigins []string // exact origins, or ["*"] for any
	AllowMethods []string
	AllowHeaders []string
	MaxAge       int // preflight cache lifetime in seconds
}

func (c *CORSConfig) applyDefaults() {
	if len(c.AllowOrigins) == 0 {
		c.AllowOrigins = []string{"*"}
	}
	if len(c.AllowMethods) == 0 {
		c.AllowMethods = []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodOptions,
		}
	}
	if len(c.AllowHeaders) == 0 {
		c.AllowHeaders = []string{"*"}
	}
	if c.MaxAge <= 0 {
		c.MaxAge = DefaultCORSMaxAge
	}
}

// CORS answers preflight requests and decorates responses with
// Access-Control headers for allowed origins.
func CORS(cfg CORSConfig) func(next http.Handler) http.Handler {
	cfg.applyDefaults()

	anyOrigin := slices.Contains(cfg.AllowOrigins, "*")
	methods := strings.Join(cfg.AllowMethods, ", ")
	headers := strings.Join(cfg.AllowHeaders, ", ")
	maxAge := strconv.Itoa(cfg.MaxAge)

	allowed := func(origin string) bool {
		return origin != "" && (anyOrigin || slices.Contains(cfg.AllowOrigins, origin))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if r.Method == http.MethodOptions {
				h := w.Header()
				if allowed(origin) {
					h.Set("Access-Control-Allow-Origin", origin)
				}
				h.Set("Access-Control-Allow-Methods", methods)
				h.Set("Access-Control-Allow-Headers", headers)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			if allowed(origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
			}
			next.ServeHTTP(w, r)
		})
	}
}
