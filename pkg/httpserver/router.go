package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/apikit/pkg/clientip"
	"github.com/dmitrymomot/apikit/pkg/middleware"
	"github.com/dmitrymomot/apikit/pkg/requestid"
)

// NewRouter builds a chi router preloaded with the baseline middleware every
// service wants: panic recovery, request IDs, client IP resolution and
// request timing. Additional middleware are appended after the baseline so
// they see the enriched request context.
func NewRouter(log *slog.Logger, extra ...func(http.Handler) http.Handler) chi.Router {
	if log == nil {
		log = newNoopLogger()
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(middleware.Timing(middleware.WithTimingLogger(log)))
	for _, mw := range extra {
		r.Use(mw)
	}
	return r
}
