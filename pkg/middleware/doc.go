// Package middleware collects generic HTTP middleware shared between
// services: request timing with slow-request logging and CORS handling.
//
// Timing stamps every response with X-Response-Time and writes a structured
// log record per request; anything above the configured threshold is logged
// at warning level:
//
//	handler := middleware.Timing(
//	    middleware.WithSlowRequestThreshold(500*time.Millisecond),
//	)(mux)
//
// CORS answers preflight OPTIONS requests and sets the Access-Control
// headers for allowed origins:
//
//	handler = middleware.CORS(middleware.CORSConfig{
//	    AllowOrigins: []string{"https://app.example.com"},
//	})(handler)
//
// Request-scoped middleware with their own packages (request IDs, client IP
// resolution, authentication, rate limiting) live next to the code they
// serve; this package holds only the pieces with no better home.
package middleware
