// Package httpserver provides a lightweight wrapper around net/http that adds
// graceful shutdown, configurable server timeouts and structured logging via
// slog, plus a chi router preloaded with the baseline middleware stack.
//
// The core type is Server. Run blocks until the context is cancelled or an
// interrupt/TERM signal is received, then shuts the server down using
// http.Server.Shutdown with a configurable deadline. Construction goes
// through New or NewFromConfig with Option helpers (WithAddr,
// WithReadTimeout, WithLogger, ...), and WithStartHook/WithStopHook run
// side effects around the server life cycle.
//
// # Usage
//
//	func main() {
//	    log := logger.New(logger.WithProduction("admission-service"))
//
//	    var cfg httpserver.Config
//	    config.MustLoad(&cfg)
//
//	    r := httpserver.NewRouter(log)
//	    r.Get("/healthz", checker.Handler())
//
//	    srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	    if err := srv.Run(context.Background(), r); err != nil {
//	        log.Error("server stopped", logger.Error(err))
//	    }
//	}
//
// # Errors
//
// Run wraps all listen errors with ErrStart, while Shutdown wraps underlying
// shutdown errors with ErrShutdown. Use errors.Is to distinguish them.
package httpserver
