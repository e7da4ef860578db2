// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// The package standardises structured logging across services through a
// single factory, New, that creates a *slog.Logger configured by Option
// functions: output format (text or json), minimum level, static default
// attributes, and ContextExtractor callbacks that pull request-scoped values
// (such as a request id) out of the context on every record.
//
// # Usage
//
//	import "github.com/dmitrymomot/apikit/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithProduction("admission-service"),
//	        logger.WithContextExtractors(requestid.LoggerExtractor()),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.InfoContext(ctx, "request admitted",
//	        logger.ClientID(key),
//	        logger.Duration(time.Since(start)),
//	    )
//	}
//
// Helper constructors such as Group, Error, RequestID and Duration live in
// attr.go and keep attribute naming consistent across the codebase. Error and
// Errors produce attributes only for non-nil errors, so they can be passed
// unconditionally.
package logger
