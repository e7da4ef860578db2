// Package requestid propagates request correlation identifiers through HTTP
// headers, context, and structured logs.
//
// Middleware attaches an ID to each request: a valid client-supplied
// X-Request-ID header is reused, otherwise a UUIDv4 is generated. The ID is
// stored in the request context and echoed back to the client.
//
//	http.ListenAndServe(":8080", requestid.Middleware(mux))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    id := requestid.FromContext(r.Context())
//	    ...
//	}
//
// LoggerExtractor plugs into the logger package so every log record emitted
// with the request context carries the request_id attribute.
//
// The package does not return errors; invalid client IDs are silently
// replaced.
package requestid
