// Package clientip resolves the originating client IP of an HTTP request
// behind proxies and CDNs.
//
// GetIP walks the usual forwarding headers (CF-Connecting-IP,
// X-Forwarded-For, X-Real-IP) and falls back to the socket address. All
// values are validated with net.ParseIP, so spoofed garbage in a header is
// ignored instead of leaking into logs or rate limiting keys.
//
// The middleware stores the resolved IP in the request context:
//
//	handler := clientip.Middleware(mux)
//
//	func someHandler(w http.ResponseWriter, r *http.Request) {
//	    ip := clientip.GetIPFromContext(r.Context())
//	    ...
//	}
//
// Note that forwarding headers are client-controlled unless a trusted proxy
// strips them; deploy behind infrastructure that sets them reliably.
package clientip
