// Package ratelimit provides process-local request admission control with two
// interchangeable algorithms: a token bucket (smooth, refill-based) and a
// sliding window (timestamp-based, exact under bursts).
//
// Both limiters satisfy the Limiter interface, so request-handling code can
// swap algorithms without changing call sites:
//
//	limiter, err := ratelimit.NewTokenBucket(100, time.Minute)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer limiter.Close()
//
//	if !limiter.Allow("client-1") {
//		// Deny the request; limiter.ResetTime("client-1") says how long
//		// until full quota is restored.
//	}
//
// # Choosing an algorithm
//
// The token bucket refills capacity continuously at limit/window tokens per
// second, which smooths throughput but lets a client that exhausts its
// capacity at the end of one window burst again shortly after. The sliding
// window counts exact admission timestamps in the trailing window and has no
// such boundary artifact:
//
//	limiter, err := ratelimit.NewSlidingWindow(100, time.Minute)
//
// # Per-client state and eviction
//
// Each limiter owns a sharded store of per-client records. Records untouched
// for longer than the idle timeout (four windows by default, capped at one
// hour) are removed by a background sweeper, bounding memory when client
// cardinality is unbounded, e.g. per-IP limiting against the public
// internet. An evicted client's next request behaves exactly like a first
// request.
//
// # HTTP middleware
//
// Middleware wires a limiter into an HTTP stack, keyed however the caller
// chooses:
//
//	keyFunc := ratelimit.Composite(
//		func(r *http.Request) string { return r.Header.Get("X-API-Key") },
//		clientip.GetIP,
//	)
//	handler := ratelimit.Middleware(limiter, keyFunc)(mux)
//
// It sets X-RateLimit-Limit, X-RateLimit-Remaining and X-RateLimit-Reset on
// every response and answers denied requests with a structured 429 body and
// a Retry-After header.
//
// # Time
//
// Limiters read time through the Clock interface. Tests inject a fake clock
// with WithClock and advance it deterministically instead of sleeping.
package ratelimit
