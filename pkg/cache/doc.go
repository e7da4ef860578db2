// Package cache provides two complementary cache backends sharing the same
// semantics: an in-process generic TTL cache for per-instance state and a
// Redis-backed cache for state shared between processes.
//
// # In-memory cache
//
// Memory is a generic, mutex-guarded map with per-entry expiration. Expired
// entries are removed lazily on read and purged in bulk when the cache hits
// its size limit; if purging frees nothing, the entry closest to expiry is
// evicted to make room.
//
//	c := cache.NewMemory[string, User]()
//	c.Set("u:42", user)
//	if u, ok := c.Get("u:42"); ok {
//	    // fresh value
//	}
//
// # Redis cache
//
// Redis wraps a go-redis client and stores values as JSON under an optional
// key prefix. All operations take a context and return explicit errors;
// a missing key is reported as ErrCacheMiss.
//
//	client, err := cache.Connect(ctx, cfg)
//	if err != nil {
//	    // handle error, probably terminate the application
//	}
//	defer client.Close()
//
//	rc := cache.NewRedis(client, cache.WithKeyPrefix("myapp:"))
//	if err := rc.Set(ctx, "u:42", user); err != nil {
//	    log.Fatal(err)
//	}
//
//	var u User
//	switch err := rc.Get(ctx, "u:42", &u); {
//	case errors.Is(err, cache.ErrCacheMiss):
//	    // load from source
//	case err != nil:
//	    // transport failure
//	}
//
// Connect retries with the configured interval until the server answers PING
// or the connect timeout expires. Healthcheck returns a probe function that
// integrates with readiness checks.
package cache
