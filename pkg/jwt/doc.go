// Package jwt implements HMAC-SHA256 signed tokens with an access/refresh
// pair model, dependency-free on purpose.
//
// The Service issues short-lived access tokens and long-lived refresh tokens,
// verifies them with constant-time signature checks and algorithm pinning,
// and supports in-process revocation.
//
// # Usage
//
//	svc, err := jwt.NewFromString(os.Getenv("JWT_SECRET"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pair, err := svc.IssueTokenPair("user-123", map[string]string{"role": "admin"})
//	// hand pair.AccessToken and pair.RefreshToken to the client
//
//	claims, err := svc.VerifyAccessToken(accessToken)
//	switch {
//	case errors.Is(err, jwt.ErrExpiredToken):
//	    // client should refresh
//	case err != nil:
//	    // reject
//	}
//
// When the access token expires, the client exchanges its refresh token:
//
//	access, err := svc.RefreshAccessToken(refreshToken)
//
// # Middleware
//
// Middleware guards HTTP handlers, extracting the token from the
// Authorization header by default and storing verified claims in the request
// context:
//
//	mux.Handle("/api/", jwt.Middleware(svc)(apiHandler))
//
//	func apiHandler(w http.ResponseWriter, r *http.Request) {
//	    userID := jwt.Subject(r.Context())
//	    ...
//	}
//
// Revocation is an in-memory set on the Service. It resets on restart and is
// not shared between instances; pair it with short access TTLs, or keep the
// blacklist in Redis when that matters.
package jwt
