package jwt

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{ name string }

func (c contextKey) String() string { return c.name }

var (
	tokenContextKey  = &contextKey{name: "jwt"}        // raw JWT string
	claimsContextKey = &contextKey{name: "jwt_claims"} // verified Claims
)

// SetToken stores the raw JWT string in the context.
func SetToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// SetClaims stores verified claims in the context.
func SetClaims(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// GetToken returns the raw JWT string from the context.
// The second return value is false when no token was stored.
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok
}

// GetClaims returns the verified claims from the context.
// The second return value is false when no claims were stored.
func GetClaims(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(Claims)
	return claims, ok
}

// Subject returns the authenticated subject from the context, or an empty
// string for unauthenticated requests.
func Subject(ctx context.Context) string {
	claims, _ := GetClaims(ctx)
	return claims.Subject
}
