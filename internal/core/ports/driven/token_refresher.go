package driven

import "context"

// TokenRefresher obtains a fresh session token after the server rejected
// the current one.
//
// Implementations usually perform a blocking round trip (a login call).
// An empty token with a nil error means no token is available.
type TokenRefresher interface {
	RefreshToken(ctx context.Context) (string, error)
}

// TokenRefresherFunc adapts a function to TokenRefresher.
type TokenRefresherFunc func(ctx context.Context) (string, error)

// RefreshToken calls f.
func (f TokenRefresherFunc) RefreshToken(ctx context.Context) (string, error) {
	return f(ctx)
}
