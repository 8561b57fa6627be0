package auth

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/reportctl/internal/core/ports/driven"
)

// ContextTokenSource is a token source that can bound a single fetch by a
// caller's context.
type ContextTokenSource interface {
	TokenContext(ctx context.Context) (*oauth2.Token, error)
}

// TokenSourceRefresher adapts an oauth2.TokenSource to driven.TokenRefresher.
type TokenSourceRefresher struct {
	source oauth2.TokenSource
}

// Ensure TokenSourceRefresher implements the interface.
var _ driven.TokenRefresher = (*TokenSourceRefresher)(nil)

// FromTokenSource creates a refresher that takes a new token from ts on
// every renewal. ts should not cache tokens; oauth2.ReuseTokenSource would
// hand back the token the server just rejected.
func FromTokenSource(ts oauth2.TokenSource) *TokenSourceRefresher {
	return &TokenSourceRefresher{source: ts}
}

// RefreshToken implements driven.TokenRefresher.
func (r *TokenSourceRefresher) RefreshToken(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var (
		tok *oauth2.Token
		err error
	)
	if cs, ok := r.source.(ContextTokenSource); ok {
		tok, err = cs.TokenContext(ctx)
	} else {
		tok, err = r.source.Token()
	}
	if err != nil {
		return "", err
	}
	if tok == nil {
		return "", nil
	}
	return tok.AccessToken, nil
}
