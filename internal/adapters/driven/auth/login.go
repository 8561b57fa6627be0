package auth

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/reportctl/internal/core/domain"
	"github.com/custodia-labs/reportctl/internal/core/ports/driven"
	"github.com/custodia-labs/reportctl/internal/logger"
)

const (
	// MethodPerformLogin is the login operation of the authentication service.
	MethodPerformLogin = "performLogin"

	// AuthMethodPassword selects username and password login.
	AuthMethodPassword = "Username:Password"
)

// PasswordFunc supplies the password on first use, e.g. by prompting.
type PasswordFunc func() (string, error)

// Ensure LoginSource implements oauth2.TokenSource.
var _ oauth2.TokenSource = (*LoginSource)(nil)

// LoginSource obtains session tokens by logging in. Each Token call is a
// new login; the password is requested once and reused.
type LoginSource struct {
	ctx       context.Context
	transport driven.Transport
	endpoint  domain.Endpoint
	username  string
	password  PasswordFunc

	mu           sync.Mutex
	cachedSecret string
}

// NewLoginSource creates a login token source. ctx bounds logins made
// through Token; TokenContext takes its own.
func NewLoginSource(
	ctx context.Context,
	transport driven.Transport,
	endpoint domain.Endpoint,
	username string,
	password PasswordFunc,
) *LoginSource {
	return &LoginSource{
		ctx:       ctx,
		transport: transport,
		endpoint:  endpoint,
		username:  username,
		password:  password,
	}
}

// Token implements oauth2.TokenSource.
func (s *LoginSource) Token() (*oauth2.Token, error) {
	return s.TokenContext(s.ctx)
}

// TokenContext logs in bounded by ctx instead of the context the source
// was built with.
func (s *LoginSource) TokenContext(ctx context.Context) (*oauth2.Token, error) {
	token, err := s.Login(ctx)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{AccessToken: token}, nil
}

// Login performs one login and returns the session token.
func (s *LoginSource) Login(ctx context.Context) (string, error) {
	if s.transport == nil {
		return "", fmt.Errorf("login: %w: transport not configured", domain.ErrNotImplemented)
	}
	if s.username == "" {
		return "", fmt.Errorf("login: %w: username is required", domain.ErrInvalidInput)
	}

	secret, err := s.secret()
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	logger.Debug("logging in to %s as %s", s.endpoint, s.username)

	var token string
	err = s.transport.Call(ctx, driven.RemoteCall{
		Endpoint: s.endpoint,
		Method:   MethodPerformLogin,
		Args:     []any{AuthMethodPassword, s.username + ":" + secret},
	}, &token)
	if err != nil {
		if domain.IsAuthentication(err) {
			s.forgetSecret()
		}
		return "", fmt.Errorf("login as %s: %w", s.username, err)
	}
	return token, nil
}

func (s *LoginSource) secret() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cachedSecret != "" {
		return s.cachedSecret, nil
	}
	if s.password == nil {
		return "", fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}
	pw, err := s.password()
	if err != nil {
		return "", err
	}
	s.cachedSecret = pw
	return pw, nil
}

func (s *LoginSource) forgetSecret() {
	s.mu.Lock()
	s.cachedSecret = ""
	s.mu.Unlock()
}
