package services

import (
	"context"
	"net/http"
	"sync"

	"github.com/custodia-labs/reportctl/internal/core/domain"
	"github.com/custodia-labs/reportctl/internal/core/ports/driven"
	"github.com/custodia-labs/reportctl/internal/logger"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "__ccPrivilegedAccessToken"

// Session holds the endpoint of a remote service and the credential sent
// with every call to it. The credential only changes through
// ReplaceCredential.
type Session struct {
	endpoint  domain.Endpoint
	refresher driven.TokenRefresher

	mu         sync.RWMutex
	credential string

	// renewMu serialises renewals so one expiry triggers one refresh.
	renewMu sync.Mutex
}

// NewSession creates a session. An empty token means no session has been
// issued yet. The refresher is optional; without it an expired session
// cannot be renewed.
func NewSession(endpoint domain.Endpoint, token string, refresher driven.TokenRefresher) *Session {
	return &Session{
		endpoint:   endpoint,
		refresher:  refresher,
		credential: token,
	}
}

// Endpoint returns the service address.
func (s *Session) Endpoint() domain.Endpoint {
	return s.endpoint
}

// Credential returns the current session token.
func (s *Session) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}

// CanRenew reports whether a refresher is configured.
func (s *Session) CanRenew() bool {
	return s.refresher != nil
}

// AttachCredential sets the session cookie on h, replacing any cookie
// already there, and returns the token it attached. Without a credential
// nothing is added.
func (s *Session) AttachCredential(h http.Header) string {
	token := s.Credential()
	if token == "" {
		return ""
	}
	h.Set("Cookie", SessionCookieName+"="+token)
	return token
}

// ReplaceCredential renews the credential after the server rejected stale.
// It returns true when a credential different from stale is now in place
// and the call is worth retrying.
func (s *Session) ReplaceCredential(ctx context.Context, stale string) bool {
	if s.refresher == nil {
		return false
	}

	s.renewMu.Lock()
	defer s.renewMu.Unlock()

	// Another caller renewed while we waited.
	if current := s.Credential(); current != "" && current != stale {
		logger.Debug("session already renewed to %s", logger.Redact(current))
		return true
	}

	token, err := s.refresher.RefreshToken(ctx)
	if err != nil {
		logger.Warn("session renewal failed: %v", err)
		return false
	}
	if token == "" {
		logger.Warn("session renewal returned no token")
		return false
	}

	s.mu.Lock()
	s.credential = token
	s.mu.Unlock()

	logger.Info("session renewed: %s -> %s", logger.Redact(stale), logger.Redact(token))
	return true
}
