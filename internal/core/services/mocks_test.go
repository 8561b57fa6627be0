package services

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/custodia-labs/reportctl/internal/core/domain"
	"github.com/custodia-labs/reportctl/internal/core/ports/driven"
)

// reply is one scripted transport outcome.
type reply struct {
	result any
	err    error
}

// scriptedTransport returns the scripted replies in order and records every
// call. The last reply repeats once the script is exhausted.
type scriptedTransport struct {
	mu      sync.Mutex
	replies []reply
	calls   []driven.RemoteCall
}

func (m *scriptedTransport) Call(_ context.Context, call driven.RemoteCall, result any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, call)
	if len(m.replies) == 0 {
		return nil
	}
	idx := len(m.calls) - 1
	if idx >= len(m.replies) {
		idx = len(m.replies) - 1
	}
	r := m.replies[idx]
	if r.err != nil {
		return r.err
	}
	return decodeInto(r.result, result)
}

func (m *scriptedTransport) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *scriptedTransport) cookies() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, c := range m.calls {
		out = append(out, strings.Join(c.Header.Values("Cookie"), ","))
	}
	return out
}

// fakeServer accepts only the tokens in valid and answers every accepted
// call through handle.
type fakeServer struct {
	mu     sync.Mutex
	valid  map[string]bool
	handle func(call driven.RemoteCall) (any, error)
	calls  []driven.RemoteCall
}

func newFakeServer(handle func(call driven.RemoteCall) (any, error), validTokens ...string) *fakeServer {
	valid := make(map[string]bool)
	for _, t := range validTokens {
		valid[t] = true
	}
	return &fakeServer{valid: valid, handle: handle}
}

func (s *fakeServer) Call(_ context.Context, call driven.RemoteCall, result any) error {
	s.mu.Lock()
	s.calls = append(s.calls, call)
	token := strings.TrimPrefix(call.Header.Get("Cookie"), SessionCookieName+"=")
	ok := s.valid[token]
	s.mu.Unlock()

	if !ok {
		return domain.NewRequestFailed(call.Method, domain.ErrorCodeAuthDenied, "session expired", nil)
	}
	v, err := s.handle(call)
	if err != nil {
		return err
	}
	return decodeInto(v, result)
}

func (s *fakeServer) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func decodeInto(v, result any) error {
	if result == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, result)
}

func authDenied(method string) error {
	return domain.NewRequestFailed(method, domain.ErrorCodeAuthDenied, "session expired", nil)
}
