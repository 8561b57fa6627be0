package auth

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/reportctl/internal/core/domain"
	"github.com/custodia-labs/reportctl/internal/core/ports/driven"
)

// mockTransport answers performLogin for one username and password.
type mockTransport struct {
	user, pass string
	token      string
	calls      []driven.RemoteCall
	ctxs       []context.Context
	err        error
}

func (m *mockTransport) Call(ctx context.Context, call driven.RemoteCall, result any) error {
	m.calls = append(m.calls, call)
	m.ctxs = append(m.ctxs, ctx)
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.err != nil {
		return m.err
	}
	if call.Args[1] != m.user+":"+m.pass {
		return domain.NewRequestFailed(call.Method, domain.ErrorCodeAuthDenied, "invalid credentials", nil)
	}
	b, _ := json.Marshal(m.token)
	return json.Unmarshal(b, result)
}

func authEndpoint(t *testing.T) domain.Endpoint {
	t.Helper()
	ep, err := domain.NewEndpoint("http", "localhost", 8001, "/v6/Authentication")
	require.NoError(t, err)
	return ep
}

func staticPassword(pw string, prompts *int) PasswordFunc {
	return func() (string, error) {
		*prompts++
		return pw, nil
	}
}

func TestLoginSource_Login(t *testing.T) {
	tr := &mockTransport{user: "alice", pass: "secret", token: "tok2"}
	prompts := 0
	src := NewLoginSource(context.Background(), tr, authEndpoint(t), "alice", staticPassword("secret", &prompts))

	token, err := src.Login(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "tok2", token)
	require.Len(t, tr.calls, 1)
	assert.Equal(t, "performLogin", tr.calls[0].Method)
	assert.Equal(t, []any{"Username:Password", "alice:secret"}, tr.calls[0].Args)
	assert.Equal(t, "/v6/Authentication", tr.calls[0].Endpoint.Path)
}

func TestLoginSource_PromptsOnce(t *testing.T) {
	tr := &mockTransport{user: "alice", pass: "secret", token: "tok"}
	prompts := 0
	src := NewLoginSource(context.Background(), tr, authEndpoint(t), "alice", staticPassword("secret", &prompts))

	for i := 0; i < 3; i++ {
		_, err := src.Token()
		require.NoError(t, err)
	}

	assert.Equal(t, 1, prompts)
	assert.Len(t, tr.calls, 3)
}

func TestLoginSource_WrongPasswordForgetsSecret(t *testing.T) {
	tr := &mockTransport{user: "alice", pass: "secret", token: "tok"}
	prompts := 0
	src := NewLoginSource(context.Background(), tr, authEndpoint(t), "alice", staticPassword("wrong", &prompts))

	_, err := src.Login(context.Background())
	assert.True(t, domain.IsAuthentication(err))

	_, err = src.Login(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 2, prompts)
}

func TestLoginSource_Errors(t *testing.T) {
	ep := authEndpoint(t)

	_, err := NewLoginSource(context.Background(), nil, ep, "alice", nil).Login(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	_, err = NewLoginSource(context.Background(), &mockTransport{}, ep, "", nil).Login(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewLoginSource(context.Background(), &mockTransport{}, ep, "alice", nil).Login(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	promptErr := errors.New("no terminal")
	_, err = NewLoginSource(context.Background(), &mockTransport{}, ep, "alice", func() (string, error) {
		return "", promptErr
	}).Login(context.Background())
	assert.ErrorIs(t, err, promptErr)

	trErr := &domain.TransportError{Method: "performLogin", Err: errors.New("refused")}
	_, err = NewLoginSource(context.Background(), &mockTransport{err: trErr}, ep, "alice", func() (string, error) {
		return "pw", nil
	}).Login(context.Background())
	assert.True(t, domain.IsTransport(err))
}

func TestFromTokenSource(t *testing.T) {
	r := FromTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "tok2"}))

	token, err := r.RefreshToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "tok2", token)
}

func TestFromTokenSource_Login(t *testing.T) {
	tr := &mockTransport{user: "alice", pass: "secret", token: "tok3"}
	prompts := 0
	r := FromTokenSource(NewLoginSource(context.Background(), tr, authEndpoint(t), "alice",
		staticPassword("secret", &prompts)))

	token, err := r.RefreshToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "tok3", token)
}

func TestFromTokenSource_LoginUsesRefreshContext(t *testing.T) {
	type ctxKey struct{}
	tr := &mockTransport{user: "alice", pass: "secret", token: "tok4"}
	prompts := 0
	r := FromTokenSource(NewLoginSource(context.Background(), tr, authEndpoint(t), "alice",
		staticPassword("secret", &prompts)))

	ctx := context.WithValue(context.Background(), ctxKey{}, "request")
	token, err := r.RefreshToken(ctx)

	require.NoError(t, err)
	assert.Equal(t, "tok4", token)
	require.Len(t, tr.ctxs, 1)
	assert.Equal(t, "request", tr.ctxs[0].Value(ctxKey{}))
}

func TestLoginSource_TokenContextCancelled(t *testing.T) {
	tr := &mockTransport{user: "alice", pass: "secret", token: "tok5"}
	prompts := 0
	src := NewLoginSource(context.Background(), tr, authEndpoint(t), "alice", staticPassword("secret", &prompts))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := src.TokenContext(ctx)

	assert.ErrorIs(t, err, context.Canceled)

	tok, err := src.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok5", tok.AccessToken)
}

func TestFromTokenSource_Error(t *testing.T) {
	tr := &mockTransport{user: "alice", pass: "secret"}
	prompts := 0
	r := FromTokenSource(NewLoginSource(context.Background(), tr, authEndpoint(t), "alice",
		staticPassword("wrong", &prompts)))

	token, err := r.RefreshToken(context.Background())

	assert.Empty(t, token)
	assert.True(t, domain.IsAuthentication(err))
}

func TestFromTokenSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FromTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "x"})).RefreshToken(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
