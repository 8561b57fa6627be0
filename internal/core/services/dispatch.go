package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/custodia-labs/reportctl/internal/core/domain"
	"github.com/custodia-labs/reportctl/internal/core/ports/driven"
	"github.com/custodia-labs/reportctl/internal/logger"
)

// Dispatcher sends remote calls on behalf of a session. A call rejected
// for authentication is retried once after the session has been renewed;
// every other failure is returned as is.
type Dispatcher struct {
	session   *Session
	transport driven.Transport
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(session *Session, transport driven.Transport) *Dispatcher {
	return &Dispatcher{
		session:   session,
		transport: transport,
	}
}

// Session returns the session the dispatcher authenticates with.
func (d *Dispatcher) Session() *Session {
	return d.session
}

// Call performs method with the ordered args and decodes the reply into
// result, which must be a pointer.
func (d *Dispatcher) Call(ctx context.Context, method string, args []any, result any) error {
	if d.transport == nil || d.session == nil {
		return fmt.Errorf("%s: %w: transport not configured", method, domain.ErrNotImplemented)
	}

	stale, err := d.attempt(ctx, method, args, result)
	if err == nil {
		return nil
	}
	if !domain.IsAuthentication(err) {
		logger.Warn("%v", err)
		return err
	}

	logger.Info("%s: session %s rejected, renewing", method, logger.Redact(stale))
	if !d.session.ReplaceCredential(ctx, stale) {
		logger.Warn("%v", err)
		return err
	}

	if _, err := d.attempt(ctx, method, args, result); err != nil {
		logger.Warn("%s: retry failed: %v", method, err)
		return err
	}
	return nil
}

func (d *Dispatcher) attempt(ctx context.Context, method string, args []any, result any) (string, error) {
	header := make(http.Header)
	token := d.session.AttachCredential(header)

	logger.Debug("call %s %s (session %s)", d.session.Endpoint(), method, logger.Redact(token))

	err := d.transport.Call(ctx, driven.RemoteCall{
		Endpoint: d.session.Endpoint(),
		Method:   method,
		Args:     args,
		Header:   header,
	}, result)
	return token, err
}

// Operation describes a remote operation returning R.
type Operation[R any] struct {
	// Name is the method name sent on the wire.
	Name string
	// Params are the ordered parameter names.
	Params []string
	// Group is the catalog section the operation is listed under.
	Group string
}

// Descriptor returns the untyped description of the operation.
func (o Operation[R]) Descriptor() Descriptor {
	return Descriptor{Name: o.Name, Params: o.Params, Group: o.Group}
}

// Descriptor is an entry of the call catalog.
type Descriptor struct {
	Name   string   `json:"name"`
	Params []string `json:"params"`
	Group  string   `json:"group"`
}

// Invoke calls op through d with args in parameter order and returns the
// decoded result.
func Invoke[R any](ctx context.Context, d *Dispatcher, op Operation[R], args ...any) (R, error) {
	var result R
	if len(args) != len(op.Params) {
		return result, fmt.Errorf("%s: %w: takes %d arguments, got %d",
			op.Name, domain.ErrInvalidInput, len(op.Params), len(args))
	}
	if err := d.Call(ctx, op.Name, args, &result); err != nil {
		var zero R
		return zero, err
	}
	return result, nil
}
