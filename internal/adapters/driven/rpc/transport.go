package rpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/reportctl/internal/core/domain"
	"github.com/custodia-labs/reportctl/internal/core/ports/driven"
)

const (
	// DefaultTimeout bounds one HTTP round trip.
	DefaultTimeout = 60 * time.Second

	// maxErrorBody is how much of a non-success reply is kept for the error.
	maxErrorBody = 512
)

// Ensure Transport implements the interface.
var _ driven.Transport = (*Transport)(nil)

// Config holds transport settings.
type Config struct {
	// Timeout bounds one HTTP round trip. Zero uses DefaultTimeout.
	Timeout time.Duration
	// RateLimit is the maximum number of requests per second. Zero disables throttling.
	RateLimit float64
	// UserAgent is sent with every request when set.
	UserAgent string
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

// Transport sends JSON-RPC requests over HTTP.
type Transport struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// New creates a transport.
func New(cfg Config) *Transport {
	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	return &Transport{
		client:    client,
		limiter:   limiter,
		userAgent: cfg.UserAgent,
	}
}

// Call posts the call to its endpoint and decodes the reply into result.
func (t *Transport) Call(ctx context.Context, call driven.RemoteCall, result any) error {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return limiterError(ctx, call.Method, err)
		}
	}

	id, body, err := encodeRequest(call.Method, call.Args)
	if err != nil {
		return &domain.TransportError{Method: call.Method, Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, call.Endpoint.URL(), bytes.NewReader(body))
	if err != nil {
		return &domain.TransportError{Method: call.Method, Err: err}
	}
	for key, values := range call.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return transportError(call.Method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &domain.TransportError{
			Method:     call.Method,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(snippet))),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(call.Method, err)
	}

	return decodeReply(call.Method, id, data, result)
}

// transportError wraps a connection failure, flagging timeouts.
func transportError(method string, err error) error {
	return &domain.TransportError{Method: method, Err: err, Timeout: isTimeout(err)}
}

// limiterError reports a failed rate limiter wait. The limiter refuses to
// wait past the deadline without returning context.DeadlineExceeded.
func limiterError(ctx context.Context, method string, err error) error {
	_, hasDeadline := ctx.Deadline()
	if hasDeadline && !errors.Is(err, context.Canceled) {
		return &domain.TransportError{
			Method:  method,
			Err:     fmt.Errorf("rate limit: %w: %v", context.DeadlineExceeded, err),
			Timeout: true,
		}
	}
	return transportError(method, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
