package driven

import (
	"context"
	"net/http"

	"github.com/custodia-labs/reportctl/internal/core/domain"
)

// RemoteCall is one encoded invocation of a remote operation.
type RemoteCall struct {
	// Endpoint is the service the call is sent to.
	Endpoint domain.Endpoint
	// Method is the remote operation name.
	Method string
	// Args are the ordered arguments, forwarded without interpretation.
	Args []any
	// Header holds extra HTTP headers, including the session cookie.
	Header http.Header
}

// Transport sends a call and decodes its reply into result.
//
// Implementations must report failures using exactly one of the domain
// error kinds:
//   - *domain.AuthenticationError: the server rejected the session
//   - *domain.RemoteOperationError: any other failure reported by the server
//   - *domain.TransportError: no decodable reply (network, HTTP status,
//     malformed body, timeout, cancelled context)
type Transport interface {
	Call(ctx context.Context, call RemoteCall, result any) error
}
