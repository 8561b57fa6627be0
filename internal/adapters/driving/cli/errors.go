package cli

import (
	"errors"

	"github.com/custodia-labs/reportctl/internal/core/domain"
)

// renderError formats a command failure by kind so that users can tell an
// expired login from a server side failure or an unreachable server.
func renderError(err error) string {
	var authErr *domain.AuthenticationError
	var remoteErr *domain.RemoteOperationError
	var transportErr *domain.TransportError

	switch {
	case errors.As(err, &authErr):
		return "Authentication failed: " + authErr.Message +
			"\nLog in again or pass --username to renew the session automatically."
	case errors.As(err, &remoteErr):
		return "Remote error [" + remoteErr.Code.String() + "]: " + remoteErr.Message
	case errors.As(err, &transportErr):
		cause := "unknown error"
		if transportErr.Err != nil {
			cause = transportErr.Err.Error()
		}
		if transportErr.Timeout {
			return "Connection timed out: " + cause
		}
		return "Connection failed: " + cause
	default:
		return "Error: " + err.Error()
	}
}
