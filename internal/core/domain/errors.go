package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent local failures that never reached the server.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates a required dependency was not wired.
	ErrNotImplemented = errors.New("not implemented")
)

// Remote call error kinds. Every failure returned by a remote operation
// matches exactly one of these through errors.Is.
var (
	// ErrAuthentication indicates the server rejected the session token.
	ErrAuthentication = errors.New("authentication failed")

	// ErrRemoteOperation indicates the server reported an application failure.
	ErrRemoteOperation = errors.New("remote operation failed")

	// ErrTransport indicates the call never produced a decodable reply.
	ErrTransport = errors.New("transport failure")
)

// ErrorCode is the failure category carried in a server error reply.
type ErrorCode int

// Error codes understood by the report server.
const (
	ErrorCodeDatabase     ErrorCode = 0
	ErrorCodeIOError      ErrorCode = 1
	ErrorCodeGeneral      ErrorCode = 2
	ErrorCodeAuthDenied   ErrorCode = 3
	ErrorCodeUnauthorized ErrorCode = 4
	ErrorCodeAPIMismatch  ErrorCode = 5
	ErrorCodeSourceFile   ErrorCode = 6
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCodeDatabase:     "DATABASE",
	ErrorCodeIOError:      "IOERROR",
	ErrorCodeGeneral:      "GENERAL",
	ErrorCodeAuthDenied:   "AUTH_DENIED",
	ErrorCodeUnauthorized: "UNAUTHORIZED",
	ErrorCodeAPIMismatch:  "API_MISMATCH",
	ErrorCodeSourceFile:   "SOURCE_FILE",
}

// String returns the wire name of the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// AuthenticationError is returned when the server signals that the session
// token is missing, invalid or expired.
type AuthenticationError struct {
	Method    string
	Message   string
	ExtraInfo []string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("%s: authentication denied: %s", e.Method, e.Message)
}

// Is reports whether target is ErrAuthentication.
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthentication
}

// RemoteOperationError is an application-level failure reported by the
// server: invalid arguments, missing resources, permission denied, database
// errors and the like.
type RemoteOperationError struct {
	Method    string
	Code      ErrorCode
	Message   string
	ExtraInfo []string
}

func (e *RemoteOperationError) Error() string {
	msg := fmt.Sprintf("%s: remote error [%s]: %s", e.Method, e.Code, e.Message)
	if len(e.ExtraInfo) > 0 {
		msg += " (" + strings.Join(e.ExtraInfo, "; ") + ")"
	}
	return msg
}

// Is reports whether target is ErrRemoteOperation.
func (e *RemoteOperationError) Is(target error) bool {
	return target == ErrRemoteOperation
}

// TransportError is a connection-level failure: the server could not be
// reached, answered with a non-success HTTP status, sent a malformed reply,
// or the call timed out.
type TransportError struct {
	Method     string
	StatusCode int
	Timeout    bool
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("%s: connection timed out: %v", e.Method, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: unexpected HTTP status %d: %v", e.Method, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("%s: connection failed: %v", e.Method, e.Err)
	}
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// NewRequestFailed builds the error for a server failure reply. AUTH_DENIED
// becomes an AuthenticationError; every other code a RemoteOperationError.
func NewRequestFailed(method string, code ErrorCode, message string, extraInfo []string) error {
	if code == ErrorCodeAuthDenied {
		return &AuthenticationError{Method: method, Message: message, ExtraInfo: extraInfo}
	}
	return &RemoteOperationError{Method: method, Code: code, Message: message, ExtraInfo: extraInfo}
}

// IsAuthentication checks if the error indicates a rejected session.
func IsAuthentication(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

// IsRemoteOperation checks if the error is an application failure reported by the server.
func IsRemoteOperation(err error) bool {
	return errors.Is(err, ErrRemoteOperation)
}

// IsTransport checks if the error is a connection-level failure.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// RemoteCode returns the server error code carried by err, if any.
func RemoteCode(err error) (ErrorCode, bool) {
	var remoteErr *RemoteOperationError
	if errors.As(err, &remoteErr) {
		return remoteErr.Code, true
	}
	var authErr *AuthenticationError
	if errors.As(err, &authErr) {
		return ErrorCodeAuthDenied, true
	}
	return 0, false
}
