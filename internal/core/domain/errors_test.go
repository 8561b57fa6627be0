package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrAlreadyExists", ErrAlreadyExists},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrAuthentication", ErrAuthentication},
		{"ErrRemoteOperation", ErrRemoteOperation},
		{"ErrTransport", ErrTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Uniqueness tests that all errors are distinct
func TestErrors_Uniqueness(t *testing.T) {
	allErrors := []error{
		ErrNotFound,
		ErrAlreadyExists,
		ErrInvalidInput,
		ErrNotImplemented,
		ErrAuthentication,
		ErrRemoteOperation,
		ErrTransport,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j {
				assert.False(t, errors.Is(err1, err2),
					"Error %v should not match error %v", err1, err2)
			}
		}
	}
}

func TestNewRequestFailed_AuthDenied(t *testing.T) {
	err := NewRequestFailed("getRunData", ErrorCodeAuthDenied, "session expired", nil)

	var authErr *AuthenticationError
	assert.True(t, errors.As(err, &authErr))
	assert.Equal(t, "getRunData", authErr.Method)
	assert.Equal(t, "session expired", authErr.Message)
	assert.True(t, IsAuthentication(err))
	assert.False(t, IsRemoteOperation(err))
	assert.False(t, IsTransport(err))
}

func TestNewRequestFailed_OtherCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrorCodeDatabase,
		ErrorCodeIOError,
		ErrorCodeGeneral,
		ErrorCodeUnauthorized,
		ErrorCodeAPIMismatch,
		ErrorCodeSourceFile,
	}

	for _, code := range codes {
		t.Run(code.String(), func(t *testing.T) {
			err := NewRequestFailed("changeReviewStatus", code, "boom", []string{"x"})

			var remoteErr *RemoteOperationError
			assert.True(t, errors.As(err, &remoteErr))
			assert.Equal(t, code, remoteErr.Code)
			assert.Equal(t, []string{"x"}, remoteErr.ExtraInfo)
			assert.True(t, IsRemoteOperation(err))
			assert.False(t, IsAuthentication(err))
		})
	}
}

func TestRemoteOperationError_Message(t *testing.T) {
	err := &RemoteOperationError{
		Method:    "changeReviewStatus",
		Code:      ErrorCodeDatabase,
		Message:   "report 42 not found",
		ExtraInfo: []string{"id=42"},
	}

	assert.Equal(t, "changeReviewStatus: remote error [DATABASE]: report 42 not found (id=42)", err.Error())
}

func TestTransportError_Messages(t *testing.T) {
	cause := errors.New("dial tcp: refused")

	assert.Contains(t, (&TransportError{Method: "m", Err: cause}).Error(), "connection failed")
	assert.Contains(t, (&TransportError{Method: "m", Err: cause, Timeout: true}).Error(), "timed out")
	assert.Contains(t, (&TransportError{Method: "m", Err: cause, StatusCode: 502}).Error(), "HTTP status 502")
}

func TestTransportError_Unwrap(t *testing.T) {
	err := &TransportError{Method: "getRunData", Err: context.DeadlineExceeded, Timeout: true}
	wrapped := fmt.Errorf("list runs: %w", err)

	assert.True(t, errors.Is(wrapped, context.DeadlineExceeded))
	assert.True(t, IsTransport(wrapped))
	assert.False(t, IsAuthentication(wrapped))
}

func TestRemoteCode(t *testing.T) {
	code, ok := RemoteCode(fmt.Errorf("wrapped: %w", &RemoteOperationError{Code: ErrorCodeUnauthorized}))
	assert.True(t, ok)
	assert.Equal(t, ErrorCodeUnauthorized, code)

	code, ok = RemoteCode(&AuthenticationError{})
	assert.True(t, ok)
	assert.Equal(t, ErrorCodeAuthDenied, code)

	_, ok = RemoteCode(&TransportError{Err: errors.New("x")})
	assert.False(t, ok)
}

func TestErrorCode_String(t *testing.T) {
	assert.Equal(t, "AUTH_DENIED", ErrorCodeAuthDenied.String())
	assert.Equal(t, "API_MISMATCH", ErrorCodeAPIMismatch.String())
	assert.Equal(t, "ErrorCode(99)", ErrorCode(99).String())
}
