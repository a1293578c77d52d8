package advisor

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"
	"testing"
)

// timeoutError implements net.Error with Timeout() == true
type timeoutError struct{}

func (e *timeoutError) Error() string   { return "i/o timeout" }
func (e *timeoutError) Timeout() bool   { return true }
func (e *timeoutError) Temporary() bool { return true }

func TestClassifyTransportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{
			name: "deadline exceeded",
			err:  &url.Error{Op: "Post", URL: "http://localhost:5000/api/ask", Err: context.DeadlineExceeded},
			want: ErrTypeTimeout,
		},
		{
			name: "net timeout",
			err: &url.Error{Op: "Post", URL: "http://localhost:5000/api/ask", Err: &net.OpError{
				Op: "read", Net: "tcp", Err: &timeoutError{},
			}},
			want: ErrTypeTimeout,
		},
		{
			name: "connection refused",
			err: &url.Error{Op: "Post", URL: "http://localhost:5000/api/ask", Err: &net.OpError{
				Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED,
			}},
			want: ErrTypeConnection,
		},
		{
			name: "host unreachable",
			err:  fmt.Errorf("send: %w", syscall.EHOSTUNREACH),
			want: ErrTypeConnection,
		},
		{
			name: "dns failure",
			err: &url.Error{Op: "Post", URL: "http://nosuchhost:5000/api/ask", Err: &net.OpError{
				Op: "dial", Net: "tcp", Err: &net.DNSError{Err: "no such host", Name: "nosuchhost"},
			}},
			want: ErrTypeConnection,
		},
		{
			name: "caller cancelled",
			err:  &url.Error{Op: "Post", URL: "http://localhost:5000/api/ask", Err: context.Canceled},
			want: ErrTypeUnknown,
		},
		{
			name: "anything else",
			err:  errors.New("tls: bad certificate"),
			want: ErrTypeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qErr := ClassifyTransportError(tt.err)
			if qErr == nil {
				t.Fatal("ClassifyTransportError() = nil, want error")
			}
			if qErr.Type != tt.want {
				t.Errorf("Type = %v, want %v", qErr.Type, tt.want)
			}
			if !errors.Is(qErr, tt.err) {
				t.Error("classified error should wrap the original")
			}
		})
	}
}

func TestClassifyTransportError_Nil(t *testing.T) {
	if ClassifyTransportError(nil) != nil {
		t.Error("ClassifyTransportError(nil) should return nil")
	}
}

func TestClassifyTransportError_KeepsQueryError(t *testing.T) {
	orig := NewApplicationError(404, "Could not find location")
	wrapped := fmt.Errorf("ask: %w", orig)

	if got := ClassifyTransportError(wrapped); got != orig {
		t.Errorf("ClassifyTransportError() = %v, want original QueryError", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"validation", NewValidationError(MsgValidation), MsgValidation},
		{"timeout", NewTimeoutError(context.DeadlineExceeded), MsgTimeout},
		{"connection", NewConnectionError(syscall.ECONNREFUSED), MsgConnection},
		{"application verbatim", NewApplicationError(400, "  Could not find location  "), "  Could not find location  "},
		{"application empty", NewApplicationError(400, ""), MsgUnknown},
		{"unknown", NewUnknownError(500, errors.New("boom")), MsgUnknown},
		{"plain error", errors.New("boom"), MsgUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		et   ErrorType
		want string
	}{
		{ErrTypeValidation, "Validation Error"},
		{ErrTypeTimeout, "Timeout"},
		{ErrTypeConnection, "Connection Error"},
		{ErrTypeApplication, "Application Error"},
		{ErrTypeUnknown, "Unknown Error"},
		{ErrorType(42), "ErrorType(42)"},
	}

	for _, tt := range tests {
		if got := tt.et.String(); got != tt.want {
			t.Errorf("ErrorType(%d).String() = %q, want %q", int(tt.et), got, tt.want)
		}
	}
}

func TestQueryError_Error(t *testing.T) {
	err := NewUnknownError(502, errors.New("bad gateway"))
	msg := err.Error()

	if !strings.Contains(msg, "Unknown Error") || !strings.Contains(msg, "bad gateway") {
		t.Errorf("Error() = %q, want type and cause", msg)
	}
}

func TestTroubleshootingHints(t *testing.T) {
	hints := TroubleshootingHints(NewConnectionError(syscall.ECONNREFUSED), "http://localhost:5000")

	if len(hints) == 0 {
		t.Fatal("expected hints for connection error")
	}
	if !strings.Contains(hints[0], "http://localhost:5000") {
		t.Errorf("first hint = %q, want it to mention the backend URL", hints[0])
	}

	if TroubleshootingHints(errors.New("plain"), "") != nil {
		t.Error("expected no hints for a non-QueryError")
	}
}
