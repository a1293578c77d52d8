package advisor

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"syscall"
)

// User-facing messages, one per error category.
const (
	MsgValidation = "Please fill in both location and query fields."
	MsgTimeout    = "Request timed out. Please try again."
	MsgConnection = "Unable to connect to server. Please make sure the backend is running."
	MsgUnknown    = "Something went wrong. Please try again."
)

// ErrorType represents the category of a failed query
type ErrorType int

const (
	// ErrTypeValidation indicates an empty location or query (no request was sent)
	ErrTypeValidation ErrorType = iota
	// ErrTypeTimeout indicates the backend did not answer within the deadline
	ErrTypeTimeout
	// ErrTypeConnection indicates the backend could not be reached
	ErrTypeConnection
	// ErrTypeApplication indicates the backend answered with an "error" message
	ErrTypeApplication
	// ErrTypeUnknown covers everything else
	ErrTypeUnknown
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnection:
		return "Connection Error"
	case ErrTypeApplication:
		return "Application Error"
	case ErrTypeUnknown:
		return "Unknown Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// QueryError represents a failure of a single submit
type QueryError struct {
	Type       ErrorType // Category of error
	Message    string    // Message shown to the user
	StatusCode int       // HTTP status code (0 if no response was received)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *QueryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error
func NewValidationError(message string) *QueryError {
	return &QueryError{
		Type:    ErrTypeValidation,
		Message: message,
	}
}

// NewTimeoutError creates a timeout error
func NewTimeoutError(err error) *QueryError {
	return &QueryError{
		Type:    ErrTypeTimeout,
		Message: MsgTimeout,
		Err:     err,
	}
}

// NewConnectionError creates a backend-unreachable error
func NewConnectionError(err error) *QueryError {
	return &QueryError{
		Type:    ErrTypeConnection,
		Message: MsgConnection,
		Err:     err,
	}
}

// NewApplicationError creates an error carrying the backend's own message
func NewApplicationError(statusCode int, message string) *QueryError {
	return &QueryError{
		Type:       ErrTypeApplication,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewUnknownError creates a catch-all error
func NewUnknownError(statusCode int, err error) *QueryError {
	return &QueryError{
		Type:       ErrTypeUnknown,
		Message:    MsgUnknown,
		StatusCode: statusCode,
		Err:        err,
	}
}

// ClassifyTransportError maps an error returned while sending the request or
// reading the response to a QueryError. Timeouts take precedence over
// connection failures; anything unrecognised is unknown.
func ClassifyTransportError(err error) *QueryError {
	if err == nil {
		return nil
	}

	var qErr *QueryError
	if errors.As(err, &qErr) {
		return qErr
	}

	if isTimeout(err) {
		return NewTimeoutError(err)
	}

	if isConnectionFailure(err) {
		return NewConnectionError(err)
	}

	return NewUnknownError(0, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return false
}

func isConnectionFailure(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	// Some platforms only surface the dial failure as a *net.OpError
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}

	return false
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return hasType(err, ErrTypeValidation)
}

// IsTimeoutError checks if an error is a timeout
func IsTimeoutError(err error) bool {
	return hasType(err, ErrTypeTimeout)
}

// IsConnectionError checks if an error means the backend was unreachable
func IsConnectionError(err error) bool {
	return hasType(err, ErrTypeConnection)
}

// IsApplicationError checks if an error came from the backend's error payload
func IsApplicationError(err error) bool {
	return hasType(err, ErrTypeApplication)
}

func hasType(err error, t ErrorType) bool {
	var qErr *QueryError
	if errors.As(err, &qErr) {
		return qErr.Type == t
	}
	return false
}

// UserMessage returns the single sentence shown to the user for an error.
// Backend messages are passed through verbatim.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var qErr *QueryError
	if !errors.As(err, &qErr) {
		return MsgUnknown
	}

	switch qErr.Type {
	case ErrTypeValidation, ErrTypeApplication:
		if qErr.Message != "" {
			return qErr.Message
		}
		return MsgUnknown
	case ErrTypeTimeout:
		return MsgTimeout
	case ErrTypeConnection:
		return MsgConnection
	default:
		return MsgUnknown
	}
}

// TroubleshootingHints returns follow-up suggestions for an error
func TroubleshootingHints(err error, baseURL string) []string {
	var qErr *QueryError
	if !errors.As(err, &qErr) {
		return nil
	}

	switch qErr.Type {
	case ErrTypeValidation:
		return []string{
			"Provide both --location and --query",
			"Include the city and state/country in the location",
		}

	case ErrTypeTimeout:
		return []string{
			"The backend looks up weather and runs the AI model; it may be busy",
			"Try again in a few moments",
		}

	case ErrTypeConnection:
		hints := []string{
			"Check that the backend is running at " + baseURL,
			"Override the address with --api-url or AGRI_ADVISOR_API_URL",
			"Use 'agri-advisor discover' to look for a backend on the local network",
		}
		return hints

	case ErrTypeApplication:
		if qErr.StatusCode >= 500 {
			return []string{
				fmt.Sprintf("The backend reported an internal error (HTTP %d)", qErr.StatusCode),
				"Try again later",
			}
		}
		return []string{"Check the spelling of the location and rephrase the question"}

	default:
		hints := []string{"Try again"}
		if qErr.StatusCode != 0 {
			hints = append(hints, fmt.Sprintf("The backend answered with HTTP %d", qErr.StatusCode))
		}
		if qErr.Err != nil {
			hints = append(hints, "Details: "+strings.TrimSpace(qErr.Err.Error()))
		}
		return hints
	}
}
