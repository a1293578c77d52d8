package session

import "github.com/muurk/agri-advisor/internal/advisor"

// State is the current screen state. The concrete type is one of Idle,
// Loading, Success or Failure.
type State interface {
	// Name returns a short label for logs
	Name() string
	isState()
}

// Idle is the initial state: no request, result or error.
type Idle struct{}

// Loading means a request for Input is in flight.
type Loading struct {
	Input advisor.QueryInput
}

// Success holds the most recent result.
type Success struct {
	Result *advisor.QueryResult
}

// Failure holds the most recent error.
type Failure struct {
	Err *advisor.QueryError
}

func (Idle) Name() string    { return "idle" }
func (Loading) Name() string { return "loading" }
func (Success) Name() string { return "success" }
func (Failure) Name() string { return "failure" }

func (Idle) isState()    {}
func (Loading) isState() {}
func (Success) isState() {}
func (Failure) isState() {}

// Message returns the user-facing error text
func (f Failure) Message() string {
	return advisor.UserMessage(f.Err)
}

// IsLoading reports whether s is Loading
func IsLoading(s State) bool {
	_, ok := s.(Loading)
	return ok
}
