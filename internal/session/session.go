package session

import (
	"errors"

	"go.uber.org/zap"

	"github.com/muurk/agri-advisor/internal/advisor"
	"github.com/muurk/agri-advisor/internal/logging"
)

// ErrBusy is returned by Begin while a request is already in flight
var ErrBusy = errors.New("a request is already in progress")

// Session tracks the state of the screen across submits
type Session struct {
	state  State
	ticket uint64
}

// New returns a session in the Idle state
func New() *Session {
	return &Session{state: Idle{}}
}

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// Begin validates the fields and, when valid, moves to Loading and returns
// the trimmed input and the ticket to pass to Resolve.
//
// Invalid input moves to Failure with a validation error (any previous
// result is cleared) and returns that error. While Loading, Begin returns
// ErrBusy and leaves the state unchanged.
func (s *Session) Begin(location, query string) (advisor.QueryInput, uint64, error) {
	// One request at a time
	if IsLoading(s.state) {
		return advisor.QueryInput{}, 0, ErrBusy
	}

	input, err := advisor.NewQueryInput(location, query)
	if err != nil {
		s.transition(Failure{Err: advisor.ClassifyTransportError(err)})
		return advisor.QueryInput{}, 0, err
	}

	// New ticket; older resolutions become stale
	s.ticket++
	s.transition(Loading{Input: input})
	return input, s.ticket, nil
}

// Resolve completes the request identified by ticket. A result moves to
// Success; an error moves to Failure. Stale tickets are ignored; the return
// value reports whether the resolution was applied.
func (s *Session) Resolve(ticket uint64, result *advisor.QueryResult, err error) bool {
	if !IsLoading(s.state) || ticket != s.ticket {
		logging.Debug("Ignoring stale resolution",
			zap.Uint64("ticket", ticket),
			zap.Uint64("current", s.ticket),
			zap.String("state", s.state.Name()),
		)
		return false
	}

	switch {
	case err != nil:
		s.transition(Failure{Err: advisor.ClassifyTransportError(err)})
	case result == nil:
		s.transition(Failure{Err: advisor.NewUnknownError(0, errors.New("empty result"))})
	default:
		s.transition(Success{Result: result})
	}
	return true
}

// Dismiss clears a displayed error. It has no effect in any other state.
func (s *Session) Dismiss() {
	if _, ok := s.state.(Failure); ok {
		s.transition(Idle{})
	}
}

// Ticket returns the ticket of the most recent Begin
func (s *Session) Ticket() uint64 {
	return s.ticket
}

func (s *Session) transition(next State) {
	fields := []zap.Field{zap.Uint64("ticket", s.ticket)}
	if f, ok := next.(Failure); ok && f.Err != nil {
		fields = append(fields, zap.String("error_type", f.Err.Type.String()))
	}
	logging.LogStateChange(s.state.Name(), next.Name(), fields...)
	s.state = next
}
