package session

import (
	"context"
	"sync"

	"github.com/muurk/agri-advisor/internal/advisor"
)

// Asker sends one query to the backend. *advisor.Client implements it.
type Asker interface {
	Ask(ctx context.Context, input advisor.QueryInput) (*advisor.QueryResult, error)
}

// Dispatcher runs submits to completion against a session. It is used by
// the non-interactive ask command and by tests; the terminal UI drives
// Session directly so it can keep redrawing while a request is in flight.
type Dispatcher struct {
	mu      sync.Mutex
	asker   Asker
	session *Session
}

// NewDispatcher returns a dispatcher over a fresh session
func NewDispatcher(asker Asker) *Dispatcher {
	return &Dispatcher{
		asker:   asker,
		session: New(),
	}
}

// Submit validates the fields, performs at most one backend call and
// returns the resulting state (Success or Failure). A submit made while
// another is in flight returns ErrBusy and the unchanged Loading state.
func (d *Dispatcher) Submit(ctx context.Context, location, query string) (State, error) {
	d.mu.Lock()
	input, ticket, err := d.session.Begin(location, query)
	state := d.session.State()
	d.mu.Unlock()

	if err != nil {
		return state, err
	}

	result, askErr := d.asker.Ask(ctx, input)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.session.Resolve(ticket, result, askErr)
	return d.session.State(), askErr
}

// Dismiss clears a displayed error
func (d *Dispatcher) Dismiss() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.session.Dismiss()
}

// State returns the current state
func (d *Dispatcher) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.session.State()
}
