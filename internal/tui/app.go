package tui

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/agri-advisor/internal/advisor"
	"github.com/muurk/agri-advisor/internal/logging"
	"github.com/muurk/agri-advisor/internal/session"
	"github.com/muurk/agri-advisor/internal/ui"
)

const (
	// CopiedDuration is how long "Copied!" is shown after a copy
	CopiedDuration = 2 * time.Second

	loadingTick = 250 * time.Millisecond
)

// Loading screen text
const (
	LoadingTitle    = "Analyzing your query and weather conditions..."
	LoadingSubtitle = "This may take a few moments"
)

// Messages for async operations
type resultMsg struct {
	ticket uint64
	result *advisor.QueryResult
	err    error
}

type loadingTickMsg struct {
	ticket uint64
}

type copiedResetMsg struct {
	gen int
}

// Options configures the application model
type Options struct {
	BaseURL         string        // Shown in the header
	DefaultLocation string        // Prefills the location field
	Zoom            int           // Map tile zoom
	TileTemplate    string        // Map tile URL template
	Timeout         time.Duration // Request deadline, for the progress bar
}

// AppModel is the top-level model: the form, and below it whatever the
// session state calls for (tips, progress, results or the error box)
type AppModel struct {
	Session *session.Session
	Asker   session.Asker
	Options Options

	Form     FormModel
	Spinner  spinner.Model
	Bar      *ui.DeadlineBar
	Viewport viewport.Model

	// UI state
	Width        int
	Height       int
	LoadingSince time.Time
	Copied       bool
	copyGen      int

	// CopyFn writes text to the system clipboard
	CopyFn func(string) error

	Help help.Model
	Keys keyMap
}

// NewAppModel creates the application model over a fresh session
func NewAppModel(asker session.Asker, opts Options) AppModel {
	if opts.Timeout <= 0 {
		opts.Timeout = advisor.DefaultTimeout
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	m := AppModel{
		Session:  session.New(),
		Asker:    asker,
		Options:  opts,
		Form:     NewFormModel(opts.DefaultLocation),
		Spinner:  s,
		Bar:      ui.NewDeadlineBar("", opts.Timeout),
		Viewport: viewport.New(ui.MinTerminalWidth, 10),
		CopyFn:   clipboard.WriteAll,
		Help:     help.New(),
		Keys:     newKeyMap(),
	}
	return m
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("Agri-Advisor"), textinput.Blink)
}

// Update handles all messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Store dimensions and re-flow everything that depends on them
		m.Width = msg.Width
		m.Height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case resultMsg:
		// A result for an older submit is dropped
		if !m.Session.Resolve(msg.ticket, msg.result, msg.err) {
			return m, nil
		}
		// New result: reset copy state, scroll to top and unlock the form
		m.Copied = false
		m.layout()
		m.Viewport.GotoTop()
		return m, m.Form.Enable()

	case loadingTickMsg:
		// Keeps the deadline bar moving until the request resolves
		if !m.isLoading() || msg.ticket != m.Session.Ticket() {
			return m, nil
		}
		return m, tickLoading(msg.ticket)

	case copiedResetMsg:
		// Only the most recent copy clears the label
		if msg.gen == m.copyGen {
			m.Copied = false
			m.refreshResults()
		}
		return m, nil

	case spinner.TickMsg:
		// Let the spinner stop once nothing is loading
		if !m.isLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	// Everything else (cursor blink) belongs to the form
	var cmd tea.Cmd
	m.Form, cmd = m.Form.Update(msg)
	return m, cmd
}

// handleKey routes key presses: global keys first, then state actions,
// then the form
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit works in every state
	if key.Matches(msg, m.Keys.Quit) {
		return m, tea.Quit
	}

	// Nothing else is accepted while a request is in flight
	if m.isLoading() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.Keys.Submit):
		return m.submit()

	case key.Matches(msg, m.Keys.Dismiss):
		m.Session.Dismiss()
		m.layout()
		return m, nil

	case key.Matches(msg, m.Keys.Copy):
		return m.copyAdvice()

	case key.Matches(msg, m.Keys.ScrollUp), key.Matches(msg, m.Keys.ScrollDn):
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		return m, cmd
	}

	// Typing and field navigation; the form height can change
	var cmd tea.Cmd
	m.Form, cmd = m.Form.Update(msg)
	m.layout()
	return m, cmd
}

// submit starts a request for the current form values
func (m AppModel) submit() (tea.Model, tea.Cmd) {
	input, ticket, err := m.Session.Begin(m.Form.Values())
	if err != nil {
		// Busy submits are dropped; invalid ones leave the session in Failure
		if !errors.Is(err, session.ErrBusy) {
			m.layout()
		}
		return m, nil
	}

	// Lock the form and start the loading clock
	m.Form.Disable()
	m.Copied = false
	m.LoadingSince = time.Now()
	m.layout()

	// Spinner, request and deadline bar run side by side
	return m, tea.Batch(
		m.Spinner.Tick,
		ask(m.Asker, input, ticket),
		tickLoading(ticket),
	)
}

// ask runs the query off the update loop and reports back with its ticket
func ask(asker session.Asker, input advisor.QueryInput, ticket uint64) tea.Cmd {
	return func() tea.Msg {
		result, err := asker.Ask(context.Background(), input)
		return resultMsg{ticket: ticket, result: result, err: err}
	}
}

func tickLoading(ticket uint64) tea.Cmd {
	return tea.Tick(loadingTick, func(time.Time) tea.Msg {
		return loadingTickMsg{ticket: ticket}
	})
}

// copyAdvice puts the raw advice text on the clipboard
func (m AppModel) copyAdvice() (tea.Model, tea.Cmd) {
	// Only a displayed result can be copied
	success, ok := m.Session.State().(session.Success)
	if !ok {
		return m, nil
	}

	if err := m.CopyFn(success.Result.Response); err != nil {
		logging.Warn("Failed to copy advice to clipboard", zap.Error(err))
		return m, nil
	}

	// Show "Copied!" and schedule its removal
	m.Copied = true
	m.copyGen++
	gen := m.copyGen
	m.refreshResults()

	return m, tea.Tick(CopiedDuration, func(time.Time) tea.Msg {
		return copiedResetMsg{gen: gen}
	})
}

func (m AppModel) isLoading() bool {
	return session.IsLoading(m.Session.State())
}

// contentWidth is the usable width inside the application container
func (m AppModel) contentWidth() int {
	w := m.Width - 4
	if w < ui.MinTerminalWidth {
		w = ui.MinTerminalWidth
	}
	return w
}

// layout sizes the form, help and results viewport for the current
// terminal and state
func (m *AppModel) layout() {
	width := m.contentWidth()
	m.Form.SetWidth(width)
	m.Help.Width = width
	m.Bar.SetWidth(width)

	// Results get whatever is left under the form.
	// Header (2), footer (2), outer border (2) and a blank line
	height := m.Height - 7 - lipgloss.Height(m.Form.View())
	if height < 5 {
		height = 5
	}
	m.Viewport.Width = width
	m.Viewport.Height = height
	m.refreshResults()
}

func (m *AppModel) refreshResults() {
	success, ok := m.Session.State().(session.Success)
	if !ok {
		m.Viewport.SetContent("")
		return
	}
	m.Viewport.SetContent(ui.RenderResult(success.Result, ui.ResultOptions{
		Width:        m.Viewport.Width,
		Zoom:         m.Options.Zoom,
		TileTemplate: m.Options.TileTemplate,
		Copied:       m.Copied,
		CopyHint:     m.Keys.Copy.Help().Key + " copy",
	}))
}

// updateKeys enables the bindings that apply to the current state
func (m AppModel) updateKeys() keyMap {
	k := m.Keys
	state := m.Session.State()
	_, failed := state.(session.Failure)
	_, succeeded := state.(session.Success)
	loading := session.IsLoading(state)

	k.NextField.SetEnabled(!loading)
	k.PrevField.SetEnabled(!loading)
	k.Submit.SetEnabled(m.Form.CanSubmit())
	k.Dismiss.SetEnabled(failed)
	k.Copy.SetEnabled(succeeded)
	k.ScrollUp.SetEnabled(succeeded)
	k.ScrollDn.SetEnabled(succeeded)
	return k
}

// View renders the screen
func (m AppModel) View() string {
	if m.Width == 0 {
		return "Starting Agri-Advisor..."
	}

	// Form on top, state area below, key help in the footer
	content := lipgloss.JoinVertical(lipgloss.Left, m.Form.View(), "", m.renderState())
	helpText := m.Help.View(m.updateKeys())
	return RenderApplicationContainer(content, helpText, m.Options.BaseURL, m.Width, m.Height)
}

// renderState renders the area under the form
func (m AppModel) renderState() string {
	width := m.contentWidth()

	switch s := m.Session.State().(type) {
	case session.Loading:
		elapsed := time.Since(m.LoadingSince)
		return lipgloss.JoinVertical(lipgloss.Left,
			m.Spinner.View()+" "+ui.ProgressLabelStyle.Render(LoadingTitle),
			ui.MutedStyle.PaddingLeft(2).Render(LoadingSubtitle),
			"",
			m.Bar.Render(elapsed),
		)

	case session.Success:
		return m.Viewport.View()

	case session.Failure:
		return ui.NewErrorBox(s.Message()).
			SetFooter("Press esc to dismiss").
			SetWidth(width).
			Render()

	default:
		// Idle
		return RenderTips(width)
	}
}
