package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/agri-advisor/internal/advisor"
	"github.com/muurk/agri-advisor/internal/ui"
)

// Field identifies a form field
type Field int

const (
	FieldLocation Field = iota
	FieldQuery
)

// Form placeholders, as shown in an empty field
const (
	LocationPlaceholder = "e.g., Jaipur, India"
	QueryPlaceholder    = "e.g., What is the best crop to plant now considering the upcoming monsoon?"
)

const queryLines = 4

// FormModel collects the location and the question
type FormModel struct {
	Location textinput.Model
	Query    textarea.Model
	Focused  Field
	Disabled bool
	Width    int

	keys keyMap
}

// NewFormModel creates the form with the location prefilled
func NewFormModel(defaultLocation string) FormModel {
	loc := textinput.New()
	loc.Placeholder = LocationPlaceholder
	loc.Prompt = ""
	loc.CharLimit = 200
	loc.SetValue(defaultLocation)
	loc.Focus()

	q := textarea.New()
	q.Placeholder = QueryPlaceholder
	q.ShowLineNumbers = false
	q.Prompt = ""
	q.CharLimit = 2000
	q.SetHeight(queryLines)

	f := FormModel{
		Location: loc,
		Query:    q,
		Focused:  FieldLocation,
		keys:     newKeyMap(),
	}
	f.SetWidth(ui.MinTerminalWidth)

	// Start on the question when the location is already known
	if defaultLocation != "" {
		f.focus(FieldQuery)
	}
	return f
}

// SetWidth resizes both fields to the available width
func (f *FormModel) SetWidth(width int) {
	f.Width = width
	inner := width - 4 // Border and padding
	if inner < 10 {
		inner = 10
	}
	f.Location.Width = inner - 1
	f.Query.SetWidth(inner)
}

// Values returns the raw field values
func (f FormModel) Values() (location, query string) {
	return f.Location.Value(), f.Query.Value()
}

// CanSubmit reports whether both fields hold text
func (f FormModel) CanSubmit() bool {
	return !f.Disabled && advisor.CanSubmit(f.Values())
}

// Disable blurs both fields while a request is in flight
func (f *FormModel) Disable() {
	f.Disabled = true
	f.Location.Blur()
	f.Query.Blur()
}

// Enable restores focus to the last focused field
func (f *FormModel) Enable() tea.Cmd {
	f.Disabled = false
	return f.focus(f.Focused)
}

func (f *FormModel) focus(field Field) tea.Cmd {
	f.Focused = field
	if field == FieldLocation {
		f.Query.Blur()
		return f.Location.Focus()
	}
	f.Location.Blur()
	return f.Query.Focus()
}

// Update handles field navigation and editing. Keys are ignored while
// disabled.
func (f FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if f.Disabled {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, f.keys.NextField):
			return f, f.focus((f.Focused + 1) % 2)
		case key.Matches(keyMsg, f.keys.PrevField):
			return f, f.focus((f.Focused + 1) % 2)
		case keyMsg.Type == tea.KeyEnter && f.Focused == FieldLocation:
			return f, f.focus(FieldQuery)
		}
	}

	var cmd tea.Cmd
	if f.Focused == FieldLocation {
		f.Location, cmd = f.Location.Update(msg)
	} else {
		f.Query, cmd = f.Query.Update(msg)
	}
	return f, cmd
}

// View renders both fields and the submit hint
func (f FormModel) View() string {
	location := f.renderField("Your Location", f.Location.View(), FieldLocation)
	query := f.renderField("Your Agricultural Question", f.Query.View(), FieldQuery)

	var submit string
	switch {
	case f.Disabled:
		submit = SubmitDisabledStyle.Render("Getting Advice...")
	case f.CanSubmit():
		submit = SubmitReadyStyle.Render("ctrl+s  Get Agricultural Advice")
	default:
		submit = SubmitDisabledStyle.Render("Fill in both fields to get advice")
	}

	return lipgloss.JoinVertical(lipgloss.Left, location, query, submit)
}

func (f FormModel) renderField(label, body string, field Field) string {
	labelStyle, boxStyle := FieldLabelStyle, FieldBoxStyle
	if !f.Disabled && f.Focused == field {
		labelStyle, boxStyle = FocusedFieldLabelStyle, FocusedFieldBoxStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(label),
		boxStyle.Width(f.Width-2).Render(body),
	)
}
