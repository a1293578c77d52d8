package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrorBox is the red box that presents a failed query
type ErrorBox struct {
	Title           string   // e.g., "Error"
	Message         string   // The single user-facing sentence
	Troubleshooting []string // Optional follow-up tips
	Footer          string   // Optional hint, e.g. "esc to dismiss"
	Width           int      // Terminal width
}

// NewErrorBox creates an error box titled "Error"
func NewErrorBox(message string) *ErrorBox {
	return &ErrorBox{
		Title:   "Error",
		Message: message,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (e *ErrorBox) SetWidth(width int) *ErrorBox {
	e.Width = width
	return e
}

// SetTitle sets a custom title
func (e *ErrorBox) SetTitle(title string) *ErrorBox {
	e.Title = title
	return e
}

// SetFooter sets the hint shown under the message
func (e *ErrorBox) SetFooter(footer string) *ErrorBox {
	e.Footer = footer
	return e
}

// AddTroubleshooting appends troubleshooting tips
func (e *ErrorBox) AddTroubleshooting(tips ...string) *ErrorBox {
	e.Troubleshooting = append(e.Troubleshooting, tips...)
	return e
}

// Render returns the styled error box as a string
func (e *ErrorBox) Render() string {
	width := ClampWidth(e.Width)
	textWidth := width - 8 // Border, padding and indent

	var lines []string

	lines = append(lines, "")
	lines = append(lines, ErrorTitleStyle.Render(" "+FailureMarker+"  "+e.Title))
	lines = append(lines, "")
	lines = append(lines, ErrorMessageStyle.Width(textWidth).PaddingLeft(1).Render(e.Message))
	lines = append(lines, "")

	if len(e.Troubleshooting) > 0 {
		lines = append(lines, e.renderTroubleshootingBox(width))
		lines = append(lines, "")
	}

	if e.Footer != "" {
		lines = append(lines, MutedStyle.PaddingLeft(1).Render(e.Footer))
		lines = append(lines, "")
	}

	content := strings.Join(lines, "\n")
	return ErrorBoxStyle(width).Render(content)
}

// renderTroubleshootingBox renders the inner troubleshooting box
func (e *ErrorBox) renderTroubleshootingBox(width int) string {
	var lines []string

	lines = append(lines, TroubleshootingTitleStyle.Render("Troubleshooting:"))
	lines = append(lines, "")

	for _, tip := range e.Troubleshooting {
		lines = append(lines, TroubleshootingItemStyle.Render("  "+BulletMarker+" "+tip))
	}

	return lipgloss.NewStyle().
		MarginLeft(1).
		Render(TroubleshootingBoxStyle(width).Render(strings.Join(lines, "\n")))
}

// String implements fmt.Stringer
func (e *ErrorBox) String() string {
	return e.Render()
}

// RenderErrorBox renders an error box with the given title, message and
// troubleshooting tips
func RenderErrorBox(title, message string, troubleshooting []string, width int) string {
	return NewErrorBox(message).
		SetTitle(title).
		AddTroubleshooting(troubleshooting...).
		SetWidth(width).
		Render()
}
