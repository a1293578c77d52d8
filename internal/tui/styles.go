package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/agri-advisor/internal/ui"
	"github.com/muurk/agri-advisor/internal/version"
)

// Application branding constants
const (
	AppName    = "AGRI-ADVISOR"
	AppTagline = "Smart farming advice from live weather"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Tips shown under the form while idle
var Tips = []string{
	"Be specific about your location (include city and state/country)",
	"Mention your current crops or what you're planning to grow",
	"Include any specific concerns (pests, soil issues, timing)",
	"Ask about seasonal considerations and weather-related advice",
}

// Form styles
var (
	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Bold(true)

	FocusedFieldLabelStyle = lipgloss.NewStyle().
				Foreground(ui.PrimaryColor).
				Bold(true)

	FieldBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.BorderColor).
			Padding(0, 1)

	FocusedFieldBoxStyle = FieldBoxStyle.
				BorderForeground(ui.PrimaryColor)

	SubmitReadyStyle = lipgloss.NewStyle().
				Foreground(ui.PrimaryColor).
				Bold(true)

	SubmitDisabledStyle = lipgloss.NewStyle().
				Foreground(ui.MutedColor)

	TipsTitleStyle = lipgloss.NewStyle().
			Foreground(ui.AccentColor).
			Bold(true)

	TipsBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.BorderColor).
			Padding(0, 2).
			MarginTop(1)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor)
)

// BuildHeaderContent creates header content with app name and the backend
// the client talks to
func BuildHeaderContent(backend string) string {
	left := lipgloss.NewStyle().
		Foreground(ui.TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	tagline := lipgloss.NewStyle().
		Foreground(ui.AccentColor).
		Render(AppTagline)

	right := lipgloss.NewStyle().
		Foreground(ui.MutedColor).
		Render(backend)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", tagline, "  ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(ui.MutedColor).
		Render(helpText)
}

// RenderApplicationContainer wraps a screen in the full-terminal frame:
// header with name, version and backend, the content, and the key help
// pinned to the bottom.
func RenderApplicationContainer(content, footerText, backend string, terminalWidth, terminalHeight int) string {
	innerWidth := terminalWidth - 4 // Leave room for outer border
	if innerWidth < 1 {
		innerWidth = 1
	}

	styledHeader := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(ui.BorderColor).
		Width(innerWidth).
		Padding(0, 1).
		Render(BuildHeaderContent(backend))

	styledFooter := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(ui.BorderColor).
		Width(innerWidth).
		Padding(0, 1).
		Render(BuildFooterContent(footerText))

	// Fill the remaining height so the footer stays at the bottom
	contentHeight := terminalHeight - 2 - lipgloss.Height(styledHeader) - lipgloss.Height(styledFooter)
	contentStyle := lipgloss.NewStyle().Width(innerWidth)
	if contentHeight > 0 {
		contentStyle = contentStyle.Height(contentHeight).MaxHeight(contentHeight)
	}

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		styledHeader,
		contentStyle.Render(content),
		styledFooter,
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ui.BorderColor).
		Width(terminalWidth - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(terminalWidth, terminalHeight, lipgloss.Left, lipgloss.Top, bordered)
}

// RenderTips renders the idle tips panel
func RenderTips(width int) string {
	lines := []string{TipsTitleStyle.Render("Tips for better advice:")}
	for _, tip := range Tips {
		lines = append(lines, ui.BodyStyle.Render(ui.BulletMarker+" "+tip))
	}
	return TipsBoxStyle.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
