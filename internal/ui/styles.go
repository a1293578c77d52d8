package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	// Primary colors
	PrimaryColor = lipgloss.Color("#10B981") // Emerald - titles, headings, focus
	AccentColor  = lipgloss.Color("#34D399") // Light emerald - highlights
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success, checkmarks
	ErrorColor   = lipgloss.Color("#F87171") // Red - errors
	WarningColor = lipgloss.Color("#FBBF24") // Amber - sun, warnings
	InfoColor    = lipgloss.Color("#60A5FA") // Blue - rain, humidity
	MutedColor   = lipgloss.Color("#9CA3AF") // Gray - secondary info
	BorderColor  = lipgloss.Color("#4B5563") // Dark gray - card borders
	TextColor    = lipgloss.Color("#F9FAFB") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 40  // Minimum supported terminal width
	MaxContentWidth  = 160 // Maximum content width before capping
	WideLayoutWidth  = 110 // Below this width the result cards stack vertically
	DefaultPadding   = 1   // Padding inside cards
	CardGap          = 1   // Columns between side-by-side cards
)

// Shared styles
var (
	// HeaderTitleStyle is for the main command title
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	// HeaderCommandStyle is for the command path (e.g., "agri-advisor ask")
	HeaderCommandStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamKeyStyle is for parameter keys (e.g., "Backend:")
	HeaderParamKeyStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2).
				Width(12)

	// HeaderParamValueStyle is for parameter values
	HeaderParamValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// ResultsTitleStyle is for "Agricultural Advice for ..."
	ResultsTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true)

	// ResultsSubtitleStyle is for the line under the results title
	ResultsSubtitleStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Italic(true)

	// CardTitleStyle is for card titles ("Location", "Current Weather", ...)
	CardTitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// HeadlineStyle is for the large temperature and location name
	HeadlineStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// BodyStyle is for advice paragraphs and list items
	BodyStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// AdviceHeadingStyle is for headings inside the advice text
	AdviceHeadingStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true)

	// MutedStyle is for secondary text
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// LinkStyle is for URLs
	LinkStyle = lipgloss.NewStyle().
			Foreground(InfoColor).
			Underline(true)

	// MetricLabelStyle is for metric names in the weather card
	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Width(13)

	// MetricValueStyle is for metric values in the weather card
	MetricValueStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				Width(9)

	// NoticeStyle is for the weather impact notice
	NoticeStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	// CopiedStyle is for the transient "Copied!" label
	CopiedStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// ErrorTitleStyle is for the error box title
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// ErrorMessageStyle is for error message text
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// TroubleshootingTitleStyle is for "Troubleshooting:" headers
	TroubleshootingTitleStyle = lipgloss.NewStyle().
					Foreground(MutedColor).
					Bold(true)

	// TroubleshootingItemStyle is for troubleshooting bullet points
	TroubleshootingItemStyle = lipgloss.NewStyle().
					Foreground(MutedColor)

	// ProgressLabelStyle is for "Waiting for advice..."
	ProgressLabelStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				PaddingLeft(2)
)

// Status markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	WarningMarker = "⚠"
	InfoMarker    = "ℹ"
	BulletMarker  = "•"
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return WideLayoutWidth
	}
	return ClampWidth(width)
}

// ClampWidth limits a width to the supported range
func ClampWidth(width int) int {
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// HeaderBorderStyle returns the border style for command headers
func HeaderBorderStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2) // Account for border characters
}

// CardStyle returns the border style for a result card of the given
// outer width
func CardStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, DefaultPadding).
		Width(width - 2) // Account for border characters
}

// CardContentWidth returns the usable text width inside a card
func CardContentWidth(width int) int {
	inner := width - 2 - 2*DefaultPadding
	if inner < 10 {
		return 10
	}
	return inner
}

// ErrorBoxStyle returns the border style for error boxes
func ErrorBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ErrorColor).
		Width(width-2).
		Padding(0, 2)
}

// TroubleshootingBoxStyle returns the border style for troubleshooting sections
func TroubleshootingBoxStyle(width int) lipgloss.Style {
	inner := width - 12 // Indented within error box
	if inner < 30 {
		inner = 30
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(inner).
		Padding(0, 1)
}

// RenderHorizontalDivider creates a horizontal line of the specified width
func RenderHorizontalDivider(width int, char string) string {
	if width < 1 {
		width = 1
	}
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat(char, width))
}
