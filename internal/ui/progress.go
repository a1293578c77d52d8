package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// DeadlineBar shows how much of the request timeout has been used
type DeadlineBar struct {
	Label   string        // e.g., "Analyzing your query and weather conditions..."
	Timeout time.Duration // Full deadline
	Width   int           // Terminal width
	bar     progress.Model
}

// NewDeadlineBar creates a deadline bar for the given timeout
func NewDeadlineBar(label string, timeout time.Duration) *DeadlineBar {
	d := &DeadlineBar{
		Label:   label,
		Timeout: timeout,
	}
	return d.SetWidth(GetTerminalWidth())
}

// SetWidth sets the terminal width for responsive rendering
func (d *DeadlineBar) SetWidth(width int) *DeadlineBar {
	d.Width = width
	barWidth := width - 24 // Leave room for the elapsed counter
	if barWidth < 10 {
		barWidth = 10
	}
	if barWidth > 40 {
		barWidth = 40
	}
	d.bar = progress.New(
		progress.WithGradient(string(PrimaryColor), string(WarningColor)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	return d
}

// Percent returns the used fraction of the timeout, between 0 and 1
func (d *DeadlineBar) Percent(elapsed time.Duration) float64 {
	if d.Timeout <= 0 || elapsed <= 0 {
		return 0
	}
	p := float64(elapsed) / float64(d.Timeout)
	if p > 1 {
		return 1
	}
	return p
}

// RenderBar returns the bar and the elapsed counter on one line
func (d *DeadlineBar) RenderBar(elapsed time.Duration) string {
	counter := fmt.Sprintf("%2ds / %ds", int(elapsed.Seconds()), int(d.Timeout.Seconds()))
	return d.bar.ViewAs(d.Percent(elapsed)) + "  " + MutedStyle.Render(counter)
}

// Render returns the label and the bar
func (d *DeadlineBar) Render(elapsed time.Duration) string {
	if d.Label == "" {
		return lipgloss.NewStyle().PaddingLeft(2).Render(d.RenderBar(elapsed))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		ProgressLabelStyle.Render(d.Label),
		lipgloss.NewStyle().PaddingLeft(2).Render(d.RenderBar(elapsed)),
	)
}
