package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/agri-advisor/internal/advisor"
)

// RunnerConfig holds configuration for one ask command execution
type RunnerConfig struct {
	Title       string        // Command title (e.g., "Agricultural Advice")
	Command     string        // Full command (e.g., "agri-advisor ask")
	Params      []Param       // Parameters to display in header
	Timeout     time.Duration // Request deadline, for the progress bar
	Interactive bool          // Redraw a live progress line (terminal output only)
	Output      io.Writer     // Output writer (default: os.Stdout)
	Width       int           // Terminal width (default: detected)
}

// AskOperation performs the query
type AskOperation func(ctx context.Context) (*advisor.QueryResult, error)

// HintFunc returns troubleshooting tips for a failed query
type HintFunc func(err error) []string

type askOutcome struct {
	result *advisor.QueryResult
	err    error
}

// Runner orchestrates the UI for a single query.
// It manages the header → waiting → result flow.
type Runner struct {
	config  RunnerConfig
	header  *Header
	bar     *DeadlineBar
	output  io.Writer
	width   int
	elapsed time.Duration
}

// NewRunner creates a new runner
func NewRunner(config RunnerConfig) *Runner {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	width := config.Width
	if width == 0 {
		width = GetTerminalWidth()
	}

	header := NewHeader(config.Title, config.Command, config.Params...)
	header.SetWidth(width)

	bar := NewDeadlineBar("Analyzing your query and weather conditions...", config.Timeout)
	bar.SetWidth(width)

	return &Runner{
		config: config,
		header: header,
		bar:    bar,
		output: config.Output,
		width:  width,
	}
}

// Run executes the query with UI updates. It prints the header, a progress
// line while waiting, then the result cards or the error box.
func (r *Runner) Run(ctx context.Context, op AskOperation, opts ResultOptions, hints HintFunc) (*advisor.QueryResult, error) {
	start := time.Now()

	_, _ = fmt.Fprintln(r.output, r.header.Render())
	_, _ = fmt.Fprintln(r.output)

	done := make(chan askOutcome, 1)
	go func() {
		result, err := op(ctx)
		done <- askOutcome{result, err}
	}()

	var res askOutcome
	if r.config.Interactive {
		res = r.waitWithProgress(start, done)
	} else {
		_, _ = fmt.Fprintln(r.output, ProgressLabelStyle.Render("Analyzing your query and weather conditions..."))
		res = <-done
	}
	r.elapsed = time.Since(start)

	_, _ = fmt.Fprintln(r.output)

	if res.err != nil {
		r.printFailure(res.err, hints)
		return nil, res.err
	}

	r.printSuccess(res.result, opts)
	return res.result, nil
}

// waitWithProgress redraws the deadline bar in place until the query ends
func (r *Runner) waitWithProgress(start time.Time, done <-chan askOutcome) askOutcome {
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case res := <-done:
			r.clearLine()
			return res
		case <-ticker.C:
			line := lipgloss.NewStyle().PaddingLeft(2).Render(r.bar.RenderBar(time.Since(start)))
			_, _ = fmt.Fprint(r.output, "\r"+line)
		}
	}
}

func (r *Runner) clearLine() {
	_, _ = fmt.Fprint(r.output, "\r"+strings.Repeat(" ", r.width)+"\r")
}

// printSuccess prints the result cards
func (r *Runner) printSuccess(result *advisor.QueryResult, opts ResultOptions) {
	if opts.Width == 0 {
		opts.Width = r.width
	}
	_, _ = fmt.Fprintln(r.output, RenderResult(result, opts))
	_, _ = fmt.Fprintln(r.output)
	_, _ = fmt.Fprintln(r.output, MutedStyle.Render(
		fmt.Sprintf("  %s Answered in %s", SuccessMarker, r.elapsed.Round(100*time.Millisecond))))
}

// printFailure prints the error box
func (r *Runner) printFailure(err error, hints HintFunc) {
	var tips []string
	if hints != nil {
		tips = hints(err)
	}
	box := NewErrorBox(advisor.UserMessage(err)).
		SetTitle("FAILED  ─  " + r.config.Title).
		AddTroubleshooting(tips...).
		SetWidth(r.width)
	_, _ = fmt.Fprintln(r.output, box.Render())
}
