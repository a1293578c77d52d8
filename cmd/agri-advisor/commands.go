package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/muurk/agri-advisor/internal/advisor"
	"github.com/muurk/agri-advisor/internal/config"
	"github.com/muurk/agri-advisor/internal/discovery"
	"github.com/muurk/agri-advisor/internal/logging"
	"github.com/muurk/agri-advisor/internal/session"
	"github.com/muurk/agri-advisor/internal/tui"
	"github.com/muurk/agri-advisor/internal/ui"
)

// errQueryFailed is returned after the failure has been shown to the user
var errQueryFailed = errors.New("query failed")

// Output formats for the ask command
const (
	formatDetailed = "detailed"
	formatCompact  = "compact"
	formatJSON     = "json"
	formatText     = "text"
)

// Ask command flags
var (
	askLocation string
	askQuery    string
	askFormat   string
	askCopy     bool
)

// Discover command flags
var discoverTimeout time.Duration

func init() {
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(discoverCmd)

	askCmd.Flags().StringVarP(&askLocation, "location", "l", "", "Your location, e.g. \"Jaipur, India\" (default: preferences.default_location)")
	askCmd.Flags().StringVarP(&askQuery, "query", "q", "", "Your agricultural question")
	askCmd.Flags().StringVar(&askFormat, "format", formatDetailed, "Output format (detailed, compact, json, text)")
	askCmd.Flags().BoolVar(&askCopy, "copy", false, "Copy the advice text to the clipboard")

	discoverCmd.Flags().DurationVar(&discoverTimeout, "timeout", config.DefaultDiscoveryTimeout, "How long to listen for advertisements")
}

// runTUI launches the interactive client
func runTUI(cmd *cobra.Command, args []string) error {
	// The TUI owns the terminal, so logs go to a file
	logPath, err := config.GetLogPath()
	if err != nil {
		return fmt.Errorf("failed to get log path: %w", err)
	}
	if err := config.EnsureDir(logPath); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	env, err := setup(cmd.Context(), logPath)
	if err != nil {
		return err
	}
	defer env.Close()

	app := tui.NewAppModel(advisor.NewClient(env.BaseURL), tui.Options{
		BaseURL:         env.BaseURL,
		DefaultLocation: env.Config.Preferences.DefaultLocation,
		Zoom:            env.Config.Map.Zoom,
		TileTemplate:    env.Config.Map.TileURL,
		Timeout:         advisor.DefaultTimeout,
	})

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interactive client failed: %w", err)
	}
	return nil
}

// askCmd sends one question and prints the answer
var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask one question and print the advice",
	Long: `Send a single question to the Agri-Advisor backend and print the result.

The request has a fixed 30 second deadline and is never retried. The
command exits with status 1 if the query fails.`,
	Example: `  # Styled result cards
  agri-advisor ask --location "Jaipur, India" --query "Best crop for the monsoon season?"

  # One line per section
  agri-advisor ask -l "Jaipur, India" -q "When should I sow millet?" --format compact

  # JSON output for scripting
  agri-advisor ask -l "Jaipur, India" -q "Irrigation advice?" --format json

  # Plain-text report, advice also copied to the clipboard
  agri-advisor ask -l "Jaipur, India" -q "Pest risks this week?" --format text --copy`,
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	switch askFormat {
	case formatDetailed, formatCompact, formatJSON, formatText:
	default:
		return fmt.Errorf("unknown format %q (use detailed, compact, json or text)", askFormat)
	}

	env, err := setup(cmd.Context(), "stderr")
	if err != nil {
		return err
	}
	defer env.Close()

	location := askLocation
	if location == "" {
		location = env.Config.Preferences.DefaultLocation
	}

	client := advisor.NewClient(env.BaseURL)
	dispatcher := session.NewDispatcher(client)

	op := func(ctx context.Context) (*advisor.QueryResult, error) {
		return submit(ctx, dispatcher, location, askQuery)
	}
	hints := func(err error) []string {
		return advisor.TroubleshootingHints(err, env.BaseURL)
	}

	out := cmd.OutOrStdout()
	var result *advisor.QueryResult

	if askFormat == formatDetailed {
		runner := ui.NewRunner(ui.RunnerConfig{
			Title:   "Agricultural Advice",
			Command: "agri-advisor ask",
			Params: []ui.Param{
				{Key: "Location", Value: location},
				{Key: "Question", Value: askQuery},
				{Key: "Backend", Value: config.Describe(env.BaseURL, env.Source)},
			},
			Timeout:     client.Timeout,
			Interactive: isTerminal(os.Stdout),
			Output:      out,
		})

		result, err = runner.Run(cmd.Context(), op, ui.ResultOptions{
			Zoom:         env.Config.Map.Zoom,
			TileTemplate: env.Config.Map.TileURL,
		}, hints)
		if err != nil {
			return errQueryFailed
		}
	} else {
		result, err = op(cmd.Context())
		if err != nil {
			printPlainError(cmd.ErrOrStderr(), err, hints(err))
			return errQueryFailed
		}
		if err := writeResult(out, result, askFormat); err != nil {
			return err
		}
	}

	if askCopy {
		// Status goes to stderr so piped output stays clean
		if err := clipboard.WriteAll(result.Response); err != nil {
			return fmt.Errorf("failed to copy advice to clipboard: %w", err)
		}
		ui.NewPrinter(cmd.ErrOrStderr()).PrintSuccess(ui.CopiedLabel)
	}

	return nil
}

// submit runs one query through the dispatcher and unpacks the final state
func submit(ctx context.Context, d *session.Dispatcher, location, query string) (*advisor.QueryResult, error) {
	state, err := d.Submit(ctx, location, query)

	switch s := state.(type) {
	case session.Success:
		return s.Result, nil
	case session.Failure:
		return nil, s.Err
	}

	if err == nil {
		err = fmt.Errorf("unexpected state after submit: %s", state.Name())
	}
	return nil, err
}

// writeResult prints a result in one of the plain formats
func writeResult(w io.Writer, result *advisor.QueryResult, format string) error {
	switch format {
	case formatCompact:
		_, err := fmt.Fprint(w, result.FormatCompact())
		return err
	case formatJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatText:
		_, err := fmt.Fprint(w, result.FormatDetailed())
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// printPlainError prints a failed query without styling
func printPlainError(w io.Writer, err error, tips []string) {
	fmt.Fprintf(w, "Error: %s\n", advisor.UserMessage(err))
	if len(tips) == 0 {
		return
	}
	fmt.Fprintln(w, "\nTroubleshooting:")
	for _, tip := range tips {
		fmt.Fprintf(w, "  - %s\n", tip)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// discoverCmd lists backends advertised on the local network
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find Agri-Advisor backends on the local network",
	Long: `Find Agri-Advisor backends using mDNS/DNS-SD discovery.

This command listens for "_agri-advisor._tcp" advertisements and prints
every backend found with its base URL.`,
	Example: `  # Listen for 3 seconds (default)
  agri-advisor discover

  # Longer scan for slow networks
  agri-advisor discover --timeout 10s`,
	RunE: runDiscover,
}

func runDiscover(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logLevel, logFile); err != nil {
		return err
	}
	defer logging.Sync()

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Backend Discovery", "agri-advisor discover",
		ui.Param{Key: "Service", Value: discovery.ServiceType},
		ui.Param{Key: "Timeout", Value: discoverTimeout.String()},
	)

	backends, err := discovery.Discover(cmd.Context(), discoverTimeout)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(backends) == 0 {
		p.PrintError("NO BACKENDS FOUND", "No Agri-Advisor backend answered on the local network.", []string{
			"Ensure the backend is running and advertising " + discovery.ServiceType,
			"Check that you are on the same network segment as the backend",
			"Try increasing --timeout for slower networks",
			"Use --api-url to specify the backend manually",
		})
		return nil
	}

	p.PrintSuccess(fmt.Sprintf("Found %d backend(s)", len(backends)))
	p.Newline()

	for i, b := range backends {
		lines := []string{
			fmt.Sprintf("%d. %s", i+1, b.Name),
			"   URL:     " + b.BaseURL(),
		}
		if b.Hostname != "" {
			lines = append(lines, "   Host:    "+b.Hostname)
		}
		if v := b.GetMetadata("version"); v != "" {
			lines = append(lines, "   Version: "+v)
		}
		p.PrintLines(lines...)
		p.Newline()
	}

	p.PrintMuted("Use 'agri-advisor --api-url <url>' or set api_url in the config file")

	return nil
}
