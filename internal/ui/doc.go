// Package ui provides the styled building blocks shared by the interactive
// terminal UI and the ask command.
//
// It uses Lipgloss to render:
//
//   - Result cards: map, current weather and recommendation, side by side
//     on wide terminals and stacked (with the complete advice text) on
//     narrow ones
//   - ErrorBox: the red box that presents a failed query, with optional
//     troubleshooting tips
//   - Header: command banner showing the question and the backend
//   - DeadlineBar: how much of the request timeout has been used
//
// The Runner orchestrates header → waiting → result for the ask command,
// and Printer writes components to any io.Writer.
//
// Example:
//
//	runner := ui.NewRunner(ui.RunnerConfig{
//	    Title:   "Agricultural Advice",
//	    Command: "agri-advisor ask",
//	    Params:  []ui.Param{{Key: "Location", Value: "Jaipur, India"}},
//	    Timeout: advisor.DefaultTimeout,
//	})
//
//	_, err := runner.Run(ctx, func(ctx context.Context) (*advisor.QueryResult, error) {
//	    return client.Ask(ctx, input)
//	}, ui.ResultOptions{Zoom: 10}, nil)
//
// # Logging Integration
//
// Logging is controlled via the AGRI_ADVISOR_LOG_LEVEL environment variable.
// When unset or empty, zap logging is silent, allowing the styled output to
// be displayed cleanly.
package ui
