// Agri-advisor is a terminal client for the Agri-Advisor service.
//
// It collects a location and an agricultural question, sends them to the
// Agri-Advisor backend and shows the current weather, a map of the
// location and the AI-generated advice.
//
// Usage:
//
//	agri-advisor [command] [flags]
//
// Running without arguments launches the interactive client.
// See 'agri-advisor --help' for available commands.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/agri-advisor/internal/advisor"
	"github.com/muurk/agri-advisor/internal/config"
	"github.com/muurk/agri-advisor/internal/discovery"
	"github.com/muurk/agri-advisor/internal/logging"
	"github.com/muurk/agri-advisor/internal/telemetry"
	"github.com/muurk/agri-advisor/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// A failed query has already been reported
		if !errors.Is(err, errQueryFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// Global flags
var (
	apiURL       string
	configPath   string
	useDiscovery bool
	logLevel     string
	logFile      string
)

var rootCmd = &cobra.Command{
	Use:   "agri-advisor",
	Short: "Agricultural advice from live weather, in your terminal",
	Long: `A terminal client for the Agri-Advisor service.

Enter your location and an agricultural question; the backend looks up
the current weather and returns advice tailored to it.

If no command is specified, the interactive client will launch automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend base URL (overrides "+config.APIURLEnvVar+" and the config file)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: user config dir)")
	rootCmd.PersistentFlags().BoolVar(&useDiscovery, "discover", false, "Look for a backend on the local network when no URL is configured")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: off, or "+logging.LogLevelEnvVar+")")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (default: stderr, or the user config dir for the interactive client)")

	rootCmd.AddCommand(versionCmd)
}

var versionFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionFormat == "json" {
			data, err := json.MarshalIndent(version.Get(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "agri-advisor %s\n", version.Full())
		return nil
	},
}

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "text", "Output format (text, json)")
}

// runtimeEnv is what every command needs once flags are parsed
type runtimeEnv struct {
	Config   *config.Config
	BaseURL  string
	Source   config.Source
	shutdown telemetry.ShutdownFunc
}

// setup initializes logging, loads the config file, resolves the backend
// URL and starts tracing. defaultLogSink is used when --log-file is unset.
func setup(ctx context.Context, defaultLogSink string) (*runtimeEnv, error) {
	// Initialize logging first so everything below can log
	sink := logFile
	if sink == "" {
		sink = defaultLogSink
	}
	if err := logging.Initialize(logLevel, sink); err != nil {
		return nil, err
	}

	// Load config file (defaults when missing)
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	candidates := config.Candidates{
		Flag: apiURL,
		Env:  os.Getenv(config.APIURLEnvVar),
		File: cfg.APIURL,
	}

	// Look on the local network only when nothing else names a backend
	if config.NeedsDiscovery(candidates, useDiscovery || cfg.Discovery.Enabled) {
		backend, err := discovery.FindBackend(ctx, cfg.Discovery.Timeout)
		if err != nil {
			logging.Warn("Backend discovery failed", zap.Error(err))
		} else {
			candidates.Discovered = backend.BaseURL()
		}
	}

	// Resolve and validate the backend URL
	baseURL, source := config.ResolveAPIURL(candidates)
	if err := advisor.ValidateBaseURL(baseURL); err != nil {
		return nil, fmt.Errorf("%w (from %s)", err, source)
	}
	logging.Info("Backend resolved", zap.String("url", baseURL), zap.String("source", string(source)))

	// Start tracing
	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.ZipkinURL)
	if err != nil {
		return nil, err
	}

	return &runtimeEnv{
		Config:   cfg,
		BaseURL:  baseURL,
		Source:   source,
		shutdown: shutdown,
	}, nil
}

// Close flushes spans and logs
func (e *runtimeEnv) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.shutdown(ctx); err != nil {
		logging.Warn("Telemetry shutdown failed", zap.Error(err))
	}
	logging.Sync()
}
