// Package logging provides structured logging for the Agri-Advisor client.
//
// This package wraps zap logger with convenience functions for the few
// events worth recording: queries sent, responses received, lifecycle
// transitions and backend discovery.
//
// # Silent By Default
//
// Logging is off unless a level is given with --log-level or the
// AGRI_ADVISOR_LOG_LEVEL environment variable. The interactive UI owns the
// terminal, so in that mode logs go to a file; the ask command logs to
// stderr.
//
// # Structured Logging
//
//	logging.Info("Backend selected",
//	    zap.String("url", "http://localhost:5000"),
//	    zap.String("source", "config"),
//	)
//
// # Configuration
//
//	if err := logging.Initialize("debug", "/tmp/agri-advisor.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use once Initialize has
// returned.
package logging
