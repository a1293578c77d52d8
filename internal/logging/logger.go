package logging

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "AGRI_ADVISOR_LOG_LEVEL"

// maxBodyLog limits how much of a payload is written at debug level
const maxBodyLog = 512

// Initialize creates a new logger with the specified level writing to
// outputPath ("stderr", "stdout" or a file path; empty means stderr).
// If level is empty, it checks AGRI_ADVISOR_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string, outputPath string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	zapLevel, err := ParseLevel(level)
	if err != nil {
		// Unknown level - use info as default when explicitly set to something
		zapLevel = zapcore.InfoLevel
	}

	if outputPath == "" {
		outputPath = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{outputPath},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if isTerminalSink(outputPath) {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		// No escape codes in log files
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// ParseLevel converts a level name to a zap level
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// SetLogger replaces the global logger (used by tests)
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, fields ...zap.Field) {
	GetLogger().Fatal(msg, fields...)
}

// LogRequest logs an outgoing query
func LogRequest(requestID string, method string, url string, location string) {
	Info("Query sent",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("url", url),
		zap.String("location", location),
	)
}

// LogResponse logs a received response
func LogResponse(requestID string, statusCode int, size int, elapsed time.Duration) {
	Info("Response received",
		zap.String("request_id", requestID),
		zap.Int("status_code", statusCode),
		zap.Int("bytes", size),
		zap.Duration("elapsed", elapsed),
	)
}

// LogBody logs a payload at debug level, truncated to a readable length
func LogBody(label string, data []byte) {
	if !GetLogger().Core().Enabled(zapcore.DebugLevel) {
		return
	}
	Debug(label,
		zap.Int("length", len(data)),
		zap.String("body", truncateText(data)),
	)
}

// LogStateChange logs a request lifecycle transition
func LogStateChange(from string, to string, fields ...zap.Field) {
	fields = append([]zap.Field{
		zap.String("from", from),
		zap.String("to", to),
	}, fields...)
	Debug("State changed", fields...)
}

// LogDiscovery logs a backend found on the local network
func LogDiscovery(name string, address string) {
	Info("Backend discovered",
		zap.String("name", name),
		zap.String("address", address),
	)
}

// Helper functions

func isTerminalSink(path string) bool {
	return path == "stderr" || path == "stdout"
}

func truncateText(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	if len(data) <= maxBodyLog {
		return sanitize(data)
	}
	cut := data[:maxBodyLog]
	// Do not split a multi-byte rune
	for len(cut) > 0 && !utf8.Valid(cut) {
		cut = cut[:len(cut)-1]
	}
	return sanitize(cut) + "..."
}

func sanitize(data []byte) string {
	return strings.Map(func(r rune) rune {
		if r == utf8.RuneError || (r < 32 && r != '\n' && r != '\t') {
			return '.'
		}
		return r
	}, string(data))
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
