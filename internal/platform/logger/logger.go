package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/coursedeck/coursedeck-api/internal/config"
)

type contextKey struct{}

// loggerKey is the context key under which a request-scoped logger travels.
var loggerKey = contextKey{}

// Setup initializes and configures the application's logging system based
// on the provided configuration. It creates a structured JSON logger with
// the appropriate log level and sets it as the default logger for the
// application.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	// Parse the log level from configuration (case-insensitive)
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		// If the log level is invalid, use info level and warn about it
		level = slog.LevelInfo

		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)
	log := slog.New(handler)

	// Set this logger as the default so the slog package functions
	// (slog.Info, slog.Error, ...) use it too.
	slog.SetDefault(log)

	return log, nil
}

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext retrieves the logger from the context.
// Returns the logger and a boolean indicating whether one was found.
func FromContext(ctx context.Context) (*slog.Logger, bool) {
	log, ok := ctx.Value(loggerKey).(*slog.Logger)
	return log, ok
}

// FromContextOrDefault retrieves the logger from the context, falling back
// to the provided default when the context carries none.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if log, ok := FromContext(ctx); ok {
		return log
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
