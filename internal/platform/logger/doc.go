// Package logger provides structured logging functionality for the
// application: a JSON slog configured from config, and helpers for
// carrying a request-scoped logger in a context.
package logger
