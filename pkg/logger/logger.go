// Package logger provides a structured, levelled logger built on log/slog,
// plus the fire-and-forget action log used for audit lines.
//
//	logger.Info("order placed", "vendor", v.ID, "success", ok)
//	logger.LogAction("saying hello")
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/acme/acme/config"
)

var L *slog.Logger

func init() {
	L = New(os.Stdout, config.AppEnv())
	slog.SetDefault(L)
}

// New builds a logger for the given environment: JSON in production,
// human-readable text everywhere else.
func New(w io.Writer, env string) *slog.Logger {
	var handler slog.Handler

	switch env {
	case "production", "prod":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	return slog.New(handler)
}

// SetOutput swaps the base logger. Mostly useful in tests and the CLI.
func SetOutput(l *slog.Logger) {
	if l == nil {
		return
	}
	L = l
}

// ─────────────────────────────────────────────
// Short-hand helpers (use base logger)
// ─────────────────────────────────────────────

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
