package logger

import (
	"io"
	"log/slog"
)

// L is the global logger instance. It's initialized to discard all output by default.
// Call Init() to route structural events (index growth, rollbacks) somewhere useful.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	Output  io.Writer  // Destination for log records. Required when Enabled
	Level   slog.Level // Minimum log level. Default: LevelInfo when enabled
	JSON    bool       // Emit JSON records instead of logfmt-style text
}

// Init configures logging. Call from main() or TestMain before any log calls.
// If opts.Enabled is false or no Output is given, all log output is discarded.
func Init(opts Options) {
	if !opts.Enabled || opts.Output == nil {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}

	level := opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}

	hopts := &slog.HandlerOptions{Level: level}
	if opts.JSON {
		L = slog.New(slog.NewJSONHandler(opts.Output, hopts))
		return
	}
	L = slog.New(slog.NewTextHandler(opts.Output, hopts))
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
