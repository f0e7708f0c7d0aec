package ui

import (
	"io"
	"log/slog"
)

// NewLogger creates a slog.Logger writing text records to w. It does not set
// the global logger, allowing for isolated logger instances. Verbose enables
// debug-level records; otherwise only warnings and errors surface so normal
// runs stay quiet.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
