// Package telemetry wires the process-wide structured logger.
package telemetry

import (
	"io"
	"log/slog"
	"os"
)

// InitLogger configures the default slog logger. Diagnostics go to
// stderr so they never interleave with progress output or piped JSON on
// stdout. A non-empty logFile redirects diagnostics there instead.
func InitLogger(debug bool, logFile string) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var sink io.Writer = os.Stderr
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			slog.Error("Failed to open log file", "path", logFile, "error", err)
		} else {
			sink = f
		}
	}

	handler := slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
