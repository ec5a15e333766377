package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Log is the process-wide logger. It starts as an info-level text logger on
// stdout so packages can log before Init runs (tests, tools).
var Log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

// ParseLevel maps "debug", "info", "warn"/"warning", "error" to a slog level.
// Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init replaces Log. sink is "" / "stdout", "stderr" or "file:/path/to/log";
// format is "text" or "json".
func Init(level, sink, format string) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	out := os.Stdout
	switch {
	case sink == "stderr":
		out = os.Stderr
	case strings.HasPrefix(sink, "file:"):
		path := strings.TrimPrefix(sink, "file:")
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
		if err != nil {
			// fallback to stdout
			fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", path, err)
		} else {
			out = f
		}
	}
	if strings.EqualFold(format, "json") {
		Log = slog.New(slog.NewJSONHandler(out, opts))
	} else {
		Log = slog.New(slog.NewTextHandler(out, opts))
	}
	slog.SetDefault(Log)
}
