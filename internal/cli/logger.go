package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DefaultLogLevel keeps normal runs quiet.
const DefaultLogLevel = "warn"

// NewLogger returns a text logger writing to w at the named level.
func NewLogger(level string, w io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLogLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// ParseLogLevel maps debug, info, warn and error to slog levels.
// An empty string means DefaultLogLevel.
func ParseLogLevel(level string) (slog.Level, error) {
	if level == "" {
		level = DefaultLogLevel
	}
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", level)
	}
}
