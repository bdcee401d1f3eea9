// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup("debug")           // level name from config
//	logging.SetupWithLevel(slog.LevelWarn, os.Stderr)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs a tint handler on stderr as the default slog logger.
// Unknown level names fall back to info.
func Setup(level string) {
	SetupWithLevel(ParseLevel(level), os.Stderr)
}

// SetupWithLevel installs a tint handler writing to w at the given level.
func SetupWithLevel(level slog.Level, w io.Writer) {
	slog.SetDefault(slog.New(NewHandler(level, w)))
}

// NewHandler returns the tint handler used by Setup.
func NewHandler(level slog.Level, w io.Writer) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  level <= slog.LevelDebug,
		NoColor:    !isTerminal(w),
	})
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
