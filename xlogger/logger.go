package xlogger

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Level   string
	LogType string
}

// New builds a slog.Logger writing to stderr, so log lines never mix with
// reconstruction results on stdout.
func New(conf Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: getLogLevel(conf.Level),
	}

	return slog.New(getHandler(conf.LogType, opts))
}

func getLogLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getHandler(logType string, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(logType) {
	case "json":
		return slog.NewJSONHandler(os.Stderr, opts)

	default:
		return slog.NewTextHandler(os.Stderr, opts)
	}
}
