package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Okyu59/TubeLingo/internal/config"
)

// setupLogger installs the default slog logger based on LogConfig and
// returns a cleanup closing the sink.
//
// The TUI owns the terminal, so diagnostics never go to stdout or stderr:
// they go to the configured file, or nowhere when no file is set.
// Level is one of debug, info, warn, error (case-insensitive).
func setupLogger(cfg config.LogConfig) (func(), error) {
	var (
		sink    io.Writer = io.Discard
		cleanup           = func() {}
	)

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		sink = f
		cleanup = func() { _ = f.Close() }
	}

	handler := slog.NewTextHandler(sink, &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	})
	slog.SetDefault(slog.New(handler))

	return cleanup, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
