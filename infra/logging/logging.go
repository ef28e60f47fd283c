// Package logging sets up the debug log. The terminal is owned by the UI, so
// log output always goes to a file, never stdout or stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Open returns a logger writing to path and a close function. If the file
// cannot be created the logger discards everything: a browsing session should
// not die over an unwritable log.
func Open(path string, level slog.Level) (*slog.Logger, func() error) {
	if path == "" {
		return discard(level), func() error { return nil }
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return discard(level), func() error { return nil }
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return discard(level), func() error { return nil }
	}
	log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return log, f.Close
}

func discard(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level}))
}
