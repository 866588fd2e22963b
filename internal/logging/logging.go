// Package logging builds the structured logger used across phrasey.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"
)

// LevelTrace sits below debug and carries per-keystroke detail.
const LevelTrace = slog.Level(-8)

// ParseLevel maps a config level name onto a slog level. The second result is
// false for "off".
func ParseLevel(name string) (slog.Level, bool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "off", "":
		return 0, false, nil
	case "error":
		return slog.LevelError, true, nil
	case "warn":
		return slog.LevelWarn, true, nil
	case "info":
		return slog.LevelInfo, true, nil
	case "debug":
		return slog.LevelDebug, true, nil
	case "trace":
		return LevelTrace, true, nil
	default:
		return 0, false, fmt.Errorf("unknown log level %q", name)
	}
}

// New returns a logger for the given level and directory together with a
// function releasing the underlying sink. An empty dir logs to stderr.
func New(level, dir string) (*slog.Logger, func() error, error) {
	lvl, enabled, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if !enabled {
		return Discard(), func() error { return nil }, nil
	}
	if dir == "" {
		return slog.New(newHandler(os.Stderr, lvl)), func() error { return nil }, nil
	}
	dir = strings.TrimPrefix(dir, "file://")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	name := fmt.Sprintf("phrasey_%s.log", time.Now().Format("2006-01-02_15-04-05"))
	file, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}
	return slog.New(newHandler(file, lvl)), file.Close, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

// newHandler picks text output for terminals and JSON for files and pipes.
func newHandler(out *os.File, lvl slog.Level) slog.Handler {
	options := &slog.HandlerOptions{Level: lvl, ReplaceAttr: renameTrace}
	if term.IsTerminal(int(out.Fd())) {
		return slog.NewTextHandler(out, options)
	}
	return slog.NewJSONHandler(out, options)
}

func renameTrace(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl <= LevelTrace {
		a.Value = slog.StringValue("TRACE")
	}
	return a
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }

// Trace logs at LevelTrace.
func Trace(logger *slog.Logger, msg string, args ...any) {
	logger.Log(context.Background(), LevelTrace, msg, args...)
}

// NewWriterLogger returns a JSON logger writing to w; used by tests and pipes.
func NewWriterLogger(w io.Writer, lvl slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl, ReplaceAttr: renameTrace}))
}
