package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		enabled bool
	}{
		{"off", 0, false},
		{"", 0, false},
		{"error", slog.LevelError, true},
		{"WARN", slog.LevelWarn, true},
		{"info", slog.LevelInfo, true},
		{"debug", slog.LevelDebug, true},
		{"trace", LevelTrace, true},
	}
	for _, tt := range tests {
		lvl, enabled, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.enabled, enabled, tt.in)
		if enabled {
			assert.Equal(t, tt.want, lvl, tt.in)
		}
	}

	_, _, err := ParseLevel("verbose")
	require.Error(t, err)
}

func TestNewOffDiscards(t *testing.T) {
	logger, closeFn, err := New("off", t.TempDir())
	require.NoError(t, err)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
	require.NoError(t, closeFn())
}

func TestNewWritesTimestampedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, closeFn, err := New("debug", "file://"+dir)
	require.NoError(t, err)
	logger.Debug("round started", "phrases", 3)
	require.NoError(t, closeFn())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Regexp(t, `^phrasey_\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2}\.log$`, entries[0].Name())

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"round started"`)
}

func TestTraceLevelName(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, LevelTrace)
	Trace(logger, "key event", "code", "enter")
	assert.Contains(t, buf.String(), `"level":"TRACE"`)

	buf.Reset()
	quiet := NewWriterLogger(&buf, slog.LevelDebug)
	Trace(quiet, "key event")
	assert.Empty(t, buf.String())
}
