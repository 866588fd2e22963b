package render

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/verte-zerg/phrasey/internal/logging"
	"github.com/verte-zerg/phrasey/internal/model"
)

// Terminal draws screens on an ANSI terminal, replacing the previous frame.
type Terminal struct {
	out    io.Writer
	config *model.Config
	logger *slog.Logger
}

// NewTerminal returns a renderer writing to out. The config is read on every
// frame so a saved input box width applies immediately.
func NewTerminal(out io.Writer, config *model.Config, logger *slog.Logger) *Terminal {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Terminal{out: out, config: config, logger: logger.With("component", "render")}
}

// Render clears the terminal and draws s. The caret is placed inside the input
// box when the screen has one and hidden otherwise.
func (t *Terminal) Render(s Screen) error {
	var b strings.Builder
	b.WriteString(ansi.EraseEntireScreen)
	b.WriteString(ansi.CursorHomePosition)
	b.WriteString(strings.ReplaceAll(View(s, *t.config), "\n", "\r\n"))
	if s.HasInputBox() {
		b.WriteString(ansi.CursorUp(1))
		b.WriteString(ansi.CursorHorizontalAbsolute(InputCursorColumn(s, *t.config)))
		b.WriteString(ansi.ShowCursor)
	} else {
		b.WriteString(ansi.HideCursor)
	}
	if _, err := io.WriteString(t.out, b.String()); err != nil {
		return fmt.Errorf("failed to draw %s screen: %w", s.Name, err)
	}
	t.logger.Debug("screen drawn", "screen", s.Name.String())
	return nil
}

// Close restores the caret and moves below the last frame.
func (t *Terminal) Close() error {
	if _, err := io.WriteString(t.out, ansi.ShowCursor+"\r\n"); err != nil {
		return fmt.Errorf("failed to restore cursor: %w", err)
	}
	return nil
}
