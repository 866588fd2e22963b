package input

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/verte-zerg/phrasey/internal/logging"
)

// Terminal is the byte source behind a Reader.
type Terminal interface {
	// MakeRaw switches to unbuffered, unechoed input and returns a function
	// restoring the previous mode.
	MakeRaw() (restore func() error, err error)
	Read(p []byte) (int, error)
}

// Reader produces one event per Next call.
type Reader struct {
	term    Terminal
	logger  *slog.Logger
	pending []Event
	carry   []byte
}

// NewReader returns a Reader over a terminal device such as os.Stdin.
func NewReader(f *os.File, logger *slog.Logger) *Reader {
	return NewTerminalReader(fileTerminal{f: f}, logger)
}

// NewTerminalReader returns a Reader over an arbitrary Terminal.
func NewTerminalReader(t Terminal, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Reader{term: t, logger: logger.With("component", "input")}
}

// Next blocks until a key press maps to an event. The terminal is in raw mode
// only while Next runs and is restored on every return path.
func (r *Reader) Next() (ev Event, err error) {
	if ev, ok := r.popPending(); ok {
		return ev, nil
	}

	restore, err := r.term.MakeRaw()
	if err != nil {
		return Event{}, fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		if rerr := restore(); rerr != nil {
			r.logger.Error("failed to restore terminal", "error", rerr)
			if err == nil {
				err = fmt.Errorf("failed to restore terminal: %w", rerr)
			}
		}
	}()

	buf := make([]byte, 256)
	for {
		n, rerr := r.term.Read(buf)
		if n > 0 {
			chunk := append(r.carry, buf[:n]...)
			events, rest := Decode(chunk)
			r.carry = rest
			logging.Trace(r.logger, "bytes decoded", "bytes", n, "events", len(events))
			if len(events) > 0 {
				r.pending = append(r.pending, events...)
				ev, _ := r.popPending()
				return ev, nil
			}
		}
		if rerr != nil {
			return Event{}, fmt.Errorf("failed to read input: %w", rerr)
		}
	}
}

func (r *Reader) popPending() (Event, bool) {
	if len(r.pending) == 0 {
		return Event{}, false
	}
	ev := r.pending[0]
	r.pending = r.pending[1:]
	return ev, true
}

type fileTerminal struct {
	f *os.File
}

func (t fileTerminal) MakeRaw() (func() error, error) {
	fd := int(t.f.Fd())
	if !term.IsTerminal(fd) {
		return func() error { return nil }, nil
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error { return term.Restore(fd, oldState) }, nil
}

func (t fileTerminal) Read(p []byte) (int, error) {
	return t.f.Read(p)
}
