// Package app drives the drill: it owns the active state, feeds it input
// events and redraws the screen when something visible changed.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/verte-zerg/phrasey/internal/engine"
	"github.com/verte-zerg/phrasey/internal/input"
	"github.com/verte-zerg/phrasey/internal/logging"
	"github.com/verte-zerg/phrasey/internal/model"
	"github.com/verte-zerg/phrasey/internal/render"
)

// Source yields input events, blocking until one is available.
type Source interface {
	Next() (input.Event, error)
}

// Renderer draws a screen.
type Renderer interface {
	Render(render.Screen) error
}

// Machine holds the active state and applies transitions.
type Machine struct {
	env     *env
	current State
	done    bool
	closed  bool
}

// NewMachine returns a machine showing the main menu. The config is shared:
// the settings screen replaces its value on save.
func NewMachine(ctx context.Context, config *model.Config, sampler engine.Sampler, logger *slog.Logger) *Machine {
	if logger == nil {
		logger = logging.Discard()
	}
	e := &env{ctx: ctx, config: config, sampler: sampler, logger: logger.With("component", "app")}
	return newMachine(e, newMainMenuState(e))
}

func newMachine(e *env, initial State) *Machine {
	return &Machine{env: e, current: initial}
}

// Screen describes the active state.
func (m *Machine) Screen() render.Screen {
	return m.current.Screen()
}

// Done reports whether the machine has terminated.
func (m *Machine) Done() bool {
	return m.done
}

// Dispatch hands ev to the active state and reports whether the screen needs
// to be redrawn.
func (m *Machine) Dispatch(ev input.Event) (bool, error) {
	if m.done {
		return false, nil
	}
	t, err := m.current.Handle(ev)
	if err != nil {
		return false, err
	}
	switch t.kind {
	case kindRedraw:
		return true, nil
	case kindSwitch:
		m.current.Exit()
		m.env.logger.Debug("state changed", "from", stateName(m.current), "to", stateName(t.next))
		m.current = t.next
		return true, nil
	case kindTerminate:
		m.done = true
		m.Close()
		return false, nil
	default:
		return false, nil
	}
}

func stateName(s State) string {
	switch s.(type) {
	case *mainMenuState:
		return "main-menu"
	case *gameState:
		return "game"
	case *settingsState:
		return "settings"
	case *quitState:
		return "quit"
	default:
		return fmt.Sprintf("%T", s)
	}
}

// Close exits the active state. It is safe to call more than once.
func (m *Machine) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.current.Exit()
}

// App runs a Machine against a blocking input source and a renderer.
type App struct {
	machine  *Machine
	source   Source
	renderer Renderer
	logger   *slog.Logger
}

// New returns an App starting at the main menu.
func New(ctx context.Context, config *model.Config, sampler engine.Sampler, source Source, renderer Renderer, logger *slog.Logger) *App {
	m := NewMachine(ctx, config, sampler, logger)
	return &App{machine: m, source: source, renderer: renderer, logger: m.env.logger}
}

// Run loops until the quit screen is dismissed. The active state is exited on
// every return path. A closed input ends the run without error.
func (a *App) Run() error {
	defer a.machine.Close()

	if err := a.renderer.Render(a.machine.Screen()); err != nil {
		return err
	}
	for !a.machine.Done() {
		ev, err := a.source.Next()
		if errors.Is(err, io.EOF) {
			a.logger.Info("input closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		logging.Trace(a.logger, "event received", "event", ev.String())

		changed, err := a.machine.Dispatch(ev)
		if err != nil {
			return err
		}
		if changed {
			if err := a.renderer.Render(a.machine.Screen()); err != nil {
				return err
			}
		}
	}
	return nil
}
