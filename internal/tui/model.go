// Package tui provides the Bubble Tea drill interface.
package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/phrasey/internal/app"
	"github.com/verte-zerg/phrasey/internal/input"
	"github.com/verte-zerg/phrasey/internal/logging"
	"github.com/verte-zerg/phrasey/internal/model"
	"github.com/verte-zerg/phrasey/internal/render"
)

type keyMap struct {
	Quit   key.Binding
	Back   key.Binding
	Enter  key.Binding
	Delete key.Binding
}

var keys = keyMap{
	Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c", "ctrl+d"), key.WithHelp("esc", "quit")),
	Back:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "main menu")),
	Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Delete: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete")),
}

// Model implements the Bubble Tea drill UI on top of an app.Machine.
type Model struct {
	machine *app.Machine
	config  *model.Config
	logger  *slog.Logger
	err     error
}

// NewModel constructs a drill TUI model.
func NewModel(machine *app.Machine, config *model.Config, logger *slog.Logger) *Model {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Model{machine: machine, config: config, logger: logger.With("component", "tui")}
}

// Err returns the error that stopped the program, if any.
func (m *Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	for _, ev := range translate(keyMsg) {
		if _, err := m.machine.Dispatch(ev); err != nil {
			m.logger.Error("event failed", "event", ev.String(), "error", err)
			m.err = err
			m.machine.Close()
			return m, tea.Quit
		}
		if m.machine.Done() {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.machine.Done() || m.err != nil {
		return ""
	}
	return render.View(m.machine.Screen(), *m.config)
}

// translate maps a key press to drill events. Pasted text yields one event per
// rune.
func translate(msg tea.KeyMsg) []input.Event {
	switch {
	case key.Matches(msg, keys.Quit):
		return []input.Event{input.Quit}
	case key.Matches(msg, keys.Back):
		return []input.Event{input.Back}
	case key.Matches(msg, keys.Enter):
		return []input.Event{input.Enter}
	case key.Matches(msg, keys.Delete):
		return []input.Event{input.RemoveCharacter}
	}
	switch msg.Type {
	case tea.KeySpace:
		return []input.Event{input.Char(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		events := make([]input.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, input.Char(r))
		}
		return events
	default:
		return nil
	}
}
