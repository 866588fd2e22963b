package app

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/verte-zerg/phrasey/internal/input"
	"github.com/verte-zerg/phrasey/internal/model"
	"github.com/verte-zerg/phrasey/internal/render"
)

// ErrInvalidSettingValue is returned when an edited setting cannot be applied.
var ErrInvalidSettingValue = errors.New("invalid setting value")

type settingsPhase int

const (
	phaseChoosing settingsPhase = iota
	phaseChanging
)

// settingsState edits a working copy of the config. Saving replaces the shared
// config as a whole.
type settingsState struct {
	env     *env
	logger  *slog.Logger
	working model.Config
	dirty   bool
	phase   settingsPhase
	field   render.Field
	buffer  inputBuffer
	notice  string
}

func newSettingsState(e *env) *settingsState {
	return &settingsState{
		env:     e,
		logger:  e.logger.With("state", "settings"),
		working: *e.config,
	}
}

func (s *settingsState) Handle(ev input.Event) (Transition, error) {
	switch ev.Kind {
	case input.KindQuit:
		return switchTo(newQuitState(s.env)), nil
	case input.KindBack:
		if s.phase == phaseChanging {
			s.logger.Debug("edit discarded", "field", string(s.field))
		}
		return switchTo(newMainMenuState(s.env)), nil
	}
	if s.phase == phaseChanging {
		return s.handleChanging(ev), nil
	}
	return s.handleChoosing(ev), nil
}

func (s *settingsState) handleChoosing(ev input.Event) Transition {
	if ev.Kind != input.KindCharacter {
		s.logger.Debug("event ignored", "phase", "choosing", "event", ev.String())
		return stay()
	}
	switch ev.Char {
	case 's', 'q':
		*s.env.config = s.working
		s.dirty = false
		s.notice = "Settings saved."
		s.logger.Info("settings saved",
			"phrases_per_round", s.working.PhrasesPerRound,
			"input_box_width", s.working.InputBoxWidth,
		)
		return redraw()
	case 'p', 'P':
		return s.beginEdit(render.FieldPhrasesPerRound)
	case 'w', 'W':
		return s.beginEdit(render.FieldInputBoxWidth)
	case 'b', 'B':
		return switchTo(newMainMenuState(s.env))
	}
	s.logger.Debug("event ignored", "phase", "choosing", "event", ev.String())
	return stay()
}

func (s *settingsState) beginEdit(field render.Field) Transition {
	s.phase = phaseChanging
	s.field = field
	s.buffer.reset()
	s.notice = ""
	return redraw()
}

func (s *settingsState) handleChanging(ev input.Event) Transition {
	if ev.Kind == input.KindEnter {
		if err := s.commit(); err != nil {
			s.logger.Debug("edit rejected", "error", err)
			s.notice = err.Error()
		}
		s.buffer.reset()
		s.phase = phaseChoosing
		s.field = render.FieldNone
		return redraw()
	}
	if t, ok := s.buffer.edit(ev); ok {
		return t
	}
	return stay()
}

// commit parses the buffer into the working copy.
func (s *settingsState) commit() error {
	raw := strings.TrimSpace(s.buffer.String())
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%w: %s %q is not a number", ErrInvalidSettingValue, s.field, raw)
	}
	switch s.field {
	case render.FieldPhrasesPerRound:
		if value < model.MinPhrasesPerRound {
			return fmt.Errorf("%w: %s must be >= %d", ErrInvalidSettingValue, s.field, model.MinPhrasesPerRound)
		}
		s.working.PhrasesPerRound = value
	case render.FieldInputBoxWidth:
		if value < model.MinInputBoxWidth {
			return fmt.Errorf("%w: %s must be >= %d", ErrInvalidSettingValue, s.field, model.MinInputBoxWidth)
		}
		s.working.InputBoxWidth = value
	default:
		return fmt.Errorf("%w: unknown field %q", ErrInvalidSettingValue, s.field)
	}
	s.dirty = true
	return nil
}

func (s *settingsState) Screen() render.Screen {
	screen := render.Screen{
		Name:    render.Settings,
		Config:  s.working,
		Dirty:   s.dirty,
		Editing: s.field,
		Notice:  s.notice,
	}
	if s.phase == phaseChanging {
		screen.Typed = s.buffer.String()
		switch s.field {
		case render.FieldPhrasesPerRound:
			screen.Placeholder = "New number of phrases per round"
		case render.FieldInputBoxWidth:
			screen.Placeholder = "New input box width"
		}
	}
	return screen
}

func (s *settingsState) Exit() {}
