package app

import (
	"github.com/verte-zerg/phrasey/internal/input"
	"github.com/verte-zerg/phrasey/internal/render"
)

type mainMenuState struct {
	env    *env
	buffer inputBuffer
}

func newMainMenuState(e *env) *mainMenuState {
	return &mainMenuState{env: e}
}

func (s *mainMenuState) Handle(ev input.Event) (Transition, error) {
	switch ev.Kind {
	case input.KindEnter:
		game, err := newGameState(s.env)
		if err != nil {
			return stay(), err
		}
		return switchTo(game), nil
	case input.KindQuit:
		return switchTo(newQuitState(s.env)), nil
	case input.KindCharacter:
		switch ev.Char {
		case 's', 'S':
			return switchTo(newSettingsState(s.env)), nil
		case 'q', 'Q':
			return switchTo(newQuitState(s.env)), nil
		}
	}
	if t, ok := s.buffer.edit(ev); ok {
		return t, nil
	}
	s.env.logger.Debug("event ignored", "state", "main-menu", "event", ev.String())
	return stay(), nil
}

func (s *mainMenuState) Screen() render.Screen {
	return render.Screen{
		Name:        render.MainMenu,
		Typed:       s.buffer.String(),
		Placeholder: "Press Enter to start",
	}
}

func (s *mainMenuState) Exit() {}
