package app

import (
	"github.com/verte-zerg/phrasey/internal/input"
	"github.com/verte-zerg/phrasey/internal/render"
)

// quitState shows the goodbye screen and ends the run on the next event.
type quitState struct {
	env *env
}

func newQuitState(e *env) *quitState {
	e.logger.Debug("quit requested")
	return &quitState{env: e}
}

func (s *quitState) Handle(ev input.Event) (Transition, error) {
	s.env.logger.Debug("terminating", "event", ev.String())
	return terminate(), nil
}

func (s *quitState) Screen() render.Screen {
	return render.Screen{Name: render.Goodbye}
}

func (s *quitState) Exit() {}
