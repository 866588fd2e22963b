package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/verte-zerg/phrasey/internal/engine"
	"github.com/verte-zerg/phrasey/internal/input"
	"github.com/verte-zerg/phrasey/internal/render"
)

type gamePhase int

const (
	phaseInput gamePhase = iota
	phaseFeedback
	phaseRoundEnd
)

func (p gamePhase) String() string {
	switch p {
	case phaseInput:
		return "input"
	case phaseFeedback:
		return "feedback"
	default:
		return "round-end"
	}
}

// gameState runs drill rounds. Leaving it ends the round in progress.
type gameState struct {
	env    *env
	engine *engine.Engine
	logger *slog.Logger
	buffer inputBuffer
	phase  gamePhase

	// Feedback for the last submitted answer.
	prompt   string
	answer   string
	expected string
	correct  bool

	summary engine.Summary
}

func newGameState(e *env) (*gameState, error) {
	g := &gameState{
		env:    e,
		engine: engine.New(e.sampler, e.config, e.logger),
		logger: e.logger.With("state", "game"),
	}
	if err := g.startRound(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *gameState) startRound() error {
	if err := g.engine.StartRound(g.env.ctx); err != nil {
		return fmt.Errorf("failed to start round: %w", err)
	}
	g.buffer.reset()
	g.summary = engine.Summary{}
	g.phase = phaseInput
	if !g.engine.Active() {
		g.logger.Info("no phrases to drill")
		g.finishRound()
	}
	return nil
}

func (g *gameState) finishRound() {
	g.summary = g.engine.EndRound()
	g.phase = phaseRoundEnd
}

func (g *gameState) Handle(ev input.Event) (Transition, error) {
	switch ev.Kind {
	case input.KindQuit:
		return switchTo(newQuitState(g.env)), nil
	case input.KindBack:
		return switchTo(newMainMenuState(g.env)), nil
	}

	switch g.phase {
	case phaseInput:
		if ev.Kind == input.KindEnter {
			return g.submit(), nil
		}
		if t, ok := g.buffer.edit(ev); ok {
			return t, nil
		}
	case phaseFeedback:
		if ev.Kind == input.KindEnter {
			return g.advance(), nil
		}
	case phaseRoundEnd:
		if ev.Kind == input.KindEnter {
			if err := g.startRound(); err != nil {
				return stay(), err
			}
			return redraw(), nil
		}
		if ev.Kind == input.KindCharacter && (ev.Char == 'b' || ev.Char == 'B') {
			return switchTo(newMainMenuState(g.env)), nil
		}
	}
	g.logger.Debug("event ignored", "phase", g.phase.String(), "event", ev.String())
	return stay(), nil
}

func (g *gameState) submit() Transition {
	if !g.buffer.set() {
		g.logger.Debug("empty answer submitted")
	}
	answer := g.buffer.String()
	prompt, err := g.engine.CurrentOriginal()
	if err != nil {
		return g.abandonRound(err)
	}
	correct, err := g.engine.Check(answer)
	if err != nil {
		return g.abandonRound(err)
	}
	expected, err := g.engine.CurrentTranslation()
	if err != nil {
		return g.abandonRound(err)
	}

	g.prompt = prompt
	g.answer = answer
	g.expected = expected
	g.correct = correct
	g.buffer.reset()
	g.phase = phaseFeedback
	return redraw()
}

// abandonRound ends a round whose current phrase went missing.
func (g *gameState) abandonRound(err error) Transition {
	g.logger.Error("no phrase to check", "error", err)
	g.finishRound()
	return redraw()
}

func (g *gameState) advance() Transition {
	err := g.engine.Advance(g.correct)
	switch {
	case errors.Is(err, engine.ErrRoundComplete):
		g.finishRound()
	case err != nil:
		g.logger.Error("failed to advance", "error", err)
		g.finishRound()
	default:
		g.phase = phaseInput
	}
	return redraw()
}

func (g *gameState) Screen() render.Screen {
	switch g.phase {
	case phaseFeedback:
		return render.Screen{
			Name:     render.Feedback,
			Prompt:   g.prompt,
			Answer:   g.answer,
			Expected: g.expected,
			Correct:  g.correct,
		}
	case phaseRoundEnd:
		return render.Screen{Name: render.RoundEnd, Summary: g.summary}
	}
	prompt, err := g.engine.CurrentOriginal()
	if err != nil {
		g.logger.Error("no phrase to show", "error", err)
	}
	return render.Screen{
		Name:        render.Guessing,
		Prompt:      prompt,
		Typed:       g.buffer.String(),
		Placeholder: "Type the translation",
		Remaining:   g.engine.Remaining(),
		Done:        len(g.engine.Recognized()),
	}
}

func (g *gameState) Exit() {
	g.engine.EndRound()
}
