package app

import (
	"context"
	"log/slog"

	"github.com/verte-zerg/phrasey/internal/engine"
	"github.com/verte-zerg/phrasey/internal/input"
	"github.com/verte-zerg/phrasey/internal/model"
	"github.com/verte-zerg/phrasey/internal/render"
)

// State is one mode of the application. Exactly one state is active at a time.
type State interface {
	// Handle reacts to one event and tells the machine what to do next.
	Handle(ev input.Event) (Transition, error)
	// Screen describes what the state currently shows.
	Screen() render.Screen
	// Exit is called once when the machine leaves the state, on every path.
	Exit()
}

type transitionKind int

const (
	kindStay transitionKind = iota
	kindRedraw
	kindSwitch
	kindTerminate
)

// Transition is the outcome of handling an event.
type Transition struct {
	kind transitionKind
	next State
}

func stay() Transition               { return Transition{kind: kindStay} }
func redraw() Transition             { return Transition{kind: kindRedraw} }
func switchTo(next State) Transition { return Transition{kind: kindSwitch, next: next} }
func terminate() Transition          { return Transition{kind: kindTerminate} }

// env carries what states need to build each other.
type env struct {
	ctx     context.Context
	config  *model.Config
	sampler engine.Sampler
	logger  *slog.Logger
}

// inputBuffer holds the text typed since the last submit. Empty means unset.
type inputBuffer struct {
	runes []rune
}

func (b *inputBuffer) push(r rune) {
	b.runes = append(b.runes, r)
}

// pop removes the last rune and reports whether anything was removed.
func (b *inputBuffer) pop() bool {
	if len(b.runes) == 0 {
		return false
	}
	b.runes = b.runes[:len(b.runes)-1]
	if len(b.runes) == 0 {
		b.runes = nil
	}
	return true
}

func (b *inputBuffer) set() bool { return len(b.runes) > 0 }

func (b *inputBuffer) String() string { return string(b.runes) }

func (b *inputBuffer) reset() { b.runes = nil }

// edit applies a character or backspace event to the buffer.
func (b *inputBuffer) edit(ev input.Event) (Transition, bool) {
	switch ev.Kind {
	case input.KindCharacter:
		b.push(ev.Char)
		return redraw(), true
	case input.KindRemoveCharacter:
		if b.pop() {
			return redraw(), true
		}
		return stay(), true
	}
	return stay(), false
}
