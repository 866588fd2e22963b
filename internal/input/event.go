// Package input turns terminal keystrokes into drill events.
package input

import "fmt"

// Kind identifies a semantic input event.
type Kind int

const (
	KindEnter Kind = iota + 1
	KindBack
	KindQuit
	KindRemoveCharacter
	KindCharacter
)

// Event is one semantic key press. Char is set only for KindCharacter.
type Event struct {
	Kind Kind
	Char rune
}

var (
	Enter           = Event{Kind: KindEnter}
	Back            = Event{Kind: KindBack}
	Quit            = Event{Kind: KindQuit}
	RemoveCharacter = Event{Kind: KindRemoveCharacter}
)

// Char returns a character event.
func Char(r rune) Event {
	return Event{Kind: KindCharacter, Char: r}
}

func (e Event) String() string {
	switch e.Kind {
	case KindEnter:
		return "enter"
	case KindBack:
		return "back"
	case KindQuit:
		return "quit"
	case KindRemoveCharacter:
		return "backspace"
	case KindCharacter:
		return fmt.Sprintf("char(%q)", e.Char)
	default:
		return fmt.Sprintf("event(%d)", int(e.Kind))
	}
}
