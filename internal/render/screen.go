// Package render draws drill screens as terminal text.
package render

import (
	"github.com/verte-zerg/phrasey/internal/engine"
	"github.com/verte-zerg/phrasey/internal/model"
)

// Name identifies which screen is shown.
type Name int

const (
	MainMenu Name = iota
	Guessing
	Feedback
	RoundEnd
	Settings
	Goodbye
)

func (n Name) String() string {
	switch n {
	case MainMenu:
		return "main-menu"
	case Guessing:
		return "guessing"
	case Feedback:
		return "feedback"
	case RoundEnd:
		return "round-end"
	case Settings:
		return "settings"
	case Goodbye:
		return "goodbye"
	default:
		return "unknown"
	}
}

// Field names a setting that can be edited from the settings screen.
type Field string

const (
	FieldNone            Field = ""
	FieldPhrasesPerRound Field = "phrases-per-round"
	FieldInputBoxWidth   Field = "input-box-width"
)

// Screen is the semantic content of one frame. Renderers decide how it looks.
type Screen struct {
	Name Name

	// Typed is the text entered since the last submit; empty means nothing typed.
	Typed       string
	Placeholder string

	// Guessing and Feedback.
	Prompt    string
	Remaining int
	Done      int
	Answer    string
	Expected  string
	Correct   bool

	// RoundEnd.
	Summary engine.Summary

	// Settings.
	Config  model.Config
	Editing Field
	Dirty   bool

	Notice string
}

// HasInputBox reports whether the screen shows a text prompt.
func (s Screen) HasInputBox() bool {
	switch s.Name {
	case MainMenu, Guessing:
		return true
	case Settings:
		return s.Editing != FieldNone
	default:
		return false
	}
}
