// Package model defines shared data structures.
package model

// Phrase is one drill question: a sentence and its expected translation.
type Phrase struct {
	Original    string
	Translation string
}

// Config defines drill settings shared by every screen.
//
// A single Config value lives for the whole process. Screens read it through a
// pointer and only the settings screen replaces it, as a whole, on save.
type Config struct {
	StoreURI        string `validate:"required"`
	PhrasesPerRound int    `validate:"gte=1"`
	InputBoxWidth   int    `validate:"gte=30"`
	LogLevel        string `validate:"oneof=off error warn info debug trace"`
	LogDir          string
}

// Minimum values accepted for the numeric settings.
const (
	MinPhrasesPerRound = 1
	MinInputBoxWidth   = 30
)
