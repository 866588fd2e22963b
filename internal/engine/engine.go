// Package engine runs drill rounds: which phrases are still unanswered, how
// many times each was missed, and when a round is complete.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/verte-zerg/phrasey/internal/logging"
	"github.com/verte-zerg/phrasey/internal/model"
)

var (
	// ErrNoActivePhrase is returned by accessors when no phrase is current.
	ErrNoActivePhrase = errors.New("no active phrase")
	// ErrRoundComplete is returned by Advance once the last phrase is recognized.
	// The caller must end the round.
	ErrRoundComplete = errors.New("round complete")
)

const noPhrase = -1

// Sampler supplies random phrases for a round.
type Sampler interface {
	Sample(ctx context.Context, n int) ([]model.Phrase, error)
}

// Entry is a phrase together with the number of wrong answers given for it.
type Entry struct {
	Phrase   model.Phrase
	Attempts int
}

// Summary describes a finished or abandoned round.
type Summary struct {
	RoundID      string
	Recognized   []Entry
	Unrecognized []Entry
}

// Total returns the number of phrases the round started with.
func (s Summary) Total() int {
	return len(s.Recognized) + len(s.Unrecognized)
}

// Mistakes returns the number of wrong answers over the round.
func (s Summary) Mistakes() int {
	total := 0
	for _, e := range s.Recognized {
		total += e.Attempts
	}
	for _, e := range s.Unrecognized {
		total += e.Attempts
	}
	return total
}

// Hardest returns the recognized phrase that needed the most attempts.
func (s Summary) Hardest() (Entry, bool) {
	var best Entry
	found := false
	for _, e := range s.Recognized {
		if e.Attempts > 0 && (!found || e.Attempts > best.Attempts) {
			best = e
			found = true
		}
	}
	return best, found
}

// Engine owns the phrase pools of the current round.
type Engine struct {
	sampler Sampler
	config  *model.Config
	logger  *slog.Logger

	roundID      string
	unrecognized []Entry
	recognized   []Entry
	current      int
}

// New returns an Engine with no round in progress. The config is read on every
// StartRound, so settings saved between rounds apply to the next one.
func New(sampler Sampler, config *model.Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Engine{
		sampler: sampler,
		config:  config,
		logger:  logger.With("component", "engine"),
		current: noPhrase,
	}
}

// StartRound samples a fresh set of phrases, discarding any previous progress.
func (e *Engine) StartRound(ctx context.Context) error {
	phrases, err := e.sampler.Sample(ctx, e.config.PhrasesPerRound)
	if err != nil {
		return fmt.Errorf("failed to sample phrases: %w", err)
	}
	e.roundID = uuid.NewString()
	e.unrecognized = make([]Entry, 0, len(phrases))
	for _, p := range phrases {
		e.unrecognized = append(e.unrecognized, Entry{Phrase: p})
	}
	e.recognized = nil
	e.current = noPhrase
	if len(e.unrecognized) > 0 {
		e.current = 0
	}
	e.logger.Debug("round started", "round", e.roundID, "phrases", len(e.unrecognized))
	return nil
}

func (e *Engine) entry() (*Entry, error) {
	if e.current < 0 || e.current >= len(e.unrecognized) {
		return nil, ErrNoActivePhrase
	}
	return &e.unrecognized[e.current], nil
}

// CurrentOriginal returns the prompt of the current phrase.
func (e *Engine) CurrentOriginal() (string, error) {
	entry, err := e.entry()
	if err != nil {
		return "", err
	}
	logging.Trace(e.logger, "phrase fetched", "index", e.current, "remaining", len(e.unrecognized))
	return entry.Phrase.Original, nil
}

// CurrentTranslation returns the expected answer for the current phrase.
func (e *Engine) CurrentTranslation() (string, error) {
	entry, err := e.entry()
	if err != nil {
		return "", err
	}
	return entry.Phrase.Translation, nil
}

// Check reports whether answer matches the current translation, ignoring case
// and surrounding whitespace. It does not change the round.
func (e *Engine) Check(answer string) (bool, error) {
	entry, err := e.entry()
	if err != nil {
		return false, err
	}
	ok := Matches(answer, entry.Phrase.Translation)
	logging.Trace(e.logger, "answer checked", "round", e.roundID, "correct", ok)
	return ok, nil
}

// Matches compares two answers ignoring case and surrounding whitespace.
func Matches(answer, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(expected))
}

// Advance moves to the next phrase. A correct answer moves the current phrase to
// the recognized pool and the following phrase slides into its slot; a wrong
// answer counts an attempt and steps forward, wrapping at the end.
func (e *Engine) Advance(isCorrect bool) error {
	if _, err := e.entry(); err != nil {
		return err
	}
	idx := e.current
	if !isCorrect {
		e.unrecognized[idx].Attempts++
		e.current = (idx + 1) % len(e.unrecognized)
		return nil
	}

	done := e.unrecognized[idx]
	e.unrecognized = append(e.unrecognized[:idx], e.unrecognized[idx+1:]...)
	e.recognized = append(e.recognized, done)
	if len(e.unrecognized) == 0 {
		e.current = noPhrase
		e.logger.Debug("round complete", "round", e.roundID, "phrases", len(e.recognized))
		return ErrRoundComplete
	}
	e.current = idx % len(e.unrecognized)
	return nil
}

// EndRound clears both pools and returns what the round looked like.
func (e *Engine) EndRound() Summary {
	summary := Summary{
		RoundID:      e.roundID,
		Recognized:   e.Recognized(),
		Unrecognized: e.Unrecognized(),
	}
	if summary.RoundID != "" {
		e.logger.Debug("round ended",
			"round", summary.RoundID,
			"recognized", len(summary.Recognized),
			"unrecognized", len(summary.Unrecognized),
			"mistakes", summary.Mistakes(),
		)
	}
	e.unrecognized = nil
	e.recognized = nil
	e.current = noPhrase
	e.roundID = ""
	return summary
}

// Active reports whether a phrase is currently being asked.
func (e *Engine) Active() bool {
	_, err := e.entry()
	return err == nil
}

// Remaining returns the number of phrases not yet recognized.
func (e *Engine) Remaining() int {
	return len(e.unrecognized)
}

// Unrecognized returns a copy of the unrecognized pool.
func (e *Engine) Unrecognized() []Entry {
	return append([]Entry(nil), e.unrecognized...)
}

// Recognized returns a copy of the recognized pool.
func (e *Engine) Recognized() []Entry {
	return append([]Entry(nil), e.recognized...)
}
