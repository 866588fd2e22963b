package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/phrasey/internal/engine"
	"github.com/verte-zerg/phrasey/internal/model"
)

var testConfig = model.Config{StoreURI: "file:///tmp/p.csv", PhrasesPerRound: 3, InputBoxWidth: 30}

func plainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestViewInputBoxIsLastThreeLines(t *testing.T) {
	out := View(Screen{Name: MainMenu, Typed: "abc"}, testConfig)
	lines := plainLines(out)
	require.GreaterOrEqual(t, len(lines), 3)
	box := lines[len(lines)-3:]
	for _, line := range box {
		assert.Equal(t, testConfig.InputBoxWidth+1, runewidth.StringWidth(line), "line %q", line)
	}
	assert.Contains(t, box[1], "abc")
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestViewShowsTailOfLongInput(t *testing.T) {
	typed := strings.Repeat("a", 40) + "END"
	lines := plainLines(View(Screen{Name: Guessing, Prompt: "Hallo", Typed: typed}, testConfig))
	text := lines[len(lines)-2]
	assert.Contains(t, text, "…")
	assert.Contains(t, text, "END")
	assert.Equal(t, testConfig.InputBoxWidth+1, runewidth.StringWidth(text))
}

func TestViewPlaceholderOnlyWhenEmpty(t *testing.T) {
	out := ansi.Strip(View(Screen{Name: Guessing, Placeholder: "Your answer"}, testConfig))
	assert.Contains(t, out, "Your answer")
	out = ansi.Strip(View(Screen{Name: Guessing, Placeholder: "Your answer", Typed: "x"}, testConfig))
	assert.NotContains(t, out, "Your answer")
}

func TestViewScreensWithoutBox(t *testing.T) {
	for _, s := range []Screen{
		{Name: Feedback, Prompt: "Hallo", Answer: "hi", Expected: "hello"},
		{Name: RoundEnd},
		{Name: Settings, Config: testConfig},
		{Name: Goodbye},
	} {
		assert.False(t, s.HasInputBox(), s.Name.String())
		assert.True(t, strings.HasSuffix(View(s, testConfig), "\n"), s.Name.String())
	}
	assert.True(t, Screen{Name: Settings, Editing: FieldPhrasesPerRound}.HasInputBox())
}

func TestViewFeedback(t *testing.T) {
	out := ansi.Strip(View(Screen{Name: Feedback, Prompt: "Hallo", Correct: true}, testConfig))
	assert.Contains(t, out, "Correct!")

	out = ansi.Strip(View(Screen{Name: Feedback, Prompt: "Hallo", Answer: "hi", Expected: "hello"}, testConfig))
	assert.Contains(t, out, "Incorrect!")
	assert.Contains(t, out, "hello")
}

func TestViewRoundSummary(t *testing.T) {
	sum := engine.Summary{Recognized: []engine.Entry{
		{Phrase: model.Phrase{Original: "eins", Translation: "one"}},
		{Phrase: model.Phrase{Original: "zwei", Translation: "two"}, Attempts: 2},
	}}
	out := ansi.Strip(View(Screen{Name: RoundEnd, Summary: sum}, testConfig))
	assert.Contains(t, out, "Round completed!")
	assert.Contains(t, out, "Mistakes: 2")
	assert.Contains(t, out, `Hardest: "zwei"`)

	out = ansi.Strip(View(Screen{Name: RoundEnd}, testConfig))
	assert.Contains(t, out, "No phrases available.")
}

func TestViewSettingsShowsWorkingCopy(t *testing.T) {
	cfg := testConfig
	cfg.PhrasesPerRound = 7
	out := ansi.Strip(View(Screen{Name: Settings, Config: cfg, Dirty: true}, testConfig))
	assert.Contains(t, out, "Phrases per round: 7")
	assert.Contains(t, out, "(unsaved)")
	assert.Contains(t, out, cfg.StoreURI)
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{"one two", "three"}, wrapText("one two three", 8))
	assert.Equal(t, []string{"abcd", "ef"}, wrapText("abcdef", 4))
	assert.Equal(t, []string{"short"}, wrapText("short", 0))
}

func TestTerminalRenderPlacesCaret(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig
	term := NewTerminal(&buf, &cfg, nil)

	s := Screen{Name: MainMenu, Typed: "ab"}
	require.NoError(t, term.Render(s))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, ansi.EraseEntireScreen+ansi.CursorHomePosition))
	assert.True(t, strings.HasSuffix(out, ansi.CursorUp(1)+ansi.CursorHorizontalAbsolute(6)+ansi.ShowCursor))
	assert.Equal(t, 6, InputCursorColumn(s, cfg))

	buf.Reset()
	require.NoError(t, term.Render(Screen{Name: Goodbye}))
	assert.True(t, strings.HasSuffix(buf.String(), ansi.HideCursor))

	buf.Reset()
	require.NoError(t, term.Close())
	assert.Contains(t, buf.String(), ansi.ShowCursor)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestTerminalRenderReportsWriteError(t *testing.T) {
	cfg := testConfig
	err := NewTerminal(failingWriter{}, &cfg, nil).Render(Screen{Name: MainMenu})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to draw main-menu screen")
}

func TestSummaryTableFitsWidth(t *testing.T) {
	entries := []engine.Entry{
		{Phrase: model.Phrase{Original: "Guten Morgen, wie geht es dir heute?"}, Attempts: 12},
		{Phrase: model.Phrase{Original: "ja"}},
	}
	lines := summaryTable(entries, 20)
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, 20, runewidth.StringWidth(line), "line %q", line)
	}
	assert.True(t, strings.HasPrefix(lines[0], "Phrase"))
	assert.True(t, strings.HasSuffix(lines[0], "Missed"))
	assert.Contains(t, lines[1], "…")
	assert.True(t, strings.HasSuffix(lines[1], "    12"))
	assert.True(t, strings.HasPrefix(lines[2], "ja "))
	assert.True(t, strings.HasSuffix(lines[2], "     0"))

	assert.Nil(t, summaryTable(nil, 20))
}
