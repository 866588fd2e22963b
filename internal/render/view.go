package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/phrasey/internal/model"
)

const (
	margin    = " "
	// boxChrome is the border plus one cell of padding on each side.
	boxChrome = 4
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	promptStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	correctStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#52C41A"))
	wrongStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF4D4F"))
	keyStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	hintStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	boxStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")).Italic(true)
	noticeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// View renders a screen as text. When the screen has an input box, the box
// occupies the last three lines and the output does not end with a newline.
func View(s Screen, cfg model.Config) string {
	width := boxWidth(cfg)
	var lines []string
	add := func(ls ...string) { lines = append(lines, ls...) }

	add(margin+titleStyle.Render("phrasey")+hintStyle.Render("  phrase drill"), "")

	switch s.Name {
	case MainMenu:
		add(margin+"What do you want to do?", "")
		add(menuItem("Enter", "Start a new round"))
		add(menuItem("S", "Settings"))
		add(menuItem("Q", "Quit"))
	case Guessing:
		add(margin+hintStyle.Render(progress(s)), "")
		add(margin + "Translate:")
		add(wrapped(s.Prompt, width, promptStyle)...)
		add("", hints("Enter", "check", "←", "main menu", "Esc", "quit"))
	case Feedback:
		add(margin + "Translate:")
		add(wrapped(s.Prompt, width, promptStyle)...)
		add("")
		if s.Correct {
			add(margin + correctStyle.Render("Correct!"))
		} else {
			add(margin + wrongStyle.Render("Incorrect!"))
			add(margin + "Your answer:")
			add(wrapped(s.Answer, width, hintStyle)...)
			add(margin + "Expected:")
			add(wrapped(s.Expected, width, promptStyle)...)
		}
		add("", hints("Enter", "continue", "←", "main menu", "Esc", "quit"))
	case RoundEnd:
		add(roundEnd(s, width)...)
		add("", hints("Enter", "next round", "B", "main menu", "Esc", "quit"))
	case Settings:
		add(settings(s)...)
	case Goodbye:
		add(margin+"Goodbye!", "", margin+hintStyle.Render("Press any key to exit."))
	}

	if s.Notice != "" {
		add("", margin+noticeStyle.Render(s.Notice))
	}
	if s.HasInputBox() {
		add("")
		add(inputBox(s, width)...)
		return strings.Join(lines, "\n")
	}
	return strings.Join(lines, "\n") + "\n"
}

// InputCursorColumn returns the 1-based column where the caret sits inside the
// input box.
func InputCursorColumn(s Screen, cfg model.Config) int {
	return runewidth.StringWidth(margin) + 3 + runewidth.StringWidth(visibleInput(s.Typed, boxWidth(cfg)))
}

func boxWidth(cfg model.Config) int {
	if cfg.InputBoxWidth < model.MinInputBoxWidth {
		return model.MinInputBoxWidth
	}
	return cfg.InputBoxWidth
}

// visibleInput returns the part of typed that fits in the box, leaving one cell
// for the caret.
func visibleInput(typed string, width int) string {
	return fitTail(typed, width-boxChrome-1)
}

func inputBox(s Screen, width int) []string {
	border := lipgloss.RoundedBorder()
	inner := width - 2
	text := visibleInput(s.Typed, width)
	content := runewidth.FillRight(text, width-boxChrome)
	if s.Typed == "" && s.Placeholder != "" {
		ph := runewidth.Truncate(s.Placeholder, width-boxChrome, "…")
		content = placeholderStyle.Render(ph) + strings.Repeat(" ", width-boxChrome-runewidth.StringWidth(ph))
	}
	return []string{
		margin + boxStyle.Render(border.TopLeft+strings.Repeat(border.Top, inner)+border.TopRight),
		margin + boxStyle.Render(border.Left) + " " + content + " " + boxStyle.Render(border.Right),
		margin + boxStyle.Render(border.BottomLeft+strings.Repeat(border.Bottom, inner)+border.BottomRight),
	}
}

func menuItem(key, label string) string {
	return margin + "  " + keyStyle.Render(runewidth.FillRight("["+key+"]", 9)) + label
}

func hints(pairs ...string) string {
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, keyStyle.Render(pairs[i])+" "+hintStyle.Render(pairs[i+1]))
	}
	return margin + strings.Join(parts, hintStyle.Render("  ·  "))
}

func wrapped(text string, width int, style lipgloss.Style) []string {
	raw := wrapText(text, width-2)
	out := make([]string, len(raw))
	for i, line := range raw {
		out[i] = margin + "  " + style.Render(line)
	}
	return out
}

func progress(s Screen) string {
	total := s.Remaining + s.Done
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("%d of %d recognized, %d left", s.Done, total, s.Remaining)
}

func roundEnd(s Screen, width int) []string {
	sum := s.Summary
	if sum.Total() == 0 {
		return []string{
			margin + "No phrases available.",
			margin + hintStyle.Render("Import some with `phrasey import <file.csv>`."),
		}
	}
	lines := []string{
		margin + correctStyle.Render("Round completed!") + " Ready for the next one?",
		"",
		margin + fmt.Sprintf("Phrases: %d  Mistakes: %d", sum.Total(), sum.Mistakes()),
	}
	if hardest, ok := sum.Hardest(); ok {
		lines = append(lines, margin+fmt.Sprintf("Hardest: %q (%d missed)", hardest.Phrase.Original, hardest.Attempts))
	}

	if table := summaryTable(sum.Recognized, width-2); len(table) > 0 {
		lines = append(lines, "")
		for i, line := range table {
			line = ansi.Truncate(line, width, "…")
			if i == 0 {
				line = hintStyle.Render(line)
			}
			lines = append(lines, margin+"  "+line)
		}
	}
	return lines
}

func settings(s Screen) []string {
	cfg := s.Config
	mark := func(f Field) string {
		if s.Editing == f {
			return keyStyle.Render("› ")
		}
		return "  "
	}
	title := "Settings"
	if s.Dirty {
		title += hintStyle.Render("  (unsaved)")
	}
	lines := []string{
		margin + title,
		"",
		margin + "  " + hintStyle.Render(runewidth.FillRight("", 9)) + "Store: " + hintStyle.Render(cfg.StoreURI),
		margin + mark(FieldPhrasesPerRound) + keyStyle.Render(runewidth.FillRight("[P]", 9)) + fmt.Sprintf("Phrases per round: %d", cfg.PhrasesPerRound),
		margin + mark(FieldInputBoxWidth) + keyStyle.Render(runewidth.FillRight("[W]", 9)) + fmt.Sprintf("Input box width: %d", cfg.InputBoxWidth),
		menuItem("S", "Save"),
		menuItem("B", "Back to main menu"),
	}
	if s.Editing != FieldNone {
		lines = append(lines, "", hints("Enter", "apply", "←", "main menu"))
	}
	return lines
}
