package render

import (
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/phrasey/internal/engine"
)

const (
	phraseHeader = "Phrase"
	missedHeader = "Missed"
)

// summaryTable lays out recognized phrases with their miss counts. The phrase
// column is cut so each line fits in width cells; the count column is right
// aligned under its header.
func summaryTable(entries []engine.Entry, width int) []string {
	if len(entries) == 0 {
		return nil
	}
	countWidth := runewidth.StringWidth(missedHeader)
	phraseWidth := runewidth.StringWidth(phraseHeader)
	for _, e := range entries {
		countWidth = max(countWidth, len(strconv.Itoa(e.Attempts)))
		phraseWidth = max(phraseWidth, runewidth.StringWidth(e.Phrase.Original))
	}
	// Two cells separate the columns.
	phraseWidth = min(phraseWidth, max(width-countWidth-2, runewidth.StringWidth(phraseHeader)))

	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, summaryRow(phraseHeader, missedHeader, phraseWidth, countWidth))
	for _, e := range entries {
		lines = append(lines, summaryRow(e.Phrase.Original, strconv.Itoa(e.Attempts), phraseWidth, countWidth))
	}
	return lines
}

func summaryRow(phrase, count string, phraseWidth, countWidth int) string {
	phrase = runewidth.Truncate(phrase, phraseWidth, "…")
	return runewidth.FillRight(phrase, phraseWidth) + "  " + runewidth.FillLeft(count, countWidth)
}
