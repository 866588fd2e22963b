package render

import "github.com/mattn/go-runewidth"

// wrapText breaks s into lines of at most width cells, preferring to break at
// spaces. Words wider than a line are split.
func wrapText(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var lines []string
	line := make([]rune, 0, width)
	lineWidth := 0
	lastSpaceIdx := -1

	runes := []rune(s)
	for i := 0; i < len(runes); {
		r := runes[i]
		w := runewidth.RuneWidth(r)
		if lineWidth+w > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				lines = append(lines, string(line[:lastSpaceIdx]))
				line = append([]rune{}, line[lastSpaceIdx+1:]...)
				lineWidth = runewidth.StringWidth(string(line))
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				lines = append(lines, string(line))
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, r)
		lineWidth += w
		if r == ' ' {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	lines = append(lines, string(line))
	return lines
}

func lastSpaceIndex(line []rune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i] == ' ' {
			return i
		}
	}
	return -1
}

// fitTail returns the end of s that fits in width cells, marking the cut with
// an ellipsis.
func fitTail(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return runewidth.TruncateLeft(s, sw-(width-1), "…")
}
