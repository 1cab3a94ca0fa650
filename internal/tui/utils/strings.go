package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateString truncates s to width cells, marking the cut with an ellipsis.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// Wrap breaks text into lines of at most width cells on word boundaries.
// Words longer than width are truncated.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var current strings.Builder
	for _, word := range strings.Fields(text) {
		word = TruncateString(word, width)
		if current.Len() == 0 {
			current.WriteString(word)
			continue
		}
		if runewidth.StringWidth(current.String())+1+runewidth.StringWidth(word) > width {
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
			continue
		}
		current.WriteString(" ")
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
