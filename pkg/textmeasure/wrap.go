package textmeasure

import "strings"

// LineHeight is the line advance as a multiple of the font size.
const LineHeight = 1.1

// Wrap breaks text into lines no wider than maxWidth, measuring with width.
// Words wider than maxWidth get a line of their own. Whitespace runs
// collapse to single spaces.
func Wrap(text string, maxWidth float64, width func(string) float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var (
		lines   []string
		current string
	)
	for _, w := range words {
		if current == "" {
			current = w
			continue
		}
		candidate := current + " " + w
		if width(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = w
	}
	return append(lines, current)
}

// box measures wrapped lines: the widest line and the stacked line height.
func box(lines []string, fontSize float64, width func(string) float64) (w, h float64) {
	for _, l := range lines {
		w = max(w, width(l))
	}
	return w, float64(len(lines)) * LineHeight * fontSize
}
