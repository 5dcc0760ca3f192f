package textmeasure

import (
	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/endlabel/pkg/legend"
)

// DefaultCharWidth is the average glyph advance as a fraction of the font
// size for proportional sans-serif fonts.
const DefaultCharWidth = 0.55

// Estimator measures text by counting terminal cells: each cell is
// CharWidth times the font size, so wide CJK runes count double.
type Estimator struct {
	CharWidth float64
}

// NewEstimator returns an estimator with DefaultCharWidth.
func NewEstimator() *Estimator {
	return &Estimator{CharWidth: DefaultCharWidth}
}

// Measure implements legend.Measurer.
func (e *Estimator) Measure(text string, maxWidth, fontSize float64) (legend.TextBox, error) {
	width := func(s string) float64 {
		return float64(runewidth.StringWidth(s)) * e.charWidth() * fontSize
	}
	lines := Wrap(text, maxWidth, width)
	w, h := box(lines, fontSize, width)
	return legend.TextBox{Width: w, Height: h, Lines: lines}, nil
}

func (e *Estimator) charWidth() float64 {
	if e.CharWidth <= 0 {
		return DefaultCharWidth
	}
	return e.CharWidth
}

var _ legend.Measurer = (*Estimator)(nil)
