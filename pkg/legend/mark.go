package legend

import (
	"math"

	"github.com/matzehuels/endlabel/pkg/errors"
)

const (
	// LeftPadding is the margin reserved left of the label text for the
	// connector line.
	LeftPadding = 40.0

	// FontScale scales the configured chart font size down for labels.
	FontScale = 0.75
)

// Item is one series endpoint to label.
type Item struct {
	Key    string  // Unique series identifier
	Label  string  // Display text
	Color  string  // Series color used for focused labels
	YValue float64 // Data value at the series endpoint
}

// TextBox is the measured extent of a label.
type TextBox struct {
	Width, Height float64
	// Lines optionally holds the wrapped text so the drawing layer can emit
	// one line per row. Placement ignores it.
	Lines []string
}

// Measurer turns a label into a text box. Implementations must be
// deterministic for identical arguments.
type Measurer interface {
	Measure(text string, maxWidth, fontSize float64) (TextBox, error)
}

// MeasureFunc adapts a plain function to [Measurer].
type MeasureFunc func(text string, maxWidth, fontSize float64) (TextBox, error)

// Measure calls f.
func (f MeasureFunc) Measure(text string, maxWidth, fontSize float64) (TextBox, error) {
	return f(text, maxWidth, fontSize)
}

// Mark is a measured label that has not been placed yet.
type Mark struct {
	Item Item
	Text TextBox
	// Width is LeftPadding plus the text width.
	Width float64
}

// Height returns the height of the label text.
func (m Mark) Height() float64 { return m.Text.Height }

// Legend is the ordered set of measured marks for one chart.
type Legend struct {
	marks    []Mark
	fontSize float64
	maxWidth float64
}

// New measures every item with m. Marks keep the input order.
//
// fontSize is the chart font size; labels are measured at FontScale times
// that. A maxWidth of zero or less means the legend may grow without bound.
// Keys must be unique.
func New(items []Item, fontSize, maxWidth float64, m Measurer) (*Legend, error) {
	if m == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "legend requires a text measurer")
	}
	if math.IsNaN(fontSize) || fontSize < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid font size %v", fontSize)
	}
	if maxWidth <= 0 || math.IsNaN(maxWidth) {
		maxWidth = math.Inf(1)
	}

	l := &Legend{
		marks:    make([]Mark, 0, len(items)),
		fontSize: FontScale * fontSize,
		maxWidth: maxWidth,
	}
	maxTextWidth := maxWidth - LeftPadding

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if seen[item.Key] {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate series key %q", item.Key)
		}
		seen[item.Key] = true

		box, err := m.Measure(item.Label, maxTextWidth, l.fontSize)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidMeasure, err, "measure label %q", item.Label)
		}
		if err := validateTextBox(box); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidMeasure, err, "measure label %q", item.Label)
		}

		l.marks = append(l.marks, Mark{
			Item:  item,
			Text:  box,
			Width: LeftPadding + box.Width,
		})
	}
	return l, nil
}

func validateTextBox(b TextBox) error {
	if math.IsNaN(b.Width) || math.IsNaN(b.Height) || math.IsInf(b.Width, 0) || math.IsInf(b.Height, 0) {
		return errors.New(errors.ErrCodeInvalidMeasure, "non-finite text box %vx%v", b.Width, b.Height)
	}
	if b.Width < 0 || b.Height < 0 {
		return errors.New(errors.ErrCodeInvalidMeasure, "negative text box %vx%v", b.Width, b.Height)
	}
	return nil
}

// Marks returns a copy of the measured marks in input order.
func (l *Legend) Marks() []Mark {
	out := make([]Mark, len(l.marks))
	copy(out, l.marks)
	return out
}

// Len returns the number of marks.
func (l *Legend) Len() int { return len(l.marks) }

// FontSize returns the scaled font size the labels were measured at.
func (l *Legend) FontSize() float64 { return l.fontSize }

// MaxWidth returns the width limit, +Inf when unbounded.
func (l *Legend) MaxWidth() float64 { return l.maxWidth }

// Width returns the widest mark, or 0 for an empty legend.
func (l *Legend) Width() float64 {
	var w float64
	for _, m := range l.marks {
		w = max(w, m.Width)
	}
	return w
}

// Keys returns the series keys in input order.
func (l *Legend) Keys() []string {
	keys := make([]string, len(l.marks))
	for i, m := range l.marks {
		keys[i] = m.Item.Key
	}
	return keys
}
