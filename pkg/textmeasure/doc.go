// Package textmeasure provides text measurers for legend labels.
//
// Two implementations of legend.Measurer are available:
//
//   - [Estimator] guesses glyph widths from a per-character ratio of the font
//     size. It needs no font files and is what the CLI uses by default.
//   - [Face] measures real glyph advances of the Go Regular font through
//     golang.org/x/image.
//
// Both wrap labels on word boundaries to the requested maximum width and
// report the wrapped lines so the drawing layer can emit one row per line.
// Line height is [LineHeight] times the font size.
package textmeasure
