package textmeasure

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/matzehuels/endlabel/pkg/errors"
	"github.com/matzehuels/endlabel/pkg/legend"
)

// Face measures glyph advances of the Go Regular font at 72 DPI, so one
// point equals one pixel.
//
// A Face is safe for concurrent use. Faces for each requested size are
// created lazily and kept for the lifetime of the measurer.
type Face struct {
	mu    sync.Mutex
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFace parses the embedded Go Regular font.
func NewFace() (*Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse Go Regular font")
	}
	return &Face{font: f, faces: make(map[float64]font.Face)}, nil
}

// Measure implements legend.Measurer.
func (f *Face) Measure(text string, maxWidth, fontSize float64) (legend.TextBox, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	face, err := f.face(fontSize)
	if err != nil {
		return legend.TextBox{}, err
	}
	width := func(s string) float64 {
		return float64(font.MeasureString(face, s)) / 64
	}
	lines := Wrap(text, maxWidth, width)
	w, h := box(lines, fontSize, width)
	return legend.TextBox{Width: w, Height: h, Lines: lines}, nil
}

// face returns the cached face for size. Callers hold f.mu.
func (f *Face) face(size float64) (font.Face, error) {
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	if size <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidMeasure, "font size must be positive, got %v", size)
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMeasure, err, "create face at %vpt", size)
	}
	f.faces[size] = face
	return face, nil
}

// Close releases the cached faces.
func (f *Face) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for size, face := range f.faces {
		_ = face.Close()
		delete(f.faces, size)
	}
	return nil
}

var _ legend.Measurer = (*Face)(nil)
