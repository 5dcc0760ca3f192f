package textmeasure

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/endlabel/pkg/errors"
)

// cells measures one unit per rune.
func cells(s string) float64 { return float64(len([]rune(s))) }

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  float64
		want []string
	}{
		{"empty", "", 10, nil},
		{"blank", "   ", 10, nil},
		{"fits", "United States", 20, []string{"United States"}},
		{"breaks", "United States of America", 13, []string{"United States", "of America"}},
		{"long word alone", "Bosnia-Herzegovina and more", 5, []string{"Bosnia-Herzegovina", "and", "more"}},
		{"collapses spaces", "a   b\tc", 100, []string{"a b c"}},
		{"unbounded", "a b c d", math.Inf(1), []string{"a b c d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.max, cells)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Wrap(%q, %v) = %q, want %q", tt.text, tt.max, got, tt.want)
			}
		})
	}
}

func TestEstimator(t *testing.T) {
	e := NewEstimator()

	box, err := e.Measure("France", math.Inf(1), 10)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if want := 6 * DefaultCharWidth * 10; math.Abs(box.Width-want) > 1e-9 {
		t.Errorf("Width = %v, want %v", box.Width, want)
	}
	if want := LineHeight * 10; math.Abs(box.Height-want) > 1e-9 {
		t.Errorf("Height = %v, want %v", box.Height, want)
	}
	if !slices.Equal(box.Lines, []string{"France"}) {
		t.Errorf("Lines = %q", box.Lines)
	}
}

func TestEstimatorWraps(t *testing.T) {
	e := &Estimator{CharWidth: 1}

	box, err := e.Measure("aaaa bbbb cc", 9, 1)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if !slices.Equal(box.Lines, []string{"aaaa bbbb", "cc"}) {
		t.Fatalf("Lines = %q", box.Lines)
	}
	if box.Width != 9 {
		t.Errorf("Width = %v, want 9", box.Width)
	}
	if want := 2 * LineHeight; math.Abs(box.Height-want) > 1e-9 {
		t.Errorf("Height = %v, want %v", box.Height, want)
	}
}

func TestEstimatorWideRunes(t *testing.T) {
	e := &Estimator{CharWidth: 1}

	narrow, _ := e.Measure("ab", math.Inf(1), 1)
	wide, _ := e.Measure("日本", math.Inf(1), 1)
	if wide.Width != 2*narrow.Width {
		t.Errorf("wide width = %v, want %v", wide.Width, 2*narrow.Width)
	}
}

func TestEstimatorEmpty(t *testing.T) {
	box, err := NewEstimator().Measure("", 100, 12)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if box.Width != 0 || box.Height != 0 || len(box.Lines) != 0 {
		t.Errorf("empty label box = %+v", box)
	}
}

func TestFace(t *testing.T) {
	f, err := NewFace()
	if err != nil {
		t.Fatalf("NewFace: %v", err)
	}
	defer f.Close()

	short, err := f.Measure("ab", math.Inf(1), 12)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	long, err := f.Measure("abababab", math.Inf(1), 12)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if short.Width <= 0 || long.Width <= short.Width {
		t.Errorf("widths short=%v long=%v", short.Width, long.Width)
	}

	again, _ := f.Measure("abababab", math.Inf(1), 12)
	if again.Width != long.Width {
		t.Errorf("measure not deterministic: %v != %v", again.Width, long.Width)
	}

	bigger, _ := f.Measure("ab", math.Inf(1), 24)
	if bigger.Width <= short.Width {
		t.Errorf("24pt width %v should exceed 12pt width %v", bigger.Width, short.Width)
	}
}

func TestFaceWraps(t *testing.T) {
	f, err := NewFace()
	if err != nil {
		t.Fatalf("NewFace: %v", err)
	}
	defer f.Close()

	text := strings.Repeat("word ", 10)
	box, err := f.Measure(text, 60, 12)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if len(box.Lines) < 2 {
		t.Fatalf("expected wrapping, got %q", box.Lines)
	}
	if box.Width > 60 {
		t.Errorf("Width = %v exceeds max 60", box.Width)
	}
}

func TestFaceInvalidSize(t *testing.T) {
	f, err := NewFace()
	if err != nil {
		t.Fatalf("NewFace: %v", err)
	}
	_, err = f.Measure("x", 100, 0)
	if !errors.Is(err, errors.ErrCodeInvalidMeasure) {
		t.Errorf("error = %v, want INVALID_MEASURE", err)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", NameEstimate, NameGoFont} {
		m, err := ByName(name)
		if err != nil || m == nil {
			t.Errorf("ByName(%q) = %v, %v", name, m, err)
		}
	}

	_, err := ByName("helvetica")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ByName(helvetica) error = %v, want INVALID_INPUT", err)
	}
}
