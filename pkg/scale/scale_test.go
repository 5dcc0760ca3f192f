package scale

import (
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/endlabel/pkg/errors"
)

func TestLinearPlace(t *testing.T) {
	ax, err := New(Linear, 0, 100, 20, 480)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	tests := []struct {
		value float64
		want  float64
	}{
		{0, 480},
		{100, 20},
		{50, 250},
		{42, 286.8},
		{150, -210},
	}
	for _, tt := range tests {
		if got := ax.Place(tt.value); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Place(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestLogPlace(t *testing.T) {
	ax, err := New(Log, 1, 1000, 0, 300)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if got := ax.Place(10); math.Abs(got-200) > 1e-9 {
		t.Errorf("Place(10) = %v, want 200", got)
	}
	if got := ax.Place(1000); math.Abs(got) > 1e-9 {
		t.Errorf("Place(1000) = %v, want 0", got)
	}
	if got := ax.Place(-5); !math.IsNaN(got) {
		t.Errorf("Place(-5) = %v, want NaN", got)
	}
}

func TestFlatDomainPlacesInMiddle(t *testing.T) {
	ax, err := New("", 7, 7, 100, 300)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if ax.Type() != Linear {
		t.Errorf("Type() = %v, want linear", ax.Type())
	}
	if got := ax.Place(7); got != 200 {
		t.Errorf("Place(7) = %v, want 200", got)
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name               string
		typ                Type
		dmin, dmax, lo, hi float64
	}{
		{"inverted range", Linear, 0, 1, 500, 0},
		{"inverted domain", Linear, 10, 1, 0, 500},
		{"unknown type", Type("sqrt"), 0, 1, 0, 1},
		{"log with zero", Log, 0, 10, 0, 100},
		{"nan bound", Linear, math.NaN(), 1, 0, 1},
		{"infinite bound", Linear, 0, math.Inf(1), 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.typ, tt.dmin, tt.dmax, tt.lo, tt.hi)
			if !errors.Is(err, errors.ErrCodeInvalidScale) {
				t.Errorf("New() error = %v, want %v", err, errors.ErrCodeInvalidScale)
			}
		})
	}
}

func TestDomainOf(t *testing.T) {
	lo, hi, ok := DomainOf([]float64{3, math.NaN(), -2, 9, math.Inf(1)})
	if !ok || lo != -2 || hi != 9 {
		t.Errorf("DomainOf() = %v, %v, %v; want -2, 9, true", lo, hi, ok)
	}

	if _, _, ok := DomainOf([]float64{math.NaN()}); ok {
		t.Error("DomainOf(NaN) ok = true, want false")
	}
	if _, _, ok := DomainOf(nil); ok {
		t.Error("DomainOf(nil) ok = true, want false")
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		name       string
		typ        Type
		dmin, dmax float64
		n          int
		want       []float64
	}{
		{"decimal", Linear, 0, 100, 5, []float64{0, 20, 40, 60, 80, 100}},
		{"offset", Linear, 3, 17, 3, []float64{5, 10, 15}},
		{"fractions", Linear, 0, 1, 4, []float64{0, 0.5, 1}},
		{"flat", Linear, 4, 4, 5, []float64{4}},
		{"log decades", Log, 1, 1000, 5, []float64{1, 10, 100, 1000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ax, err := New(tt.typ, tt.dmin, tt.dmax, 0, 100)
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			got := ax.Ticks(tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("Ticks() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Errorf("Ticks() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestAxisAccessors(t *testing.T) {
	ax, _ := New(Linear, -5, 5, 10, 90)
	lo, hi := ax.Domain()
	if got := []float64{lo, hi, ax.RangeMin(), ax.RangeMax()}; !slices.Equal(got, []float64{-5, 5, 10, 90}) {
		t.Errorf("accessors = %v", got)
	}
}
