// Package scale maps data values onto vertical pixel coordinates.
//
// An [Axis] implements legend.Scale: Place turns a value into a pixel y and
// RangeMin/RangeMax bound the drawable band. Larger values sit higher on
// screen, so the domain maximum maps to RangeMin.
//
//	ax, err := scale.New(scale.Linear, 0, 100, 20, 480)
//	y := ax.Place(42) // 286.8
package scale

import (
	"math"

	"github.com/matzehuels/endlabel/pkg/errors"
)

// Type selects the axis transform.
type Type string

const (
	Linear Type = "linear"
	Log    Type = "log"
)

// Axis is an immutable value-to-pixel mapping.
type Axis struct {
	typ                  Type
	domainMin, domainMax float64
	rangeMin, rangeMax   float64
}

// New creates a validated axis. An empty type means [Linear].
func New(t Type, domainMin, domainMax, rangeMin, rangeMax float64) (*Axis, error) {
	if t == "" {
		t = Linear
	}
	a := &Axis{
		typ:       t,
		domainMin: domainMin,
		domainMax: domainMax,
		rangeMin:  rangeMin,
		rangeMax:  rangeMax,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks the axis for contract violations.
func (a *Axis) Validate() error {
	if a.typ != Linear && a.typ != Log {
		return errors.New(errors.ErrCodeInvalidScale, "unknown scale type %q (must be linear or log)", a.typ)
	}
	for _, v := range []float64{a.domainMin, a.domainMax, a.rangeMin, a.rangeMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New(errors.ErrCodeInvalidScale, "axis bounds must be finite")
		}
	}
	if a.rangeMin > a.rangeMax {
		return errors.New(errors.ErrCodeInvalidScale, "axis range min %v exceeds max %v", a.rangeMin, a.rangeMax)
	}
	if a.domainMin > a.domainMax {
		return errors.New(errors.ErrCodeInvalidScale, "axis domain min %v exceeds max %v", a.domainMin, a.domainMax)
	}
	if a.typ == Log && a.domainMin <= 0 {
		return errors.New(errors.ErrCodeInvalidScale, "log axis domain must be positive, got min %v", a.domainMin)
	}
	return nil
}

// Type returns the axis transform.
func (a *Axis) Type() Type { return a.typ }

// Domain returns the data bounds.
func (a *Axis) Domain() (lo, hi float64) { return a.domainMin, a.domainMax }

// RangeMin returns the top of the pixel band.
func (a *Axis) RangeMin() float64 { return a.rangeMin }

// RangeMax returns the bottom of the pixel band.
func (a *Axis) RangeMax() float64 { return a.rangeMax }

// Place maps v to a pixel y. Values outside the domain extrapolate; a
// non-positive value on a log axis yields NaN.
func (a *Axis) Place(v float64) float64 {
	t := a.fraction(v)
	return a.rangeMax - t*(a.rangeMax-a.rangeMin)
}

func (a *Axis) fraction(v float64) float64 {
	lo, hi := a.domainMin, a.domainMax
	if a.typ == Log {
		if v <= 0 {
			return math.NaN()
		}
		v, lo, hi = math.Log10(v), math.Log10(lo), math.Log10(hi)
	}
	if hi == lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}

// DomainOf returns the min and max of values, ignoring NaNs.
// ok is false when no finite value exists.
func DomainOf(values []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo, hi = min(lo, v), max(hi, v)
	}
	if lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}
