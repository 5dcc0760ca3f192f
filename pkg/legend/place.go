package legend

import (
	"cmp"
	"math"
	"slices"

	"github.com/matzehuels/endlabel/pkg/errors"
)

// Scale maps a data value to a pixel y and reports the valid pixel band.
type Scale interface {
	Place(value float64) float64
	RangeMin() float64
	RangeMax() float64
}

// ValidateScale rejects a missing scale or one whose band is inverted.
func ValidateScale(s Scale) error {
	if s == nil {
		return errors.New(errors.ErrCodeInvalidScale, "legend requires an axis scale")
	}
	lo, hi := s.RangeMin(), s.RangeMax()
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return errors.New(errors.ErrCodeInvalidScale, "axis range is not a number")
	}
	if lo > hi {
		return errors.New(errors.ErrCodeInvalidScale, "axis range min %v exceeds max %v", lo, hi)
	}
	return nil
}

// PlacedMark is a mark with its target position and current bounds.
type PlacedMark struct {
	Mark    Mark
	TargetY float64

	// OrigBounds is the naive placement centered on TargetY. It never moves.
	OrigBounds Box
	// Bounds is the final placement. Only its Y differs from OrigBounds.
	Bounds Box

	IsOverlap bool
	// Repositions counts pushes: positive for downward, negative for upward.
	Repositions int

	GroupPosition int
	GroupSize     int
}

// Key returns the series key of the mark.
func (m PlacedMark) Key() string { return m.Mark.Item.Key }

// Moved reports whether the mark is flagged or no longer at its naive bounds.
func (m PlacedMark) Moved() bool {
	return m.IsOverlap || !m.Bounds.Equals(m.OrigBounds)
}

// InitialPlacement centers each mark on its scaled value, with the box left
// edge at x+LeftPadding, and stably sorts the result by target y.
func InitialPlacement(l *Legend, s Scale, x float64) ([]PlacedMark, error) {
	if err := ValidateScale(s); err != nil {
		return nil, err
	}

	marks := make([]PlacedMark, 0, l.Len())
	for _, m := range l.marks {
		y := s.Place(m.Item.YValue)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, errors.New(errors.ErrCodeInvalidScale, "value %v of %q maps outside the axis", m.Item.YValue, m.Item.Key)
		}
		bounds := Box{
			X:      x + LeftPadding,
			Y:      y - m.Height()/2,
			Width:  m.Width,
			Height: m.Height(),
		}
		marks = append(marks, PlacedMark{
			Mark:       m,
			TargetY:    y,
			OrigBounds: bounds,
			Bounds:     bounds,
		})
	}

	slices.SortStableFunc(marks, func(a, b PlacedMark) int {
		return cmp.Compare(a.TargetY, b.TargetY)
	})
	return marks, nil
}

// TopDown pushes each colliding later mark below the earlier one. A push that
// would cross rangeMax is rejected and the mark is flagged instead. The
// input is not modified.
func TopDown(initial []PlacedMark, rangeMax float64) []PlacedMark {
	marks := slices.Clone(initial)
	for i := range marks {
		for j := i + 1; j < len(marks); j++ {
			upper, lower := &marks[i], &marks[j]
			if !upper.Bounds.Intersects(lower.Bounds) {
				continue
			}

			overlap := upper.Bounds.Bottom() - lower.Bounds.Top()
			next := lower.Bounds.WithY(lower.Bounds.Y + overlap)
			if next.Bottom() > rangeMax {
				lower.IsOverlap = true
				continue
			}
			lower.Bounds = next
			lower.Repositions++
		}
	}
	return marks
}

// BottomUp walks the marks from the bottom of the axis and pushes each
// colliding upper mark above the lower one. The lowest mark is first clamped
// into range. A push that would cross rangeMin is rejected and the mark is
// flagged instead. The result is in bottom-to-top order.
func BottomUp(initial []PlacedMark, rangeMin, rangeMax float64) []PlacedMark {
	marks := slices.Clone(initial)
	slices.Reverse(marks)

	for i := range marks {
		lower := &marks[i]
		if i == 0 && lower.Bounds.Bottom() > rangeMax {
			lower.Bounds = lower.Bounds.WithY(rangeMax - lower.Bounds.Height)
		}

		for j := i + 1; j < len(marks); j++ {
			upper := &marks[j]
			if !lower.Bounds.Intersects(upper.Bounds) {
				continue
			}

			overlap := upper.Bounds.Bottom() - lower.Bounds.Top()
			next := upper.Bounds.WithY(upper.Bounds.Y - overlap)
			if next.Top() < rangeMin {
				upper.IsOverlap = true
				continue
			}
			upper.Bounds = next
			upper.Repositions--
		}
	}
	return marks
}

// Overlapping leaves every mark at its target and flags each mark that
// collides with an earlier unflagged one.
func Overlapping(initial []PlacedMark) []PlacedMark {
	marks := slices.Clone(initial)
	for i := range marks {
		if marks[i].IsOverlap {
			continue
		}
		for j := i + 1; j < len(marks); j++ {
			if marks[i].Bounds.Intersects(marks[j].Bounds) {
				marks[j].IsOverlap = true
			}
		}
	}
	return marks
}

// Strategy identifies which placement strategy produced a [Placement].
type Strategy int

const (
	StrategyTopDown Strategy = iota
	StrategyBottomUp
	StrategyOverlapping
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyTopDown:
		return "top-down"
	case StrategyBottomUp:
		return "bottom-up"
	case StrategyOverlapping:
		return "overlapping"
	}
	return "unknown"
}

// Attempt records how many marks a strategy left flagged.
type Attempt struct {
	Strategy Strategy
	Overlaps int
}

// Placement is the chosen strategy result.
type Placement struct {
	Strategy Strategy
	// Marks are in the strategy's own traversal order: ascending target y,
	// or descending for bottom-up.
	Marks []PlacedMark
	// Attempts lists every strategy that ran, in order.
	Attempts []Attempt
}

// Select picks the strategy for the given overlap counts: top-down if it is
// clean, else bottom-up if it is clean, else the overlapping fallback.
func Select(topDownOverlaps, bottomUpOverlaps int) Strategy {
	switch {
	case topDownOverlaps == 0:
		return StrategyTopDown
	case bottomUpOverlaps == 0:
		return StrategyBottomUp
	default:
		return StrategyOverlapping
	}
}

// Place runs the strategies in priority order against independent copies of
// initial and returns the first clean result, or the overlapping fallback.
// Group indicators are assigned on the chosen marks.
func Place(initial []PlacedMark, s Scale) Placement {
	if len(initial) == 0 {
		return Placement{Strategy: StrategyTopDown}
	}

	top := TopDown(initial, s.RangeMax())
	attempts := []Attempt{{StrategyTopDown, CountOverlaps(top)}}
	if attempts[0].Overlaps == 0 {
		return newPlacement(StrategyTopDown, top, attempts)
	}

	bottom := BottomUp(initial, s.RangeMin(), s.RangeMax())
	attempts = append(attempts, Attempt{StrategyBottomUp, CountOverlaps(bottom)})
	if Select(attempts[0].Overlaps, attempts[1].Overlaps) == StrategyBottomUp {
		return newPlacement(StrategyBottomUp, bottom, attempts)
	}

	fallback := Overlapping(initial)
	attempts = append(attempts, Attempt{StrategyOverlapping, CountOverlaps(fallback)})
	return newPlacement(StrategyOverlapping, fallback, attempts)
}

func newPlacement(s Strategy, marks []PlacedMark, attempts []Attempt) Placement {
	AssignGroups(marks)
	return Placement{Strategy: s, Marks: marks, Attempts: attempts}
}

// CountOverlaps returns the number of flagged marks.
func CountOverlaps(marks []PlacedMark) int {
	n := 0
	for _, m := range marks {
		if m.IsOverlap {
			n++
		}
	}
	return n
}

// Overlaps returns the number of flagged marks in the placement.
func (p Placement) Overlaps() int { return CountOverlaps(p.Marks) }

// NumMovesNeeded counts marks that are flagged or moved away from their
// naive bounds. It is informational only.
func (p Placement) NumMovesNeeded() int {
	n := 0
	for _, m := range p.Marks {
		if m.Moved() {
			n++
		}
	}
	return n
}
