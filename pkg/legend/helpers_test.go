package legend

import "testing"

// fixedMeasurer reports the same text box for every label.
type fixedMeasurer struct {
	width, height float64
}

func (f fixedMeasurer) Measure(text string, maxWidth, fontSize float64) (TextBox, error) {
	return TextBox{Width: f.width, Height: f.height}, nil
}

// pixelScale places values directly as pixels inside [lo, hi].
type pixelScale struct {
	lo, hi float64
}

func (s pixelScale) Place(v float64) float64 { return v }
func (s pixelScale) RangeMin() float64       { return s.lo }
func (s pixelScale) RangeMax() float64       { return s.hi }

func itemsAt(ys ...float64) []Item {
	items := make([]Item, len(ys))
	for i, y := range ys {
		key := string(rune('A' + i))
		items[i] = Item{Key: key, Label: "Series " + key, Color: "#333", YValue: y}
	}
	return items
}

func mustInitial(t *testing.T, items []Item, s Scale) []PlacedMark {
	t.Helper()
	l, err := New(items, 16, 0, fixedMeasurer{width: 60, height: 20})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	initial, err := InitialPlacement(l, s, 0)
	if err != nil {
		t.Fatalf("InitialPlacement() error: %v", err)
	}
	return initial
}

func keysOf(marks []PlacedMark) []string {
	keys := make([]string, len(marks))
	for i, m := range marks {
		keys[i] = m.Key()
	}
	return keys
}
