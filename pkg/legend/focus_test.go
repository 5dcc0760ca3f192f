package legend

import (
	"math"
	"slices"
	"testing"
)

func TestIsFocusMode(t *testing.T) {
	all := []string{"A", "B", "C"}

	tests := []struct {
		name  string
		keys  []string
		focus []string
		want  bool
	}{
		{"everything focused", all, all, false},
		{"nothing focused", all, nil, false},
		{"single focused", all, []string{"A"}, true},
		{"two focused", all, []string{"A", "C"}, true},
		{"unknown key only", all, []string{"Z"}, false},
		{"duplicates of all keys", all, []string{"A", "B", "C", "C"}, false},
		{"repeated key counts once", []string{"A", "B"}, []string{"A", "A"}, true},
		{"single mark focused", []string{"A"}, []string{"A"}, false},
		{"empty chart", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFocusMode(tt.keys, tt.focus); got != tt.want {
				t.Errorf("IsFocusMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func renderKeys(marks []RenderMark) []string {
	keys := make([]string, len(marks))
	for i, m := range marks {
		keys[i] = m.Key
	}
	return keys
}

func TestPartitionFocusMode(t *testing.T) {
	p := Placement{Marks: []PlacedMark{
		{Mark: Mark{Item: Item{Key: "A"}}},
		{Mark: Mark{Item: Item{Key: "B"}}, IsOverlap: true},
		{Mark: Mark{Item: Item{Key: "C"}}},
	}}

	sets := Partition(p, []string{"A"})
	if !sets.FocusMode {
		t.Fatal("FocusMode = false, want true")
	}
	if got := renderKeys(sets.Background); !slices.Equal(got, []string{"B", "C"}) {
		t.Errorf("Background = %v, want [B C]", got)
	}
	if got := renderKeys(sets.Focus); !slices.Equal(got, []string{"A"}) {
		t.Errorf("Focus = %v, want [A]", got)
	}
}

func TestPartitionByOverlap(t *testing.T) {
	p := Placement{Marks: []PlacedMark{
		{Mark: Mark{Item: Item{Key: "A"}}},
		{Mark: Mark{Item: Item{Key: "B"}}, IsOverlap: true},
		{Mark: Mark{Item: Item{Key: "C"}}},
	}}

	for _, focus := range [][]string{nil, {"A", "B", "C"}} {
		sets := Partition(p, focus)
		if sets.FocusMode {
			t.Errorf("focus %v: FocusMode = true", focus)
		}
		if got := renderKeys(sets.Background); !slices.Equal(got, []string{"B"}) {
			t.Errorf("focus %v: Background = %v, want [B]", focus, got)
		}
		if got := renderKeys(sets.Focus); !slices.Equal(got, []string{"A", "C"}) {
			t.Errorf("focus %v: Focus = %v, want [A C]", focus, got)
		}
	}
}

func TestPartitionCarriesGeometry(t *testing.T) {
	orig := Box{X: 40, Y: 95, Width: 100, Height: 20}
	p := Placement{Marks: []PlacedMark{{
		Mark:          Mark{Item: Item{Key: "A", Label: "Alpha", Color: "#f00"}, Text: TextBox{Lines: []string{"Alpha"}}},
		OrigBounds:    orig,
		Bounds:        orig.WithY(110),
		GroupPosition: -1,
		GroupSize:     2,
	}}}

	rm := Partition(p, nil).Focus[0]
	want := RenderMark{
		Key: "A", Label: "Alpha", Color: "#f00", Lines: []string{"Alpha"},
		Bounds: orig.WithY(110), OrigBounds: orig,
		GroupPosition: -1, GroupSize: 2,
	}
	if rm.Key != want.Key || rm.Label != want.Label || rm.Color != want.Color ||
		!slices.Equal(rm.Lines, want.Lines) || rm.Bounds != want.Bounds || rm.OrigBounds != want.OrigBounds ||
		rm.GroupPosition != want.GroupPosition || rm.GroupSize != want.GroupSize {
		t.Errorf("RenderMark = %+v, want %+v", rm, want)
	}
}

func TestConnector(t *testing.T) {
	orig := Box{Y: 90, Height: 20}
	tests := []struct {
		name     string
		pos      int
		size     int
		wantXMid float64
	}{
		{"ungrouped", 0, 0, 620},
		{"middle", 0, 3, 620},
		{"first of two", -1, 2, 632.5},
		{"last of three", 1, 3, 620 - 25.0/3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := RenderMark{OrigBounds: orig, Bounds: orig.WithY(120), GroupPosition: tt.pos, GroupSize: tt.size}
			c := m.Connector(600)
			if c.X1 != 605 || c.X2 != 635 {
				t.Errorf("ends = %v..%v, want 605..635", c.X1, c.X2)
			}
			if math.Abs(c.XMid-tt.wantXMid) > 1e-9 {
				t.Errorf("XMid = %v, want %v", c.XMid, tt.wantXMid)
			}
			if c.Y1 != 100 || c.Y2 != 130 {
				t.Errorf("Y = %v -> %v, want 100 -> 130", c.Y1, c.Y2)
			}
		})
	}
}

func TestCallbacksWithDefaults(t *testing.T) {
	var clicked string
	cb := Callbacks{OnClick: func(key string) { clicked = key }}.WithDefaults()

	cb.OnMouseOver("A")
	cb.OnMouseLeave()
	cb.OnClick("B")
	if clicked != "B" {
		t.Errorf("OnClick not preserved, got %q", clicked)
	}
}
