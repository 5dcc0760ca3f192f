package legend

// connectorInset is the gap between the connector ends and the padding edges.
const connectorInset = 5.0

// RenderMark is what the drawing layer needs for one placed label.
type RenderMark struct {
	Key   string
	Label string
	Color string
	Lines []string

	Bounds     Box
	OrigBounds Box

	GroupPosition int
	GroupSize     int
	IsOverlap     bool
}

// RenderSets splits placed marks into dimmed and highlighted labels.
type RenderSets struct {
	FocusMode  bool
	Background []RenderMark
	Focus      []RenderMark
}

// IsFocusMode reports whether focusKeys highlight a strict, non-empty subset
// of keys.
func IsFocusMode(keys, focusKeys []string) bool {
	focus := keySet(focusKeys)
	if len(focus) == len(keys) {
		return false
	}
	for _, k := range keys {
		if focus[k] {
			return true
		}
	}
	return false
}

// Partition splits the placement into background and focus sets. In focus
// mode the split follows focusKeys; otherwise flagged marks go to the
// background. Both sets keep the placement order.
func Partition(p Placement, focusKeys []string) RenderSets {
	keys := make([]string, len(p.Marks))
	for i, m := range p.Marks {
		keys[i] = m.Key()
	}

	sets := RenderSets{FocusMode: IsFocusMode(keys, focusKeys)}
	focus := keySet(focusKeys)
	for _, m := range p.Marks {
		highlighted := !m.IsOverlap
		if sets.FocusMode {
			highlighted = focus[m.Key()]
		}

		rm := newRenderMark(m)
		if highlighted {
			sets.Focus = append(sets.Focus, rm)
		} else {
			sets.Background = append(sets.Background, rm)
		}
	}
	return sets
}

func newRenderMark(m PlacedMark) RenderMark {
	return RenderMark{
		Key:           m.Mark.Item.Key,
		Label:         m.Mark.Item.Label,
		Color:         m.Mark.Item.Color,
		Lines:         m.Mark.Text.Lines,
		Bounds:        m.Bounds,
		OrigBounds:    m.OrigBounds,
		GroupPosition: m.GroupPosition,
		GroupSize:     m.GroupSize,
		IsOverlap:     m.IsOverlap,
	}
}

func keySet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

// Connector is the three-segment indicator from a label back to its value:
// horizontal at Y1 from X1 to XMid, vertical from Y1 to Y2, then horizontal
// at Y2 from XMid to X2.
type Connector struct {
	X1, XMid, X2 float64
	Y1, Y2       float64
}

// Connector returns the indicator line for a legend whose left edge is x.
// The bend point shifts by GroupPosition/GroupSize so connectors within one
// run do not sit on top of each other.
func (m RenderMark) Connector(x float64) Connector {
	x1 := x + connectorInset
	x2 := x + LeftPadding - connectorInset
	mid := (x1 + x2) / 2
	if m.GroupSize > 0 {
		mid -= float64(m.GroupPosition) / float64(m.GroupSize) * (x2 - x1 - connectorInset)
	}
	return Connector{
		X1: x1, XMid: mid, X2: x2,
		Y1: m.OrigBounds.CenterY(),
		Y2: m.Bounds.CenterY(),
	}
}

// Callbacks are the optional pointer hooks a drawing layer may wire to
// label keys. The placement code never calls them.
type Callbacks struct {
	OnMouseOver  func(key string)
	OnClick      func(key string)
	OnMouseLeave func()
}

// WithDefaults returns c with nil hooks replaced by no-ops.
func (c Callbacks) WithDefaults() Callbacks {
	if c.OnMouseOver == nil {
		c.OnMouseOver = func(string) {}
	}
	if c.OnClick == nil {
		c.OnClick = func(string) {}
	}
	if c.OnMouseLeave == nil {
		c.OnMouseLeave = func() {}
	}
	return c
}
