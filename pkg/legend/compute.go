package legend

// Options configures [Compute].
type Options struct {
	// X is the left edge of the legend area, usually the plot's right edge.
	X float64
	// FontSize is the chart font size before FontScale is applied.
	FontSize float64
	// MaxWidth bounds the legend width; zero means unbounded.
	MaxWidth float64

	Measurer  Measurer
	Scale     Scale
	FocusKeys []string
}

// Layout is the full result for one set of inputs.
type Layout struct {
	// Width is the widest mark including LeftPadding.
	Width float64
	// FontSize is the scaled label font size.
	FontSize float64

	Placement Placement
	Sets      RenderSets

	// MovesNeeded mirrors Placement.NumMovesNeeded.
	MovesNeeded int
}

// Compute runs the whole pipeline from items to render sets.
func Compute(items []Item, opts Options) (*Layout, error) {
	if err := ValidateScale(opts.Scale); err != nil {
		return nil, err
	}

	l, err := New(items, opts.FontSize, opts.MaxWidth, opts.Measurer)
	if err != nil {
		return nil, err
	}
	return l.Layout(opts.Scale, opts.X, opts.FocusKeys)
}

// Layout places the measured marks against s with the legend's left edge
// at x. Callers that need the legend width to position the legend measure
// first with [New] and then call Layout.
func (l *Legend) Layout(s Scale, x float64, focusKeys []string) (*Layout, error) {
	initial, err := InitialPlacement(l, s, x)
	if err != nil {
		return nil, err
	}

	p := Place(initial, s)
	return &Layout{
		Width:       l.Width(),
		FontSize:    l.FontSize(),
		Placement:   p,
		Sets:        Partition(p, focusKeys),
		MovesNeeded: p.NumMovesNeeded(),
	}, nil
}
