package legend

// Box is an axis-aligned rectangle in pixel space. Y grows downward, so Top
// is the smaller coordinate.
type Box struct {
	X, Y          float64
	Width, Height float64
}

// Top returns the upper edge of the box.
func (b Box) Top() float64 { return b.Y }

// Bottom returns the lower edge of the box.
func (b Box) Bottom() float64 { return b.Y + b.Height }

// Left returns the left edge of the box.
func (b Box) Left() float64 { return b.X }

// Right returns the right edge of the box.
func (b Box) Right() float64 { return b.X + b.Width }

// CenterY returns the vertical center of the box.
func (b Box) CenterY() float64 { return b.Y + b.Height/2 }

// Intersects reports whether b and o share at least one point.
// Boxes that only touch along an edge intersect.
func (b Box) Intersects(o Box) bool {
	return !(o.Left() > b.Right() ||
		o.Right() < b.Left() ||
		o.Top() > b.Bottom() ||
		o.Bottom() < b.Top())
}

// WithY returns a copy of b moved to y. Width and height are unchanged.
func (b Box) WithY(y float64) Box {
	b.Y = y
	return b
}

// Equals reports whether b and o have identical position and size.
func (b Box) Equals(o Box) bool { return b == o }
