package gridtui

// Viewport is the root coordinate frame. The caller updates it on resize;
// the resolver reads it once per cycle.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// NewViewport creates a viewport at the origin with the given size.
func NewViewport(width, height int) *Viewport {
	return &Viewport{Width: width, Height: height}
}

// Resize updates the viewport dimensions. Negative values are treated as 0.
func (v *Viewport) Resize(width, height int) {
	v.Width = max(width, 0)
	v.Height = max(height, 0)
}

// Rect returns the viewport as a Rect.
func (v *Viewport) Rect() Rect {
	return Rect{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height}
}
