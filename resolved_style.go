package gridtui

// ResolvedStyle is the concrete geometry and appearance computed for one
// component in one frame. All geometry fields are non-negative cell counts
// once a cycle completes. Values are comparable with ==, which is how dirty
// tracking detects change.
type ResolvedStyle struct {
	Position PositionMode

	X, Y          int
	Width, Height int

	// MinWidth/MinHeight hold the effective minimum used by the last cycle
	// (explicit, or derived from text).
	MinWidth, MinHeight int
	MaxWidth, MaxHeight Bound

	Foreground  RGBA
	Background  RGBA
	BorderColor RGBA

	Padding     Edges
	Margin      Edges
	Border      int
	BorderStyle BorderStyle

	TextAlign TextAlign
	Axis      Axis
	Gap       int
}

// newResolvedStyle copies the non-geometry fields of s with defaults applied.
// Geometry is left at zero for the resolver to fill in.
func newResolvedStyle(s Style) ResolvedStyle {
	return ResolvedStyle{
		Position:    s.PositionMode(),
		Foreground:  s.ForegroundColor(),
		Background:  s.BackgroundColor(),
		BorderColor: s.BorderColorOrDefault(),
		Padding:     s.Padding(),
		Margin:      s.Margin(),
		Border:      max(s.Border.Or(0), 0),
		BorderStyle: s.BorderStyle.Or(BorderSingle),
		TextAlign:   s.TextAlign.Or(TextAlignLeft),
		Axis:        s.LayoutAxis(),
	}
}

// Rect returns the component's resolved bounds.
func (r ResolvedStyle) Rect() Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}
