package gridtui

import (
	"fmt"
	"math"
	"strings"
)

// Opt holds an optional, non-geometry style field. The zero value is unset.
type Opt[T comparable] struct {
	v   T
	set bool
}

// Some returns a set Opt holding v.
func Some[T comparable](v T) Opt[T] {
	return Opt[T]{v: v, set: true}
}

// Get returns the value and whether it was set.
func (o Opt[T]) Get() (T, bool) {
	return o.v, o.set
}

// IsSet reports whether the field was declared.
func (o Opt[T]) IsSet() bool {
	return o.set
}

// Or returns the value if set, otherwise def.
func (o Opt[T]) Or(def T) T {
	if o.set {
		return o.v
	}
	return def
}

// PositionMode selects whether a component is placed by its parent's layout
// pass (Relative) or keeps its own coordinates (Absolute).
type PositionMode uint8

const (
	// Relative components are placed one after another along the parent's axis.
	Relative PositionMode = iota
	// Absolute components are anchored to the parent's origin and skipped by
	// sibling layout.
	Absolute
)

func (p PositionMode) String() string {
	if p == Absolute {
		return "absolute"
	}
	return "relative"
}

// ParsePositionMode accepts "relative" or "absolute".
func ParsePositionMode(s string) (PositionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "relative":
		return Relative, nil
	case "absolute":
		return Absolute, nil
	default:
		return Relative, fmt.Errorf("unknown position mode %q", s)
	}
}

// TextAlign specifies how text is aligned within its component's width.
type TextAlign uint8

const (
	// TextAlignLeft aligns text to the left edge (default).
	TextAlignLeft TextAlign = iota
	// TextAlignCenter centers text horizontally.
	TextAlignCenter
	// TextAlignRight aligns text to the right edge.
	TextAlignRight
)

// ParseTextAlign accepts "left", "center" or "right".
func ParseTextAlign(s string) (TextAlign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return TextAlignLeft, nil
	case "center", "centre":
		return TextAlignCenter, nil
	case "right":
		return TextAlignRight, nil
	default:
		return TextAlignLeft, fmt.Errorf("unknown text alignment %q", s)
	}
}

// Style is the declarative box-model record authored for a component.
// It has value semantics and is never mutated by the resolver. Every field
// has an unset state; unset fields fall back to the defaults documented on
// the accessor methods.
type Style struct {
	Position Opt[PositionMode]

	// Geometry
	X, Y      Value
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Colors
	Foreground  Opt[RGBA]
	Background  Opt[RGBA]
	BorderColor Opt[RGBA]

	// Spacing
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft Opt[int]
	MarginTop, MarginRight, MarginBottom, MarginLeft     Opt[int]
	Border                                               Opt[int]
	BorderStyle                                          Opt[BorderStyle]

	TextAlign Opt[TextAlign]

	// Container properties
	Axis Opt[Axis]
	Gap  Value
}

// PositionMode returns the declared position mode (default Relative).
func (s Style) PositionMode() PositionMode { return s.Position.Or(Relative) }

// LayoutAxis returns the declared layout axis (default AxisX).
func (s Style) LayoutAxis() Axis { return s.Axis.Or(AxisX) }

// ForegroundColor returns the text color (default opaque white).
func (s Style) ForegroundColor() RGBA { return s.Foreground.Or(White) }

// BackgroundColor returns the fill color (default transparent).
func (s Style) BackgroundColor() RGBA { return s.Background.Or(Transparent) }

// BorderColorOrDefault returns the border color (default opaque white).
func (s Style) BorderColorOrDefault() RGBA { return s.BorderColor.Or(White) }

// Padding returns the padding edges; unset sides are 0.
func (s Style) Padding() Edges {
	return Edges{
		Top:    s.PaddingTop.Or(0),
		Right:  s.PaddingRight.Or(0),
		Bottom: s.PaddingBottom.Or(0),
		Left:   s.PaddingLeft.Or(0),
	}
}

// Margin returns the margin edges; unset sides are 0.
func (s Style) Margin() Edges {
	return Edges{
		Top:    s.MarginTop.Or(0),
		Right:  s.MarginRight.Or(0),
		Bottom: s.MarginBottom.Or(0),
		Left:   s.MarginLeft.Or(0),
	}
}

// WithPadding returns a copy of s with all four padding sides set.
func (s Style) WithPadding(e Edges) Style {
	s.PaddingTop, s.PaddingRight = Some(e.Top), Some(e.Right)
	s.PaddingBottom, s.PaddingLeft = Some(e.Bottom), Some(e.Left)
	return s
}

// WithMargin returns a copy of s with all four margin sides set.
func (s Style) WithMargin(e Edges) Style {
	s.MarginTop, s.MarginRight = Some(e.Top), Some(e.Right)
	s.MarginBottom, s.MarginLeft = Some(e.Bottom), Some(e.Left)
	return s
}

// Validate reports spacing or border values below zero.
func (s Style) Validate() error {
	for _, f := range []struct {
		name string
		v    Opt[int]
	}{
		{"padding_top", s.PaddingTop},
		{"padding_right", s.PaddingRight},
		{"padding_bottom", s.PaddingBottom},
		{"padding_left", s.PaddingLeft},
		{"margin_top", s.MarginTop},
		{"margin_right", s.MarginRight},
		{"margin_bottom", s.MarginBottom},
		{"margin_left", s.MarginLeft},
		{"border", s.Border},
	} {
		if v, ok := f.v.Get(); ok && v < 0 {
			return &ValueRangeError{Field: f.name, Value: float64(v), Min: 0, Max: math.Inf(1)}
		}
	}
	return nil
}

// Fallback returns a ⊕ b: for every field, a's value if set, else b's.
// Neither operand is modified.
func Fallback(a, b Style) Style {
	return merge(a, b)
}

// Override returns a ⊛ b: for every field, b's value if set, else a's.
// Neither operand is modified.
func Override(a, b Style) Style {
	return merge(b, a)
}

// merge lists every Style field once. Adding a field to Style without adding
// it here makes TestMerge_CoversEveryField fail.
func merge(primary, secondary Style) Style {
	return Style{
		Position: pick(primary.Position, secondary.Position),

		X:         pickValue(primary.X, secondary.X),
		Y:         pickValue(primary.Y, secondary.Y),
		Width:     pickValue(primary.Width, secondary.Width),
		Height:    pickValue(primary.Height, secondary.Height),
		MinWidth:  pickValue(primary.MinWidth, secondary.MinWidth),
		MinHeight: pickValue(primary.MinHeight, secondary.MinHeight),
		MaxWidth:  pickValue(primary.MaxWidth, secondary.MaxWidth),
		MaxHeight: pickValue(primary.MaxHeight, secondary.MaxHeight),

		Foreground:  pick(primary.Foreground, secondary.Foreground),
		Background:  pick(primary.Background, secondary.Background),
		BorderColor: pick(primary.BorderColor, secondary.BorderColor),

		PaddingTop:    pick(primary.PaddingTop, secondary.PaddingTop),
		PaddingRight:  pick(primary.PaddingRight, secondary.PaddingRight),
		PaddingBottom: pick(primary.PaddingBottom, secondary.PaddingBottom),
		PaddingLeft:   pick(primary.PaddingLeft, secondary.PaddingLeft),
		MarginTop:     pick(primary.MarginTop, secondary.MarginTop),
		MarginRight:   pick(primary.MarginRight, secondary.MarginRight),
		MarginBottom:  pick(primary.MarginBottom, secondary.MarginBottom),
		MarginLeft:    pick(primary.MarginLeft, secondary.MarginLeft),
		Border:        pick(primary.Border, secondary.Border),
		BorderStyle:   pick(primary.BorderStyle, secondary.BorderStyle),

		TextAlign: pick(primary.TextAlign, secondary.TextAlign),

		Axis: pick(primary.Axis, secondary.Axis),
		Gap:  pickValue(primary.Gap, secondary.Gap),
	}
}

func pick[T comparable](primary, secondary Opt[T]) Opt[T] {
	if primary.set {
		return primary
	}
	return secondary
}

func pickValue(primary, secondary Value) Value {
	if primary.IsSet() {
		return primary
	}
	return secondary
}
