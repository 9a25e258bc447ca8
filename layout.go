// layout.go re-exports unit types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package gridtui

import "github.com/grindlemire/go-gridtui/internal/layout"

// Value represents a geometry value (fixed, percent, raw string, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
	UnitRaw     = layout.UnitRaw
)

// Axis identifies the horizontal or vertical direction.
type Axis = layout.Axis

const (
	AxisX = layout.AxisX
	AxisY = layout.AxisY
)

// Bound is an optional integer limit (unbounded when unset).
type Bound = layout.Bound

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// ParseError reports a malformed unit string.
type ParseError = layout.ParseError

// Fixed creates a Value with a fixed character count.
func Fixed(n int) Value {
	return layout.Fixed(n)
}

// Number creates a Value with a fractional character count.
func Number(f float64) Value {
	return layout.Number(f)
}

// Percent creates a Value representing a percentage of the reference size.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Raw creates a Value from an unparsed string such as "50%" or "12".
func Raw(s string) Value {
	return layout.Raw(s)
}

// Auto creates an unset Value.
func Auto() Value {
	return layout.Auto()
}

// ParseAxis parses "x"/"row" or "y"/"column".
func ParseAxis(s string) (Axis, error) {
	return layout.ParseAxis(s)
}

// Clamp bounds v to [lo, hi]; an unset bound behaves as infinity.
func Clamp(lo Bound, v int, hi Bound) int {
	return layout.Clamp(lo, v, hi)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}
