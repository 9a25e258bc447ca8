package layout

import (
	"fmt"
	"strings"
)

// Axis identifies the horizontal (X) or vertical (Y) direction.
type Axis uint8

const (
	AxisX Axis = iota // Left-to-right
	AxisY             // Top-to-bottom
)

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// ParseAxis accepts "x", "row" or "horizontal" for AxisX and "y", "column" or
// "vertical" for AxisY.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x", "row", "horizontal":
		return AxisX, nil
	case "y", "column", "vertical":
		return AxisY, nil
	default:
		return AxisX, fmt.Errorf("unknown layout axis %q", s)
	}
}
