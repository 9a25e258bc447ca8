package gridtui

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a 24-bit color with an alpha channel in [0, 1].
// Alpha is only consulted to decide whether a background is painted at all;
// terminals have no blending, so any non-zero alpha paints the full color.
// The zero value is fully transparent black.
type RGBA struct {
	r, g, b uint8
	a       float64
}

var (
	// White is the default foreground and border color.
	White = RGB(255, 255, 255)
	// Black is opaque black.
	Black = RGB(0, 0, 0)
	// Transparent is the default background; it is never painted.
	Transparent = RGBA{}
)

// RGB returns an opaque color. Channels of type uint8 are always in range.
func RGB(r, g, b uint8) RGBA {
	return RGBA{r: r, g: g, b: b, a: 1}
}

// NewRGBA validates the channels and returns the color. Channels must be in
// [0, 255] and alpha in [0, 1]; otherwise a *ValueRangeError is returned.
func NewRGBA(r, g, b int, a float64) (RGBA, error) {
	for _, ch := range []struct {
		name string
		v    int
	}{{"red", r}, {"green", g}, {"blue", b}} {
		if ch.v < 0 || ch.v > 255 {
			return RGBA{}, &ValueRangeError{Field: ch.name, Value: float64(ch.v), Min: 0, Max: 255}
		}
	}
	if !(a >= 0 && a <= 1) {
		return RGBA{}, &ValueRangeError{Field: "alpha", Value: a, Min: 0, Max: 1}
	}
	return RGBA{r: uint8(r), g: uint8(g), b: uint8(b), a: a}, nil
}

// MustRGBA is like NewRGBA but panics on invalid input.
// Intended for package-level color tables.
func MustRGBA(r, g, b int, a float64) RGBA {
	c, err := NewRGBA(r, g, b, a)
	if err != nil {
		panic(err)
	}
	return c
}

// HexColor parses "#RRGGBB" or "#RGB" into an opaque color.
func HexColor(hex string) (RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// R returns the red channel.
func (c RGBA) R() uint8 { return c.r }

// G returns the green channel.
func (c RGBA) G() uint8 { return c.g }

// B returns the blue channel.
func (c RGBA) B() uint8 { return c.b }

// A returns the alpha channel.
func (c RGBA) A() float64 { return c.a }

// IsTransparent reports whether alpha is exactly zero.
func (c RGBA) IsTransparent() bool {
	return c.a == 0
}

// WithAlpha returns a copy of c with the given alpha.
func (c RGBA) WithAlpha(a float64) (RGBA, error) {
	return NewRGBA(int(c.r), int(c.g), int(c.b), a)
}

// Hex renders the color channels as "#rrggbb".
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.r, c.g, c.b, c.a)
}

// ANSI256 approximates the color to the nearest ANSI 256 palette entry.
// Uses the 6x6x6 color cube (indices 16-231) plus grayscale (232-255).
func (c RGBA) ANSI256() uint8 {
	r, g, b := c.r, c.g, c.b

	if r == g && g == b {
		if r < 8 {
			return 16 // Black in the color cube is closer
		}
		if r > 248 {
			return 231 // White in the color cube is closer
		}
		return uint8(232 + (int(r)-8)*24/240)
	}

	ri := int(r) * 5 / 255
	gi := int(g) * 5 / 255
	bi := int(b) * 5 / 255
	return uint8(16 + 36*ri + 6*gi + bi)
}

// ANSI16 approximates the color to one of the 16 basic ANSI colors.
// Indices 8-15 are the bright variants.
func (c RGBA) ANSI16() uint8 {
	var idx uint8
	if c.r >= 128 {
		idx |= 1
	}
	if c.g >= 128 {
		idx |= 2
	}
	if c.b >= 128 {
		idx |= 4
	}
	if max(c.r, c.g, c.b) >= 192 || (idx == 0 && max(c.r, c.g, c.b) >= 64) {
		idx += 8
	}
	return idx
}
