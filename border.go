package gridtui

import (
	"fmt"
	"strings"
)

// BorderStyle selects the box-drawing characters used for a border.
type BorderStyle uint8

const (
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle BorderStyle = iota
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
	// BorderASCII uses +, - and | for terminals without Unicode.
	BorderASCII
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft, Top, TopRight          rune
	Left, Right                     rune
	BottomLeft, Bottom, BottomRight rune
}

var borderChars = [...]BorderChars{
	BorderSingle:  {'┌', '─', '┐', '│', '│', '└', '─', '┘'},
	BorderDouble:  {'╔', '═', '╗', '║', '║', '╚', '═', '╝'},
	BorderRounded: {'╭', '─', '╮', '│', '│', '╰', '─', '╯'},
	BorderThick:   {'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'},
	BorderASCII:   {'+', '-', '+', '|', '|', '+', '-', '+'},
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	if int(b) < len(borderChars) {
		return borderChars[b]
	}
	return borderChars[BorderSingle]
}

var borderNames = map[string]BorderStyle{
	"single":  BorderSingle,
	"double":  BorderDouble,
	"rounded": BorderRounded,
	"thick":   BorderThick,
	"ascii":   BorderASCII,
}

// ParseBorderStyle accepts single, double, rounded, thick or ascii.
func ParseBorderStyle(s string) (BorderStyle, error) {
	if b, ok := borderNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return b, nil
	}
	return BorderSingle, fmt.Errorf("unknown border style %q", s)
}

// boxRows returns the top and bottom rows of a width x height outline and
// the side characters for the rows between. Boxes smaller than 2x2 yield
// empty rows.
func boxRows(chars BorderChars, width, height int) (top, bottom string, left, right rune) {
	if width < 2 || height < 2 {
		return "", "", 0, 0
	}
	mid := width - 2
	top = string(chars.TopLeft) + strings.Repeat(string(chars.Top), mid) + string(chars.TopRight)
	bottom = string(chars.BottomLeft) + strings.Repeat(string(chars.Bottom), mid) + string(chars.BottomRight)
	return top, bottom, chars.Left, chars.Right
}
