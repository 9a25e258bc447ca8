package gridtui

import (
	"io"
	"os"
	"strings"
)

// Surface is the output target the renderer draws to. MoveTo, Foreground
// and Background return sequences for the caller to concatenate; Write
// buffers output until Flush.
type Surface interface {
	// Size returns the drawable area in cells.
	Size() (width, height int)
	// MoveTo returns the sequence that moves the cursor to (x, y), 0-indexed.
	MoveTo(x, y int) string
	// Foreground wraps s so it is drawn in color c.
	Foreground(c RGBA, s string) string
	// Background wraps s so it is drawn over color c.
	Background(c RGBA, s string) string
	io.Writer
	// Flush sends buffered output to the terminal.
	Flush() error
}

// ColorCapability describes the level of color support in a terminal.
type ColorCapability int

const (
	// ColorNone is a monochrome terminal; colors are dropped.
	ColorNone ColorCapability = iota
	// Color16 uses the basic 16 ANSI colors.
	Color16
	// Color256 uses the xterm 256-color palette.
	Color256
	// ColorTrue uses 24-bit RGB.
	ColorTrue
)

func (c ColorCapability) String() string {
	switch c {
	case ColorNone:
		return "no-color"
	case Color16:
		return "16-color"
	case Color256:
		return "256-color"
	default:
		return "true-color"
	}
}

// Capabilities describes what the terminal supports.
type Capabilities struct {
	Colors    ColorCapability
	AltScreen bool
}

// trueColorEnv lists variables set only by terminals with 24-bit color.
var trueColorEnv = []string{
	"WT_SESSION",
	"ITERM_SESSION_ID",
	"KITTY_WINDOW_ID",
	"KONSOLE_VERSION",
	"VTE_VERSION",
}

// DetectCapabilities inspects COLORTERM, TERM and emulator-specific variables.
// It falls back to 16 colors when nothing more is known.
func DetectCapabilities() Capabilities {
	return detectCapabilities(os.Getenv)
}

func detectCapabilities(getenv func(string) string) Capabilities {
	caps := Capabilities{Colors: Color16, AltScreen: true}

	switch strings.ToLower(getenv("COLORTERM")) {
	case "truecolor", "24bit":
		caps.Colors = ColorTrue
		return caps
	}
	for _, name := range trueColorEnv {
		if getenv(name) != "" {
			caps.Colors = ColorTrue
			return caps
		}
	}

	term := strings.ToLower(getenv("TERM"))
	switch {
	case term == "dumb":
		return Capabilities{Colors: ColorNone}
	case strings.Contains(term, "truecolor"), strings.Contains(term, "direct"):
		caps.Colors = ColorTrue
	case strings.Contains(term, "256color"):
		caps.Colors = Color256
	}
	return caps
}

// palette turns colors into SGR prefixes and caches one prefix per
// distinct color and layer. The caches are never evicted.
type palette struct {
	caps      Capabilities
	fg, bg    map[RGBA]string
	esc       *escBuilder
	generated int
}

func newPalette(caps Capabilities) *palette {
	return &palette{
		caps: caps,
		fg:   make(map[RGBA]string),
		bg:   make(map[RGBA]string),
		esc:  newEscBuilder(32),
	}
}

// wrap returns s drawn in color c on the given layer. Transparent colors and
// monochrome terminals leave s untouched. Partial alpha is drawn opaque.
func (p *palette) wrap(c RGBA, s string, foreground bool) string {
	if c.IsTransparent() || p.caps.Colors == ColorNone {
		return s
	}
	cache, reset := p.bg, sgrResetBackground
	if foreground {
		cache, reset = p.fg, sgrResetForeground
	}
	prefix, ok := cache[c]
	if !ok {
		p.esc.Reset()
		p.esc.SetColor(c, foreground, p.caps.Colors)
		prefix = string(p.esc.Bytes())
		cache[c] = prefix
		p.generated++
	}
	return prefix + s + reset
}
