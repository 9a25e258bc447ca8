package gridtui

import "strconv"

const (
	sgrResetForeground = "\x1b[39m"
	sgrResetBackground = "\x1b[49m"
)

// escBuilder builds ANSI escape sequences into a reusable buffer.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() { e.buf = e.buf[:0] }

// Bytes returns the built sequence. It is only valid until the next Reset.
func (e *escBuilder) Bytes() []byte { return e.buf }

func (e *escBuilder) csi(params string) {
	e.buf = append(e.buf, '\x1b', '[')
	e.buf = append(e.buf, params...)
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// MoveTo moves the cursor to the 0-indexed cell (x, y).
func (e *escBuilder) MoveTo(x, y int) {
	e.csi("")
	e.writeInt(y + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'H')
}

func (e *escBuilder) ClearScreen()    { e.csi("2J") }
func (e *escBuilder) ResetStyle()     { e.csi("0m") }
func (e *escBuilder) HideCursor()     { e.csi("?25l") }
func (e *escBuilder) ShowCursor()     { e.csi("?25h") }
func (e *escBuilder) EnterAltScreen() { e.csi("?1049h") }
func (e *escBuilder) ExitAltScreen()  { e.csi("?1049l") }

// SetColor writes the SGR sequence selecting c as the foreground or
// background color at the given capability level.
func (e *escBuilder) SetColor(c RGBA, foreground bool, level ColorCapability) {
	switch level {
	case ColorNone:
		return
	case ColorTrue:
		e.csi("")
		if foreground {
			e.buf = append(e.buf, "38;2;"...)
		} else {
			e.buf = append(e.buf, "48;2;"...)
		}
		e.writeInt(int(c.r))
		e.buf = append(e.buf, ';')
		e.writeInt(int(c.g))
		e.buf = append(e.buf, ';')
		e.writeInt(int(c.b))
	case Color256:
		e.csi("")
		if foreground {
			e.buf = append(e.buf, "38;5;"...)
		} else {
			e.buf = append(e.buf, "48;5;"...)
		}
		e.writeInt(int(c.ANSI256()))
	default:
		idx := c.ANSI16()
		base := 30
		if idx >= 8 {
			base = 90 - 8
		}
		if !foreground {
			base += 10
		}
		e.csi("")
		e.writeInt(base + int(idx))
	}
	e.buf = append(e.buf, 'm')
}

// WriteString appends s unchanged.
func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}
