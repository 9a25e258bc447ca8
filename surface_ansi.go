package gridtui

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSISurface draws to a terminal using ANSI escape sequences.
type ANSISurface struct {
	out     io.Writer
	buf     bytes.Buffer
	esc     *escBuilder
	palette *palette
	inFd    int
	outFd   int
	raw     *term.State
}

var _ Surface = (*ANSISurface)(nil)

// NewANSISurface creates a surface writing to out and reading terminal modes
// from in, with capabilities detected from the environment.
func NewANSISurface(out io.Writer, in io.Reader) *ANSISurface {
	return NewANSISurfaceWithCaps(out, in, DetectCapabilities())
}

// NewANSISurfaceWithCaps creates a surface with explicit capabilities.
func NewANSISurfaceWithCaps(out io.Writer, in io.Reader, caps Capabilities) *ANSISurface {
	s := &ANSISurface{
		out:     out,
		esc:     newEscBuilder(64),
		palette: newPalette(caps),
		inFd:    -1,
		outFd:   -1,
	}
	if f, ok := out.(*os.File); ok {
		s.outFd = int(f.Fd())
	}
	if f, ok := in.(*os.File); ok {
		s.inFd = int(f.Fd())
	}
	return s
}

// Caps returns the capabilities the surface renders with.
func (s *ANSISurface) Caps() Capabilities { return s.palette.caps }

// Size returns the terminal size, or 80x24 when it cannot be queried.
func (s *ANSISurface) Size() (width, height int) {
	if s.outFd < 0 {
		return 80, 24
	}
	w, h, err := terminalSize(s.outFd)
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// MoveTo returns the cursor positioning sequence for (x, y).
func (s *ANSISurface) MoveTo(x, y int) string {
	s.esc.Reset()
	s.esc.MoveTo(x, y)
	return string(s.esc.Bytes())
}

// Foreground wraps text in a foreground color sequence.
func (s *ANSISurface) Foreground(c RGBA, text string) string {
	return s.palette.wrap(c, text, true)
}

// Background wraps text in a background color sequence.
func (s *ANSISurface) Background(c RGBA, text string) string {
	return s.palette.wrap(c, text, false)
}

// ColorSequences returns how many distinct color sequences have been built.
func (s *ANSISurface) ColorSequences() int { return s.palette.generated }

// Write buffers p until Flush.
func (s *ANSISurface) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// Flush writes buffered output to the terminal.
func (s *ANSISurface) Flush() error {
	if s.buf.Len() == 0 {
		return nil
	}
	_, err := s.buf.WriteTo(s.out)
	return err
}

// Clear queues a full-screen clear with the cursor at the origin.
func (s *ANSISurface) Clear() {
	s.control(func(e *escBuilder) {
		e.ResetStyle()
		e.ClearScreen()
		e.MoveTo(0, 0)
	})
}

// HideCursor queues a cursor hide.
func (s *ANSISurface) HideCursor() { s.control((*escBuilder).HideCursor) }

// ShowCursor queues a cursor show.
func (s *ANSISurface) ShowCursor() { s.control((*escBuilder).ShowCursor) }

// EnterAltScreen queues a switch to the alternate screen buffer.
func (s *ANSISurface) EnterAltScreen() {
	if s.palette.caps.AltScreen {
		s.control((*escBuilder).EnterAltScreen)
	}
}

// ExitAltScreen queues a switch back to the main screen buffer.
func (s *ANSISurface) ExitAltScreen() {
	if s.palette.caps.AltScreen {
		s.control((*escBuilder).ExitAltScreen)
	}
}

func (s *ANSISurface) control(fn func(*escBuilder)) {
	s.esc.Reset()
	fn(s.esc)
	s.buf.Write(s.esc.Bytes())
}

// EnterRawMode puts the input terminal into raw mode.
func (s *ANSISurface) EnterRawMode() error {
	if s.inFd < 0 || s.raw != nil {
		return nil
	}
	state, err := term.MakeRaw(s.inFd)
	if err != nil {
		return err
	}
	s.raw = state
	return nil
}

// ExitRawMode restores the mode saved by EnterRawMode.
func (s *ANSISurface) ExitRawMode() error {
	if s.raw == nil {
		return nil
	}
	err := term.Restore(s.inFd, s.raw)
	s.raw = nil
	return err
}
