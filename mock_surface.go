package gridtui

import (
	"bytes"
	"strings"
)

// MockSurface is an in-memory Surface for tests. It produces true-color
// ANSI output and records every flushed frame.
type MockSurface struct {
	width, height int
	buf           bytes.Buffer
	palette       *palette
	esc           *escBuilder
	frames        []string
}

var _ Surface = (*MockSurface)(nil)

// NewMockSurface creates a mock surface with the given dimensions.
func NewMockSurface(width, height int) *MockSurface {
	return &MockSurface{
		width:   width,
		height:  height,
		palette: newPalette(Capabilities{Colors: ColorTrue}),
		esc:     newEscBuilder(16),
	}
}

func (m *MockSurface) Size() (int, int) { return m.width, m.height }

// Resize changes the reported size.
func (m *MockSurface) Resize(width, height int) {
	m.width, m.height = width, height
}

func (m *MockSurface) MoveTo(x, y int) string {
	m.esc.Reset()
	m.esc.MoveTo(x, y)
	return string(m.esc.Bytes())
}

func (m *MockSurface) Foreground(c RGBA, s string) string { return m.palette.wrap(c, s, true) }
func (m *MockSurface) Background(c RGBA, s string) string { return m.palette.wrap(c, s, false) }

func (m *MockSurface) Write(p []byte) (int, error) { return m.buf.Write(p) }

// Flush records the buffered output as a frame and clears the buffer.
func (m *MockSurface) Flush() error {
	m.frames = append(m.frames, m.buf.String())
	m.buf.Reset()
	return nil
}

// Frames returns every flushed frame in order.
func (m *MockSurface) Frames() []string { return m.frames }

// LastFrame returns the most recent flushed frame, or "".
func (m *MockSurface) LastFrame() string {
	if len(m.frames) == 0 {
		return ""
	}
	return m.frames[len(m.frames)-1]
}

// Output returns every flushed frame concatenated.
func (m *MockSurface) Output() string { return strings.Join(m.frames, "") }

// ColorSequences returns how many distinct color sequences were built.
func (m *MockSurface) ColorSequences() int { return m.palette.generated }
