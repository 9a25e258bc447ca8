package gridtui

import (
	"bytes"
	"strings"
	"testing"
)

func TestDetectCapabilities(t *testing.T) {
	type tc struct {
		env      map[string]string
		expected Capabilities
	}

	tests := map[string]tc{
		"nothing known": {
			env:      map[string]string{},
			expected: Capabilities{Colors: Color16, AltScreen: true},
		},
		"colorterm truecolor": {
			env:      map[string]string{"COLORTERM": "truecolor", "TERM": "xterm"},
			expected: Capabilities{Colors: ColorTrue, AltScreen: true},
		},
		"colorterm 24bit": {
			env:      map[string]string{"COLORTERM": "24bit"},
			expected: Capabilities{Colors: ColorTrue, AltScreen: true},
		},
		"kitty": {
			env:      map[string]string{"KITTY_WINDOW_ID": "1", "TERM": "xterm-kitty"},
			expected: Capabilities{Colors: ColorTrue, AltScreen: true},
		},
		"256 color term": {
			env:      map[string]string{"TERM": "screen-256color"},
			expected: Capabilities{Colors: Color256, AltScreen: true},
		},
		"direct color term": {
			env:      map[string]string{"TERM": "xterm-direct"},
			expected: Capabilities{Colors: ColorTrue, AltScreen: true},
		},
		"dumb terminal": {
			env:      map[string]string{"TERM": "dumb"},
			expected: Capabilities{Colors: ColorNone},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := detectCapabilities(func(k string) string { return tt.env[k] })
			if got != tt.expected {
				t.Errorf("detectCapabilities() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestPalette_Wrap(t *testing.T) {
	type tc struct {
		caps       Capabilities
		color      RGBA
		foreground bool
		expected   string
	}

	tests := map[string]tc{
		"true color foreground": {
			caps:       Capabilities{Colors: ColorTrue},
			color:      RGB(1, 2, 3),
			foreground: true,
			expected:   "\x1b[38;2;1;2;3mx\x1b[39m",
		},
		"256 background": {
			caps:     Capabilities{Colors: Color256},
			color:    RGB(255, 0, 0),
			expected: "\x1b[48;5;196mx\x1b[49m",
		},
		"transparent is untouched": {
			caps:     Capabilities{Colors: ColorTrue},
			color:    Transparent,
			expected: "x",
		},
		"partial alpha drawn opaque": {
			caps:       Capabilities{Colors: ColorTrue},
			color:      MustRGBA(9, 9, 9, 0.25),
			foreground: true,
			expected:   "\x1b[38;2;9;9;9mx\x1b[39m",
		},
		"monochrome drops color": {
			caps:       Capabilities{Colors: ColorNone},
			color:      White,
			foreground: true,
			expected:   "x",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := newPalette(tt.caps)
			if got := p.wrap(tt.color, "x", tt.foreground); got != tt.expected {
				t.Errorf("wrap() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPalette_CachesPrefixes(t *testing.T) {
	p := newPalette(Capabilities{Colors: ColorTrue})
	for i := 0; i < 5; i++ {
		p.wrap(White, "a", true)
		p.wrap(White, "b", false)
	}
	if p.generated != 2 {
		t.Errorf("generated = %d, want one per color and layer", p.generated)
	}
}

func TestANSISurface(t *testing.T) {
	var out bytes.Buffer
	s := NewANSISurfaceWithCaps(&out, nil, Capabilities{Colors: ColorTrue, AltScreen: true})

	if w, h := s.Size(); w != 80 || h != 24 {
		t.Errorf("Size() on a non-terminal = %dx%d, want 80x24", w, h)
	}
	if got := s.MoveTo(2, 1); got != "\x1b[2;3H" {
		t.Errorf("MoveTo() = %q", got)
	}

	s.EnterAltScreen()
	s.HideCursor()
	if _, err := s.Write([]byte(s.Foreground(White, "hi"))); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Fatal("output must be buffered until Flush")
	}
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	want := "\x1b[?1049h\x1b[?25l\x1b[38;2;255;255;255mhi\x1b[39m"
	if out.String() != want {
		t.Errorf("flushed %q, want %q", out.String(), want)
	}

	out.Reset()
	s.Clear()
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "\x1b[0m\x1b[2J\x1b[1;1H" {
		t.Errorf("Clear() = %q", out.String())
	}

	// Raw mode is a no-op without a terminal.
	if err := s.EnterRawMode(); err != nil {
		t.Errorf("EnterRawMode() = %v", err)
	}
	if err := s.ExitRawMode(); err != nil {
		t.Errorf("ExitRawMode() = %v", err)
	}
}

func TestANSISurface_NoAltScreen(t *testing.T) {
	var out bytes.Buffer
	s := NewANSISurfaceWithCaps(&out, nil, Capabilities{Colors: ColorNone})
	s.EnterAltScreen()
	s.ExitAltScreen()
	if _, err := s.Write([]byte(s.Background(Black, "plain"))); err != nil {
		t.Fatal(err)
	}
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "1049") || out.String() != "plain" {
		t.Errorf("output = %q, want plain text only", out.String())
	}
}
