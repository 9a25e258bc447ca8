package gridtui

import "testing"

func TestEscBuilder_MoveTo(t *testing.T) {
	type tc struct {
		x, y     int
		expected string
	}

	tests := map[string]tc{
		"origin": {
			x:        0,
			y:        0,
			expected: "\x1b[1;1H",
		},
		"position 5,3": {
			x:        5,
			y:        3,
			expected: "\x1b[4;6H", // 1-indexed: row 4, col 6
		},
		"large position": {
			x:        99,
			y:        49,
			expected: "\x1b[50;100H",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := newEscBuilder(64)
			e.MoveTo(tt.x, tt.y)
			if string(e.Bytes()) != tt.expected {
				t.Errorf("MoveTo(%d, %d) = %q, want %q", tt.x, tt.y, e.Bytes(), tt.expected)
			}
		})
	}
}

func TestEscBuilder_SetColor(t *testing.T) {
	type tc struct {
		color      RGBA
		foreground bool
		level      ColorCapability
		expected   string
	}

	tests := map[string]tc{
		"true color foreground": {
			color:      RGB(10, 20, 30),
			foreground: true,
			level:      ColorTrue,
			expected:   "\x1b[38;2;10;20;30m",
		},
		"true color background": {
			color:    RGB(255, 0, 128),
			level:    ColorTrue,
			expected: "\x1b[48;2;255;0;128m",
		},
		"256 foreground pure red": {
			color:      RGB(255, 0, 0),
			foreground: true,
			level:      Color256,
			expected:   "\x1b[38;5;196m",
		},
		"256 background gray": {
			color:    RGB(128, 128, 128),
			level:    Color256,
			expected: "\x1b[48;5;244m",
		},
		"16 foreground bright white": {
			color:      White,
			foreground: true,
			level:      Color16,
			expected:   "\x1b[97m",
		},
		"16 background dark red": {
			color:    RGB(128, 0, 0),
			level:    Color16,
			expected: "\x1b[41m",
		},
		"no color": {
			color:      White,
			foreground: true,
			level:      ColorNone,
			expected:   "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := newEscBuilder(32)
			e.SetColor(tt.color, tt.foreground, tt.level)
			if string(e.Bytes()) != tt.expected {
				t.Errorf("SetColor(%v, %v, %v) = %q, want %q", tt.color, tt.foreground, tt.level, e.Bytes(), tt.expected)
			}
		})
	}
}

func TestEscBuilder_Modes(t *testing.T) {
	type tc struct {
		fn       func(*escBuilder)
		expected string
	}

	tests := map[string]tc{
		"clear screen":     {fn: (*escBuilder).ClearScreen, expected: "\x1b[2J"},
		"reset style":      {fn: (*escBuilder).ResetStyle, expected: "\x1b[0m"},
		"hide cursor":      {fn: (*escBuilder).HideCursor, expected: "\x1b[?25l"},
		"show cursor":      {fn: (*escBuilder).ShowCursor, expected: "\x1b[?25h"},
		"enter alt screen": {fn: (*escBuilder).EnterAltScreen, expected: "\x1b[?1049h"},
		"exit alt screen":  {fn: (*escBuilder).ExitAltScreen, expected: "\x1b[?1049l"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := newEscBuilder(16)
			tt.fn(e)
			if string(e.Bytes()) != tt.expected {
				t.Errorf("got %q, want %q", e.Bytes(), tt.expected)
			}
		})
	}
}

func TestEscBuilder_Reset(t *testing.T) {
	e := newEscBuilder(16)
	e.MoveTo(3, 4)
	e.Reset()
	e.WriteString("x")
	if string(e.Bytes()) != "x" {
		t.Errorf("after Reset got %q, want %q", e.Bytes(), "x")
	}
}
