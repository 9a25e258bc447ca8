package gridtui

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// cell is one emulated screen position.
type cell struct {
	r      rune
	fg, bg RGBA
	hasFg  bool
	hasBg  bool
}

// screenEmulator interprets the subset of ANSI the renderer emits (cursor
// position, erase display, true-color SGR) into a grid of cells so tests can
// assert on what a terminal would show.
type screenEmulator struct {
	width, height int
	cells         [][]cell
	row, col      int
	fg, bg        RGBA
	hasFg, hasBg  bool
}

func newScreenEmulator(width, height int) *screenEmulator {
	e := &screenEmulator{width: width, height: height}
	e.clear()
	return e
}

func (e *screenEmulator) clear() {
	e.cells = make([][]cell, e.height)
	for r := range e.cells {
		e.cells[r] = make([]cell, e.width)
		for c := range e.cells[r] {
			e.cells[r][c] = cell{r: ' '}
		}
	}
}

// Feed processes output containing escape sequences.
func (e *screenEmulator) Feed(s string) {
	for i := 0; i < len(s); {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
				j++
			}
			if j >= len(s) {
				return
			}
			e.csi(s[i+2:j], s[j])
			i = j + 1
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if e.row >= 0 && e.row < e.height && e.col >= 0 && e.col < e.width {
			e.cells[e.row][e.col] = cell{r: r, fg: e.fg, bg: e.bg, hasFg: e.hasFg, hasBg: e.hasBg}
		}
		e.col++
		i += size
	}
}

func (e *screenEmulator) csi(params string, final byte) {
	parts := strings.Split(params, ";")
	num := func(i, def int) int {
		if i >= len(parts) || parts[i] == "" {
			return def
		}
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return def
		}
		return n
	}
	switch final {
	case 'H':
		e.row, e.col = num(0, 1)-1, num(1, 1)-1
	case 'J':
		if num(0, 0) == 2 {
			e.clear()
		}
	case 'm':
		e.sgr(parts, num)
	}
}

func (e *screenEmulator) sgr(parts []string, num func(int, int) int) {
	for i := 0; i < len(parts); i++ {
		switch code := num(i, 0); code {
		case 0:
			e.hasFg, e.hasBg = false, false
		case 39:
			e.hasFg = false
		case 49:
			e.hasBg = false
		case 38, 48:
			if num(i+1, 0) == 2 {
				c := RGB(uint8(num(i+2, 0)), uint8(num(i+3, 0)), uint8(num(i+4, 0)))
				if code == 38 {
					e.fg, e.hasFg = c, true
				} else {
					e.bg, e.hasBg = c, true
				}
				i += 4
			}
		}
	}
}

// Row returns the runes of row y as a string.
func (e *screenEmulator) Row(y int) string {
	var sb strings.Builder
	for _, c := range e.cells[y] {
		sb.WriteRune(c.r)
	}
	return sb.String()
}

// At returns the cell at (x, y).
func (e *screenEmulator) At(x, y int) cell {
	return e.cells[y][x]
}
