package gridtui

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key decoded from terminal input.
type Key uint16

const (
	// KeyNone is the zero value.
	KeyNone Key = iota
	// KeyRune is a printable character; see KeyEvent.Rune.
	KeyRune

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// KeyCtrl is a Ctrl+letter chord; see KeyEvent.Rune for the letter.
	KeyCtrl
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyCtrl:      "Ctrl",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Modifier is a set of keyboard modifier flags.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

// Has reports whether m includes mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

func (m Modifier) String() string {
	if m == ModNone {
		return "None"
	}
	var parts []string
	for _, f := range []struct {
		mod  Modifier
		name string
	}{{ModCtrl, "Ctrl"}, {ModAlt, "Alt"}, {ModShift, "Shift"}} {
		if m.Has(f.mod) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "+")
}

// KeyEvent is one decoded key press.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// Char returns the printable character for KeyRune events, else 0.
func (k KeyEvent) Char() rune {
	if k.Key == KeyRune {
		return k.Rune
	}
	return 0
}

// Is reports whether the event is the given key, or for KeyRune and
// KeyCtrl the given key with the given rune.
func (k KeyEvent) Is(key Key, r ...rune) bool {
	if k.Key != key {
		return false
	}
	return len(r) == 0 || k.Rune == r[0]
}

func (k KeyEvent) String() string {
	var s string
	switch k.Key {
	case KeyRune:
		s = string(k.Rune)
	case KeyCtrl:
		s = fmt.Sprintf("Ctrl+%c", k.Rune)
	default:
		s = k.Key.String()
	}
	if k.Mod != ModNone && k.Key != KeyCtrl {
		return k.Mod.String() + "+" + s
	}
	return s
}
