package gridtui

import "unicode/utf8"

// decodeKeys turns a chunk of raw terminal input into key events.
// Recognized: printable UTF-8, C0 control bytes, CSI sequences (arrows,
// navigation with xterm modifiers), SS3 arrows and Alt+key. Mouse and
// unknown sequences are dropped.
func decodeKeys(data []byte) []KeyEvent {
	var out []KeyEvent
	for i := 0; i < len(data); {
		b := data[i]
		switch {
		case b == 0x1b:
			ev, n := decodeEscape(data[i:])
			if ev.Key != KeyNone {
				out = append(out, ev)
			}
			i += n
		case b < 0x20:
			out = append(out, controlKey(b))
			i++
		case b == 0x7f:
			out = append(out, KeyEvent{Key: KeyBackspace})
			i++
		default:
			r, size := utf8.DecodeRune(data[i:])
			if r != utf8.RuneError || size > 1 {
				out = append(out, KeyEvent{Key: KeyRune, Rune: r})
			}
			i += size
		}
	}
	return out
}

// controlKey maps a C0 byte other than ESC.
func controlKey(b byte) KeyEvent {
	switch b {
	case '\r', '\n':
		return KeyEvent{Key: KeyEnter}
	case '\t':
		return KeyEvent{Key: KeyTab}
	case 0x08:
		return KeyEvent{Key: KeyBackspace}
	case 0x00:
		return KeyEvent{Key: KeyCtrl, Rune: ' ', Mod: ModCtrl}
	default:
		return KeyEvent{Key: KeyCtrl, Rune: rune('a' + b - 1), Mod: ModCtrl}
	}
}

// decodeEscape decodes a sequence starting with ESC and returns the event
// and the number of bytes consumed (always at least 1).
func decodeEscape(data []byte) (KeyEvent, int) {
	if len(data) == 1 {
		return KeyEvent{Key: KeyEscape}, 1
	}
	switch next := data[1]; {
	case next == '[':
		if ev, n := decodeCSI(data); n > 0 {
			return ev, n
		}
	case next == 'O' && len(data) > 2:
		if k, ok := finalKeys[data[2]]; ok {
			return KeyEvent{Key: k}, 3
		}
	case next >= 0x20 && next < 0x7f:
		return KeyEvent{Key: KeyRune, Rune: rune(next), Mod: ModAlt}, 2
	}
	return KeyEvent{Key: KeyEscape}, 1
}

var finalKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

var tildeKeys = map[int]Key{
	1: KeyHome,
	2: KeyInsert,
	3: KeyDelete,
	4: KeyEnd,
	5: KeyPageUp,
	6: KeyPageDown,
}

// decodeCSI parses ESC [ params final. It returns n == 0 when the sequence
// is malformed or incomplete. A well-formed but unknown sequence is consumed
// and reported as KeyNone.
func decodeCSI(data []byte) (KeyEvent, int) {
	var params []int
	cur, have := 0, false
	for i := 2; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			cur = cur*10 + int(b-'0')
			have = true
		case b == ';':
			params = append(params, cur)
			cur, have = 0, false
		case b == '<':
			// SGR mouse report; consumed below when the final byte arrives.
		case b >= 0x40 && b <= 0x7e:
			if have {
				params = append(params, cur)
			}
			if data[2] == '<' {
				return KeyEvent{}, i + 1
			}
			return csiKey(params, b), i + 1
		default:
			return KeyEvent{}, 0
		}
	}
	return KeyEvent{}, 0
}

func csiKey(params []int, final byte) KeyEvent {
	var mod Modifier
	if len(params) >= 2 && params[1] > 1 {
		flags := params[1] - 1
		if flags&1 != 0 {
			mod |= ModShift
		}
		if flags&2 != 0 {
			mod |= ModAlt
		}
		if flags&4 != 0 {
			mod |= ModCtrl
		}
	}
	if final == 'Z' {
		return KeyEvent{Key: KeyTab, Mod: ModShift}
	}
	if final == '~' {
		if len(params) > 0 {
			if k, ok := tildeKeys[params[0]]; ok {
				return KeyEvent{Key: k, Mod: mod}
			}
		}
		return KeyEvent{}
	}
	if k, ok := finalKeys[final]; ok {
		return KeyEvent{Key: k, Mod: mod}
	}
	return KeyEvent{}
}
