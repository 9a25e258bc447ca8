package widget

import (
	"unicode"

	"github.com/grindlemire/go-gridtui"
)

const (
	// DefaultMaxLen is the longest value an Input accepts.
	DefaultMaxLen = 100
	// DefaultMaxHistory is how many edits an Input can undo.
	DefaultMaxHistory = 100
)

// Input is a focusable single-line text editor with a cursor and an
// undo/redo history of values.
type Input struct {
	*gridtui.Component

	value      []rune
	cursor     int
	maxLen     int
	history    [][]rune // newest first; history[0] is the current value
	histPos    int      // index into history of the displayed value
	maxHistory int
	onSubmit   func(string)
}

// NewInput creates an empty input. onSubmit runs on activation (Enter) and
// may be nil.
func NewInput(id string, style gridtui.Style, onSubmit func(string)) *Input {
	in := &Input{
		Component: gridtui.NewComponent(
			gridtui.WithID(id),
			gridtui.WithStyle(style),
			gridtui.WithFocusable(true),
			gridtui.WithTextInput(true),
		),
		maxLen:     DefaultMaxLen,
		maxHistory: DefaultMaxHistory,
		history:    [][]rune{nil},
		onSubmit:   onSubmit,
	}
	in.Events().Subscribe(in.handleKey, gridtui.EventKey)
	in.Events().Subscribe(func(gridtui.Event) { in.Submit() }, gridtui.EventActivate)
	return in
}

// Value returns the current text.
func (in *Input) Value() string { return string(in.value) }

// Cursor returns the cursor position in characters.
func (in *Input) Cursor() int { return in.cursor }

// Write inserts r at the cursor. Input beyond the maximum length is dropped.
func (in *Input) Write(r rune) {
	if len(in.value) >= in.maxLen {
		return
	}
	next := make([]rune, 0, len(in.value)+1)
	next = append(next, in.value[:in.cursor]...)
	next = append(next, r)
	next = append(next, in.value[in.cursor:]...)
	in.cursor++
	in.commit(next)
}

// Erase deletes the character before the cursor.
func (in *Input) Erase() {
	if in.cursor == 0 || len(in.value) == 0 {
		return
	}
	next := make([]rune, 0, len(in.value)-1)
	next = append(next, in.value[:in.cursor-1]...)
	next = append(next, in.value[in.cursor:]...)
	in.cursor--
	in.commit(next)
}

// Clear empties the value.
func (in *Input) Clear() {
	in.cursor = 0
	in.commit(nil)
}

// Move shifts the cursor by steps, clamped to the value.
func (in *Input) Move(steps int) {
	in.cursor = min(max(in.cursor+steps, 0), len(in.value))
}

// Undo restores the previous value. It reports whether anything changed.
func (in *Input) Undo() bool {
	if in.histPos >= len(in.history)-1 {
		return false
	}
	in.histPos++
	in.show(in.history[in.histPos])
	return true
}

// Redo reapplies an undone value. It reports whether anything changed.
func (in *Input) Redo() bool {
	if in.histPos == 0 {
		return false
	}
	in.histPos--
	in.show(in.history[in.histPos])
	return true
}

// Submit passes the value to the submit callback and clears the input.
func (in *Input) Submit() {
	if in.onSubmit != nil {
		in.onSubmit(in.Value())
	}
	in.Clear()
}

// commit records v as the newest history entry. Editing after an undo
// discards the undone entries.
func (in *Input) commit(v []rune) {
	if in.histPos > 0 {
		in.history = in.history[in.histPos:]
		in.histPos = 0
	}
	in.history = append([][]rune{v}, in.history...)
	if len(in.history) > in.maxHistory+1 {
		in.history = in.history[:in.maxHistory+1]
	}
	in.show(v)
}

func (in *Input) show(v []rune) {
	in.value = v
	in.cursor = min(in.cursor, len(v))
	in.SetText(string(v))
}

func (in *Input) handleKey(e gridtui.Event) {
	k := e.Key
	switch {
	case k.Key == gridtui.KeyBackspace:
		in.Erase()
	case k.Key == gridtui.KeyLeft:
		in.Move(-1)
	case k.Key == gridtui.KeyRight:
		in.Move(1)
	case k.Key == gridtui.KeyHome:
		in.Move(-len(in.value))
	case k.Key == gridtui.KeyEnd:
		in.Move(len(in.value))
	case k.Is(gridtui.KeyCtrl, 'z'):
		in.Undo()
	case k.Is(gridtui.KeyCtrl, 'y'):
		in.Redo()
	case k.Is(gridtui.KeyCtrl, 'u'):
		in.Clear()
	case k.Key == gridtui.KeyRune && k.Mod == gridtui.ModNone && unicode.IsPrint(k.Rune):
		in.Write(k.Rune)
	}
}
