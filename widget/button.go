package widget

import (
	"github.com/grindlemire/go-gridtui"
)

// Button is a focusable component that swaps its foreground and background
// colors while focused. Activating it runs OnPress and flashes the unfocused
// colors for one frame.
type Button struct {
	*gridtui.Component
	onPress func(*Button)
	swapped bool
	base    gridtui.Style // style to restore when the highlight ends
	presses int
}

// NewButton creates a button. onPress may be nil.
func NewButton(id, text string, style gridtui.Style, onPress func(*Button)) *Button {
	b := &Button{
		Component: gridtui.NewComponent(
			gridtui.WithID(id),
			gridtui.WithText(text),
			gridtui.WithStyle(style),
			gridtui.WithFocusable(true),
		),
		onPress: onPress,
	}
	q := b.Events()
	q.Subscribe(func(gridtui.Event) { b.setSwapped(true) }, gridtui.EventFocusIn)
	q.Subscribe(func(gridtui.Event) { b.setSwapped(false) }, gridtui.EventFocusOut)
	q.Subscribe(func(gridtui.Event) { b.press() }, gridtui.EventActivate)
	q.Subscribe(func(gridtui.Event) { b.setSwapped(true) }, gridtui.EventDeactivate)
	return b
}

// Presses returns how many times the button was activated.
func (b *Button) Presses() int { return b.presses }

// Highlighted reports whether the focus colors are applied.
func (b *Button) Highlighted() bool { return b.swapped }

func (b *Button) press() {
	b.presses++
	b.setSwapped(false)
	b.Events().Enqueue(gridtui.Event{Type: gridtui.EventDeactivate, Target: b.ID()})
	if b.onPress != nil {
		b.onPress(b)
	}
}

func (b *Button) setSwapped(on bool) {
	if b.swapped == on {
		return
	}
	b.swapped = on
	if on {
		b.base = b.Style()
		b.SetStyle(swapColors(b.base))
		return
	}
	b.SetStyle(b.base)
}

// swapColors exchanges foreground and background. A transparent background
// becomes a black foreground so the text stays visible.
func swapColors(s gridtui.Style) gridtui.Style {
	fg, bg := s.ForegroundColor(), s.BackgroundColor()
	if bg.IsTransparent() {
		bg = gridtui.Black
	}
	s.Foreground = gridtui.Some(bg)
	s.Background = gridtui.Some(fg)
	return s
}
