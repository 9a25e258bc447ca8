package gridtui

import (
	"unicode/utf8"

	"github.com/google/uuid"
)

// Component is a node payload in the component tree: identity, display text,
// authored Style and the engine-owned resolution state.
type Component struct {
	id        string
	text      string
	style     Style
	focusable bool
	textInput bool

	// Engine-owned state, rewritten every cycle.
	resolved    ResolvedStyle
	hasResolved bool
	prev        ResolvedStyle
	hasPrev     bool
	dirty       bool

	events *EventQueue
}

// Option configures a Component.
type Option func(*Component)

// WithID sets the component identifier. It must be unique within a tree.
func WithID(id string) Option {
	return func(c *Component) {
		c.id = id
	}
}

// WithText sets the display text.
func WithText(text string) Option {
	return func(c *Component) {
		c.text = text
	}
}

// WithStyle sets the authored style.
func WithStyle(s Style) Option {
	return func(c *Component) {
		c.style = s
	}
}

// WithFocusable marks the component as reachable by focus traversal.
func WithFocusable(focusable bool) Option {
	return func(c *Component) {
		c.focusable = focusable
	}
}

// WithTextInput makes the component receive printable keys before any app
// key binding while it is focused.
func WithTextInput(on bool) Option {
	return func(c *Component) {
		c.textInput = on
	}
}

// NewComponent creates a Component. Components created without an id get a
// random UUID.
func NewComponent(opts ...Option) *Component {
	c := &Component{events: NewEventQueue()}
	for _, opt := range opts {
		opt(c)
	}
	if c.id == "" {
		c.id = uuid.NewString()
	}
	return c
}

// ID returns the component identifier.
func (c *Component) ID() string { return c.id }

// Text returns the display text.
func (c *Component) Text() string { return c.text }

// TextLen returns the text length in characters.
func (c *Component) TextLen() int { return utf8.RuneCountInString(c.text) }

// Style returns the authored style.
func (c *Component) Style() Style { return c.style }

// Focusable reports whether focus traversal visits this component.
func (c *Component) Focusable() bool { return c.focusable }

// TextInput reports whether the component captures printable keys.
func (c *Component) TextInput() bool { return c.textInput }

// Events returns the component's own event queue.
func (c *Component) Events() *EventQueue { return c.events }

// SetText replaces the display text. The component repaints on the next
// cycle even when its geometry does not change.
func (c *Component) SetText(text string) {
	if text == c.text {
		return
	}
	c.text = text
	c.hasPrev = false
}

// SetStyle replaces the authored style and forces a repaint on the next cycle.
func (c *Component) SetStyle(s Style) {
	c.style = s
	c.hasPrev = false
}

// UpdateStyle applies fn to a copy of the style and stores the result.
func (c *Component) UpdateStyle(fn func(Style) Style) {
	c.SetStyle(fn(c.style))
}

// Resolved returns the resolved style from the last cycle and whether one exists.
func (c *Component) Resolved() (ResolvedStyle, bool) {
	return c.resolved, c.hasResolved
}

// Dirty reports whether the last cycle changed the resolved style.
func (c *Component) Dirty() bool { return c.dirty }

// MarkDirty forces the component to be reported dirty by the next cycle.
func (c *Component) MarkDirty() {
	c.dirty = true
	c.hasPrev = false
}

// Clean clears the dirty flag. The renderer calls it after repainting.
func (c *Component) Clean() { c.dirty = false }
