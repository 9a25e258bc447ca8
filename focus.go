package gridtui

import "github.com/grindlemire/go-gridtui/internal/debug"

// FocusManager walks the focusable components of a tree in paint order.
// Focus changes are reported to each component's own queue as
// EventFocusOut followed by EventFocusIn.
type FocusManager struct {
	tree    *Tree
	current string // id of the focused component, "" when none
}

// NewFocusManager creates a focus manager for tree with nothing focused.
func NewFocusManager(tree *Tree) *FocusManager {
	return &FocusManager{tree: tree}
}

// Focused returns the focused component, or nil.
func (f *FocusManager) Focused() *Component {
	if f.current == "" {
		return nil
	}
	return f.tree.Get(f.current)
}

// focusables lists focusable component ids in pre-order.
func (f *FocusManager) focusables() []string {
	var ids []string
	f.tree.Walk(false, func(_ Handle, c *Component) {
		if c.focusable {
			ids = append(ids, c.id)
		}
	})
	return ids
}

// FocusFirst focuses the first focusable component. It returns false when
// there is none.
func (f *FocusManager) FocusFirst() bool {
	ids := f.focusables()
	if len(ids) == 0 {
		return false
	}
	f.move(ids[0])
	return true
}

// Next moves focus to the following focusable component, wrapping around.
func (f *FocusManager) Next() {
	f.step(1)
}

// Prev moves focus to the preceding focusable component, wrapping around.
func (f *FocusManager) Prev() {
	f.step(-1)
}

func (f *FocusManager) step(dir int) {
	ids := f.focusables()
	if len(ids) == 0 {
		f.Clear()
		return
	}
	idx := -1
	for i, id := range ids {
		if id == f.current {
			idx = i
			break
		}
	}
	if idx == -1 {
		if dir > 0 {
			f.move(ids[0])
		} else {
			f.move(ids[len(ids)-1])
		}
		return
	}
	f.move(ids[(idx+dir+len(ids))%len(ids)])
}

// Set focuses the component with the given id.
func (f *FocusManager) Set(id string) error {
	c := f.tree.Get(id)
	if c == nil {
		return &TreeLookupError{Op: "focus", ID: id}
	}
	if !c.focusable {
		return &TreeLookupError{Op: "focus", ID: id, Reason: "component is not focusable"}
	}
	f.move(id)
	return nil
}

// Clear removes focus from the focused component.
func (f *FocusManager) Clear() {
	f.move("")
}

func (f *FocusManager) move(id string) {
	if id == f.current {
		return
	}
	debug.Log("FocusManager: %q -> %q", f.current, id)
	if old := f.Focused(); old != nil {
		old.events.Enqueue(Event{Type: EventFocusOut, Target: old.id})
	}
	f.current = id
	if c := f.Focused(); c != nil {
		c.events.Enqueue(Event{Type: EventFocusIn, Target: c.id})
	}
}
