package gridtui

import (
	"fmt"
	"slices"

	"github.com/grindlemire/go-gridtui/internal/debug"
)

// RootID is the identifier of the synthetic root component.
const RootID = "root"

// Handle addresses a node in a Tree. Handles stay valid until the node is
// removed; a removed node's slot may be reused, but its old handles never
// match the new occupant. The zero Handle is never valid.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h.gen == 0 }

func (h Handle) String() string {
	return fmt.Sprintf("%d#%d", h.index, h.gen)
}

type node struct {
	comp     *Component
	parent   Handle
	children []Handle
	gen      uint32
	live     bool
}

// Tree owns the component hierarchy. Nodes live in an arena and refer to each
// other by Handle. Structural changes must happen between resolve cycles.
type Tree struct {
	nodes []node
	free  []uint32
	ids   map[string]Handle
	root  Handle
}

// NewTree creates a tree whose root fills the viewport.
func NewTree() *Tree {
	t := &Tree{ids: make(map[string]Handle)}
	root := NewComponent(
		WithID(RootID),
		WithStyle(Style{X: Fixed(0), Y: Fixed(0), Width: Percent(100), Height: Percent(100)}),
	)
	t.root = t.alloc(root, Handle{})
	return t
}

// Root returns the root handle.
func (t *Tree) Root() Handle { return t.root }

// RootComponent returns the synthetic root component.
func (t *Tree) RootComponent() *Component { return t.nodes[t.root.index].comp }

// Len returns the number of live nodes, including the root.
func (t *Tree) Len() int { return len(t.ids) }

// Add inserts c as the last child of the component named parentID, or of the
// root when parentID is empty.
func (t *Tree) Add(c *Component, parentID string) (Handle, error) {
	if parentID == "" {
		return t.AddUnder(t.root, c)
	}
	parent, ok := t.ids[parentID]
	if !ok {
		return Handle{}, &TreeLookupError{Op: "add", ID: parentID}
	}
	return t.AddUnder(parent, c)
}

// AddUnder inserts c as the last child of parent.
func (t *Tree) AddUnder(parent Handle, c *Component) (Handle, error) {
	if c == nil {
		return Handle{}, fmt.Errorf("add: nil component")
	}
	if !t.valid(parent) {
		return Handle{}, &TreeLookupError{Op: "add", ID: parent.String()}
	}
	if _, exists := t.ids[c.id]; exists {
		return Handle{}, fmt.Errorf("add %q: %w", c.id, ErrDuplicateID)
	}
	h := t.alloc(c, parent)
	p := &t.nodes[parent.index]
	p.children = append(p.children, h)
	debug.Log("Tree.Add: %q under %q (%s)", c.id, p.comp.id, h)
	return h, nil
}

// Remove detaches c's node from its parent and frees its whole subtree.
func (t *Tree) Remove(c *Component) error {
	if c == nil {
		return &TreeLookupError{Op: "remove"}
	}
	h, ok := t.ids[c.id]
	if !ok || t.nodes[h.index].comp != c {
		return &TreeLookupError{Op: "remove", ID: c.id}
	}
	return t.removeHandle(h)
}

// RemoveID removes the component with the given id and its subtree.
func (t *Tree) RemoveID(id string) error {
	h, ok := t.ids[id]
	if !ok {
		return &TreeLookupError{Op: "remove", ID: id}
	}
	return t.removeHandle(h)
}

func (t *Tree) removeHandle(h Handle) error {
	if h == t.root {
		return fmt.Errorf("remove: cannot remove the root component")
	}
	n := &t.nodes[h.index]
	parent := &t.nodes[n.parent.index]
	if i := slices.Index(parent.children, h); i >= 0 {
		parent.children = slices.Delete(parent.children, i, i+1)
	}
	var freed int
	t.walkFrom(h, true, func(sub Handle, c *Component) {
		t.release(sub)
		freed++
	})
	debug.Log("Tree.Remove: %s freed %d node(s)", h, freed)
	return nil
}

// Get returns the component with the given id, or nil.
func (t *Tree) Get(id string) *Component {
	h, ok := t.ids[id]
	if !ok {
		return nil
	}
	return t.nodes[h.index].comp
}

// Lookup returns the handle of the component with the given id.
func (t *Tree) Lookup(id string) (Handle, bool) {
	h, ok := t.ids[id]
	return h, ok
}

// Component returns the component stored at h, or nil for a stale handle.
func (t *Tree) Component(h Handle) *Component {
	if !t.valid(h) {
		return nil
	}
	return t.nodes[h.index].comp
}

// Parent returns the parent of h. The root's parent is the zero Handle.
func (t *Tree) Parent(h Handle) Handle {
	if !t.valid(h) {
		return Handle{}
	}
	return t.nodes[h.index].parent
}

// Children returns the children of h in paint order. The slice must not be
// modified.
func (t *Tree) Children(h Handle) []Handle {
	if !t.valid(h) {
		return nil
	}
	return t.nodes[h.index].children
}

// Traverse returns every live handle. reverse=false yields pre-order (parent
// before children); reverse=true yields post-order (children before parent).
func (t *Tree) Traverse(reverse bool) []Handle {
	out := make([]Handle, 0, len(t.ids))
	t.walkFrom(t.root, reverse, func(h Handle, _ *Component) {
		out = append(out, h)
	})
	return out
}

// Walk calls fn for every node in pre-order, or post-order when reverse is true.
func (t *Tree) Walk(reverse bool, fn func(Handle, *Component)) {
	t.walkFrom(t.root, reverse, fn)
}

func (t *Tree) walkFrom(h Handle, postOrder bool, fn func(Handle, *Component)) {
	n := &t.nodes[h.index]
	if !postOrder {
		fn(h, n.comp)
	}
	for _, child := range n.children {
		t.walkFrom(child, postOrder, fn)
	}
	if postOrder {
		fn(h, n.comp)
	}
}

func (t *Tree) alloc(c *Component, parent Handle) Handle {
	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		idx = uint32(len(t.nodes))
		t.nodes = append(t.nodes, node{})
	}
	gen := t.nodes[idx].gen + 1
	t.nodes[idx] = node{comp: c, parent: parent, gen: gen, live: true}
	h := Handle{index: idx, gen: gen}
	t.ids[c.id] = h
	return h
}

// release frees the slot at h. The children slice is dropped without
// touching the child nodes; walkFrom has already visited them.
func (t *Tree) release(h Handle) {
	n := &t.nodes[h.index]
	delete(t.ids, n.comp.id)
	t.nodes[h.index] = node{gen: n.gen}
	t.free = append(t.free, h.index)
}

func (t *Tree) valid(h Handle) bool {
	if h.gen == 0 || int(h.index) >= len(t.nodes) {
		return false
	}
	n := &t.nodes[h.index]
	return n.live && n.gen == h.gen
}
