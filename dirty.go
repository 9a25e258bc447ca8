package gridtui

// flagDirty compares each component's new resolved style with the one from
// the previous cycle. A component is dirty iff the two differ or either is
// missing. The new value becomes the previous value for the next cycle.
// It returns the number of dirty components.
func flagDirty(t *Tree, order []Handle) int {
	n := 0
	for _, h := range order {
		c := t.nodes[h.index].comp
		c.dirty = !c.hasResolved || !c.hasPrev || c.prev != c.resolved
		if c.dirty {
			n++
		}
		if c.hasResolved {
			c.prev = c.resolved
			c.hasPrev = true
		}
	}
	return n
}
