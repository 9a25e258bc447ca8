package gridtui

import (
	"time"

	"github.com/grindlemire/go-gridtui/internal/debug"
)

// axisFields maps one layout axis onto the Style and ResolvedStyle fields
// that describe it. The resolver runs every per-axis rule through this table.
type axisFields struct {
	axis                        Axis
	posName, sizeName           string
	minName, maxName            string
	pos, size, minSize, maxSize func(*Style) Value
	rPos, rSize, rMin           func(*ResolvedStyle) *int
	rMax                        func(*ResolvedStyle) *Bound
}

var axes = [2]axisFields{
	{
		axis:    AxisX,
		posName: "x", sizeName: "width", minName: "min_width", maxName: "max_width",
		pos:     func(s *Style) Value { return s.X },
		size:    func(s *Style) Value { return s.Width },
		minSize: func(s *Style) Value { return s.MinWidth },
		maxSize: func(s *Style) Value { return s.MaxWidth },
		rPos:    func(r *ResolvedStyle) *int { return &r.X },
		rSize:   func(r *ResolvedStyle) *int { return &r.Width },
		rMin:    func(r *ResolvedStyle) *int { return &r.MinWidth },
		rMax:    func(r *ResolvedStyle) *Bound { return &r.MaxWidth },
	},
	{
		axis:    AxisY,
		posName: "y", sizeName: "height", minName: "min_height", maxName: "max_height",
		pos:     func(s *Style) Value { return s.Y },
		size:    func(s *Style) Value { return s.Height },
		minSize: func(s *Style) Value { return s.MinHeight },
		maxSize: func(s *Style) Value { return s.MaxHeight },
		rPos:    func(r *ResolvedStyle) *int { return &r.Y },
		rSize:   func(r *ResolvedStyle) *int { return &r.Height },
		rMin:    func(r *ResolvedStyle) *int { return &r.MinHeight },
		rMax:    func(r *ResolvedStyle) *Bound { return &r.MaxHeight },
	},
}

// scratch is per-node state that only lives for one cycle.
type scratch struct {
	declared [2]bool // size declared on the axis
	explicit [2]bool // min declared on the axis
	offset   [2]int  // absolute nodes: position relative to the parent origin
}

// ResolveStats describes the most recent resolve cycle.
type ResolveStats struct {
	Nodes   int
	Dirty   int
	Elapsed time.Duration
}

// Resolver turns each component's Style into a ResolvedStyle and flags the
// components whose result changed since the previous cycle.
type Resolver struct {
	tree     *Tree
	viewport *Viewport
	scratch  []scratch
	stats    ResolveStats
}

// NewResolver creates a resolver for tree using vp as the root frame.
func NewResolver(tree *Tree, vp *Viewport) *Resolver {
	return &Resolver{tree: tree, viewport: vp}
}

// Stats returns statistics for the most recent successful cycle.
func (r *Resolver) Stats() ResolveStats { return r.stats }

// Resolve runs the three layout passes over the whole tree, then flags dirty
// components. A malformed unit aborts the cycle with a *UnitParseError;
// components resolved before the failure keep their partial results and no
// dirty flags change.
func (r *Resolver) Resolve() error {
	start := time.Now()
	t := r.tree

	if cap(r.scratch) < len(t.nodes) {
		r.scratch = make([]scratch, len(t.nodes))
	} else {
		r.scratch = r.scratch[:len(t.nodes)]
		clear(r.scratch)
	}

	pre := t.Traverse(false)
	post := t.Traverse(true)

	for _, h := range pre {
		if err := r.resolveDeclared(h); err != nil {
			debug.Log("Resolver.Resolve: aborted: %v", err)
			return err
		}
	}
	for _, h := range post {
		r.fitContent(h)
	}
	for _, h := range pre {
		r.placeChildren(h)
	}

	dirty := flagDirty(t, pre)
	r.stats = ResolveStats{Nodes: len(pre), Dirty: dirty, Elapsed: time.Since(start)}
	debug.Log("Resolver.Resolve: %d nodes, %d dirty in %s", r.stats.Nodes, dirty, r.stats.Elapsed)
	return nil
}

// resolveDeclared is pass 1: declared geometry resolved against the parent's
// already resolved values.
func (r *Resolver) resolveDeclared(h Handle) error {
	t := r.tree
	c := t.nodes[h.index].comp
	s := &r.scratch[h.index]
	res := newResolvedStyle(c.style)

	if h == t.root {
		vp := r.viewport
		res.X, res.Y, res.Width, res.Height = vp.X, vp.Y, vp.Width, vp.Height
		for i, ax := range axes {
			s.declared[i] = true
			if err := resolveBounds(c, &res, ax, s, i, *ax.rSize(&res)); err != nil {
				return err
			}
		}
	} else {
		parent := &t.nodes[t.nodes[h.index].parent.index].comp.resolved
		for i, ax := range axes {
			refPos, refSize := *ax.rPos(parent), *ax.rSize(parent)

			if v := ax.size(&c.style); v.IsSet() {
				n, err := v.ResolveSize(refSize)
				if err != nil {
					return &UnitParseError{NodeID: c.id, Field: ax.sizeName, Err: err}
				}
				*ax.rSize(&res) = max(n, 0)
				s.declared[i] = true
			}

			pos := refPos
			if v := ax.pos(&c.style); v.IsSet() {
				n, err := v.ResolvePosition(refPos, refSize)
				if err != nil {
					return &UnitParseError{NodeID: c.id, Field: ax.posName, Err: err}
				}
				pos = n
			}
			*ax.rPos(&res) = pos
			s.offset[i] = pos - refPos

			if err := resolveBounds(c, &res, ax, s, i, refSize); err != nil {
				return err
			}
		}
	}

	if c.style.Gap.IsSet() {
		ax := axes[res.Axis]
		gap, err := c.style.Gap.ResolveSize(*ax.rSize(&res))
		if err != nil {
			return &UnitParseError{NodeID: c.id, Field: "gap", Err: err}
		}
		res.Gap = max(gap, 0)
	}

	c.resolved = res
	c.hasResolved = true
	return nil
}

// resolveBounds resolves explicit min/max on one axis against refSize.
func resolveBounds(c *Component, res *ResolvedStyle, ax axisFields, s *scratch, i, refSize int) error {
	if v := ax.minSize(&c.style); v.IsSet() {
		n, err := v.ResolveSize(refSize)
		if err != nil {
			return &UnitParseError{NodeID: c.id, Field: ax.minName, Err: err}
		}
		*ax.rMin(res) = max(n, 0)
		s.explicit[i] = true
	}
	if v := ax.maxSize(&c.style); v.IsSet() {
		n, err := v.ResolveSize(refSize)
		if err != nil {
			return &UnitParseError{NodeID: c.id, Field: ax.maxName, Err: err}
		}
		*ax.rMax(res) = Bound{N: max(n, 0), Set: true}
	}
	return nil
}

// fitContent is pass 2: sizes settle bottom-up, then overflowing relative
// children are scaled down to fit.
func (r *Resolver) fitContent(h Handle) {
	t := r.tree
	c := t.nodes[h.index].comp
	res := &c.resolved
	children := t.nodes[h.index].children

	for i, ax := range axes {
		required, gapTotal := r.childrenRequired(children, res, ax)

		minSize := *ax.rMin(res)
		if !r.scratch[h.index].explicit[i] {
			minSize = textMin(c, ax.axis)
		}
		minSize = max(minSize, 0)
		*ax.rMin(res) = minSize

		size := ax.rSize(res)
		if r.scratch[h.index].declared[i] {
			*size = Clamp(Bound{N: minSize, Set: true}, *size, *ax.rMax(res))
		} else {
			*size = Clamp(Bound{N: minSize, Set: true}, required, *ax.rMax(res))
		}

		if required > *size {
			r.distribute(children, ax, *size-gapTotal, required-gapTotal)
		}
	}
}

// childrenRequired sums relative children along the node's layout axis and
// takes their maximum across it. Gaps count only along the layout axis.
func (r *Resolver) childrenRequired(children []Handle, res *ResolvedStyle, ax axisFields) (required, gapTotal int) {
	n := 0
	for _, ch := range children {
		cr := &r.tree.nodes[ch.index].comp.resolved
		if cr.Position == Absolute {
			continue
		}
		sz := *ax.rSize(cr)
		if res.Axis == ax.axis {
			required += sz
		} else {
			required = max(required, sz)
		}
		n++
	}
	if res.Axis == ax.axis && n > 1 {
		gapTotal = res.Gap * (n - 1)
		required += gapTotal
	}
	return required, gapTotal
}

// distribute scales every relative child by available/required, then clamps
// each to its own bounds. Residual overflow is allowed.
func (r *Resolver) distribute(children []Handle, ax axisFields, available, required int) {
	if required <= 0 {
		return
	}
	available = max(available, 0)
	ratio := float64(available) / float64(required)
	for _, ch := range children {
		cr := &r.tree.nodes[ch.index].comp.resolved
		if cr.Position == Absolute {
			continue
		}
		size := ax.rSize(cr)
		scaled := int(ratio * float64(*size))
		*size = Clamp(Bound{N: *ax.rMin(cr), Set: true}, scaled, *ax.rMax(cr))
	}
}

// placeChildren is pass 3: relative children are laid out one after another
// along the layout axis and aligned to the parent's origin across it.
// Absolute children follow the parent's final origin.
func (r *Resolver) placeChildren(h Handle) {
	t := r.tree
	res := &t.nodes[h.index].comp.resolved
	main := axes[res.Axis]
	cross := axes[res.Axis.Cross()]
	cursor := *main.rPos(res)

	for _, ch := range t.nodes[h.index].children {
		cr := &t.nodes[ch.index].comp.resolved
		s := &r.scratch[ch.index]
		if cr.Position == Absolute {
			for i, ax := range axes {
				*ax.rPos(cr) = *ax.rPos(res) + s.offset[i]
			}
			continue
		}

		*main.rPos(cr) = cursor
		cursor += *main.rSize(cr) + res.Gap

		*cross.rPos(cr) = *cross.rPos(res)
		if !s.declared[cross.axis] {
			*cross.rSize(cr) = Clamp(Bound{N: *cross.rMin(cr), Set: true}, *cross.rSize(res), *cross.rMax(cr))
		}
	}
}

// textMin is the content-derived minimum: text length across, one line down.
func textMin(c *Component, a Axis) int {
	if a == AxisX {
		return c.TextLen()
	}
	if c.text != "" {
		return 1
	}
	return 0
}
