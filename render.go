package gridtui

import (
	"strings"
	"unicode/utf8"

	"github.com/grindlemire/go-gridtui/internal/debug"
)

// fragment is the draw output cached for one component, together with the
// inputs it was painted from.
type fragment struct {
	out    string
	style  ResolvedStyle
	text   string
	screen Rect
}

// RenderStats describes the most recent Render call.
type RenderStats struct {
	Repainted int
	Reused    int
	Bytes     int
}

// Renderer paints resolved components onto a Surface. Components that are
// not dirty replay the fragment cached from their last paint.
type Renderer struct {
	tree    *Tree
	surface Surface
	cache   map[Handle]fragment
	frame   strings.Builder
	stats   RenderStats
}

// NewRenderer creates a renderer drawing tree onto s.
func NewRenderer(tree *Tree, s Surface) *Renderer {
	return &Renderer{
		tree:    tree,
		surface: s,
		cache:   make(map[Handle]fragment),
	}
}

// Stats returns statistics for the most recent Render call.
func (r *Renderer) Stats() RenderStats { return r.stats }

// Invalidate drops every cached fragment so the next Render repaints all
// components.
func (r *Renderer) Invalidate() {
	clear(r.cache)
}

// Render appends one frame for the whole tree, in paint order, to the
// pending output. Dirty components are repainted and cleaned; the rest
// reuse their cached fragment. Components never resolved are skipped.
func (r *Renderer) Render() {
	w, h := r.surface.Size()
	screen := Rect{Width: w, Height: h}
	start := r.frame.Len()
	r.stats = RenderStats{}

	r.tree.Walk(false, func(hd Handle, c *Component) {
		res, ok := c.Resolved()
		if !ok {
			return
		}
		frag, cached := r.cache[hd]
		if c.dirty || !cached || frag.style != res || frag.text != c.text || frag.screen != screen {
			frag = fragment{out: r.paint(c, res, screen), style: res, text: c.text, screen: screen}
			r.cache[hd] = frag
			c.Clean()
			r.stats.Repainted++
		} else {
			r.stats.Reused++
		}
		r.frame.WriteString(frag.out)
	})

	r.stats.Bytes = r.frame.Len() - start
	debug.Log("Renderer.Render: %d repainted, %d reused, %d bytes", r.stats.Repainted, r.stats.Reused, r.stats.Bytes)
}

// Pending returns the output accumulated since the last Draw or Reset.
func (r *Renderer) Pending() string { return r.frame.String() }

// Reset discards pending output without drawing it.
func (r *Renderer) Reset() { r.frame.Reset() }

// Draw writes pending output to the surface, flushes it and resets the
// pending buffer.
func (r *Renderer) Draw() error {
	defer r.frame.Reset()
	if r.frame.Len() > 0 {
		if _, err := r.surface.Write([]byte(r.frame.String())); err != nil {
			return err
		}
	}
	return r.surface.Flush()
}

// paint builds the fragment for one component: background fill, border,
// then aligned text. Everything is clipped to screen.
func (r *Renderer) paint(c *Component, res ResolvedStyle, screen Rect) string {
	var sb strings.Builder
	box := res.Rect()
	if box.IsEmpty() {
		return ""
	}
	s := r.surface
	bg := res.Background

	if !bg.IsTransparent() {
		blank := strings.Repeat(" ", box.Width)
		for y := box.Y; y < box.Bottom(); y++ {
			r.put(&sb, screen, box.X, y, blank, func(t string) string { return s.Background(bg, t) })
		}
	}

	colored := func(fg RGBA) func(string) string {
		return func(t string) string {
			t = s.Foreground(fg, t)
			if !bg.IsTransparent() {
				t = s.Background(bg, t)
			}
			return t
		}
	}

	inset := 0
	if res.Border > 0 {
		inset = res.Border
		top, bottom, left, right := boxRows(res.BorderStyle.Chars(), box.Width, box.Height)
		if top != "" {
			paintBorder := colored(res.BorderColor)
			r.put(&sb, screen, box.X, box.Y, top, paintBorder)
			for y := box.Y + 1; y < box.Bottom()-1; y++ {
				r.put(&sb, screen, box.X, y, string(left), paintBorder)
				r.put(&sb, screen, box.Right()-1, y, string(right), paintBorder)
			}
			r.put(&sb, screen, box.X, box.Bottom()-1, bottom, paintBorder)
		}
	}

	if c.text != "" {
		inner := Rect{
			X:      box.X + inset + res.Padding.Left,
			Y:      box.Y + inset + res.Padding.Top,
			Width:  box.Width - 2*inset - res.Padding.Horizontal(),
			Height: box.Height - 2*inset - res.Padding.Vertical(),
		}
		if !inner.IsEmpty() {
			text := clipRunes(c.text, inner.Width)
			r.put(&sb, screen, inner.X+alignOffset(res.TextAlign, utf8.RuneCountInString(text), inner.Width), inner.Y, text, colored(res.Foreground))
		}
	}
	return sb.String()
}

// put writes one row of cells starting at (x, y), clipped to screen.
func (r *Renderer) put(sb *strings.Builder, screen Rect, x, y int, row string, wrap func(string) string) {
	if y < screen.Y || y >= screen.Bottom() {
		return
	}
	runes := []rune(row)
	if x < screen.X {
		skip := screen.X - x
		if skip >= len(runes) {
			return
		}
		runes = runes[skip:]
		x = screen.X
	}
	if over := x + len(runes) - screen.Right(); over > 0 {
		if over >= len(runes) {
			return
		}
		runes = runes[:len(runes)-over]
	}
	sb.WriteString(r.surface.MoveTo(x, y))
	sb.WriteString(wrap(string(runes)))
}

func clipRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func alignOffset(a TextAlign, textLen, width int) int {
	switch a {
	case TextAlignCenter:
		return (width - textLen) / 2
	case TextAlignRight:
		return width - textLen
	default:
		return 0
	}
}
