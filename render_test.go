package gridtui

import (
	"strings"
	"testing"
)

type renderFixture struct {
	tree     *Tree
	resolver *Resolver
	renderer *Renderer
	surface  *MockSurface
}

func newRenderFixture(t *testing.T, width, height int, root Style, children ...child) *renderFixture {
	t.Helper()
	tree := NewTree()
	tree.RootComponent().UpdateStyle(func(s Style) Style { return Override(s, root) })
	for _, c := range children {
		if _, err := tree.Add(NewComponent(WithID(c.id), WithText(c.text), WithStyle(c.style)), c.parent); err != nil {
			t.Fatalf("Add(%q) failed: %v", c.id, err)
		}
	}
	surface := NewMockSurface(width, height)
	return &renderFixture{
		tree:     tree,
		resolver: NewResolver(tree, NewViewport(width, height)),
		renderer: NewRenderer(tree, surface),
		surface:  surface,
	}
}

// frame resolves, renders and draws one frame, returning the emulated screen
// after applying every frame drawn so far.
func (f *renderFixture) frame(t *testing.T) *screenEmulator {
	t.Helper()
	if err := f.resolver.Resolve(); err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	f.renderer.Render()
	if err := f.renderer.Draw(); err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}
	w, h := f.surface.Size()
	screen := newScreenEmulator(w, h)
	screen.Feed(f.surface.Output())
	return screen
}

func prefix(s string, n int) string {
	r := []rune(s)
	if n > len(r) {
		n = len(r)
	}
	return string(r[:n])
}

func TestRenderer_Paint(t *testing.T) {
	blue := RGB(0, 0, 255)

	type tc struct {
		children []child
		check    func(t *testing.T, s *screenEmulator)
	}

	tests := map[string]tc{
		"text over background": {
			children: []child{
				{id: "title", text: "Hi", style: Style{Width: Fixed(10), Height: Fixed(1), Background: Some(blue)}},
			},
			check: func(t *testing.T, s *screenEmulator) {
				if got := prefix(s.Row(0), 2); got != "Hi" {
					t.Errorf("row 0 = %q, want Hi", got)
				}
				if c := s.At(0, 0); !c.hasFg || c.fg != White || !c.hasBg || c.bg != blue {
					t.Errorf("text cell = %+v, want white on blue", c)
				}
				if c := s.At(9, 0); !c.hasBg || c.bg != blue {
					t.Errorf("fill cell = %+v, want blue background", c)
				}
				if c := s.At(10, 0); c.hasBg {
					t.Errorf("cell past the component = %+v, want unpainted", c)
				}
			},
		},
		"border with centered text": {
			children: []child{
				{id: "box", text: "ok", style: Style{
					Width:     Fixed(6),
					Height:    Fixed(3),
					Border:    Some(1),
					TextAlign: Some(TextAlignCenter),
				}},
			},
			check: func(t *testing.T, s *screenEmulator) {
				want := []string{"┌────┐", "│ ok │", "└────┘"}
				for y, row := range want {
					if got := prefix(s.Row(y), 6); got != row {
						t.Errorf("row %d = %q, want %q", y, got, row)
					}
				}
			},
		},
		"rounded border color": {
			children: []child{
				{id: "box", style: Style{
					Width:       Fixed(3),
					Height:      Fixed(2),
					Border:      Some(1),
					BorderStyle: Some(BorderRounded),
					BorderColor: Some(blue),
				}},
			},
			check: func(t *testing.T, s *screenEmulator) {
				if got := prefix(s.Row(0), 3); got != "╭─╮" {
					t.Errorf("row 0 = %q", got)
				}
				if got := prefix(s.Row(1), 3); got != "╰─╯" {
					t.Errorf("row 1 = %q", got)
				}
				if c := s.At(0, 0); c.fg != blue {
					t.Errorf("border color = %v, want blue", c.fg)
				}
			},
		},
		"right aligned with padding": {
			children: []child{
				{id: "r", text: "abc", style: Style{Width: Fixed(10), Height: Fixed(1), TextAlign: Some(TextAlignRight)}.
					WithPadding(Edges{Right: 2})},
			},
			check: func(t *testing.T, s *screenEmulator) {
				if got := prefix(s.Row(0), 10); got != "     abc  " {
					t.Errorf("row 0 = %q", got)
				}
			},
		},
		"text clipped to width": {
			children: []child{
				{id: "c", text: "abcdefghij", style: Style{Width: Fixed(4), MinWidth: Fixed(0), Height: Fixed(1)}},
			},
			check: func(t *testing.T, s *screenEmulator) {
				if got := prefix(s.Row(0), 6); got != "abcd  " {
					t.Errorf("row 0 = %q", got)
				}
			},
		},
		"clipped to the screen edge": {
			children: []child{
				{id: "c", text: "hello", style: Style{
					Position:   Some(Absolute),
					X:          Fixed(18),
					Y:          Fixed(2),
					Width:      Fixed(5),
					Height:     Fixed(1),
					Background: Some(blue),
				}},
			},
			check: func(t *testing.T, s *screenEmulator) {
				if got := s.Row(2)[18:]; got != "he" {
					t.Errorf("row 2 tail = %q, want he", got)
				}
			},
		},
		"off screen draws nothing": {
			children: []child{
				{id: "c", text: "gone", style: Style{Position: Some(Absolute), Y: Fixed(50), Width: Fixed(4), Height: Fixed(1)}},
			},
			check: func(t *testing.T, s *screenEmulator) {
				for y := 0; y < 5; y++ {
					if strings.TrimSpace(s.Row(y)) != "" {
						t.Errorf("row %d = %q, want blank", y, s.Row(y))
					}
				}
			},
		},
		"later siblings paint over earlier ones": {
			children: []child{
				{id: "under", text: "xxxx", style: Style{Position: Some(Absolute), Width: Fixed(4), Height: Fixed(1)}},
				{id: "over", text: "yy", style: Style{Position: Some(Absolute), X: Fixed(1), Width: Fixed(2), Height: Fixed(1)}},
			},
			check: func(t *testing.T, s *screenEmulator) {
				if got := prefix(s.Row(0), 4); got != "xyyx" {
					t.Errorf("row 0 = %q, want xyyx", got)
				}
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newRenderFixture(t, 20, 5, Style{}, tt.children...)
			tt.check(t, f.frame(t))
		})
	}
}

func TestRenderer_TransparentBackgroundSkipped(t *testing.T) {
	f := newRenderFixture(t, 20, 5, Style{}, child{id: "plain", style: Style{Width: Fixed(5), Height: Fixed(2)}})
	f.frame(t)
	if out := f.surface.Output(); strings.Contains(out, "48;2") || strings.Contains(out, "\x1b[") {
		t.Errorf("transparent component with no text produced output %q", out)
	}
}

func TestRenderer_Incremental(t *testing.T) {
	f := newRenderFixture(t, 20, 5, Style{Axis: Some(AxisY)},
		child{id: "a", text: "one"},
		child{id: "b", text: "two"},
	)

	f.frame(t)
	if s := f.renderer.Stats(); s.Repainted != 3 || s.Reused != 0 {
		t.Fatalf("first frame stats = %+v, want 3 repainted", s)
	}
	for _, id := range []string{"root", "a", "b"} {
		if f.tree.Get(id).Dirty() {
			t.Errorf("%s still dirty after painting", id)
		}
	}

	f.frame(t)
	if s := f.renderer.Stats(); s.Repainted != 0 || s.Reused != 3 {
		t.Errorf("unchanged frame stats = %+v, want 3 reused", s)
	}

	f.tree.Get("b").SetText("TWO")
	screen := f.frame(t)
	if s := f.renderer.Stats(); s.Repainted != 1 || s.Reused != 2 {
		t.Errorf("after SetText stats = %+v, want 1 repainted", s)
	}
	if got := prefix(screen.Row(1), 3); got != "TWO" {
		t.Errorf("row 1 = %q, want TWO", got)
	}

	f.renderer.Invalidate()
	f.frame(t)
	if s := f.renderer.Stats(); s.Repainted != 3 {
		t.Errorf("after Invalidate stats = %+v, want 3 repainted", s)
	}
}

func TestRenderer_SurfaceResizeRepaints(t *testing.T) {
	f := newRenderFixture(t, 20, 5, Style{}, child{id: "a", text: "x"})
	f.frame(t)
	f.surface.Resize(30, 5)
	f.frame(t)
	if s := f.renderer.Stats(); s.Repainted != 2 {
		t.Errorf("stats after resize = %+v, want everything repainted", s)
	}
}

func TestRenderer_ColorCache(t *testing.T) {
	red := RGB(255, 0, 0)
	var children []child
	for _, id := range []string{"a", "b", "c"} {
		children = append(children, child{id: id, text: "x", style: Style{Width: Fixed(3), Background: Some(red)}})
	}
	f := newRenderFixture(t, 20, 5, Style{}, children...)
	f.frame(t)
	f.renderer.Invalidate()
	f.frame(t)

	// One background prefix for red, one foreground prefix for white.
	if got := f.surface.ColorSequences(); got != 2 {
		t.Errorf("ColorSequences() = %d, want 2", got)
	}
}

func TestRenderer_PendingAndReset(t *testing.T) {
	f := newRenderFixture(t, 10, 2, Style{}, child{id: "a", text: "hi"})
	if err := f.resolver.Resolve(); err != nil {
		t.Fatal(err)
	}
	f.renderer.Render()
	if !strings.Contains(f.renderer.Pending(), "hi") {
		t.Fatalf("Pending() = %q, want the painted text", f.renderer.Pending())
	}
	f.renderer.Reset()
	if f.renderer.Pending() != "" {
		t.Error("Reset() should discard pending output")
	}
	if err := f.renderer.Draw(); err != nil {
		t.Fatal(err)
	}
	if len(f.surface.Frames()) != 1 || f.surface.LastFrame() != "" {
		t.Errorf("Draw() after Reset flushed %q", f.surface.LastFrame())
	}
}
