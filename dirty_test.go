package gridtui

import "testing"

func TestDirtyTracking(t *testing.T) {
	type tc struct {
		mutate   func(tree *Tree, vp *Viewport)
		expected map[string]bool
	}

	tests := map[string]tc{
		"no change": {
			mutate:   func(*Tree, *Viewport) {},
			expected: map[string]bool{"root": false, "a": false, "b": false},
		},
		"resize of one child moves its sibling": {
			mutate: func(tree *Tree, _ *Viewport) {
				tree.Get("a").UpdateStyle(func(s Style) Style {
					s.Width = Fixed(12)
					return s
				})
			},
			expected: map[string]bool{"root": false, "a": true, "b": true},
		},
		"text change with stable geometry": {
			mutate: func(tree *Tree, _ *Viewport) {
				tree.Get("b").SetText("hi")
			},
			expected: map[string]bool{"root": false, "a": false, "b": true},
		},
		"color change": {
			mutate: func(tree *Tree, _ *Viewport) {
				tree.Get("a").UpdateStyle(func(s Style) Style {
					s.Background = Some(RGB(0, 0, 255))
					return s
				})
			},
			expected: map[string]bool{"root": false, "a": true, "b": false},
		},
		"mark dirty": {
			mutate: func(tree *Tree, _ *Viewport) {
				tree.Get("b").MarkDirty()
			},
			expected: map[string]bool{"root": false, "a": false, "b": true},
		},
		"viewport resize": {
			mutate: func(_ *Tree, vp *Viewport) {
				vp.Resize(40, 8)
			},
			expected: map[string]bool{"root": true, "a": true, "b": true},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := NewTree()
			for _, id := range []string{"a", "b"} {
				if _, err := tree.Add(NewComponent(WithID(id), WithStyle(Style{Width: Fixed(10)})), ""); err != nil {
					t.Fatal(err)
				}
			}
			vp := NewViewport(40, 10)
			r := NewResolver(tree, vp)

			if err := r.Resolve(); err != nil {
				t.Fatal(err)
			}
			for id := range tt.expected {
				if !tree.Get(id).Dirty() {
					t.Errorf("%s should be dirty after its first cycle", id)
				}
			}
			if err := r.Resolve(); err != nil {
				t.Fatal(err)
			}
			for id := range tt.expected {
				if tree.Get(id).Dirty() {
					t.Errorf("%s should be clean after an unchanged cycle", id)
				}
			}

			tt.mutate(tree, vp)
			if err := r.Resolve(); err != nil {
				t.Fatal(err)
			}
			for id, want := range tt.expected {
				if got := tree.Get(id).Dirty(); got != want {
					t.Errorf("%s Dirty() = %v, want %v", id, got, want)
				}
			}
		})
	}
}

func TestDirtyTracking_AddedComponent(t *testing.T) {
	tree := NewTree()
	r := NewResolver(tree, NewViewport(10, 5))
	if err := r.Resolve(); err != nil {
		t.Fatal(err)
	}
	c := NewComponent(WithID("late"))
	if _, err := tree.Add(c, ""); err != nil {
		t.Fatal(err)
	}
	if err := r.Resolve(); err != nil {
		t.Fatal(err)
	}
	if !c.Dirty() {
		t.Error("a component without a previous result is always dirty")
	}
}
