// Package layoutfile loads component trees from TOML layout descriptions.
//
// A layout file is a list of [[component]] tables. Each component names its
// parent by id (empty for the root) and must appear after it:
//
//	[[component]]
//	id = "menu"
//	[component.style]
//	width = "50%"
//	axis = "y"
//	background = "#ff6464"
//
//	[[component]]
//	id = "ok"
//	parent = "menu"
//	kind = "button"
//	text = "OK"
//	[component.style]
//	height = 1
//	max_width = 20
//
// Geometry fields accept integers, floats or unit strings ("50%", "12").
// Colors are hex strings with an optional <field>_alpha in [0, 1].
package layoutfile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/grindlemire/go-gridtui"
	"github.com/grindlemire/go-gridtui/widget"
)

// Component kinds.
const (
	KindBox    = "box"
	KindButton = "button"
	KindInput  = "input"
)

// File is a decoded layout file.
type File struct {
	Components []Entry `toml:"component"`
}

// Entry describes one component.
type Entry struct {
	ID        string    `toml:"id"`
	Parent    string    `toml:"parent"`
	Kind      string    `toml:"kind"`
	Text      string    `toml:"text"`
	Focusable bool      `toml:"focusable"`
	Style     StyleSpec `toml:"style"`
}

// Load decodes a layout from r. Unknown keys are rejected.
func Load(r io.Reader) (*File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("decode layout: unknown keys: %s", strings.Join(keys, ", "))
	}
	for i, e := range f.Components {
		if e.ID == "" {
			return nil, fmt.Errorf("component %d: missing id", i)
		}
		switch e.Kind {
		case "", KindBox, KindButton, KindInput:
		default:
			return nil, fmt.Errorf("component %q: unknown kind %q", e.ID, e.Kind)
		}
		if _, err := e.Style.ToStyle(); err != nil {
			return nil, fmt.Errorf("component %q: %w", e.ID, err)
		}
	}
	return &f, nil
}

// LoadFile reads and decodes the layout file at path.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	f, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Handlers receive widget callbacks from a built tree. Nil fields are ignored.
type Handlers struct {
	OnPress  func(b *widget.Button)
	OnSubmit func(id, value string)
}

// Build creates a component tree from f.
func (f *File) Build(h Handlers) (*gridtui.Tree, error) {
	tree := gridtui.NewTree()
	for _, e := range f.Components {
		c, err := e.component(h)
		if err != nil {
			return nil, err
		}
		if _, err := tree.Add(c, e.Parent); err != nil {
			return nil, fmt.Errorf("component %q: %w", e.ID, err)
		}
	}
	return tree, nil
}

func (e Entry) component(h Handlers) (*gridtui.Component, error) {
	style, err := e.Style.ToStyle()
	if err != nil {
		return nil, fmt.Errorf("component %q: %w", e.ID, err)
	}
	switch e.Kind {
	case KindButton:
		return widget.NewButton(e.ID, e.Text, style, h.OnPress).Component, nil
	case KindInput:
		var submit func(string)
		if h.OnSubmit != nil {
			id := e.ID
			submit = func(v string) { h.OnSubmit(id, v) }
		}
		return widget.NewInput(e.ID, style, submit).Component, nil
	default:
		return gridtui.NewComponent(
			gridtui.WithID(e.ID),
			gridtui.WithText(e.Text),
			gridtui.WithStyle(style),
			gridtui.WithFocusable(e.Focusable),
		), nil
	}
}
