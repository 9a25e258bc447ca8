package gridtui

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/grindlemire/go-gridtui/internal/debug"
)

// clearer is implemented by surfaces that can wipe the screen before a
// repaint. Frame clears only when at least one component was repainted.
type clearer interface {
	Clear()
}

// App ties a component tree to a surface and runs one resolve, paint and
// draw per frame.
type App struct {
	tree     *Tree
	viewport *Viewport
	resolver *Resolver
	renderer *Renderer
	focus    *FocusManager
	surface  Surface
	input    io.Reader

	frameDuration time.Duration
	fixedSize     bool
	bindings      map[KeyEvent]func(*App)
	quit          atomic.Bool
	frames        int
}

// NewApp creates an app for tree. Without WithSurface it draws to stdout and
// reads keys from stdin.
func NewApp(tree *Tree, opts ...AppOption) (*App, error) {
	if tree == nil {
		return nil, fmt.Errorf("new app: nil tree")
	}
	a := &App{
		tree:          tree,
		viewport:      NewViewport(0, 0),
		frameDuration: time.Second / 30,
		bindings:      defaultBindings(),
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	if a.surface == nil {
		a.surface = NewANSISurface(os.Stdout, os.Stdin)
		if a.input == nil {
			a.input = os.Stdin
		}
	}
	a.resolver = NewResolver(tree, a.viewport)
	a.renderer = NewRenderer(tree, a.surface)
	a.focus = NewFocusManager(tree)
	return a, nil
}

func defaultBindings() map[KeyEvent]func(*App) {
	m := make(map[KeyEvent]func(*App))
	m[KeyEvent{Key: KeyDown}] = (*App).FocusNext
	m[KeyEvent{Key: KeyTab}] = (*App).FocusNext
	m[KeyEvent{Key: KeyUp}] = (*App).FocusPrev
	m[KeyEvent{Key: KeyTab, Mod: ModShift}] = (*App).FocusPrev
	m[KeyEvent{Key: KeyEnter}] = (*App).Activate
	m[KeyEvent{Key: KeyRune, Rune: 'q'}] = (*App).Quit
	m[KeyEvent{Key: KeyCtrl, Rune: 'c', Mod: ModCtrl}] = (*App).Quit
	return m
}

func (a *App) Tree() *Tree { return a.tree }
func (a *App) Viewport() *Viewport { return a.viewport }
func (a *App) Resolver() *Resolver { return a.resolver }
func (a *App) Renderer() *Renderer { return a.renderer }
func (a *App) Focus() *FocusManager { return a.focus }
func (a *App) Surface() Surface { return a.surface }
func (a *App) Frames() int { return a.frames }
func (a *App) Quitting() bool { return a.quit.Load() }

// Quit asks Run to return after the current frame.
func (a *App) Quit() { a.quit.Store(true) }

// FocusNext moves focus forward.
func (a *App) FocusNext() { a.focus.Next() }

// FocusPrev moves focus backward.
func (a *App) FocusPrev() { a.focus.Prev() }

// Activate sends EventActivate to the focused component.
func (a *App) Activate() {
	if c := a.focus.Focused(); c != nil {
		c.events.Enqueue(Event{Type: EventActivate, Target: c.id})
	}
}

// HandleKey runs the binding for k, or forwards k to the focused component
// as an EventKey. A focused text input receives printable keys first.
func (a *App) HandleKey(k KeyEvent) {
	if c := a.focus.Focused(); c != nil && c.textInput && k.Key == KeyRune {
		c.events.Enqueue(Event{Type: EventKey, Target: c.id, Key: k})
		return
	}
	if fn, ok := a.bindings[k]; ok {
		fn(a)
		return
	}
	if c := a.focus.Focused(); c != nil {
		c.events.Enqueue(Event{Type: EventKey, Target: c.id, Key: k})
	}
}

// Frame runs one tick: sync the viewport with the surface, deliver queued
// component events, resolve, paint, and draw when anything was repainted.
func (a *App) Frame() error {
	if !a.fixedSize {
		w, h := a.surface.Size()
		if w != a.viewport.Width || h != a.viewport.Height {
			debug.Log("App.Frame: resize %dx%d -> %dx%d", a.viewport.Width, a.viewport.Height, w, h)
			a.viewport.Resize(w, h)
			a.renderer.Invalidate()
		}
	}

	a.tree.Walk(false, func(_ Handle, c *Component) {
		c.events.Process()
	})

	if err := a.resolver.Resolve(); err != nil {
		return fmt.Errorf("frame %d: %w", a.frames, err)
	}
	a.renderer.Render()
	a.frames++

	if a.renderer.Stats().Repainted == 0 {
		a.renderer.Reset()
		return nil
	}
	if c, ok := a.surface.(clearer); ok {
		c.Clear()
	}
	return a.renderer.Draw()
}
