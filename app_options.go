package gridtui

import (
	"fmt"
	"io"
	"time"
)

// AppOption is a functional option for configuring an App.
type AppOption func(*App) error

// WithSurface sets the drawing surface.
func WithSurface(s Surface) AppOption {
	return func(a *App) error {
		if s == nil {
			return fmt.Errorf("surface must not be nil")
		}
		a.surface = s
		return nil
	}
}

// WithInput sets the reader key input is decoded from. Passing nil disables
// input.
func WithInput(r io.Reader) AppOption {
	return func(a *App) error {
		a.input = r
		return nil
	}
}

// WithViewport fixes the viewport size instead of following the surface.
func WithViewport(width, height int) AppOption {
	return func(a *App) error {
		if width < 0 || height < 0 {
			return fmt.Errorf("viewport size must not be negative, got %dx%d", width, height)
		}
		a.viewport.Resize(width, height)
		a.fixedSize = true
		return nil
	}
}

// WithFrameRate sets the target frame rate for Run.
// Default is 30 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) AppOption {
	return func(a *App) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		a.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithKeyBinding binds k to fn, replacing any existing binding. A nil fn
// removes the binding so the key reaches the focused component.
func WithKeyBinding(k KeyEvent, fn func(*App)) AppOption {
	return func(a *App) error {
		if fn == nil {
			delete(a.bindings, k)
			return nil
		}
		a.bindings[k] = fn
		return nil
	}
}
