package gridtui

import (
	"context"
	"errors"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-gridtui/internal/debug"
)

// rawModer is implemented by surfaces backed by a real terminal.
type rawModer interface {
	EnterRawMode() error
	ExitRawMode() error
}

// screenModer is implemented by surfaces with an alternate screen.
type screenModer interface {
	EnterAltScreen()
	ExitAltScreen()
	HideCursor()
	ShowCursor()
}

// Run drives frames until Quit is called, ctx is cancelled, or a frame
// fails. Key input is decoded on a separate goroutine and handed to the
// frame loop, which owns every tree mutation.
func (a *App) Run(ctx context.Context) (err error) {
	if rm, ok := a.surface.(rawModer); ok && a.input != nil {
		if err := rm.EnterRawMode(); err != nil {
			return err
		}
		defer func() {
			if rerr := rm.ExitRawMode(); err == nil {
				err = rerr
			}
		}()
	}
	if sm, ok := a.surface.(screenModer); ok {
		sm.EnterAltScreen()
		sm.HideCursor()
		defer func() {
			sm.ShowCursor()
			sm.ExitAltScreen()
			if ferr := a.surface.Flush(); err == nil {
				err = ferr
			}
		}()
	}

	a.focus.FocusFirst()
	keys := make(chan KeyEvent, 64)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if a.input != nil {
		chunks := readChunks(a.input, gctx.Done())
		g.Go(func() error {
			return pumpKeys(gctx, chunks, keys)
		})
	}

	g.Go(func() error {
		defer cancel()
		return a.loop(gctx, keys)
	})

	return g.Wait()
}

// loop renders one frame per tick and applies keys between frames.
func (a *App) loop(ctx context.Context, keys <-chan KeyEvent) error {
	ticker := time.NewTicker(a.frameDuration)
	defer ticker.Stop()

	if err := a.Frame(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case k := <-keys:
			debug.Log("App.loop: key %s", k)
			a.HandleKey(k)
		case <-ticker.C:
			if err := a.Frame(); err != nil {
				return err
			}
		}
		if a.quit.Load() {
			return nil
		}
	}
}

// readChunks copies reads from r onto a channel. The reading goroutine
// cannot be interrupted while blocked in Read; it exits after the next read
// once done is closed, or on the first read error.
func readChunks(r io.Reader, done <-chan struct{}) <-chan []byte {
	out := make(chan []byte)
	go func() {
		defer close(out)
		buf := make([]byte, 256)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				select {
				case out <- chunk:
				case <-done:
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					debug.Log("readChunks: %v", err)
				}
				return
			}
		}
	}()
	return out
}

// pumpKeys decodes chunks into key events until ctx ends or input closes.
func pumpKeys(ctx context.Context, chunks <-chan []byte, keys chan<- KeyEvent) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case chunk, ok := <-chunks:
			if !ok {
				return nil
			}
			for _, k := range decodeKeys(chunk) {
				select {
				case keys <- k:
				case <-ctx.Done():
					return nil
				}
			}
		}
	}
}
