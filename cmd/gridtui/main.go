// Command gridtui runs, inspects and benchmarks gridtui layouts.
//
// Usage:
//
//	gridtui run [layout.toml]                 Interactive session (demo without a file)
//	gridtui resolve [layout.toml] --width 80  Print resolved geometry
//	gridtui bench --frames 1000               Time resolve and paint
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/go-gridtui/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
