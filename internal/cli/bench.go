package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-gridtui"
	"github.com/grindlemire/go-gridtui/widget"
)

func newBenchCmd() *cobra.Command {
	var (
		frames      int
		components  int
		incremental bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time resolve and paint over a column of buttons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames < 1 || components < 1 {
				return fmt.Errorf("--frames and --components must be positive")
			}
			logger := loggerFromContext(cmd.Context())

			tree, err := benchTree(components)
			if err != nil {
				return err
			}
			surface := gridtui.NewANSISurfaceWithCaps(io.Discard, nil, gridtui.Capabilities{Colors: gridtui.ColorTrue})
			resolver := gridtui.NewResolver(tree, gridtui.NewViewport(surface.Size()))
			renderer := gridtui.NewRenderer(tree, surface)

			var repainted, reused, bytes int
			start := time.Now()
			for i := 0; i < frames; i++ {
				if !incremental {
					renderer.Invalidate()
				}
				if err := resolver.Resolve(); err != nil {
					return err
				}
				renderer.Render()
				st := renderer.Stats()
				repainted += st.Repainted
				reused += st.Reused
				bytes += st.Bytes
				if err := renderer.Draw(); err != nil {
					return err
				}
			}
			elapsed := time.Since(start)
			logger.Debug("Bench finished", "elapsed", elapsed)

			out := cmd.OutOrStdout()
			printSuccess(out, "%d frames over %d components", frames, components)
			printKeyValue(out, "total", elapsed.Round(time.Microsecond).String())
			printKeyValue(out, "per frame", (elapsed / time.Duration(frames)).String())
			printKeyValue(out, "repainted", fmt.Sprint(repainted))
			printKeyValue(out, "reused", fmt.Sprint(reused))
			printKeyValue(out, "bytes", fmt.Sprint(bytes))
			printKeyValue(out, "color seqs", fmt.Sprint(surface.ColorSequences()))
			return nil
		},
	}

	cmd.Flags().IntVar(&frames, "frames", 1000, "number of frames to render")
	cmd.Flags().IntVar(&components, "components", 30, "number of buttons in the tree")
	cmd.Flags().BoolVar(&incremental, "incremental", false, "reuse cached fragments instead of forcing a full repaint")
	return cmd
}

// benchTree builds a vertical container of n buttons.
func benchTree(n int) (*gridtui.Tree, error) {
	tree := gridtui.NewTree()
	cont := gridtui.NewComponent(
		gridtui.WithID("cont"),
		gridtui.WithStyle(gridtui.Style{
			Width:  gridtui.Percent(100),
			Height: gridtui.Percent(100),
			Axis:   gridtui.Some(gridtui.AxisY),
		}),
	)
	if _, err := tree.Add(cont, ""); err != nil {
		return nil, err
	}
	style := gridtui.Style{
		Height:     gridtui.Fixed(1),
		MaxWidth:   gridtui.Fixed(20),
		Foreground: gridtui.Some(gridtui.RGB(163, 205, 255)),
		Background: gridtui.Some(gridtui.RGB(100, 140, 255)),
	}
	for i := range n {
		b := widget.NewButton(fmt.Sprintf("Button%d", i+1), fmt.Sprintf("Button %d", i+1), style, nil)
		if _, err := tree.Add(b.Component, "cont"); err != nil {
			return nil, err
		}
	}
	return tree, nil
}
