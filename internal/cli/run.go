package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-gridtui"
	"github.com/grindlemire/go-gridtui/layoutfile"
	"github.com/grindlemire/go-gridtui/widget"
)

// statusID names the component that shows press/submit feedback, if the
// layout has one.
const statusID = "status"

func newRunCmd() *cobra.Command {
	var fps int

	cmd := &cobra.Command{
		Use:   "run [layout.toml]",
		Short: "Open a layout as an interactive terminal session",
		Long:  `Open a layout as an interactive terminal session. Without a file the built-in demo is used.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			f, err := loadLayout(path)
			if err != nil {
				return err
			}

			var tree *gridtui.Tree
			setStatus := func(format string, args ...any) {
				if c := tree.Get(statusID); c != nil {
					c.SetText(fmt.Sprintf(format, args...))
				}
			}
			tree, err = f.Build(layoutfile.Handlers{
				OnPress:  func(b *widget.Button) { setStatus("pressed %s (%d)", b.ID(), b.Presses()) },
				OnSubmit: func(id, value string) { setStatus("%s: %q", id, value) },
			})
			if err != nil {
				return err
			}
			logger.Debug("Loaded layout", "source", layoutName(path), "components", tree.Len()-1)

			app, err := gridtui.NewApp(tree, gridtui.WithFrameRate(fps))
			if err != nil {
				return err
			}
			if err := app.Run(ctx); err != nil {
				return err
			}
			logger.Debug("Session ended", "frames", app.Frames())
			return nil
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 30, "target frame rate")
	return cmd
}
