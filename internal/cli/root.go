package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-gridtui/internal/debug"
)

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	version = v
}

// Execute runs the gridtui CLI.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. The logger is attached to the
// command context before any subcommand runs.
func NewRootCommand() *cobra.Command {
	var (
		verbose  bool
		debugLog string
	)

	root := &cobra.Command{
		Use:          "gridtui",
		Short:        "gridtui lays out and renders component trees in the terminal",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			if debugLog != "" {
				if err := debug.Init(debugLog); err != nil {
					return err
				}
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(os.Stderr, level)))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = debug.Close()
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("gridtui %s\n", version))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&debugLog, "debug-log", "", "append engine debug output to this file (overrides "+debug.EnvVar+")")

	root.AddCommand(newRunCmd())
	root.AddCommand(newResolveCmd())
	root.AddCommand(newBenchCmd())

	return root
}
