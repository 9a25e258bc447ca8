package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-gridtui"
	"github.com/grindlemire/go-gridtui/layoutfile"
)

func newResolveCmd() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "resolve [layout.toml]",
		Short: "Resolve a layout at a fixed size and print the geometry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			logger := loggerFromContext(cmd.Context())

			f, err := loadLayout(path)
			if err != nil {
				return err
			}
			tree, err := f.Build(layoutfile.Handlers{})
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			r := gridtui.NewResolver(tree, gridtui.NewViewport(width, height))
			if err := r.Resolve(); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Resolved %s", layoutName(path)))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render(fmt.Sprintf("%s at %dx%d", layoutName(path), width, height)))
			fmt.Fprintln(out, geometryTable(tree))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "viewport width in cells")
	cmd.Flags().IntVar(&height, "height", 24, "viewport height in cells")
	return cmd
}

// geometryTable renders one row per component in paint order, with ids
// indented by depth.
func geometryTable(tree *gridtui.Tree) string {
	var rows [][]string
	tree.Walk(false, func(h gridtui.Handle, c *gridtui.Component) {
		res, _ := c.Resolved()
		rows = append(rows, []string{
			strings.Repeat("  ", depth(tree, h)) + c.ID(),
			strconv.Itoa(res.X),
			strconv.Itoa(res.Y),
			strconv.Itoa(res.Width),
			strconv.Itoa(res.Height),
			fmt.Sprintf("%d..%s", res.MinWidth, boundString(res.MaxWidth)),
			fmt.Sprintf("%d..%s", res.MinHeight, boundString(res.MaxHeight)),
			res.Axis.String(),
		})
	})

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers("Component", "X", "Y", "W", "H", "W range", "H range", "Axis").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col == 0:
				return styleValue
			default:
				return styleNumber
			}
		})
	return t.Render()
}

func depth(tree *gridtui.Tree, h gridtui.Handle) int {
	d := 0
	for p := tree.Parent(h); !p.IsZero(); p = tree.Parent(p) {
		d++
	}
	return d
}

func boundString(b gridtui.Bound) string {
	if !b.Set {
		return "∞"
	}
	return strconv.Itoa(b.N)
}
