// Package gridtui is a retained-mode layout and incremental-rendering engine
// for character-grid terminal interfaces.
//
// Applications build a Tree of Components, each carrying a declarative
// Style. Every frame a Resolver turns those styles into concrete
// ResolvedStyle geometry in three passes and flags the components whose
// geometry changed. A Renderer repaints only those, replays cached output
// for the rest, and draws the frame to a Surface.
//
// Typical use:
//
//	tree := gridtui.NewTree()
//	menu := gridtui.NewComponent(
//		gridtui.WithID("menu"),
//		gridtui.WithStyle(gridtui.Style{Width: gridtui.Percent(50), Axis: gridtui.Some(gridtui.AxisY)}),
//	)
//	tree.Add(menu, "")
//
//	app, err := gridtui.NewApp(tree)
//	if err != nil {
//		return err
//	}
//	return app.Run(ctx)
//
// Set GRIDTUI_DEBUG to a file path to log resolve and render statistics.
package gridtui
