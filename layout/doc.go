// Package layout positions and scales willow nodes from declarative anchor
// rules evaluated every frame.
//
// A [Descriptor] is built fluently from five builders (X, Y, Width, Height
// and Size), compiled into a [CallbackSet], and attached to a target node
// with [Engine.Attach]:
//
//	eng := layout.New(layout.Config{Finder: layout.NewQueryCache(scene.Root())})
//	screen := layout.Region(layout.ScreenArea(scene))
//
//	eng.Attach(logo, layout.From(screen).
//		X.InCenter().
//		Y.Set(layout.Pct(10)).FromTopInwardEdge().
//		Width.Set(layout.Pct(30)))
//
//	eng.Attach(backdrop, layout.Make().
//		Size.Cover(screen, layout.AlignCenter, layout.AlignEnd))
//
// Sources are queries: a node ([Node]), a name resolved through the engine's
// [Finder] ([Named]), or an [Area] ([Region], [Rect]). Percentages are taken
// of the source's extent on the relevant axis; absolute values are in layout
// units, which are world units multiplied by [Config.GlobalScale].
//
// # Evaluation
//
// An attached descriptor runs right before each transform commit of its
// target. Rules apply in a fixed order (pos, x, y, width, height, scale,
// size, all) no matter how the descriptor was written. Rules whose source
// cannot be resolved are skipped and reported to the [EventSink]; a target
// outside the scene graph is left alone. Outside the render pass the
// attachment vetoes the commit, so the node's committed transform only
// changes once per drawn frame.
//
// # Sheets
//
// Layouts can also be loaded from YAML with [LoadSheet]; sources in a sheet
// are node names.
package layout
