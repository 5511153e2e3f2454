// Package willow is a small retained-mode 2D scene graph for [Ebitengine]
// that hosts declarative anchor layouts.
//
// Every visual element is a [Node]. Nodes form a tree rooted at
// [Scene.Root]. Children inherit their parent's transform and alpha.
// Sprites are solid rectangles of an intrinsic size, or a custom image:
//
//	scene := willow.NewScene()
//	panel := willow.NewSprite("panel", 200, 120)
//	panel.Color = willow.Color{R: 0.2, G: 0.3, B: 0.4, A: 1}
//	scene.Root().AddChild(panel)
//
// Positions and sizes can be derived each frame from anchor rules instead of
// absolute coordinates with the [layout] sub-package, which plugs into the
// scene through [PreTransformHook]:
//
//	eng := layout.New(layout.Config{})
//	d := layout.From(layout.Named("panel")).
//		X.InCenter().
//		Y.Set(layout.Pct(10)).FromTopInwardEdge()
//	eng.Attach(label, d)
//
// # Passes
//
// [Scene.Update] refreshes world transforms outside the render pass and
// [Scene.Draw] runs the render pass. Hooks receive a [Pass] describing which
// one they are in, and may veto the transform commit.
//
// Run the whole thing with [Run]:
//
//	willow.Run(scene, willow.RunConfig{Title: "Layout", Width: 640, Height: 480})
//
// [Ebitengine]: https://ebitengine.org
// [layout]: https://pkg.go.dev/github.com/phanxgames/willowlayout/layout
package willow
