package layout

import (
	"math"

	willow "github.com/phanxgames/willowlayout"
)

// frame carries the target state for one evaluation. bounds starts as the
// target's world bounds in layout units and is kept in step with every
// applied effect, so later rules see earlier ones without re-reading the
// scene graph.
type frame struct {
	target      *willow.Node
	bounds      willow.Rect
	scaleX      float64 // signed parent world scale
	scaleY      float64
	globalScale float64
}

func (e *Engine) newFrame(target *willow.Node) *frame {
	sx, sy := target.ParentWorldScale()
	if sx == 0 || sy == 0 {
		return nil
	}
	return &frame{
		target:      target,
		bounds:      target.WorldBounds().Scaled(e.globalScale),
		scaleX:      sx,
		scaleY:      sy,
		globalScale: e.globalScale,
	}
}

// toLocalX converts a layout-unit delta into the parent's local units.
func (f *frame) toLocalX(d float64) float64 { return d / f.scaleX / f.globalScale }
func (f *frame) toLocalY(d float64) float64 { return d / f.scaleY / f.globalScale }

func (f *frame) applyPos(p willow.Vec2) {
	t := f.target
	t.SetPosition(t.X+f.toLocalX(p.X-f.bounds.X), t.Y+f.toLocalY(p.Y-f.bounds.Y))
	f.bounds.X, f.bounds.Y = p.X, p.Y
}

func (f *frame) applyX(x float64) {
	t := f.target
	t.SetPosition(t.X+f.toLocalX(x-f.bounds.X), t.Y)
	f.bounds.X = x
}

func (f *frame) applyY(y float64) {
	t := f.target
	t.SetPosition(t.X, t.Y+f.toLocalY(y-f.bounds.Y))
	f.bounds.Y = y
}

func (f *frame) applyWidth(factor float64, mirror bool) {
	t := f.target
	sy := t.ScaleY
	f.bounds.Width *= factor
	if mirror {
		sy *= factor
		f.bounds.Height *= factor
	}
	t.SetScale(t.ScaleX*factor, sy)
}

func (f *frame) applyHeight(factor float64, mirror bool) {
	t := f.target
	sx := t.ScaleX
	f.bounds.Height *= factor
	if mirror {
		sx *= factor
		f.bounds.Width *= factor
	}
	t.SetScale(sx, t.ScaleY*factor)
}

func (f *frame) applyScale(s Scale) {
	t := f.target
	t.SetScale(t.ScaleX*s.X, t.ScaleY*s.Y)
	f.bounds.Width *= s.X
	f.bounds.Height *= s.Y
}

func (f *frame) applySize(s Size) {
	f.target.SetSize(math.Abs(f.toLocalX(s.Width)), math.Abs(f.toLocalY(s.Height)))
	f.bounds.Width, f.bounds.Height = s.Width, s.Height
}

func (f *frame) applyAll(p Placement) {
	t := f.target
	t.SetPosition(t.X+f.toLocalX(p.X-f.bounds.X), t.Y+f.toLocalY(p.Y-f.bounds.Y))
	t.SetScale(t.ScaleX*p.ScaleX, t.ScaleY*p.ScaleY)
	f.bounds = willow.Rect{X: p.X, Y: p.Y, Width: f.bounds.Width * p.ScaleX, Height: f.bounds.Height * p.ScaleY}
}
