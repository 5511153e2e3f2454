package layout

import (
	"github.com/tanema/gween/ease"

	willow "github.com/phanxgames/willowlayout"
)

// TweenArea animates the rectangle of a fixed area toward to. Layouts
// measuring against the area follow it every frame. Areas with a calculator
// overwrite the animated fields on resolution, so tween only fixed areas.
//
//	sidebar := layout.FixedArea(willow.Rect{X: -200, Width: 200, Height: 480})
//	scene.AddTween(layout.TweenArea(sidebar, willow.Rect{Width: 200, Height: 480}, 0.3, ease.OutCubic))
func TweenArea(a *Area, to willow.Rect, duration float32, fn ease.TweenFunc) *willow.TweenGroup {
	return willow.TweenRect(&a.Rect, to, duration, fn)
}
