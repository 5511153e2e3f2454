package willow

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefreshFrames is how many rendered frames pass between widget redraws.
const fpsRefreshFrames = 30

// NewFPSWidget creates a sprite that displays the current FPS and TPS.
// The text is redrawn every fpsRefreshFrames rendered frames from the
// widget's pre-transform hook. Add it last so it draws on top.
func NewFPSWidget() *Node {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	img := ebiten.NewImage(100, 32)

	node := NewSprite("fps_widget", 0, 0)
	node.SetCustomImage(img)
	node.SetPreTransformHook(&fpsHook{img: img})
	return node
}

// fpsHook redraws the FPS text during the render pass. It never vetoes the
// commit.
type fpsHook struct {
	img    *ebiten.Image
	frames int
}

func (h *fpsHook) BeforeTransform(_ *Node, pass Pass) bool {
	if !pass.Rendering {
		return true
	}
	h.frames++
	if h.frames%fpsRefreshFrames != 1 {
		return true
	}
	h.img.Clear()
	// Semi-transparent background for readability
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	return true
}
