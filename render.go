package willow

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// drawCommand is a single draw instruction collected after the transform pass.
type drawCommand struct {
	image     *ebiten.Image
	transform [6]float64
	color     Color
}

// collect walks the tree depth-first in child order and appends a command for
// every visible sprite. World transforms must already be committed.
func (s *Scene) collect(n *Node) {
	if !n.Visible {
		return
	}
	if n.Type == NodeTypeSprite {
		if cmd, ok := spriteCommand(n); ok {
			s.commands = append(s.commands, cmd)
		}
	}
	for _, child := range n.children {
		s.collect(child)
	}
}

// spriteCommand builds the draw command for a sprite. Solid sprites stretch
// WhitePixel to their intrinsic size.
func spriteCommand(n *Node) (drawCommand, bool) {
	cmd := drawCommand{
		transform: n.worldTransform,
		color:     Color{n.Color.R, n.Color.G, n.Color.B, n.Color.A * n.worldAlpha},
	}
	if n.customImage != nil {
		cmd.image = n.customImage
		return cmd, true
	}
	if n.Width <= 0 || n.Height <= 0 {
		return cmd, false
	}
	cmd.image = WhitePixel
	cmd.transform = multiplyAffine(n.worldTransform, [6]float64{n.Width, 0, 0, n.Height, 0, 0})
	return cmd, true
}

// submit draws the collected commands in order.
func (s *Scene) submit(screen *ebiten.Image) {
	var op ebiten.DrawImageOptions
	for i := range s.commands {
		cmd := &s.commands[i]
		op.GeoM.Reset()
		op.ColorScale.Reset()
		m := cmd.transform
		op.GeoM.SetElement(0, 0, m[0])
		op.GeoM.SetElement(1, 0, m[1])
		op.GeoM.SetElement(0, 1, m[2])
		op.GeoM.SetElement(1, 1, m[3])
		op.GeoM.SetElement(0, 2, m[4])
		op.GeoM.SetElement(1, 2, m[5])
		a := float32(cmd.color.A)
		op.ColorScale.Scale(float32(cmd.color.R)*a, float32(cmd.color.G)*a, float32(cmd.color.B)*a, a)
		screen.DrawImage(cmd.image, &op)
	}
}
