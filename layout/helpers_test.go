package layout

import (
	"math"
	"testing"

	willow "github.com/phanxgames/willowlayout"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertRect(t *testing.T, name string, got, want willow.Rect) {
	t.Helper()
	assertNear(t, name+".X", got.X, want.X)
	assertNear(t, name+".Y", got.Y, want.Y)
	assertNear(t, name+".Width", got.Width, want.Width)
	assertNear(t, name+".Height", got.Height, want.Height)
}

type eventLog struct {
	events []Event
}

func (l *eventLog) EmitEvent(e Event) {
	l.events = append(l.events, e)
}

// newStage returns a scene holding a 200x100 "frame" sprite at (100, 50)
// and a 20x10 "target" sprite at the origin.
func newStage() (*willow.Scene, *willow.Node, *willow.Node) {
	s := willow.NewScene()
	frame := willow.NewSprite("frame", 200, 100)
	frame.SetPosition(100, 50)
	target := willow.NewSprite("target", 20, 10)
	s.Root().AddChild(frame)
	s.Root().AddChild(target)
	return s, frame, target
}

func evaluate(t *testing.T, e *Engine, target *willow.Node, d *Descriptor) int {
	t.Helper()
	cs, err := d.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return e.Evaluate(target, d.Source(), cs)
}
