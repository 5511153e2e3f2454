package willow

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultCommandCap = 256

// Scene is the top-level object that owns the node tree, running tweens,
// and render buffers.
type Scene struct {
	// ClearColor fills the screen before each Draw when its alpha is non-zero.
	ClearColor Color

	root  *Node
	debug bool

	screen     Rect
	rendering  bool
	tweens     []*TweenGroup
	updateFunc func() error

	commands []drawCommand
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.sceneRoot = true
	return &Scene{
		root:     root,
		commands: make([]drawCommand, 0, defaultCommandCap),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetUpdateFunc registers a callback run at the start of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetScreenSize records the size of the surface the scene draws into.
func (s *Scene) SetScreenSize(w, h float64) {
	s.screen = Rect{Width: w, Height: h}
}

// ScreenBounds returns the drawing surface as a rectangle at the origin.
func (s *Scene) ScreenBounds() Rect {
	return s.screen
}

// Rendering reports whether the scene is inside Draw.
func (s *Scene) Rendering() bool {
	return s.rendering
}

// AddTween registers g to be advanced by Update until it finishes.
func (s *Scene) AddTween(g *TweenGroup) {
	s.tweens = append(s.tweens, g)
}

// Update runs the update callback, advances tweens, and refreshes world
// transforms outside the render pass. Layout hooks run but hooked nodes keep
// their committed transforms until Draw.
func (s *Scene) Update() error {
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	s.advanceTweens(float32(1.0 / float64(ebiten.TPS())))
	s.RefreshTransforms()
	return nil
}

// RefreshTransforms runs a non-rendering transform pass over the tree.
func (s *Scene) RefreshTransforms() {
	updateWorldTransform(s.root, identityTransform, 1.0, false, Pass{})
}

func (s *Scene) advanceTweens(dt float32) {
	live := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live
}

// Draw runs the render pass: hooks run, transforms are committed, and
// visible sprites are drawn onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.commitTransforms()

	var stats debugStats
	if s.debug {
		stats.transformTime = time.Since(t0)
		t0 = time.Now()
	}

	s.commands = s.commands[:0]
	s.collect(s.root)

	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.submit(screen)

	if s.debug {
		stats.drawTime = time.Since(t0)
		stats.commandCount = len(s.commands)
		s.debugLog(stats)
	}
}

// commitTransforms runs the render-pass transform update.
func (s *Scene) commitTransforms() {
	s.rendering = true
	updateWorldTransform(s.root, identityTransform, 1.0, false, Pass{Rendering: true})
	s.rendering = false
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and
// per-frame timing stats are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
