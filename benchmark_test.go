package willow

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// setupBenchScene creates a Scene with n solid sprite nodes for benchmark use.
func setupBenchScene(n int) *Scene {
	s := NewScene()
	root := s.Root()
	for i := 0; i < n; i++ {
		sp := NewSprite("sp", 32, 32)
		sp.X = float64(i%100) * 40
		sp.Y = float64(i/100) * 40
		root.AddChild(sp)
	}
	return s
}

// --- Sprite Rendering Benchmarks ---

func BenchmarkDraw_10000Sprites_Static(b *testing.B) {
	s := setupBenchScene(10000)
	screen := ebiten.NewImage(1280, 720)

	// Warm up: first draw grows the command buffer.
	s.Draw(screen)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Draw(screen)
	}
}

func BenchmarkDraw_10000Sprites_Rotating(b *testing.B) {
	s := setupBenchScene(10000)
	screen := ebiten.NewImage(1280, 720)
	children := s.Root().Children()

	s.Draw(screen) // warmup

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		// Dirty all transforms by rotating every sprite.
		for _, child := range children {
			child.Rotation += 0.01
			child.transformDirty = true
		}
		s.Draw(screen)
	}
}

func BenchmarkDraw_10000Sprites_AlphaVarying(b *testing.B) {
	s := setupBenchScene(10000)
	screen := ebiten.NewImage(1280, 720)
	children := s.Root().Children()

	s.Draw(screen) // warmup

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for j, child := range children {
			child.Alpha = 0.5 + 0.5*math.Sin(float64(i+j)*0.001)
			child.transformDirty = true
		}
		s.Draw(screen)
	}
}

// --- Transform Benchmarks ---

func BenchmarkTransform_10000Dirty(b *testing.B) {
	s := setupBenchScene(10000)
	children := s.Root().Children()
	s.RefreshTransforms()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, child := range children {
			child.transformDirty = true
		}
		s.RefreshTransforms()
	}
}

// --- Bounds Benchmarks ---

func BenchmarkWorldBounds_DeepChain(b *testing.B) {
	s := NewScene()
	current := s.Root()
	for i := 0; i < 16; i++ {
		c := NewContainer("")
		c.X = 1
		current.AddChild(c)
		current = c
	}
	leaf := NewSprite("leaf", 10, 10)
	current.AddChild(leaf)

	b.ReportAllocs()
	for b.Loop() {
		_ = leaf.WorldBounds()
	}
}
