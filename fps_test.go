package willow

import "testing"

func TestFPSWidget(t *testing.T) {
	n := NewFPSWidget()
	if n.Type != NodeTypeSprite || n.CustomImage() == nil {
		t.Fatal("widget should be a sprite with a custom image")
	}
	w, h := nodeDimensions(n)
	if w != 100 || h != 32 {
		t.Errorf("dimensions = (%v, %v), want (100, 32)", w, h)
	}
	hook, ok := n.PreTransformHook().(*fpsHook)
	if !ok {
		t.Fatal("widget should carry an fpsHook")
	}
	if !hook.BeforeTransform(n, Pass{}) || hook.frames != 0 {
		t.Error("non-render pass should commit without counting a frame")
	}
	for i := 0; i < 3; i++ {
		if !hook.BeforeTransform(n, Pass{Rendering: true}) {
			t.Error("fps hook should never veto")
		}
	}
	if hook.frames != 3 {
		t.Errorf("frames = %d, want 3", hook.frames)
	}
}
