package layout

import (
	"errors"
	"strings"
	"testing"

	willow "github.com/phanxgames/willowlayout"
)

type countingHook struct {
	calls  int
	commit bool
}

func (h *countingHook) BeforeTransform(*willow.Node, willow.Pass) bool {
	h.calls++
	return h.commit
}

func TestAttachNilTarget(t *testing.T) {
	if _, err := New(Config{}).Attach(nil, Make()); !errors.Is(err, ErrNilTarget) {
		t.Errorf("err = %v, want ErrNilTarget", err)
	}
}

func TestAttachMalformedDescriptor(t *testing.T) {
	_, _, target := newStage()
	_, err := New(Config{}).Attach(target, Make().Width.Set(Str("half")))
	if !errors.Is(err, ErrMalformedValue) {
		t.Fatalf("err = %v, want ErrMalformedValue", err)
	}
	if !strings.Contains(err.Error(), `"target"`) {
		t.Errorf("err = %q, should name the target", err)
	}
	if _, ok := AttachmentOf(target); ok {
		t.Error("failed attach should not install a hook")
	}
}

func TestAttachInstallsHook(t *testing.T) {
	_, frame, target := newStage()
	a, err := New(Config{}).Attach(target, From(Node(frame)).X.InCenter())
	if err != nil {
		t.Fatal(err)
	}
	got, ok := AttachmentOf(target)
	if !ok || got != a {
		t.Fatal("AttachmentOf should return the attachment")
	}
	if !a.Callbacks().Has(KindX) {
		t.Error("callbacks should hold the x rule")
	}
}

func TestAttachmentRunsOutsideRenderPass(t *testing.T) {
	s, frame, target := newStage()
	a, _ := New(Config{}).Attach(target, From(Node(frame)).X.InCenter())
	before := target.WorldTransform()

	s.RefreshTransforms()

	if a.Evaluations() != 1 {
		t.Errorf("Evaluations() = %d, want 1", a.Evaluations())
	}
	assertNear(t, "local x", target.X, 190)
	if target.WorldTransform() != before {
		t.Error("committed transform should not change outside the render pass")
	}
	// Running again is a no-op because bounds are measured fresh.
	s.RefreshTransforms()
	assertNear(t, "local x after second pass", target.X, 190)
}

func TestAttachmentCommitsOnlyWhenRendering(t *testing.T) {
	_, frame, target := newStage()
	a, _ := New(Config{}).Attach(target, From(Node(frame)).X.InCenter())
	if a.BeforeTransform(target, willow.Pass{}) {
		t.Error("non-render pass should veto the commit")
	}
	if !a.BeforeTransform(target, willow.Pass{Rendering: true}) {
		t.Error("render pass should allow the commit")
	}
	if a.Evaluations() != 2 {
		t.Errorf("Evaluations() = %d, want 2", a.Evaluations())
	}
}

func TestReattachReplacesRules(t *testing.T) {
	_, frame, target := newStage()
	e := New(Config{})
	first, _ := e.Attach(target, From(Node(frame)).X.InCenter())
	second, err := e.Attach(target, From(Node(frame)).Y.InCenter())
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("reattach should reuse the attachment")
	}
	if second.Callbacks().Has(KindX) {
		t.Error("reattach should drop the previous x rule")
	}
	second.Evaluate()
	assertNear(t, "x", target.X, 0)
	assertNear(t, "y", target.WorldBounds().Y, 95)
}

func TestAttachWrapsExistingHook(t *testing.T) {
	_, frame, target := newStage()
	hook := &countingHook{commit: true}
	target.SetPreTransformHook(hook)

	a, _ := New(Config{}).Attach(target, From(Node(frame)).X.InCenter())
	if !a.BeforeTransform(target, willow.Pass{Rendering: true}) {
		t.Error("commit should go ahead when the wrapped hook agrees")
	}
	if hook.calls != 1 {
		t.Errorf("wrapped hook calls = %d, want 1", hook.calls)
	}

	hook.commit = false
	if a.BeforeTransform(target, willow.Pass{Rendering: true}) {
		t.Error("wrapped hook veto should be honored")
	}

	if !Detach(target) {
		t.Fatal("Detach should report a removed layout")
	}
	if target.PreTransformHook() != willow.PreTransformHook(hook) {
		t.Error("Detach should restore the wrapped hook")
	}
}

func TestDetachWithoutLayout(t *testing.T) {
	_, _, target := newStage()
	if Detach(target) {
		t.Error("Detach should report false without a layout")
	}
	if Detach(nil) {
		t.Error("Detach(nil) should report false")
	}
}

func TestDisposeEndsAttachment(t *testing.T) {
	_, frame, target := newStage()
	New(Config{}).Attach(target, From(Node(frame)).X.InCenter())
	target.Dispose()
	if _, ok := AttachmentOf(target); ok {
		t.Error("disposed node should have no attachment")
	}
}

func TestAttachmentAppliesGlobalScaleChanges(t *testing.T) {
	_, frame, target := newStage()
	e := New(Config{})
	a, _ := e.Attach(target, From(Node(frame)).X.Set(Abs(10)).FromLeftInwardEdge())
	a.Evaluate()
	assertNear(t, "gs 1", target.X, 110)
	e.SetGlobalScale(2)
	a.Evaluate()
	assertNear(t, "gs 2", target.X, 105)
}
