package layout

import (
	"fmt"

	willow "github.com/phanxgames/willowlayout"
)

// Attachment binds a compiled descriptor to its target. It is stored as the
// target's pre-transform hook, so it ends when the node is disposed.
type Attachment struct {
	engine    *Engine
	target    *willow.Node
	source    Query
	callbacks *CallbackSet
	next      willow.PreTransformHook

	evaluations uint64
}

// Attach compiles d and binds it to target so it is evaluated right before
// every transform commit. Attaching again replaces the previous descriptor
// instead of merging with it. A hook that was installed before the first
// attachment keeps running after the layout.
func (e *Engine) Attach(target *willow.Node, d *Descriptor) (*Attachment, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	cs, err := d.Compile()
	if err != nil {
		return nil, fmt.Errorf("attach %q: %w", target.Name, err)
	}
	if a, ok := AttachmentOf(target); ok {
		a.engine = e
		a.source = d.Source()
		a.callbacks = cs
		return a, nil
	}
	a := &Attachment{
		engine:    e,
		target:    target,
		source:    d.Source(),
		callbacks: cs,
		next:      target.PreTransformHook(),
	}
	target.SetPreTransformHook(a)
	return a, nil
}

// Detach removes the layout from target, restoring any hook it wrapped.
// It reports whether target had a layout.
func Detach(target *willow.Node) bool {
	a, ok := AttachmentOf(target)
	if !ok {
		return false
	}
	target.SetPreTransformHook(a.next)
	return true
}

// AttachmentOf returns the layout attached to target, if any.
func AttachmentOf(target *willow.Node) (*Attachment, bool) {
	if target == nil {
		return nil, false
	}
	a, ok := target.PreTransformHook().(*Attachment)
	return a, ok
}

// BeforeTransform evaluates the layout, then lets the wrapped hook run. The
// commit goes ahead only inside the render pass.
func (a *Attachment) BeforeTransform(n *willow.Node, pass willow.Pass) bool {
	a.Evaluate()
	if a.next != nil && !a.next.BeforeTransform(n, pass) {
		return false
	}
	return pass.Rendering
}

// Evaluate runs the layout once outside of any transform pass and returns
// the number of rules applied.
func (a *Attachment) Evaluate() int {
	a.evaluations++
	return a.engine.Evaluate(a.target, a.source, a.callbacks)
}

// Callbacks returns the compiled rules.
func (a *Attachment) Callbacks() *CallbackSet {
	return a.callbacks
}

// Evaluations returns how many times the layout has run.
func (a *Attachment) Evaluations() uint64 {
	return a.evaluations
}
