package layout

import willow "github.com/phanxgames/willowlayout"

// Kind identifies the effect a compiled rule has on its target.
type Kind uint8

const (
	KindX      Kind = iota // global x of the target's left edge
	KindY                  // global y of the target's top edge
	KindWidth              // horizontal scale factor
	KindHeight             // vertical scale factor
	KindScale              // independent scale factors for both axes
	KindSize               // absolute width and height
	KindPos                // absolute top-left position
	KindAll                // combined position and scale used by fit modes
)

var kindNames = [...]string{"x", "y", "width", "height", "scale", "size", "pos", "all"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// evalOrder is the order entries are applied in, independent of how the
// descriptor was built.
var evalOrder = [...]Kind{KindPos, KindX, KindY, KindWidth, KindHeight, KindScale, KindSize, KindAll}

// Scale is the result of a KindScale rule.
type Scale struct {
	X, Y float64
}

// Size is the result of a KindSize rule.
type Size struct {
	Width, Height float64
}

// Placement is the result of a KindAll rule.
type Placement struct {
	X, Y           float64
	ScaleX, ScaleY float64
}

// Rule computes a result from the source region and the target's bounds,
// both in layout units.
type Rule[T any] func(source, target willow.Rect) T

// Callback pairs a rule with the region it measures against. A zero Source
// means the descriptor default.
type Callback[T any] struct {
	Rule   Rule[T]
	Source Query
}

// CallbackSet is the compiled form of a Descriptor. It holds at most one
// rule per Kind and is read-only once built.
type CallbackSet struct {
	x, y, width, height *Callback[float64]
	scale               *Callback[Scale]
	size                *Callback[Size]
	pos                 *Callback[willow.Vec2]
	all                 *Callback[Placement]

	keepAspectRatio bool
}

// Has reports whether a rule of kind k is present.
func (cs *CallbackSet) Has(k Kind) bool {
	switch k {
	case KindX:
		return cs.x != nil
	case KindY:
		return cs.y != nil
	case KindWidth:
		return cs.width != nil
	case KindHeight:
		return cs.height != nil
	case KindScale:
		return cs.scale != nil
	case KindSize:
		return cs.size != nil
	case KindPos:
		return cs.pos != nil
	case KindAll:
		return cs.all != nil
	}
	return false
}

// Kinds returns the present kinds in evaluation order.
func (cs *CallbackSet) Kinds() []Kind {
	var kinds []Kind
	for _, k := range evalOrder {
		if cs.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Source returns the explicit source of the rule of kind k, or the zero
// Query when the rule uses the descriptor default or is absent.
func (cs *CallbackSet) Source(k Kind) Query {
	switch k {
	case KindX:
		return sourceOf(cs.x)
	case KindY:
		return sourceOf(cs.y)
	case KindWidth:
		return sourceOf(cs.width)
	case KindHeight:
		return sourceOf(cs.height)
	case KindScale:
		return sourceOf(cs.scale)
	case KindSize:
		return sourceOf(cs.size)
	case KindPos:
		return sourceOf(cs.pos)
	case KindAll:
		return sourceOf(cs.all)
	}
	return Query{}
}

// KeepAspectRatio reports whether a lone width or height rule is mirrored
// onto the other axis.
func (cs *CallbackSet) KeepAspectRatio() bool {
	return cs.keepAspectRatio
}

func sourceOf[T any](cb *Callback[T]) Query {
	if cb == nil {
		return Query{}
	}
	return cb.Source
}
