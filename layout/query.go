package layout

import (
	"fmt"

	willow "github.com/phanxgames/willowlayout"
)

type queryKind uint8

const (
	queryNone queryKind = iota
	queryNode
	queryName
	queryArea
)

// Query names the region a rule measures against: a node, a node looked up
// by name, or an Area. The zero Query means "use the descriptor default".
type Query struct {
	kind queryKind
	node *willow.Node
	name string
	area *Area
}

// Node returns a query for n's current world bounds. A nil node never
// resolves.
func Node(n *willow.Node) Query {
	return Query{kind: queryNode, node: n}
}

// Named returns a query resolved through the engine's Finder each frame.
func Named(name string) Query {
	return Query{kind: queryName, name: name}
}

// Region returns a query for an Area. A nil area never resolves.
func Region(a *Area) Query {
	return Query{kind: queryArea, area: a}
}

// Rect returns a query for a fixed rectangle in global space.
func Rect(r willow.Rect) Query {
	return Region(FixedArea(r))
}

// IsZero reports whether q is unset.
func (q Query) IsZero() bool {
	return q.kind == queryNone
}

func (q Query) String() string {
	switch q.kind {
	case queryNode:
		if q.node == nil {
			return "node <nil>"
		}
		return fmt.Sprintf("node %q", q.node.Name)
	case queryName:
		return fmt.Sprintf("name %q", q.name)
	case queryArea:
		if q.area == nil {
			return "area <nil>"
		}
		return "area"
	}
	return "default"
}

// Area is a rectangle in global space, optionally recomputed by a calculator
// every time it is resolved.
type Area struct {
	Rect willow.Rect
	calc func(r *willow.Rect)
}

// NewArea returns an area whose fields are written by calc each time the area
// is resolved. Results are never cached across frames.
func NewArea(calc func(r *willow.Rect)) *Area {
	return &Area{calc: calc}
}

// FixedArea returns an area that always resolves to r, unless its Rect field
// is changed (for example by TweenArea).
func FixedArea(r willow.Rect) *Area {
	return &Area{Rect: r}
}

// Bounds runs the calculator, if any, and returns the rectangle.
func (a *Area) Bounds() willow.Rect {
	if a.calc != nil {
		a.calc(&a.Rect)
	}
	return a.Rect
}

// ScreenArea returns an area that tracks the scene's screen bounds.
func ScreenArea(s *willow.Scene) *Area {
	return NewArea(func(r *willow.Rect) {
		*r = s.ScreenBounds()
	})
}
