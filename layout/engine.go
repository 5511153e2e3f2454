package layout

import (
	"log/slog"

	willow "github.com/phanxgames/willowlayout"
)

// Config configures an Engine.
type Config struct {
	// GlobalScale converts world coordinates into layout units. Rules see
	// every rectangle multiplied by it and absolute values are expressed in
	// layout units. Zero means 1.
	GlobalScale float64
	// Finder resolves Named queries. Without one, named sources never resolve.
	Finder Finder
	// Events receives diagnostics for skipped rules. Optional.
	Events EventSink
}

// Engine resolves sources and applies compiled rules to targets. It is not
// safe for concurrent use; all calls are expected on the game loop.
type Engine struct {
	globalScale float64
	finder      Finder
	events      EventSink
}

// New returns an engine configured by cfg.
func New(cfg Config) *Engine {
	e := &Engine{finder: cfg.Finder, events: cfg.Events}
	e.SetGlobalScale(cfg.GlobalScale)
	return e
}

// GlobalScale returns the current global scale.
func (e *Engine) GlobalScale() float64 {
	return e.globalScale
}

// SetGlobalScale changes the global scale. Non-positive values reset it to 1.
func (e *Engine) SetGlobalScale(s float64) {
	if s <= 0 {
		s = 1
	}
	e.globalScale = s
}

// SetFinder replaces the name resolver.
func (e *Engine) SetFinder(f Finder) {
	e.finder = f
}

// SetEventSink replaces the event sink. Pass nil to drop events.
func (e *Engine) SetEventSink(s EventSink) {
	e.events = s
}

// CreateArea returns an Area recomputed by calc on every resolution.
func (e *Engine) CreateArea(calc func(r *willow.Rect)) *Area {
	return NewArea(calc)
}

// Resolve returns the rectangle q refers to in layout units. It reports
// false when q is unset, a name is not found, a node is nil or no longer
// attached, or an area is nil or has negative size.
func (e *Engine) Resolve(q Query) (willow.Rect, bool) {
	var r willow.Rect
	switch q.kind {
	case queryNode:
		if q.node == nil || !q.node.IsAttached() {
			return r, false
		}
		r = q.node.WorldBounds()
	case queryName:
		if e.finder == nil {
			return r, false
		}
		n, ok := e.finder.Find(q.name)
		if !ok || n == nil || !n.IsAttached() {
			return r, false
		}
		r = n.WorldBounds()
	case queryArea:
		if q.area == nil {
			return r, false
		}
		r = q.area.Bounds()
		if r.Width < 0 || r.Height < 0 {
			return r, false
		}
	default:
		return r, false
	}
	return r.Scaled(e.globalScale), true
}

// Evaluate applies cs to target once, in the fixed order pos, x, y, width,
// height, scale, size, all. Rules without a source of their own use def,
// resolved at most once per call. A rule whose source does not resolve is
// skipped; the others still apply. A detached target is left untouched.
// It returns the number of rules applied.
func (e *Engine) Evaluate(target *willow.Node, def Query, cs *CallbackSet) int {
	if target == nil || !target.IsAttached() {
		e.detached(target)
		return 0
	}
	f := e.newFrame(target)
	if f == nil {
		return 0
	}
	src := sourceResolver{engine: e, def: def}

	applied := 0
	for _, k := range evalOrder {
		if !cs.Has(k) {
			continue
		}
		q := cs.Source(k)
		sb, ok := src.resolve(q)
		if !ok {
			e.unresolved(target, k, q, def)
			continue
		}
		switch k {
		case KindPos:
			f.applyPos(cs.pos.Rule(sb, f.bounds))
		case KindX:
			f.applyX(cs.x.Rule(sb, f.bounds))
		case KindY:
			f.applyY(cs.y.Rule(sb, f.bounds))
		case KindWidth:
			f.applyWidth(cs.width.Rule(sb, f.bounds), cs.keepAspectRatio && !cs.Has(KindHeight))
		case KindHeight:
			f.applyHeight(cs.height.Rule(sb, f.bounds), cs.keepAspectRatio && !cs.Has(KindWidth))
		case KindScale:
			f.applyScale(cs.scale.Rule(sb, f.bounds))
		case KindSize:
			f.applySize(cs.size.Rule(sb, f.bounds))
		case KindAll:
			f.applyAll(cs.all.Rule(sb, f.bounds))
		}
		applied++
	}
	return applied
}

// sourceResolver resolves rule sources for one evaluation, resolving the
// default at most once.
type sourceResolver struct {
	engine *Engine
	def    Query
	rect   willow.Rect
	ok     bool
	done   bool
}

func (s *sourceResolver) resolve(q Query) (willow.Rect, bool) {
	if !q.IsZero() {
		return s.engine.Resolve(q)
	}
	if !s.done {
		s.rect, s.ok = s.engine.Resolve(s.def)
		s.done = true
	}
	return s.rect, s.ok
}

func (e *Engine) detached(target *willow.Node) {
	ev := Event{Type: EventDetachedTarget}
	if target != nil {
		ev.NodeID, ev.NodeName = target.ID, target.Name
	}
	willow.Logger().Debug("layout: target detached", slog.String("node", ev.NodeName))
	if e.events != nil {
		e.events.EmitEvent(ev)
	}
}

func (e *Engine) unresolved(target *willow.Node, k Kind, q, def Query) {
	if q.IsZero() {
		q = def
	}
	willow.Logger().Debug("layout: source unresolved",
		slog.String("node", target.Name), slog.String("kind", k.String()), slog.String("source", q.String()))
	if e.events != nil {
		e.events.EmitEvent(Event{
			Type:     EventUnresolvedSource,
			NodeID:   target.ID,
			NodeName: target.Name,
			Kind:     k,
			Source:   q.String(),
		})
	}
}
