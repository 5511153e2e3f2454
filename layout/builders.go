package layout

import (
	"math"

	willow "github.com/phanxgames/willowlayout"
)

// edgeAnchor selects how a position rule derives a coordinate from its source.
type edgeAnchor uint8

const (
	anchorNone        edgeAnchor = iota
	anchorValue                  // Set without an anchor: coordinate is the value itself
	anchorNearInward             // inside the left/top edge
	anchorNearOutward            // outside the left/top edge
	anchorFarInward              // inside the right/bottom edge
	anchorFarOutward             // outside the right/bottom edge
	anchorCenter                 // centered on the axis
)

// span projects a rectangle onto one axis.
type span func(r willow.Rect) (start, length float64)

func horizontal(r willow.Rect) (float64, float64) { return r.X, r.Width }
func vertical(r willow.Rect) (float64, float64)   { return r.Y, r.Height }

// edgeBuilder is the state shared by the X and Y builders. Percentages are
// measured against the source's extent on the same axis.
type edgeBuilder struct {
	d      *Descriptor
	kind   Kind
	anchor edgeAnchor
	value  Value
	source Query
}

func (b *edgeBuilder) set(v Value) {
	b.d.check(b.kind, v)
	b.value = v
	if b.anchor == anchorNone {
		b.anchor = anchorValue
	}
}

func (b *edgeBuilder) anchorTo(a edgeAnchor, source Query) *Descriptor {
	b.anchor = a
	b.source = source
	return b.d
}

func (b *edgeBuilder) compile(axis span) *Callback[float64] {
	v := b.value
	var rule Rule[float64]
	switch b.anchor {
	case anchorValue:
		rule = func(src, _ willow.Rect) float64 {
			_, l := axis(src)
			return v.Resolve(l)
		}
	case anchorNearInward:
		rule = func(src, _ willow.Rect) float64 {
			s, l := axis(src)
			return s + v.Resolve(l)
		}
	case anchorNearOutward:
		rule = func(src, tgt willow.Rect) float64 {
			s, l := axis(src)
			_, tl := axis(tgt)
			return s - tl - v.Resolve(l)
		}
	case anchorFarInward:
		rule = func(src, tgt willow.Rect) float64 {
			s, l := axis(src)
			_, tl := axis(tgt)
			return s + l - tl - v.Resolve(l)
		}
	case anchorFarOutward:
		rule = func(src, _ willow.Rect) float64 {
			s, l := axis(src)
			return s + l + v.Resolve(l)
		}
	case anchorCenter:
		rule = func(src, tgt willow.Rect) float64 {
			s, l := axis(src)
			_, tl := axis(tgt)
			return s + l/2 - tl/2
		}
	default:
		return nil
	}
	return &Callback[float64]{Rule: rule, Source: b.source}
}

// XBuilder builds the horizontal position rule of a descriptor.
type XBuilder struct {
	edge edgeBuilder
}

// Set stores the offset used by the anchor. Without an anchor the value is
// the target's global x itself.
func (b *XBuilder) Set(v Value) *XBuilder {
	b.edge.set(v)
	return b
}

// FromLeftInwardEdge places the target's left edge the value to the right of
// the default source's left edge.
func (b *XBuilder) FromLeftInwardEdge() *Descriptor { return b.FromLeftInwardEdgeOf(Query{}) }

// FromLeftInwardEdgeOf is FromLeftInwardEdge against an explicit source.
func (b *XBuilder) FromLeftInwardEdgeOf(source Query) *Descriptor {
	return b.edge.anchorTo(anchorNearInward, source)
}

// FromLeftOutwardEdge places the target's right edge the value to the left
// of the default source's left edge.
func (b *XBuilder) FromLeftOutwardEdge() *Descriptor { return b.FromLeftOutwardEdgeOf(Query{}) }

// FromLeftOutwardEdgeOf is FromLeftOutwardEdge against an explicit source.
func (b *XBuilder) FromLeftOutwardEdgeOf(source Query) *Descriptor {
	return b.edge.anchorTo(anchorNearOutward, source)
}

// FromRightInwardEdge places the target's right edge the value to the left
// of the default source's right edge.
func (b *XBuilder) FromRightInwardEdge() *Descriptor { return b.FromRightInwardEdgeOf(Query{}) }

// FromRightInwardEdgeOf is FromRightInwardEdge against an explicit source.
func (b *XBuilder) FromRightInwardEdgeOf(source Query) *Descriptor {
	return b.edge.anchorTo(anchorFarInward, source)
}

// FromRightOutwardEdge places the target's left edge the value to the right
// of the default source's right edge.
func (b *XBuilder) FromRightOutwardEdge() *Descriptor { return b.FromRightOutwardEdgeOf(Query{}) }

// FromRightOutwardEdgeOf is FromRightOutwardEdge against an explicit source.
func (b *XBuilder) FromRightOutwardEdgeOf(source Query) *Descriptor {
	return b.edge.anchorTo(anchorFarOutward, source)
}

// InCenter centers the target horizontally on the default source.
func (b *XBuilder) InCenter() *Descriptor { return b.InCenterOf(Query{}) }

// InCenterOf centers the target horizontally on source.
func (b *XBuilder) InCenterOf(source Query) *Descriptor {
	return b.edge.anchorTo(anchorCenter, source)
}

func (b *XBuilder) harvest(cs *CallbackSet) {
	if cb := b.edge.compile(horizontal); cb != nil {
		cs.x = cb
	}
}

// YBuilder builds the vertical position rule of a descriptor.
type YBuilder struct {
	edge edgeBuilder
}

// Set stores the offset used by the anchor. Without an anchor the value is
// the target's global y itself.
func (b *YBuilder) Set(v Value) *YBuilder {
	b.edge.set(v)
	return b
}

// FromTopInwardEdge places the target's top edge the value below the default
// source's top edge.
func (b *YBuilder) FromTopInwardEdge() *Descriptor { return b.FromTopInwardEdgeOf(Query{}) }

// FromTopInwardEdgeOf is FromTopInwardEdge against an explicit source.
func (b *YBuilder) FromTopInwardEdgeOf(source Query) *Descriptor {
	return b.edge.anchorTo(anchorNearInward, source)
}

// FromTopOutwardEdge places the target's bottom edge the value above the
// default source's top edge.
func (b *YBuilder) FromTopOutwardEdge() *Descriptor { return b.FromTopOutwardEdgeOf(Query{}) }

// FromTopOutwardEdgeOf is FromTopOutwardEdge against an explicit source.
func (b *YBuilder) FromTopOutwardEdgeOf(source Query) *Descriptor {
	return b.edge.anchorTo(anchorNearOutward, source)
}

// FromBottomInwardEdge places the target's bottom edge the value above the
// default source's bottom edge.
func (b *YBuilder) FromBottomInwardEdge() *Descriptor { return b.FromBottomInwardEdgeOf(Query{}) }

// FromBottomInwardEdgeOf is FromBottomInwardEdge against an explicit source.
func (b *YBuilder) FromBottomInwardEdgeOf(source Query) *Descriptor {
	return b.edge.anchorTo(anchorFarInward, source)
}

// FromBottomOutwardEdge places the target's top edge the value below the
// default source's bottom edge.
func (b *YBuilder) FromBottomOutwardEdge() *Descriptor { return b.FromBottomOutwardEdgeOf(Query{}) }

// FromBottomOutwardEdgeOf is FromBottomOutwardEdge against an explicit source.
func (b *YBuilder) FromBottomOutwardEdgeOf(source Query) *Descriptor {
	return b.edge.anchorTo(anchorFarOutward, source)
}

// InCenter centers the target vertically on the default source.
func (b *YBuilder) InCenter() *Descriptor { return b.InCenterOf(Query{}) }

// InCenterOf centers the target vertically on source.
func (b *YBuilder) InCenterOf(source Query) *Descriptor {
	return b.edge.anchorTo(anchorCenter, source)
}

func (b *YBuilder) harvest(cs *CallbackSet) {
	if cb := b.edge.compile(vertical); cb != nil {
		cs.y = cb
	}
}

// ratio returns want/have, or 1 when have is zero so an empty target is
// left unscaled.
func ratio(want, have float64) float64 {
	if have == 0 {
		return 1
	}
	return want / have
}

// WidthBuilder builds a rule scaling the target to a requested width.
type WidthBuilder struct {
	d      *Descriptor
	value  Value
	set    bool
	source Query
}

// Of measures percentages against source instead of the descriptor default.
func (b *WidthBuilder) Of(source Query) *WidthBuilder {
	b.source = source
	return b
}

// Set scales the target horizontally so its width becomes v, a percentage of
// the source width or an absolute amount.
func (b *WidthBuilder) Set(v Value) *Descriptor {
	b.d.check(KindWidth, v)
	b.value = v
	b.set = true
	return b.d
}

func (b *WidthBuilder) harvest(cs *CallbackSet) {
	if !b.set {
		return
	}
	v := b.value
	cs.width = &Callback[float64]{
		Rule: func(src, tgt willow.Rect) float64 {
			return ratio(v.Resolve(src.Width), tgt.Width)
		},
		Source: b.source,
	}
}

// HeightBuilder builds a rule scaling the target to a requested height, or
// capping it.
type HeightBuilder struct {
	d      *Descriptor
	value  Value
	set    bool
	max    Value
	capped bool
	source Query
}

// Of measures percentages against source instead of the descriptor default.
func (b *HeightBuilder) Of(source Query) *HeightBuilder {
	b.source = source
	return b
}

// Set scales the target vertically so its height becomes v, a percentage of
// the source height or an absolute amount.
func (b *HeightBuilder) Set(v Value) *Descriptor {
	b.d.check(KindHeight, v)
	b.value = v
	b.set = true
	return b.d
}

// Max shrinks the target uniformly when its height exceeds v. It never
// enlarges the target.
func (b *HeightBuilder) Max(v Value) *Descriptor {
	b.d.check(KindScale, v)
	b.max = v
	b.capped = true
	return b.d
}

func (b *HeightBuilder) harvest(cs *CallbackSet) {
	if b.set {
		v := b.value
		cs.height = &Callback[float64]{
			Rule: func(src, tgt willow.Rect) float64 {
				return ratio(v.Resolve(src.Height), tgt.Height)
			},
			Source: b.source,
		}
	}
	if b.capped {
		v := b.max
		cs.scale = &Callback[Scale]{
			Rule: func(src, tgt willow.Rect) Scale {
				f := math.Min(1, ratio(v.Resolve(src.Height), tgt.Height))
				return Scale{X: f, Y: f}
			},
			Source: b.source,
		}
	}
}

type fitMode uint8

const (
	fitNone fitMode = iota
	fitCover
	fitContain
	fitStretch
)

// fitTarget is the source and alignment captured by one fit call.
type fitTarget struct {
	source         Query
	alignX, alignY Align
}

// SizeBuilder builds the fit-mode rules of a descriptor. Cover, Contain and
// Stretch share the all slot, so the last of them wins. Place and Match keep
// their own source and alignment.
type SizeBuilder struct {
	d               *Descriptor
	keepAspectRatio bool
	fit             fitMode
	fitTo           fitTarget
	place           *fitTarget
	match           *fitTarget
}

// WithoutAspectRatio stops a lone width or height rule from being mirrored
// onto the other axis.
func (b *SizeBuilder) WithoutAspectRatio() *Descriptor {
	b.keepAspectRatio = false
	return b.d
}

// Cover scales the target uniformly to fill source, overflowing on one axis,
// and aligns it on each axis by the given fractions.
func (b *SizeBuilder) Cover(source Query, h, v Align) *Descriptor {
	return b.setFit(fitCover, source, h, v)
}

// Contain scales the target uniformly to fit inside source and aligns it on
// the axis with leftover space.
func (b *SizeBuilder) Contain(source Query, h, v Align) *Descriptor {
	return b.setFit(fitContain, source, h, v)
}

// Stretch scales each axis independently so the target exactly covers
// source, and moves it to source's origin.
func (b *SizeBuilder) Stretch(source Query) *Descriptor {
	return b.setFit(fitStretch, source, AlignStart, AlignStart)
}

// Place moves the target so its aligned point lands on source's aligned
// point, without scaling.
func (b *SizeBuilder) Place(source Query, h, v Align) *Descriptor {
	b.place = &fitTarget{source: source, alignX: h, alignY: v}
	return b.d
}

// Match gives the target the same absolute size as source.
func (b *SizeBuilder) Match(source Query) *Descriptor {
	b.match = &fitTarget{source: source}
	return b.d
}

func (b *SizeBuilder) setFit(m fitMode, source Query, h, v Align) *Descriptor {
	b.fit = m
	b.fitTo = fitTarget{source: source, alignX: h, alignY: v}
	return b.d
}

func (b *SizeBuilder) harvest(cs *CallbackSet) {
	cs.keepAspectRatio = b.keepAspectRatio
	ax, ay := float64(b.fitTo.alignX), float64(b.fitTo.alignY)
	switch b.fit {
	case fitCover:
		cs.all = &Callback[Placement]{Rule: uniformFit(ax, ay, math.Max), Source: b.fitTo.source}
	case fitContain:
		cs.all = &Callback[Placement]{Rule: uniformFit(ax, ay, math.Min), Source: b.fitTo.source}
	case fitStretch:
		cs.all = &Callback[Placement]{
			Rule: func(src, tgt willow.Rect) Placement {
				return Placement{
					X:      src.X,
					Y:      src.Y,
					ScaleX: ratio(src.Width, tgt.Width),
					ScaleY: ratio(src.Height, tgt.Height),
				}
			},
			Source: b.fitTo.source,
		}
	}
	if p := b.place; p != nil {
		px, py := float64(p.alignX), float64(p.alignY)
		cs.pos = &Callback[willow.Vec2]{
			Rule: func(src, tgt willow.Rect) willow.Vec2 {
				return willow.Vec2{
					X: src.X + src.Width*px - tgt.Width*px,
					Y: src.Y + src.Height*py - tgt.Height*py,
				}
			},
			Source: p.source,
		}
	}
	if m := b.match; m != nil {
		cs.size = &Callback[Size]{
			Rule: func(src, _ willow.Rect) Size {
				return Size{Width: src.Width, Height: src.Height}
			},
			Source: m.source,
		}
	}
}

// uniformFit scales by pick(xRatio, yRatio) on both axes and places the
// scaled target's aligned point on the source's aligned point.
func uniformFit(ax, ay float64, pick func(a, b float64) float64) Rule[Placement] {
	return func(src, tgt willow.Rect) Placement {
		s := pick(ratio(src.Width, tgt.Width), ratio(src.Height, tgt.Height))
		return Placement{
			X:      src.X + src.Width*ax - tgt.Width*s*ax,
			Y:      src.Y + src.Height*ay - tgt.Height*s*ay,
			ScaleX: s,
			ScaleY: s,
		}
	}
}
