package layout

import (
	"log/slog"

	willow "github.com/phanxgames/willowlayout"
)

// Descriptor collects the anchor rules for one target. Build it with the
// fluent builders, then hand it to Engine.Attach or Compile it. Builders
// must not be touched once the descriptor is attached.
//
//	d := layout.From(layout.Named("panel")).
//		X.Set(layout.Abs(8)).FromRightInwardEdge().
//		Y.InCenter().
//		Width.Set(layout.Pct(25))
type Descriptor struct {
	X      *XBuilder
	Y      *YBuilder
	Width  *WidthBuilder
	Height *HeightBuilder
	Size   *SizeBuilder

	source Query
	err    error
}

// Make returns an empty descriptor with no default source. Every rule added
// to it needs an explicit source.
func Make() *Descriptor {
	return From(Query{})
}

// From returns an empty descriptor whose rules measure against source unless
// they name their own.
func From(source Query) *Descriptor {
	d := &Descriptor{source: source}
	d.X = &XBuilder{edge: edgeBuilder{d: d, kind: KindX}}
	d.Y = &YBuilder{edge: edgeBuilder{d: d, kind: KindY}}
	d.Width = &WidthBuilder{d: d}
	d.Height = &HeightBuilder{d: d}
	d.Size = &SizeBuilder{d: d, keepAspectRatio: true}
	return d
}

// Source returns the default source.
func (d *Descriptor) Source() Query {
	return d.source
}

// Err returns the first construction error, such as a malformed value.
func (d *Descriptor) Err() error {
	return d.err
}

func (d *Descriptor) check(kind Kind, v Value) {
	if v.err == nil || d.err != nil {
		return
	}
	d.err = &DescriptorError{Axis: kind, Err: v.err}
	willow.Logger().Warn("layout: malformed value", slog.String("axis", kind.String()), slog.Any("err", v.err))
}

// harvester is implemented by every builder.
type harvester interface {
	harvest(cs *CallbackSet)
}

// Compile harvests the populated rule slots of every builder into a
// CallbackSet. Builders are visited size first, then x, y, width, height; a
// later builder filling the same slot replaces the earlier rule. Compile
// evaluates nothing.
func (d *Descriptor) Compile() (*CallbackSet, error) {
	if d.err != nil {
		return nil, d.err
	}
	cs := &CallbackSet{}
	for _, b := range []harvester{d.Size, d.X, d.Y, d.Width, d.Height} {
		b.harvest(cs)
	}
	return cs, nil
}
