package layout

import (
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Sheet is a set of named layouts loaded from YAML. Sources are node names
// resolved through the engine's Finder.
//
//	layouts:
//	  title:
//	    source: hud
//	    x: {anchor: center}
//	    y: {anchor: top-inward, value: "5%"}
//	    width: {set: "40%"}
//	  backdrop:
//	    size: {mode: cover, source: hud, align: [center, end]}
type Sheet struct {
	Layouts map[string]*LayoutSpec `yaml:"layouts"`
}

// LayoutSpec is the YAML form of a Descriptor.
type LayoutSpec struct {
	Source          string      `yaml:"source,omitempty"`
	KeepAspectRatio *bool       `yaml:"keep-aspect-ratio,omitempty"`
	X               *EdgeSpec   `yaml:"x,omitempty"`
	Y               *EdgeSpec   `yaml:"y,omitempty"`
	Width           *ExtentSpec `yaml:"width,omitempty"`
	Height          *ExtentSpec `yaml:"height,omitempty"`
	Size            *FitSpec    `yaml:"size,omitempty"`
}

// EdgeSpec describes a position rule. Anchor is one of left-inward,
// left-outward, right-inward, right-outward (x), top-inward, top-outward,
// bottom-inward, bottom-outward (y), center, or value.
type EdgeSpec struct {
	Anchor string `yaml:"anchor"`
	Value  *Value `yaml:"value,omitempty"`
	Source string `yaml:"source,omitempty"`
}

// ExtentSpec describes a width or height rule. Max is only valid for height.
type ExtentSpec struct {
	Set    *Value `yaml:"set,omitempty"`
	Max    *Value `yaml:"max,omitempty"`
	Source string `yaml:"source,omitempty"`
}

// FitSpec describes a size rule. Mode is cover, contain, stretch, place or
// match. Align holds the horizontal then vertical alignment; a single entry
// applies to both and none means centered.
type FitSpec struct {
	Mode   string  `yaml:"mode"`
	Source string  `yaml:"source"`
	Align  []Align `yaml:"align,omitempty"`
}

// LoadSheet parses a YAML layout sheet and checks that every layout builds.
func LoadSheet(data []byte) (*Sheet, error) {
	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse layout sheet: %w", err)
	}
	for _, name := range s.Names() {
		spec := s.Layouts[name]
		if spec == nil {
			return nil, fmt.Errorf("layout %q: %w", name, ErrEmptyRule)
		}
		if _, err := spec.Descriptor(); err != nil {
			return nil, fmt.Errorf("layout %q: %w", name, err)
		}
	}
	return &s, nil
}

// Names returns the layout names in sorted order.
func (s *Sheet) Names() []string {
	return slices.Sorted(maps.Keys(s.Layouts))
}

// Descriptor builds a fresh descriptor for the named layout.
func (s *Sheet) Descriptor(name string) (*Descriptor, error) {
	spec, ok := s.Layouts[name]
	if !ok || spec == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
	return spec.Descriptor()
}

var xAnchors = map[string]func(*XBuilder, Query) *Descriptor{
	"left-inward":   (*XBuilder).FromLeftInwardEdgeOf,
	"left-outward":  (*XBuilder).FromLeftOutwardEdgeOf,
	"right-inward":  (*XBuilder).FromRightInwardEdgeOf,
	"right-outward": (*XBuilder).FromRightOutwardEdgeOf,
	"center":        (*XBuilder).InCenterOf,
}

var yAnchors = map[string]func(*YBuilder, Query) *Descriptor{
	"top-inward":     (*YBuilder).FromTopInwardEdgeOf,
	"top-outward":    (*YBuilder).FromTopOutwardEdgeOf,
	"bottom-inward":  (*YBuilder).FromBottomInwardEdgeOf,
	"bottom-outward": (*YBuilder).FromBottomOutwardEdgeOf,
	"center":         (*YBuilder).InCenterOf,
}

// Descriptor builds a fresh descriptor from s.
func (s *LayoutSpec) Descriptor() (*Descriptor, error) {
	d := From(named(s.Source))
	if s.KeepAspectRatio != nil && !*s.KeepAspectRatio {
		d.Size.WithoutAspectRatio()
	}
	if s.Size != nil {
		if err := s.Size.apply(d.Size); err != nil {
			return nil, &DescriptorError{Axis: KindAll, Err: err}
		}
	}
	if s.X != nil {
		if err := applyEdge(s.X, d.X, (*XBuilder).Set, xAnchors); err != nil {
			return nil, &DescriptorError{Axis: KindX, Err: err}
		}
	}
	if s.Y != nil {
		if err := applyEdge(s.Y, d.Y, (*YBuilder).Set, yAnchors); err != nil {
			return nil, &DescriptorError{Axis: KindY, Err: err}
		}
	}
	if w := s.Width; w != nil {
		if w.Max != nil {
			return nil, &DescriptorError{Axis: KindWidth, Err: fmt.Errorf("max is only supported for height")}
		}
		if w.Set == nil {
			return nil, &DescriptorError{Axis: KindWidth, Err: fmt.Errorf("%w: width needs set", ErrEmptyRule)}
		}
		d.Width.Of(named(w.Source)).Set(*w.Set)
	}
	if h := s.Height; h != nil {
		if h.Set == nil && h.Max == nil {
			return nil, &DescriptorError{Axis: KindHeight, Err: fmt.Errorf("%w: height needs set or max", ErrEmptyRule)}
		}
		d.Height.Of(named(h.Source))
		if h.Set != nil {
			d.Height.Set(*h.Set)
		}
		if h.Max != nil {
			d.Height.Max(*h.Max)
		}
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func applyEdge[B any](spec *EdgeSpec, b B, set func(B, Value) B, anchors map[string]func(B, Query) *Descriptor) error {
	if spec.Value != nil {
		set(b, *spec.Value)
	}
	switch spec.Anchor {
	case "value", "":
		if spec.Value == nil {
			return fmt.Errorf("%w: value anchor without a value", ErrUnknownAnchor)
		}
		return nil
	}
	anchor, ok := anchors[spec.Anchor]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAnchor, spec.Anchor)
	}
	anchor(b, named(spec.Source))
	return nil
}

func (f *FitSpec) apply(b *SizeBuilder) error {
	h, v := AlignCenter, AlignCenter
	switch len(f.Align) {
	case 0:
	case 1:
		h, v = f.Align[0], f.Align[0]
	case 2:
		h, v = f.Align[0], f.Align[1]
	default:
		return fmt.Errorf("%w: expected at most two alignments, got %d", ErrUnknownAlign, len(f.Align))
	}
	q := named(f.Source)
	switch f.Mode {
	case "cover":
		b.Cover(q, h, v)
	case "contain":
		b.Contain(q, h, v)
	case "stretch":
		b.Stretch(q)
	case "place":
		b.Place(q, h, v)
	case "match":
		b.Match(q)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFit, f.Mode)
	}
	return nil
}

func named(name string) Query {
	if name == "" {
		return Query{}
	}
	return Named(name)
}
