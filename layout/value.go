package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Value is an absolute amount in layout units or a percentage of a reference
// dimension chosen by the rule that consumes it. The zero Value is Abs(0).
type Value struct {
	n       float64
	percent bool
	err     error
}

// Abs returns an absolute value.
func Abs(n float64) Value {
	return Value{n: n}
}

// Pct returns p percent of whatever reference dimension the rule uses.
func Pct(p float64) Value {
	return Value{n: p, percent: true}
}

// Str parses s like ParseValue. A parse failure is carried inside the
// returned Value and reported by the descriptor it is handed to.
func Str(s string) Value {
	v, err := ParseValue(s)
	if err != nil {
		return Value{err: err}
	}
	return v
}

// ParseValue parses a percentage string such as "25%" or "-12.5%". Bare
// numeric strings are rejected: absolute amounts are passed as numbers via Abs.
func ParseValue(s string) (Value, error) {
	t := strings.TrimSpace(s)
	num, ok := strings.CutSuffix(t, "%")
	if !ok {
		return Value{}, fmt.Errorf("%w: %q is not a percentage", ErrMalformedValue, s)
	}
	num = strings.TrimSpace(num)
	p, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
		return Value{}, fmt.Errorf("%w: %q", ErrMalformedValue, s)
	}
	return Pct(p), nil
}

// Resolve returns the absolute amount for the given reference dimension.
func (v Value) Resolve(ref float64) float64 {
	if v.percent {
		return v.n / 100 * ref
	}
	return v.n
}

// IsPercent reports whether v is relative to a reference dimension.
func (v Value) IsPercent() bool {
	return v.percent
}

// Err returns the parse error captured by Str, if any.
func (v Value) Err() error {
	return v.err
}

func (v Value) String() string {
	if v.err != nil {
		return "invalid"
	}
	s := strconv.FormatFloat(v.n, 'g', -1, 64)
	if v.percent {
		return s + "%"
	}
	return s
}

// UnmarshalYAML accepts numbers as absolute values and strings as
// percentages.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", ErrMalformedValue, node.Line)
	}
	switch node.Tag {
	case "!!int", "!!float":
		var n float64
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrMalformedValue, node.Line, err)
		}
		*v = Abs(n)
		return nil
	}
	parsed, err := ParseValue(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*v = parsed
	return nil
}
