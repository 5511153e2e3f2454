package layout

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Align is a fraction along an axis used by fit modes: 0 aligns starts,
// 0.5 centers, 1 aligns ends. Any fraction in between is allowed.
type Align float64

const (
	AlignStart  Align = 0
	AlignCenter Align = 0.5
	AlignEnd    Align = 1
)

// ParseAlign accepts START, CENTER, END (any case) or a number.
func ParseAlign(s string) (Align, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "START":
		return AlignStart, nil
	case "CENTER":
		return AlignCenter, nil
	case "END":
		return AlignEnd, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlign, s)
	}
	return Align(f), nil
}

// UnmarshalYAML decodes an alignment name or fraction.
func (a *Align) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseAlign(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*a = parsed
	return nil
}
