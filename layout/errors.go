package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedValue is returned for a value that is neither a number nor
	// a percentage string such as "25%".
	ErrMalformedValue = errors.New("malformed value")
	// ErrUnknownAnchor is returned when a sheet names an anchor the axis does not have.
	ErrUnknownAnchor = errors.New("unknown anchor")
	// ErrUnknownAlign is returned for an alignment that is not START, CENTER, END or a number.
	ErrUnknownAlign = errors.New("unknown alignment")
	// ErrUnknownFit is returned when a sheet names an unknown size mode.
	ErrUnknownFit = errors.New("unknown size mode")
	// ErrEmptyRule is returned for a sheet entry that declares no rule, such
	// as an empty layout or a width without set.
	ErrEmptyRule = errors.New("empty layout rule")
	// ErrUnknownLayout is returned when a sheet has no layout with the requested name.
	ErrUnknownLayout = errors.New("unknown layout")
	// ErrNilTarget is returned when attaching to a nil node.
	ErrNilTarget = errors.New("nil target node")
)

// DescriptorError reports a construction-time mistake on one axis of a
// descriptor.
type DescriptorError struct {
	Axis Kind
	Err  error
}

func (e *DescriptorError) Error() string {
	return fmt.Sprintf("layout %s: %v", e.Axis, e.Err)
}

func (e *DescriptorError) Unwrap() error {
	return e.Err
}
