package protoplot

import (
	"fmt"
	"strings"
)

// Defaults applied to descriptions that omit the corresponding key.
const (
	// DefaultWidth is the number of bits per row.
	DefaultWidth = 32
	// DefaultLargeMarkEvery is the interval of full-height ruler ticks.
	DefaultLargeMarkEvery = 8
	// DefaultMediumMarkEvery is the interval of medium ruler ticks.
	DefaultMediumMarkEvery = 4
)

// Field is a named, fixed-size span of bits within a protocol.
type Field struct {
	Label string
	Size  int
}

// String returns "label:size".
func (f Field) String() string {
	return fmt.Sprintf("%s:%d", f.Label, f.Size)
}

// Description is a protocol to be drawn: its fields in wire order and the
// ruler configuration.
//
// A Description is treated as immutable; Layout and Render never modify it.
type Description struct {
	Fields          []Field
	Width           int
	LargeMarkEvery  int
	MediumMarkEvery int
}

// NewDescription returns a description of the given fields with default
// width and mark intervals.
func NewDescription(fields ...Field) Description {
	return Description{
		Fields:          fields,
		Width:           DefaultWidth,
		LargeMarkEvery:  DefaultLargeMarkEvery,
		MediumMarkEvery: DefaultMediumMarkEvery,
	}
}

// Bits returns the total number of bits of all fields.
func (d Description) Bits() int {
	n := 0
	for _, f := range d.Fields {
		n += f.Size
	}
	return n
}

// Validate checks dimensions and required values. It does not check the
// row-boundary rule; Layout does.
func (d Description) Validate() error {
	if len(d.Fields) == 0 {
		return ErrNoFields
	}
	if d.Width <= 0 {
		return dimensionError("width", d.Width)
	}
	if d.LargeMarkEvery <= 0 {
		return dimensionError("large_mark_every", d.LargeMarkEvery)
	}
	if d.MediumMarkEvery <= 0 {
		return dimensionError("medium_mark_every", d.MediumMarkEvery)
	}
	for i, f := range d.Fields {
		if strings.TrimSpace(f.Label) == "" {
			return fmt.Errorf("%w: field %d has no label", ErrMalformedDescription, i)
		}
		if f.Size < 1 {
			return dimensionError(fmt.Sprintf("size of field %d %q", i, f.Label), f.Size)
		}
	}
	return nil
}

// DuplicateLabels returns labels used by more than one field, in order of
// their second occurrence.
func (d Description) DuplicateLabels() []string {
	seen := make(map[string]int, len(d.Fields))
	var dups []string
	for _, f := range d.Fields {
		seen[f.Label]++
		if seen[f.Label] == 2 {
			dups = append(dups, f.Label)
		}
	}
	return dups
}
