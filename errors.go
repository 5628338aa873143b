package protoplot

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every error returned by protoplot and its sub-packages
// matches exactly one of these with errors.Is.
var (
	// ErrInputUnreadable is returned when a description cannot be opened,
	// read or decoded as structured text.
	ErrInputUnreadable = errors.New("protoplot: input unreadable")

	// ErrMalformedDescription is returned when required keys are missing,
	// such as "fields" or a field's "label" or "size".
	ErrMalformedDescription = errors.New("protoplot: malformed description")

	// ErrNoFields is returned for a description without fields.
	// It matches ErrMalformedDescription as well.
	ErrNoFields = fmt.Errorf("%w: no fields", ErrMalformedDescription)

	// ErrLayoutViolation is returned when a field straddles a row boundary
	// without being a whole-row multiple starting at column 0.
	ErrLayoutViolation = errors.New("protoplot: field does not fit row boundary")

	// ErrInvalidDimension is returned for a non-positive width, field size
	// or mark interval.
	ErrInvalidDimension = errors.New("protoplot: invalid dimension")
)

// LayoutError describes a field that violates the row-boundary rule.
// It unwraps to ErrLayoutViolation.
type LayoutError struct {
	// Index is the field's position in the description, starting at 0.
	Index int
	// Label is the field's label.
	Label string
	// Size is the field's size in bits.
	Size int
	// Column and Row are the cursor position where the field would start.
	Column, Row int
	// Width is the row width in bits.
	Width int
}

func (e *LayoutError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("protoplot: field %d %q (%d bits) at row %d is wider than a row of %d bits and not a multiple of it",
			e.Index, e.Label, e.Size, e.Row, e.Width)
	}
	return fmt.Sprintf("protoplot: field %d %q (%d bits) at row %d column %d crosses the row boundary (%d bits left of %d)",
		e.Index, e.Label, e.Size, e.Row, e.Column, e.Width-e.Column, e.Width)
}

// Unwrap returns ErrLayoutViolation.
func (e *LayoutError) Unwrap() error {
	return ErrLayoutViolation
}

// dimensionError reports a non-positive quantity named by what.
func dimensionError(what string, value int) error {
	return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidDimension, what, value)
}
