package canvas

import (
	"errors"
	"fmt"
)

// Sentinel errors for the canvas package.
var (
	// ErrRemoved is returned when a primitive is removed more than once.
	ErrRemoved = errors.New("canvas: primitive already removed")

	// ErrLengthMismatch is returned when paired coordinate slices differ in length.
	ErrLengthMismatch = errors.New("canvas: coordinate length mismatch")
)

// ConversionError is returned when a categorical coordinate is used on an
// axis that has not registered it.
type ConversionError struct {
	Axis  string
	Value string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("canvas: %s axis cannot convert unregistered category %q", e.Axis, e.Value)
}
