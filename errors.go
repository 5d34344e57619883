package annotate

import (
	"errors"
	"fmt"
)

// Sentinel errors for the annotate package.
var (
	// ErrUnknownKind is returned when an annotation kind has no renderer.
	ErrUnknownKind = errors.New("annotate: unknown annotation kind")

	// ErrNilCanvas is returned when drawing without a canvas.
	ErrNilCanvas = errors.New("annotate: nil canvas")

	// ErrNilPayload is returned when a Spec carries no payload.
	ErrNilPayload = errors.New("annotate: spec has no payload")

	// ErrLengthMismatch is returned when the vectorized columns of a Labels
	// payload differ in length.
	ErrLengthMismatch = errors.New("annotate: label columns differ in length")
)

// DimensionError is returned when a referenced value dimension does not
// exist on the annotation.
type DimensionError struct {
	Name string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("annotate: dimension %q not found on annotation", e.Name)
}

// DirectionError is returned for an arrow direction that is not one of
// ^ v < > (or up, down, left, right).
type DirectionError struct {
	Direction string
}

func (e *DirectionError) Error() string {
	return fmt.Sprintf("annotate: unknown arrow direction %q", e.Direction)
}

// PathCodeError is returned when spline path codes do not describe a valid
// path for the supplied vertices.
type PathCodeError struct {
	Index  int
	Code   PathCode
	Reason string
}

func (e *PathCodeError) Error() string {
	return fmt.Sprintf("annotate: path code %d at vertex %d: %s", e.Code, e.Index, e.Reason)
}

// drawError wraps a failure of a kind renderer.
type drawError struct {
	kind Kind
	err  error
}

func (e *drawError) Error() string {
	return fmt.Sprintf("annotate: drawing %s: %v", e.kind, e.err)
}

func (e *drawError) Unwrap() error { return e.err }
