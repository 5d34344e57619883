package raster

import (
	"errors"
	"fmt"
)

// ErrNotStarted is returned when output is requested before Begin.
var ErrNotStarted = errors.New("raster: Begin was not called")

// SizeError is returned by Begin for a non-positive image size.
type SizeError struct {
	Width, Height int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("raster: invalid image size %dx%d", e.Width, e.Height)
}
