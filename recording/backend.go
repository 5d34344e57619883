package recording

import (
	"image/color"
	"io"

	"github.com/gogpu/annotate/canvas"
)

// Backend is the interface that all playback backends must implement.
// Backends receive primitives already converted to pixel coordinates
// (origin top-left, y down) and translate them to their output format.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Handle all Backend methods (even if no-op for some)
//  3. Accept Begin being called again to render a new frame
type Backend interface {
	// Begin initializes the backend for rendering at the given dimensions.
	Begin(width, height int) error

	// End finalizes the rendering and prepares the output.
	End() error

	// StrokePolyline strokes the open polyline through pts.
	StrokePolyline(pts []canvas.Point, stroke Stroke)

	// FillPolygon fills the closed polygon through pts.
	FillPolygon(pts []canvas.Point, fill color.Color)

	// DrawText draws s anchored at the pixel position at.
	DrawText(s string, at canvas.Point, style TextStyle)
}

// WriterBackend extends Backend with the ability to write output to an
// io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// Stroke describes how a polyline is stroked. Dash patterns are applied
// before the backend sees the polyline.
type Stroke struct {
	Color color.Color
	Width float64
}

// TextStyle describes how text is drawn. HAlign is "left", "center" or
// "right"; VAlign is "top", "center", "baseline" or "bottom". Rotation is in
// degrees, counter-clockwise.
type TextStyle struct {
	Color    color.Color
	Size     float64
	HAlign   string
	VAlign   string
	Rotation float64
	Family   string
	Weight   string
}
