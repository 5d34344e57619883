// Package recording provides an in-memory canvas that records annotation
// primitives and plays them back to output backends.
//
// # Architecture
//
// The system has two sides:
//
//   - Recorder: a canvas.Canvas that keeps every primitive ("artist") drawn
//     on it, owns the viewport and the categorical units of both axes, and
//     dispatches limit-change notifications
//   - Backend: renders the recorded primitives, converted to pixel
//     coordinates, to a specific output format
//
// # Basic Usage
//
//	rec := recording.NewRecorder(640, 480,
//	    recording.WithLimits([2]float64{0, 10}, [2]float64{0, 5}))
//
//	h, _ := rec.AxLine(canvas.Vertical, 3, canvas.Style{"color": "red"})
//	rec.SetXLim(0, 20) // notifies XLimChanged subscribers
//	_ = h.Remove()
//
// # Playback to Backends
//
//	import _ "github.com/gogpu/annotate/recording/backends/raster"
//
//	b, _ := recording.NewBackend("raster")
//	_ = rec.Playback(b)
//	_, _ = b.(recording.WriterBackend).WriteTo(f) // PNG
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to register it:
//
//	import (
//	    _ "github.com/gogpu/annotate/recording/backends/braille" // "braille"
//	    _ "github.com/gogpu/annotate/recording/backends/raster"  // "raster"
//	)
//
// # Categorical axes
//
// Categories become axis positions 0, 1, 2, ... in the order they are first
// seen by AddScatter (or WithCategories). AddText refuses categories the
// axis does not know yet.
//
// # Notifications
//
// SetXLim and SetYLim run subscribers synchronously. A subscriber that
// changes the limits again updates the viewport, but that nested change is
// not dispatched.
package recording
