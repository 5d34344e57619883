// Package annotate renders declarative plot annotations onto a canvas.
//
// # Overview
//
// An annotation is a marker overlaid on a plot independently of its data
// series: a vertical or horizontal line, a band, an infinite slope line, a
// text label, a set of color-mapped labels, an arrow, or a spline outline.
// Each is described per frame by a [Spec] whose payload type selects the
// [Kind].
//
// A [Plot] turns the Spec into primitives on a [canvas.Canvas], keeps track
// of them, and replaces them when the host moves to another frame:
//
//	host := &annotate.SimpleHost{Styles: []canvas.Style{{"color": "red"}}}
//	p := annotate.NewPlot(host, c, nil, annotate.Spec{Data: annotate.VLine{X: 3}})
//	p.Initialize(nil)
//	...
//	p.Update(nil, nil, annotate.Spec{Data: annotate.VLine{X: 4}}, nil, style)
//	...
//	p.Teardown()
//
// # Styles
//
// Every kind accepts a fixed set of style options (see [StyleOptions]).
// Other options are dropped with a warning before reaching the canvas.
//
// # Slope lines
//
// Slope annotations are drawn as a [SlopeLine], which follows viewport
// changes on its own by subscribing to the canvas's limit notifications.
//
// # Diagnostics
//
// Nothing in this package is fatal to the host. Dropped style options,
// unresolved color dimensions and annotations that fail to draw are reported
// through the logger configured with [SetLogger].
package annotate
