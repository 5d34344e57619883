// Package canvas defines the drawing surface that annotations render onto.
//
// The canvas is owned by the visualization host. Annotation renderers only
// see the [Canvas] interface: they create primitives ("artists"), receive a
// [Handle] for each one, and remove them again through that handle.
//
// # Coordinates
//
// Primitive positions are given in data coordinates. A position along one
// axis is a [Coord], which is either numeric or categorical. Categorical
// values must be registered with the axis before text can be placed at them;
// scatter primitives register every category they touch, text primitives do
// not and fail with a [*ConversionError] instead.
//
// # Viewport notifications
//
// Canvases publish [XLimChanged] and [YLimChanged] whenever the visible
// bounds change. Callbacks run synchronously on the goroutine that changed the
// bounds and must not change the bounds themselves.
//
// # Styles
//
// Visual attributes travel as a [Style] map using matplotlib-like option
// names ("color", "linewidth", "fontsize", "horizontalalignment", ...).
// Color values may be [color.Color] values or strings accepted by [ParseColor].
package canvas
