package annotate

// Option configures a Plot during creation.
// Use functional options to customize Plot behavior.
//
// Example:
//
//	// Default plot
//	p := annotate.NewPlot(host, c, key, spec)
//
//	// Swapped axes, second style in the cycle
//	p := annotate.NewPlot(host, c, key, spec,
//	    annotate.WithInvertAxes(true),
//	    annotate.WithCyclicIndex(1))
type Option func(*plotOptions)

// plotOptions holds optional configuration for Plot creation.
type plotOptions struct {
	invertAxes    bool
	cyclicIndex   int
	showLegend    bool
	invertSlope   bool
	colorIndex    string
	xoffset       float64
	yoffset       float64
	hasXOffset    bool
	hasYOffset    bool
	hasColorIndex bool
}

// defaultOptions returns the default plot options.
func defaultOptions() plotOptions {
	return plotOptions{}
}

// WithInvertAxes swaps the horizontal and vertical axes for every kind.
func WithInvertAxes(invert bool) Option {
	return func(o *plotOptions) {
		o.invertAxes = invert
	}
}

// WithCyclicIndex selects the entry of the host's style cycle.
func WithCyclicIndex(i int) Option {
	return func(o *plotOptions) {
		o.cyclicIndex = i
	}
}

// WithShowLegend sets the legend visibility reported in AxisConfig.
// Annotations hide the legend by default.
func WithShowLegend(show bool) Option {
	return func(o *plotOptions) {
		o.showLegend = show
	}
}

// WithSlopeInversion makes Slope annotations transform their gradient and
// intercept when axes are inverted, so the drawn line is the reflection of
// the non-inverted one. A zero gradient becomes a vertical line.
//
// Without this option a Slope ignores axis inversion and draws
// y = gradient*x + intercept in screen orientation.
func WithSlopeInversion(enable bool) Option {
	return func(o *plotOptions) {
		o.invertSlope = enable
	}
}

// WithColorIndex names the Labels dimension that drives label color.
func WithColorIndex(dim string) Option {
	return func(o *plotOptions) {
		o.colorIndex = dim
		o.hasColorIndex = dim != ""
	}
}

// WithXOffset shifts Labels along the horizontal axis.
func WithXOffset(d float64) Option {
	return func(o *plotOptions) {
		o.xoffset = d
		o.hasXOffset = true
	}
}

// WithYOffset shifts Labels along the vertical axis.
func WithYOffset(d float64) Option {
	return func(o *plotOptions) {
		o.yoffset = d
		o.hasYOffset = true
	}
}
