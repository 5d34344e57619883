package annotate

import "github.com/gogpu/annotate/canvas"

// Plot owns the primitives of one annotation on one canvas and keeps them
// in step with the host's frames.
//
// The primitives drawn for the current frame are the only ones a Plot keeps
// alive: Update removes all of them before drawing the next frame, and
// Teardown removes them for good. Drawing failures never propagate to the
// host; they are logged and leave the annotation without primitives.
//
// A Plot is not safe for concurrent use.
type Plot struct {
	host    Host
	c       canvas.Canvas
	key     Key
	spec    Spec
	opts    plotOptions
	handles []canvas.Handle
}

// NewPlot creates a plot for spec, the annotation of frame key, drawing onto
// c. Nothing is drawn until Initialize.
func NewPlot(host Host, c canvas.Canvas, key Key, spec Spec, opts ...Option) *Plot {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Plot{
		host: host,
		c:    c,
		key:  key,
		spec: spec,
		opts: o,
	}
}

// Initialize draws the annotation for the first time.
//
// Ranges are computed by the host for the plot's frame, merged with ranges,
// and narrowed to the annotation's dimensions. The style is taken from the
// host's style cycle at the plot's cyclic index.
func (p *Plot) Initialize(ranges Ranges) AxisConfig {
	ranges = p.host.ComputeRanges(p.key, ranges)
	ranges = p.host.MatchRanges(p.spec, ranges)
	style := p.host.Style(p.opts.cyclicIndex)

	p.handles = p.draw(ranges, style)
	return AxisConfig{
		Key:        p.key,
		Ranges:     ranges,
		ShowLegend: p.opts.showLegend,
		Inverted:   p.opts.invertAxes,
	}
}

// Update replaces the primitives of the previous frame with those of spec.
// A nil axis keeps the current canvas.
func (p *Plot) Update(key Key, axis canvas.Canvas, spec Spec, ranges Ranges, style canvas.Style) {
	p.removeHandles()

	if axis != nil {
		p.c = axis
	}
	p.key = key
	p.spec = spec
	p.handles = p.draw(ranges, style)
}

// Teardown removes every primitive of the plot. Calling it again is a no-op.
func (p *Plot) Teardown() {
	p.removeHandles()
}

// Handles returns the primitives drawn for the current frame.
func (p *Plot) Handles() []canvas.Handle {
	return append([]canvas.Handle(nil), p.handles...)
}

// Spec returns the annotation of the current frame.
func (p *Plot) Spec() Spec { return p.spec }

// Key returns the current frame key.
func (p *Plot) Key() Key { return p.key }

// Canvas returns the canvas the plot draws onto.
func (p *Plot) Canvas() canvas.Canvas { return p.c }

func (p *Plot) draw(ranges Ranges, style canvas.Style) []canvas.Handle {
	kind := p.spec.Kind()
	d := &drawer{opts: p.opts, ranges: ranges}
	handles, err := d.draw(p.c, p.spec, FilterStyle(kind, style))
	if err != nil {
		Logger().Warn("annotate: annotation not drawn", "kind", kind.String(), "error", err)
		removeAll(handles)
		return nil
	}
	return handles
}

func (p *Plot) removeHandles() {
	if len(p.handles) > 0 {
		Logger().Debug("annotate: removing primitives",
			"kind", p.spec.Kind().String(), "count", len(p.handles))
	}
	removeAll(p.handles)
	p.handles = nil
}
