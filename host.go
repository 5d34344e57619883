package annotate

import (
	"math"

	"github.com/gogpu/annotate/canvas"
)

// Key identifies one frame of an animated or faceted plot.
type Key []any

// Range is the extent of one dimension.
type Range struct {
	Min, Max float64
}

// Valid reports whether both ends are finite and Min <= Max.
func (r Range) Valid() bool {
	return !math.IsNaN(r.Min) && !math.IsNaN(r.Max) &&
		!math.IsInf(r.Min, 0) && !math.IsInf(r.Max, 0) && r.Min <= r.Max
}

// Ranges maps dimension names to their extents.
type Ranges map[string]Range

// Clone returns a copy of r.
func (r Ranges) Clone() Ranges {
	out := make(Ranges, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// AxisConfig is what a plot hands back to the host after initialization.
type AxisConfig struct {
	Key        Key
	Ranges     Ranges
	ShowLegend bool
	Inverted   bool
}

// Host is the plotting engine that owns a plot. It computes ranges across
// all elements of a figure and supplies the style cycle.
type Host interface {
	// ComputeRanges returns the ranges for the frame key, merged with prior.
	ComputeRanges(key Key, prior Ranges) Ranges

	// MatchRanges narrows ranges to the dimensions relevant to spec.
	MatchRanges(spec Spec, ranges Ranges) Ranges

	// Style returns the style options at position index of the style cycle.
	Style(index int) canvas.Style
}

// SimpleHost is a Host with fixed ranges and a fixed style cycle.
type SimpleHost struct {
	Ranges Ranges
	Styles []canvas.Style
}

var _ Host = (*SimpleHost)(nil)

// ComputeRanges implements Host. Prior ranges override the host's own.
func (h *SimpleHost) ComputeRanges(_ Key, prior Ranges) Ranges {
	out := h.Ranges.Clone()
	for k, v := range prior {
		out[k] = v
	}
	return out
}

// MatchRanges implements Host by keeping the dimensions spec carries.
func (h *SimpleHost) MatchRanges(spec Spec, ranges Ranges) Ranges {
	out := make(Ranges)
	for _, d := range spec.Dimensions() {
		if r, ok := ranges[d]; ok {
			out[d] = r
		}
	}
	return out
}

// Style implements Host. The cycle wraps around; an empty cycle yields an
// empty style.
func (h *SimpleHost) Style(index int) canvas.Style {
	if len(h.Styles) == 0 {
		return canvas.Style{}
	}
	i := index % len(h.Styles)
	if i < 0 {
		i += len(h.Styles)
	}
	return h.Styles[i].Clone()
}
