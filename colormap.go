package annotate

import (
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/gogpu/annotate/palette"
)

// ColorMapping pairs a value domain with a palette.
//
// A mapping with Categories is discrete: a value resolves to the index of
// its first occurrence in Categories. Otherwise it is continuous over
// [Min, Max].
type ColorMapping struct {
	Min, Max   float64
	Categories []string
	Palette    palette.Palette
}

// Categorical reports whether the mapping is discrete.
func (m ColorMapping) Categorical() bool {
	return m.Categories != nil
}

// Normalize maps v into [0, 1] relative to [Min, Max] as (v-Min)/(Max-Min).
//
// Values outside [Min, Max] are not clamped: they normalize below 0 or above
// 1 and it is up to the palette how to render them. A degenerate domain
// (Max == Min) normalizes every value to 0.
func (m ColorMapping) Normalize(v float64) float64 {
	span := m.Max - m.Min
	if span == 0 {
		return 0
	}
	return (v - m.Min) / span
}

// NormalizeAll normalizes vs, returning a new slice.
func (m ColorMapping) NormalizeAll(vs []float64) []float64 {
	out := append([]float64(nil), vs...)
	span := m.Max - m.Min
	if span == 0 {
		for i := range out {
			out[i] = 0
		}
		return out
	}
	floats.AddConst(-m.Min, out)
	floats.Scale(1/span, out)
	return out
}

// Index returns the position of v in Categories, or NaN when v is not one
// of them.
func (m ColorMapping) Index(v string) float64 {
	for i, c := range m.Categories {
		if c == v {
			return float64(i)
		}
	}
	return math.NaN()
}

// ContinuousColor returns the palette color for the numeric value v. The
// result is nil when the mapping has no palette or v is NaN.
func (m ColorMapping) ContinuousColor(v float64) color.Color {
	if m.Palette == nil {
		return nil
	}
	return m.Palette.At(m.Normalize(v))
}

// CategoryColor returns the palette color for the category v. Values that
// are not among the categories resolve to nil.
func (m ColorMapping) CategoryColor(v string) color.Color {
	idx := m.Index(v)
	if m.Palette == nil || math.IsNaN(idx) {
		return nil
	}
	return m.Palette.Category(int(idx), len(m.Categories))
}

// mappingFor builds the mapping for a label color dimension. Numeric
// dimensions take their domain from r when it is valid, otherwise from the
// data. Categorical dimensions use their sorted unique values.
func mappingFor(d Dimension, r Range, ok bool, p palette.Palette) ColorMapping {
	m := ColorMapping{Palette: p}
	if d.Categorical() {
		m.Categories = uniqueSorted(d.Categories)
		return m
	}
	if ok && r.Valid() {
		m.Min, m.Max = r.Min, r.Max
		return m
	}
	finite := make([]float64, 0, len(d.Values))
	for _, v := range d.Values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) > 0 {
		m.Min, m.Max = floats.Min(finite), floats.Max(finite)
	}
	return m
}

func uniqueSorted(vs []string) []string {
	seen := make(map[string]struct{}, len(vs))
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
