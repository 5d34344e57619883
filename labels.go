package annotate

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"

	"github.com/gogpu/annotate/canvas"
	"github.com/gogpu/annotate/palette"
)

// nonVectorizedLabelOpts are label options whose slice values are never
// split per point.
var nonVectorizedLabelOpts = []string{"cmap"}

// markerStyle is the style of the invisible scatter that registers label
// positions with the canvas's coordinate system.
var markerStyle = canvas.Style{"s": 0.0, "alpha": 0.0}

// drawLabels renders one text primitive per point.
//
// Positions are swapped when axes are inverted and then shifted by the
// configured offsets. If a color dimension is configured each label gets
// its palette color. Before any text is placed, an invisible scatter at all
// positions registers categorical coordinates with the canvas; it is only
// added when positions are categorical or colors are mapped.
//
// The returned handles are the text primitives in point order followed by
// the marker, if one was added.
func (d *drawer) drawLabels(c canvas.Canvas, p Payload, style canvas.Style) ([]canvas.Handle, error) {
	l := p.(Labels)
	n := l.Len()
	if len(l.X) != n || len(l.Y) != n {
		return nil, fmt.Errorf("%w: x=%d y=%d text=%d", ErrLengthMismatch, len(l.X), len(l.Y), n)
	}
	if n == 0 {
		return nil, nil
	}

	xs, ys := l.X, l.Y
	if d.opts.invertAxes {
		xs, ys = ys, xs
	}
	if d.opts.hasXOffset {
		xs = offsetCoords(xs, d.opts.xoffset, "x")
	}
	if d.opts.hasYOffset {
		ys = offsetCoords(ys, d.opts.yoffset, "y")
	}

	base := style.Clone()
	pal := takePalette(base)
	colors := d.labelColors(l, pal)

	if v, ok := base["size"]; ok {
		base["fontsize"] = v
		delete(base, "size")
	}
	if !base.Has("horizontalalignment") {
		base["horizontalalignment"] = "center"
	}
	if !base.Has("verticalalignment") {
		base["verticalalignment"] = "center"
	}
	vectorized := splitVectorized(base, n)

	var marker canvas.Handle
	if colors != nil || anyCategorical(xs) || anyCategorical(ys) {
		m, err := c.AddScatter(xs, ys, markerStyle.Clone())
		if err != nil {
			return nil, err
		}
		marker = m
	}

	handles := make([]canvas.Handle, 0, n+1)
	for i := 0; i < n; i++ {
		st := base.Clone()
		for k, vs := range vectorized {
			st[k] = vs[i]
		}
		if colors != nil {
			if colors[i] != nil {
				st["color"] = colors[i]
			} else {
				st["color"] = "none"
			}
		}
		h, err := c.AddText(xs[i], ys[i], l.Text[i], st)
		if err != nil {
			if marker != nil {
				handles = append(handles, marker)
			}
			return handles, err
		}
		handles = append(handles, h)
	}
	if marker != nil {
		handles = append(handles, marker)
	}
	return handles, nil
}

// labelColors resolves the per-point colors of l. It returns nil when no
// color dimension is configured or the dimension cannot be resolved; nil
// entries mark values without a color.
func (d *drawer) labelColors(l Labels, pal palette.Palette) []color.Color {
	if !d.opts.hasColorIndex {
		return nil
	}
	name := d.opts.colorIndex
	dim, ok := l.Dim(name)
	if !ok {
		Logger().Warn("annotate: labels rendered without color",
			"error", &DimensionError{Name: name})
		return nil
	}
	if dim.Len() != l.Len() {
		Logger().Warn("annotate: labels rendered without color",
			"error", fmt.Errorf("%w: dimension %q has %d values for %d labels",
				ErrLengthMismatch, name, dim.Len(), l.Len()))
		return nil
	}

	r, hasRange := d.ranges[name]
	m := mappingFor(dim, r, hasRange, pal)
	colors := make([]color.Color, l.Len())
	if m.Categorical() {
		for i, v := range dim.Categories {
			colors[i] = m.CategoryColor(v)
		}
		return colors
	}
	for i, t := range m.NormalizeAll(dim.Values) {
		colors[i] = pal.At(t)
	}
	return colors
}

// takePalette removes the "cmap" option from style and resolves it. Palette
// values are used as is, strings are looked up by name. Anything else falls
// back to the default palette.
func takePalette(style canvas.Style) palette.Palette {
	v, ok := style["cmap"]
	delete(style, "cmap")
	if !ok {
		return palette.Default()
	}
	switch cm := v.(type) {
	case palette.Palette:
		return cm
	case string:
		if p, found := palette.Get(cm); found {
			return p
		}
		Logger().Warn("annotate: unknown cmap, using default", "cmap", cm)
	default:
		Logger().Warn("annotate: unsupported cmap value, using default", "type", fmt.Sprintf("%T", v))
	}
	return palette.Default()
}

// splitVectorized removes options holding one value per label from style
// and returns them as per-point value lists.
func splitVectorized(style canvas.Style, n int) map[string][]any {
	out := make(map[string][]any)
	for k, v := range style {
		if contains(nonVectorizedLabelOpts, k) {
			continue
		}
		var vals []any
		switch vs := v.(type) {
		case []float64:
			vals = make([]any, len(vs))
			for i, x := range vs {
				vals[i] = x
			}
		case []string:
			vals = make([]any, len(vs))
			for i, x := range vs {
				vals[i] = x
			}
		case []color.Color:
			vals = make([]any, len(vs))
			for i, x := range vs {
				vals[i] = x
			}
		case []any:
			vals = vs
		default:
			continue
		}
		if len(vals) != n {
			continue
		}
		out[k] = vals
		delete(style, k)
	}
	return out
}

// offsetCoords shifts the numeric coordinates of cs by delta. Categorical
// coordinates cannot be shifted and are kept as they are.
func offsetCoords(cs []canvas.Coord, delta float64, axis string) []canvas.Coord {
	vals := make([]float64, len(cs))
	for i, c := range cs {
		vals[i] = c.Float()
	}
	floats.AddConst(delta, vals)

	out := make([]canvas.Coord, len(cs))
	skipped := 0
	for i, c := range cs {
		if c.IsCategorical() {
			out[i] = c
			skipped++
			continue
		}
		out[i] = canvas.Num(vals[i])
	}
	if skipped > 0 {
		Logger().Warn("annotate: offset ignored for categorical label positions",
			"axis", axis, "count", skipped)
	}
	return out
}

func anyCategorical(cs []canvas.Coord) bool {
	for _, c := range cs {
		if c.IsCategorical() {
			return true
		}
	}
	return false
}
