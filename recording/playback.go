package recording

import (
	"image/color"
	"math"

	"github.com/gogpu/annotate"
	"github.com/gogpu/annotate/canvas"
)

// Defaults applied during playback for options a primitive does not set.
const (
	defaultLineWidth = 1.5
	defaultFontSize  = 10.0
	arrowHeadLength  = 8.0
	arrowHeadAngle   = 25 * math.Pi / 180
	curveSegments    = 24
)

var (
	defaultLineColor = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 255} // C0
	defaultTextColor = color.NRGBA{A: 255}
)

// dashPatterns maps linestyle names to on/off lengths in pixels at unit
// line width.
var dashPatterns = map[string][]float64{
	"--":      {3.7, 1.6},
	"dashed":  {3.7, 1.6},
	":":       {1, 1.65},
	"dotted":  {1, 1.65},
	"-.":      {6.4, 1.6, 1, 1.6},
	"dashdot": {6.4, 1.6, 1, 1.6},
}

// Playback renders the live, visible primitives to b in drawing order.
func (r *Recorder) Playback(b Backend) error {
	return r.PlaybackSize(b, r.width, r.height)
}

// PlaybackSize is like Playback but renders to a width × height surface
// instead of the recorder's own size.
func (r *Recorder) PlaybackSize(b Backend, width, height int) error {
	if err := b.Begin(width, height); err != nil {
		return err
	}
	m := ViewTransform(r.xlim, r.ylim, width, height)
	for _, a := range r.artists {
		if !a.style.Visible() {
			continue
		}
		if err := r.playArtist(b, m, a, width, height); err != nil {
			annotate.Logger().Warn("recording: skipping primitive during playback",
				"type", a.typ.String(), "id", a.id, "error", err)
		}
	}
	annotate.Logger().Debug("recording: playback done", "primitives", len(r.artists))
	return b.End()
}

func (r *Recorder) playArtist(b Backend, m Matrix, a *Artist, width, height int) error {
	w, h := float64(width), float64(height)
	size := canvas.Pt(w, h)
	switch a.typ {
	case ArtistAxLine:
		var p0, p1 canvas.Point
		if a.orient == canvas.Vertical {
			x := m.Apply(canvas.Pt(a.lo, 0)).X
			p0, p1 = canvas.Pt(x, 0), canvas.Pt(x, h)
		} else {
			y := m.Apply(canvas.Pt(0, a.lo)).Y
			p0, p1 = canvas.Pt(0, y), canvas.Pt(w, y)
		}
		strokeStyled(b, []canvas.Point{p0, p1}, a.style, "color", size)

	case ArtistAxSpan:
		var rect []canvas.Point
		if a.orient == canvas.Vertical {
			x0 := m.Apply(canvas.Pt(a.lo, 0)).X
			x1 := m.Apply(canvas.Pt(a.hi, 0)).X
			rect = []canvas.Point{canvas.Pt(x0, 0), canvas.Pt(x1, 0), canvas.Pt(x1, h), canvas.Pt(x0, h)}
		} else {
			y0 := m.Apply(canvas.Pt(0, a.lo)).Y
			y1 := m.Apply(canvas.Pt(0, a.hi)).Y
			rect = []canvas.Point{canvas.Pt(0, y0), canvas.Pt(w, y0), canvas.Pt(w, y1), canvas.Pt(0, y1)}
		}
		if fill, ok := fillColor(a.style); ok {
			b.FillPolygon(rect, fill)
		}
		if a.style.Has("edgecolor") {
			strokeStyled(b, append(rect, rect[0]), a.style, "edgecolor", size)
		}

	case ArtistLine:
		p0 := m.Apply(canvas.Pt(a.xs[0], a.ys[0]))
		p1 := m.Apply(canvas.Pt(a.xs[1], a.ys[1]))
		strokeStyled(b, []canvas.Point{p0, p1}, a.style, "color", size)

	case ArtistText:
		x, err := r.xunits.convert(a.x)
		if err != nil {
			return err
		}
		y, err := r.yunits.convert(a.y)
		if err != nil {
			return err
		}
		b.DrawText(a.text, m.Apply(canvas.Pt(x, y)), textStyle(a.style))

	case ArtistArrow:
		tip := m.Apply(a.xy)
		// Offsets are in points with y up; pixels have y down.
		at := tip.Add(canvas.Pt(a.offset.X, -a.offset.Y))
		arrow := a.arrowStyle
		b.DrawText(a.text, at, textStyle(a.style))
		strokeStyled(b, []canvas.Point{at, tip}, arrow, "color", size)
		if arrow.StringOr("arrowstyle", "->") != "-" {
			for _, wing := range arrowHead(at, tip) {
				strokeStyled(b, wing, arrow, "color", size)
			}
		}

	case ArtistPatch:
		lines := a.path.Map(m.Apply).Flatten(curveSegments)
		if fill, ok := fillColor(a.style); ok {
			for _, pts := range lines {
				b.FillPolygon(pts, fill)
			}
		}
		key := "edgecolor"
		if !a.style.Has(key) {
			key = "color"
		}
		for _, pts := range lines {
			strokeStyled(b, pts, a.style, key, size)
		}

	case ArtistScatter:
		size := a.style.FloatOr("s", 36)
		if size <= 0 {
			return nil
		}
		half := math.Sqrt(size) / 2
		c := styleColor(a.style, "color", defaultLineColor)
		for i := range a.sx {
			x, err := r.xunits.convert(a.sx[i])
			if err != nil {
				return err
			}
			y, err := r.yunits.convert(a.sy[i])
			if err != nil {
				return err
			}
			p := m.Apply(canvas.Pt(x, y))
			b.FillPolygon([]canvas.Point{
				canvas.Pt(p.X-half, p.Y-half), canvas.Pt(p.X+half, p.Y-half),
				canvas.Pt(p.X+half, p.Y+half), canvas.Pt(p.X-half, p.Y+half),
			}, c)
		}
	}
	return nil
}

// styleColor reads a color option and applies the "alpha" option.
func styleColor(s canvas.Style, key string, def color.Color) color.Color {
	c, ok := s.Color(key)
	if !ok {
		if s.Has(key) {
			// "none" or an unreadable value.
			return color.NRGBA{}
		}
		c = def
	}
	if alpha, ok := s.Float("alpha"); ok {
		return canvas.WithAlpha(c, alpha)
	}
	return c
}

// fillColor returns the face color of a filled primitive. The second result
// is false when the face is explicitly "none".
func fillColor(s canvas.Style) (color.Color, bool) {
	if v, ok := s.String("facecolor"); ok && v == "none" {
		return nil, false
	}
	if s.Has("facecolor") {
		return styleColor(s, "facecolor", defaultLineColor), true
	}
	return styleColor(s, "color", defaultLineColor), true
}

// strokeStyled strokes pts with the line options of s on a surface of the
// given size. Dashed lines are clipped to the surface, grown by one line
// width, before they are split into dashes.
func strokeStyled(b Backend, pts []canvas.Point, s canvas.Style, colorKey string, size canvas.Point) {
	width := s.FloatOr("linewidth", s.FloatOr("lw", defaultLineWidth))
	st := Stroke{Color: styleColor(s, colorKey, defaultLineColor), Width: width}
	pattern, ok := dashPatterns[s.StringOr("linestyle", "-")]
	if !ok {
		b.StrokePolyline(pts, st)
		return
	}
	margin := math.Max(width, 1)
	clip := [2]canvas.Point{canvas.Pt(-margin, -margin), size.Add(canvas.Pt(margin, margin))}
	for _, part := range clipPolyline(pts, clip) {
		for _, seg := range dashPolyline(part, pattern, width) {
			b.StrokePolyline(seg, st)
		}
	}
}

// clipPolyline returns the runs of pts inside the rectangle r, given as
// (min, max) corners. Segments with non-finite endpoints are dropped.
func clipPolyline(pts []canvas.Point, r [2]canvas.Point) [][]canvas.Point {
	var (
		out [][]canvas.Point
		cur []canvas.Point
	)
	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	for i := 1; i < len(pts); i++ {
		a, b, ok := clipSegment(pts[i-1], pts[i], r)
		if !ok {
			flush()
			continue
		}
		if len(cur) == 0 || cur[len(cur)-1] != a {
			flush()
			cur = []canvas.Point{a}
		}
		cur = append(cur, b)
	}
	flush()
	return out
}

// clipSegment clips the segment a-b to r (Liang-Barsky). Endpoints inside
// r are returned unchanged.
func clipSegment(a, b canvas.Point, r [2]canvas.Point) (canvas.Point, canvas.Point, bool) {
	if !finite(a) || !finite(b) {
		return a, b, false
	}
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X, a.X - r[0].X},
		{d.X, r[1].X - a.X},
		{-d.Y, a.Y - r[0].Y},
		{d.Y, r[1].Y - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = math.Min(t1, t)
		}
	}
	ca, cb := a, b
	if t0 > 0 {
		ca = a.Add(d.Mul(t0))
	}
	if t1 < 1 {
		cb = a.Add(d.Mul(t1))
	}
	return ca, cb, true
}

func finite(p canvas.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func textStyle(s canvas.Style) TextStyle {
	return TextStyle{
		Color:    styleColor(s, "color", defaultTextColor),
		Size:     s.FloatOr("fontsize", defaultFontSize),
		HAlign:   s.StringOr("horizontalalignment", "left"),
		VAlign:   s.StringOr("verticalalignment", "baseline"),
		Rotation: s.FloatOr("rotation", 0),
		Family:   s.StringOr("family", ""),
		Weight:   s.StringOr("weight", ""),
	}
}

// arrowHead returns the two wings of an arrow head at tip for an arrow
// coming from tail.
func arrowHead(tail, tip canvas.Point) [][]canvas.Point {
	d := tail.Sub(tip)
	length := math.Hypot(d.X, d.Y)
	if length == 0 {
		return nil
	}
	d = d.Mul(arrowHeadLength / length)
	wing := func(angle float64) []canvas.Point {
		sin, cos := math.Sincos(angle)
		v := canvas.Pt(d.X*cos-d.Y*sin, d.X*sin+d.Y*cos)
		return []canvas.Point{tip, tip.Add(v)}
	}
	return [][]canvas.Point{wing(arrowHeadAngle), wing(-arrowHeadAngle)}
}

// dashPolyline splits pts into the "on" segments of pattern, scaled by the
// line width.
func dashPolyline(pts []canvas.Point, pattern []float64, width float64) [][]canvas.Point {
	if len(pts) < 2 || len(pattern) == 0 {
		return [][]canvas.Point{pts}
	}
	if width < 1 {
		width = 1
	}
	var (
		out  [][]canvas.Point
		cur  = []canvas.Point{pts[0]}
		idx  int
		left = pattern[0] * width
		on   = true
	)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		pos := 0.0
		for segLen-pos > left {
			pos += left
			p := a.Lerp(b, pos/segLen)
			if on {
				out = append(out, append(cur, p))
				cur = nil
			} else {
				cur = []canvas.Point{p}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			left = pattern[idx] * width
		}
		left -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}
