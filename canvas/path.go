package canvas

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a vector path in data coordinates.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Map returns a copy of the path with f applied to every point.
func (p *Path) Map(f func(Point) Point) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := f(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := f(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := f(e.Control)
			pt := f(e.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			ctrl1 := f(e.Control1)
			ctrl2 := f(e.Control2)
			pt := f(e.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	elements := make([]PathElement, len(p.elements))
	copy(elements, p.elements)
	return &Path{
		elements: elements,
		start:    p.start,
		current:  p.current,
	}
}

// Flatten converts the path into polylines, one per subpath. Curves are
// subdivided into segments uniform in the curve parameter. A closed subpath
// ends with a copy of its first point.
func (p *Path) Flatten(segments int) [][]Point {
	if segments < 1 {
		segments = 1
	}
	var (
		out   [][]Point
		cur   []Point
		start Point
		last  Point
	)
	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			start, last = e.Point, e.Point
			cur = []Point{e.Point}
		case LineTo:
			if cur == nil {
				cur = []Point{last}
			}
			cur = append(cur, e.Point)
			last = e.Point
		case QuadTo:
			if cur == nil {
				cur = []Point{last}
			}
			for i := 1; i <= segments; i++ {
				t := float64(i) / float64(segments)
				a := last.Lerp(e.Control, t)
				b := e.Control.Lerp(e.Point, t)
				cur = append(cur, a.Lerp(b, t))
			}
			last = e.Point
		case CubicTo:
			if cur == nil {
				cur = []Point{last}
			}
			for i := 1; i <= segments; i++ {
				t := float64(i) / float64(segments)
				a := last.Lerp(e.Control1, t)
				b := e.Control1.Lerp(e.Control2, t)
				c := e.Control2.Lerp(e.Point, t)
				ab := a.Lerp(b, t)
				bc := b.Lerp(c, t)
				cur = append(cur, ab.Lerp(bc, t))
			}
			last = e.Point
		case Close:
			if cur != nil {
				cur = append(cur, start)
			}
			flush()
			last = start
		}
	}
	flush()
	return out
}
