package annotate

import "github.com/gogpu/annotate/canvas"

// Payload is the kind-specific data of one annotation. The set of payload
// types is closed: VLine, HLine, VSpan, HSpan, Slope, Text, Labels, Arrow
// and Spline.
type Payload interface {
	Kind() Kind
	isPayload()
}

// Spec is the immutable per-frame description of one annotation.
type Spec struct {
	Data Payload
}

// Kind returns the kind of the payload.
func (s Spec) Kind() Kind {
	if s.Data == nil {
		return numKinds
	}
	return s.Data.Kind()
}

// Dimensions returns the names of the dimensions the annotation carries.
// Hosts use them to narrow the ranges passed to a plot.
func (s Spec) Dimensions() []string {
	switch d := s.Data.(type) {
	case nil:
		return nil
	case VLine, VSpan:
		return []string{"x"}
	case HLine, HSpan:
		return []string{"y"}
	case Labels:
		dims := []string{"x", "y", "text"}
		for _, vd := range d.Dims {
			dims = append(dims, vd.Name)
		}
		return dims
	default:
		return []string{"x", "y"}
	}
}

// VLine is a vertical line at X.
type VLine struct {
	X float64
}

// HLine is a horizontal line at Y.
type HLine struct {
	Y float64
}

// VSpan is a vertical band between X0 and X1.
type VSpan struct {
	X0, X1 float64
}

// HSpan is a horizontal band between Y0 and Y1.
type HSpan struct {
	Y0, Y1 float64
}

// Slope is the infinite line y = Gradient*x + Intercept.
type Slope struct {
	Gradient, Intercept float64
}

// Text is a single text label.
type Text struct {
	X, Y     float64
	Text     string
	FontSize float64
	HAlign   string
	VAlign   string
	Rotation float64
}

// Dimension is a named column of per-point values. Exactly one of Values
// (numeric) or Categories (categorical) is used; Values takes precedence.
type Dimension struct {
	Name       string
	Values     []float64
	Categories []string
}

// Categorical reports whether the dimension holds category labels.
func (d Dimension) Categorical() bool {
	return d.Values == nil && d.Categories != nil
}

// Len returns the number of values.
func (d Dimension) Len() int {
	if d.Categorical() {
		return len(d.Categories)
	}
	return len(d.Values)
}

// Labels is a set of text labels, one per point.
type Labels struct {
	X, Y []canvas.Coord
	Text []string

	// Dims holds additional value dimensions that can drive label color.
	Dims []Dimension
}

// Len returns the number of labels.
func (l Labels) Len() int {
	return len(l.Text)
}

// Dim returns the value dimension with the given name.
func (l Labels) Dim(name string) (Dimension, bool) {
	for _, d := range l.Dims {
		if d.Name == name {
			return d, true
		}
	}
	return Dimension{}, false
}

// Arrow is a text label connected by an arrow to (X, Y).
//
// Direction is the way the arrow points: "^", "v", "<", ">" or "up",
// "down", "left", "right", case-insensitive. Points is the distance between
// the arrow tip and the text, in points.
type Arrow struct {
	X, Y       float64
	Text       string
	Direction  string
	Points     float64
	ArrowStyle string
}

// PathCode is a spline vertex instruction.
type PathCode uint8

// Path codes, numbered like matplotlib's Path codes.
const (
	PathStop      PathCode = 0
	PathMoveTo    PathCode = 1
	PathLineTo    PathCode = 2
	PathCurve3    PathCode = 3
	PathCurve4    PathCode = 4
	PathClosePoly PathCode = 79
)

// Spline is an outline through Vertices driven by Codes. A nil Codes slice
// draws a polyline through all vertices.
type Spline struct {
	Vertices []canvas.Point
	Codes    []PathCode
}

func (VLine) Kind() Kind  { return KindVLine }
func (HLine) Kind() Kind  { return KindHLine }
func (VSpan) Kind() Kind  { return KindVSpan }
func (HSpan) Kind() Kind  { return KindHSpan }
func (Slope) Kind() Kind  { return KindSlope }
func (Text) Kind() Kind   { return KindText }
func (Labels) Kind() Kind { return KindLabels }
func (Arrow) Kind() Kind  { return KindArrow }
func (Spline) Kind() Kind { return KindSpline }

func (VLine) isPayload()  {}
func (HLine) isPayload()  {}
func (VSpan) isPayload()  {}
func (HSpan) isPayload()  {}
func (Slope) isPayload()  {}
func (Text) isPayload()   {}
func (Labels) isPayload() {}
func (Arrow) isPayload()  {}
func (Spline) isPayload() {}
