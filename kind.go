package annotate

// Kind identifies the variant of an annotation.
type Kind uint8

const (
	KindVLine  Kind = iota // Vertical line at an x position
	KindHLine              // Horizontal line at a y position
	KindVSpan              // Vertical band between two x positions
	KindHSpan              // Horizontal band between two y positions
	KindSlope              // Infinite line given by gradient and intercept
	KindText               // Single text label
	KindLabels             // Vectorized, optionally color-mapped text labels
	KindArrow              // Text with an arrow pointing at a position
	KindSpline             // Unfilled outline built from path codes

	numKinds
)

// kindNames maps Kind values to their string representation.
var kindNames = [...]string{
	KindVLine:  "VLine",
	KindHLine:  "HLine",
	KindVSpan:  "VSpan",
	KindHSpan:  "HSpan",
	KindSlope:  "Slope",
	KindText:   "Text",
	KindLabels: "Labels",
	KindArrow:  "Arrow",
	KindSpline: "Spline",
}

// String returns the string representation of a Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Valid reports whether k names one of the defined kinds.
func (k Kind) Valid() bool {
	return k < numKinds
}

// ParseKind returns the Kind with the given name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}
