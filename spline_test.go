package annotate

import (
	"errors"
	"testing"

	"github.com/gogpu/annotate/canvas"
)

func TestBuildPath(t *testing.T) {
	pts := []canvas.Point{canvas.Pt(0, 0), canvas.Pt(1, 1), canvas.Pt(2, 0), canvas.Pt(3, 1)}
	tests := []struct {
		name  string
		codes []PathCode
		want  []string
	}{
		{"polyline", nil, []string{"M", "L", "L", "L"}},
		{"cubic", []PathCode{PathMoveTo, PathCurve4, PathCurve4, PathCurve4}, []string{"M", "C"}},
		{"quad and line", []PathCode{PathMoveTo, PathCurve3, PathCurve3, PathLineTo}, []string{"M", "Q", "L"}},
		{"closed", []PathCode{PathMoveTo, PathLineTo, PathLineTo, PathClosePoly}, []string{"M", "L", "L", "Z"}},
		{"stop", []PathCode{PathMoveTo, PathLineTo, PathStop, PathLineTo}, []string{"M", "L"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := BuildPath(pts, tt.codes)
			if err != nil {
				t.Fatalf("BuildPath() = %v", err)
			}
			var got []string
			for _, e := range path.Elements() {
				got = append(got, elementName(e))
			}
			if len(got) != len(tt.want) {
				t.Fatalf("elements = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("elements = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func elementName(e canvas.PathElement) string {
	switch e.(type) {
	case canvas.MoveTo:
		return "M"
	case canvas.LineTo:
		return "L"
	case canvas.QuadTo:
		return "Q"
	case canvas.CubicTo:
		return "C"
	case canvas.Close:
		return "Z"
	}
	return "?"
}

func TestBuildPathErrors(t *testing.T) {
	pts := []canvas.Point{canvas.Pt(0, 0), canvas.Pt(1, 1), canvas.Pt(2, 0)}
	tests := []struct {
		name  string
		codes []PathCode
		index int
	}{
		{"length", []PathCode{PathMoveTo}, 1},
		{"no moveto", []PathCode{PathLineTo, PathLineTo, PathLineTo}, 0},
		{"short cubic", []PathCode{PathMoveTo, PathCurve4, PathCurve4}, 1},
		{"broken quad", []PathCode{PathMoveTo, PathCurve3, PathLineTo}, 1},
		{"unknown", []PathCode{PathMoveTo, 9, PathLineTo}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildPath(pts, tt.codes)
			var pcErr *PathCodeError
			if !errors.As(err, &pcErr) {
				t.Fatalf("BuildPath() = %v, want *PathCodeError", err)
			}
			if pcErr.Index != tt.index {
				t.Errorf("Index = %d, want %d", pcErr.Index, tt.index)
			}
		})
	}
}

func TestBuildPathEmpty(t *testing.T) {
	path, err := BuildPath(nil, []PathCode{PathMoveTo})
	if err != nil || path.Len() != 0 {
		t.Errorf("BuildPath(nil) = (%d elements, %v), want empty path", path.Len(), err)
	}
}
