package annotate

import "github.com/gogpu/annotate/canvas"

// BuildPath converts spline vertices and path codes into a path. A nil codes
// slice connects all vertices with straight lines. Codes otherwise follow
// matplotlib: CURVE3 consumes two vertices (control, end), CURVE4 three,
// CLOSEPOLY closes the subpath and ignores its vertex, STOP ends the path.
func BuildPath(verts []canvas.Point, codes []PathCode) (*canvas.Path, error) {
	path := canvas.NewPath()
	if len(verts) == 0 {
		return path, nil
	}
	if codes == nil {
		path.MoveTo(verts[0].X, verts[0].Y)
		for _, v := range verts[1:] {
			path.LineTo(v.X, v.Y)
		}
		return path, nil
	}
	if len(codes) != len(verts) {
		return nil, &PathCodeError{Index: len(codes), Reason: "codes and vertices differ in length"}
	}

	started := false
	for i := 0; i < len(verts); i++ {
		code := codes[i]
		v := verts[i]
		if code != PathMoveTo && code != PathStop && !started {
			return nil, &PathCodeError{Index: i, Code: code, Reason: "path must start with MOVETO"}
		}
		switch code {
		case PathStop:
			return path, nil
		case PathMoveTo:
			path.MoveTo(v.X, v.Y)
			started = true
		case PathLineTo:
			path.LineTo(v.X, v.Y)
		case PathCurve3:
			if i+1 >= len(verts) || codes[i+1] != PathCurve3 {
				return nil, &PathCodeError{Index: i, Code: code, Reason: "CURVE3 needs two vertices"}
			}
			end := verts[i+1]
			path.QuadraticTo(v.X, v.Y, end.X, end.Y)
			i++
		case PathCurve4:
			if i+2 >= len(verts) || codes[i+1] != PathCurve4 || codes[i+2] != PathCurve4 {
				return nil, &PathCodeError{Index: i, Code: code, Reason: "CURVE4 needs three vertices"}
			}
			c2, end := verts[i+1], verts[i+2]
			path.CubicTo(v.X, v.Y, c2.X, c2.Y, end.X, end.Y)
			i += 2
		case PathClosePoly:
			path.Close()
		default:
			return nil, &PathCodeError{Index: i, Code: code, Reason: "unknown code"}
		}
	}
	return path, nil
}

func (d *drawer) drawSpline(c canvas.Canvas, p Payload, style canvas.Style) ([]canvas.Handle, error) {
	v := p.(Spline)
	if len(v.Vertices) == 0 {
		return nil, nil
	}
	path, err := BuildPath(v.Vertices, v.Codes)
	if err != nil {
		return nil, err
	}
	if d.opts.invertAxes {
		path = path.Map(canvas.Point.Swap)
	}
	return one(c.AddPatch(path, style.With("facecolor", "none")))
}
