package recording

import "github.com/gogpu/annotate/canvas"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// This represents the transformation:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{
		A: sx, B: 0, C: 0,
		D: 0, E: sy, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
// This applies the transformation of `other` after `m`.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Apply transforms p.
func (m Matrix) Apply(p canvas.Point) canvas.Point {
	return canvas.Pt(m.A*p.X+m.B*p.Y+m.C, m.D*p.X+m.E*p.Y+m.F)
}

// ViewTransform maps the data rectangle xlim × ylim onto a width × height
// pixel grid with the origin at the top-left corner and y growing down.
// A degenerate limit pair maps to the middle of the grid.
func ViewTransform(xlim, ylim [2]float64, width, height int) Matrix {
	w, h := float64(width), float64(height)

	sx, tx := 0.0, w/2
	if dx := xlim[1] - xlim[0]; dx != 0 {
		sx = w / dx
		tx = -xlim[0] * sx
	}
	sy, ty := 0.0, h/2
	if dy := ylim[1] - ylim[0]; dy != 0 {
		sy = -h / dy
		ty = h - ylim[0]*sy
	}
	return Translate(tx, ty).Multiply(Scale(sx, sy))
}
