package braille

import (
	"image/color"
	"sort"
)

// dotBits maps a dot position inside a cell (column 0..1, row 0..3) to its
// bit in the U+2800 braille block.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// cell is one terminal character: a dot mask, or an overlaid text rune.
type cell struct {
	mask  uint8
	r     rune
	color color.Color
}

// buffer is a grid of braille cells with a 2×4 dot grid per cell.
type buffer struct {
	w, h  int // in cells
	cells [][]cell
}

func newBuffer(w, h int) *buffer {
	cells := make([][]cell, h)
	for i := range cells {
		cells[i] = make([]cell, w)
	}
	return &buffer{w: w, h: h, cells: cells}
}

// set turns on the dot at dot coordinates (dx, dy).
func (b *buffer) set(dx, dy int, c color.Color) {
	if dx < 0 || dy < 0 {
		return
	}
	cx, cy := dx/2, dy/4
	if cx >= b.w || cy >= b.h {
		return
	}
	cl := &b.cells[cy][cx]
	cl.mask |= dotBits[dx%2][dy%4]
	cl.color = c
}

// line draws a dot line using Bresenham.
func (b *buffer) line(x0, y0, x1, y1 int, c color.Color) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fill fills the polygon with the even-odd rule, one dot row at a time.
func (b *buffer) fill(pts [][2]int, c color.Color) {
	for y := 0; y < b.h*4; y++ {
		var xs []int
		for i := range pts {
			p, q := pts[i], pts[(i+1)%len(pts)]
			if p[1] == q[1] {
				continue
			}
			if (y >= p[1] && y < q[1]) || (y >= q[1] && y < p[1]) {
				t := float64(y-p[1]) / float64(q[1]-p[1])
				xs = append(xs, p[0]+int(t*float64(q[0]-p[0])))
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := max(0, xs[i]); x <= xs[i+1] && x < b.w*2; x++ {
				b.set(x, y, c)
			}
		}
	}
}

// text writes s into cell row cy starting at cell column cx. Text replaces
// any dots in the cells it covers.
func (b *buffer) text(cx, cy int, s string, c color.Color) {
	if cy < 0 || cy >= b.h {
		return
	}
	for _, r := range s {
		if cx >= b.w {
			return
		}
		if cx >= 0 {
			b.cells[cy][cx] = cell{r: r, color: c}
		}
		cx++
	}
}

// rune returns the character shown for a cell.
func (cl cell) rune() rune {
	switch {
	case cl.r != 0:
		return cl.r
	case cl.mask != 0:
		return rune(0x2800 + int(cl.mask))
	default:
		return ' '
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
