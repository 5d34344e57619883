package canvas

import "strconv"

// Coord is a position along one axis. It holds either a number or a
// category label.
type Coord struct {
	num   float64
	cat   string
	isCat bool
}

// Num returns a numeric coordinate.
func Num(v float64) Coord { return Coord{num: v} }

// Cat returns a categorical coordinate.
func Cat(label string) Coord { return Coord{cat: label, isCat: true} }

// Nums converts numbers to coordinates.
func Nums(vs ...float64) []Coord {
	out := make([]Coord, len(vs))
	for i, v := range vs {
		out[i] = Num(v)
	}
	return out
}

// Cats converts labels to categorical coordinates.
func Cats(labels ...string) []Coord {
	out := make([]Coord, len(labels))
	for i, l := range labels {
		out[i] = Cat(l)
	}
	return out
}

// IsCategorical reports whether c holds a category label.
func (c Coord) IsCategorical() bool { return c.isCat }

// Float returns the numeric value. It is 0 for categorical coordinates.
func (c Coord) Float() float64 { return c.num }

// Label returns the category label. It is "" for numeric coordinates.
func (c Coord) Label() string { return c.cat }

// Offset returns c shifted by d. Categorical coordinates are returned
// unchanged.
func (c Coord) Offset(d float64) Coord {
	if c.isCat {
		return c
	}
	return Num(c.num + d)
}

// String formats the coordinate.
func (c Coord) String() string {
	if c.isCat {
		return strconv.Quote(c.cat)
	}
	return strconv.FormatFloat(c.num, 'g', -1, 64)
}
