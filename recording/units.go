package recording

import "github.com/gogpu/annotate/canvas"

// categoryAxis maps category labels of one axis to consecutive integer
// positions in order of registration.
type categoryAxis struct {
	name   string
	index  map[string]int
	labels []string
}

func newCategoryAxis(name string) *categoryAxis {
	return &categoryAxis{name: name, index: make(map[string]int)}
}

// register adds the categorical labels of cs that are not known yet.
func (u *categoryAxis) register(cs []canvas.Coord) {
	for _, c := range cs {
		if !c.IsCategorical() {
			continue
		}
		if _, ok := u.index[c.Label()]; ok {
			continue
		}
		u.index[c.Label()] = len(u.labels)
		u.labels = append(u.labels, c.Label())
	}
}

// convert returns the axis position of c.
func (u *categoryAxis) convert(c canvas.Coord) (float64, error) {
	if !c.IsCategorical() {
		return c.Float(), nil
	}
	i, ok := u.index[c.Label()]
	if !ok {
		return 0, &canvas.ConversionError{Axis: u.name, Value: c.Label()}
	}
	return float64(i), nil
}

// categories returns the registered labels in position order.
func (u *categoryAxis) categories() []string {
	return append([]string(nil), u.labels...)
}
