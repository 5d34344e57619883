package annotate

import "github.com/gogpu/annotate/canvas"

// SlopeLine is an infinite line described by gradient and intercept rather
// than by endpoints. It keeps its two endpoints on the edges of the visible
// x range and follows every viewport change of its canvas.
//
// The recompute callback runs synchronously inside the canvas's limit
// notification and redraws only this line. It is not re-entrant: it must not
// be triggered again while it runs, which holds as long as it never changes
// the viewport itself.
type SlopeLine struct {
	c         canvas.Canvas
	line      canvas.LineArtist
	gradient  float64
	intercept float64

	// vertical lines sit at x = intercept and span the y bounds.
	vertical bool

	conns   []canvas.ConnectionID
	removed bool
}

var _ canvas.Handle = (*SlopeLine)(nil)

// NewSlopeLine adds the line y = gradient*x + intercept to c.
//
// The line artist is registered first, the canvas is drawn once so the
// viewport is settled, the endpoints are computed from the current x bounds
// and finally the line subscribes to both limit-change notifications.
func NewSlopeLine(c canvas.Canvas, gradient, intercept float64, style canvas.Style) (*SlopeLine, error) {
	return newSlopeLine(c, gradient, intercept, false, style)
}

// NewVerticalLine adds a limit-tracking vertical line at x to c. It is the
// degenerate slope line with infinite gradient.
func NewVerticalLine(c canvas.Canvas, x float64, style canvas.Style) (*SlopeLine, error) {
	return newSlopeLine(c, 0, x, true, style)
}

func newSlopeLine(c canvas.Canvas, gradient, intercept float64, vertical bool, style canvas.Style) (*SlopeLine, error) {
	if c == nil {
		return nil, ErrNilCanvas
	}
	line, err := c.AddLine([2]float64{}, [2]float64{}, style)
	if err != nil {
		return nil, err
	}
	s := &SlopeLine{
		c:         c,
		line:      line,
		gradient:  gradient,
		intercept: intercept,
		vertical:  vertical,
	}

	c.Draw()
	s.updateLimits()

	s.conns = []canvas.ConnectionID{
		c.Connect(canvas.XLimChanged, s.updateLimits),
		c.Connect(canvas.YLimChanged, s.updateLimits),
	}
	return s, nil
}

// Gradient returns the slope of the line.
func (s *SlopeLine) Gradient() float64 { return s.gradient }

// Intercept returns the y intercept, or the x position of a vertical line.
func (s *SlopeLine) Intercept() float64 { return s.intercept }

// Vertical reports whether the line is vertical.
func (s *SlopeLine) Vertical() bool { return s.vertical }

// Data returns the current endpoints.
func (s *SlopeLine) Data() (xs, ys [2]float64) {
	return s.line.Data()
}

// Remove disconnects the line from limit notifications and removes it from
// the canvas.
func (s *SlopeLine) Remove() error {
	if s.removed {
		return canvas.ErrRemoved
	}
	s.removed = true
	for _, id := range s.conns {
		s.c.Disconnect(id)
	}
	s.conns = nil
	return s.line.Remove()
}

// updateLimits recomputes the endpoints from the current bounds.
func (s *SlopeLine) updateLimits() {
	if s.removed {
		return
	}
	var xs, ys [2]float64
	if s.vertical {
		xs = [2]float64{s.intercept, s.intercept}
		ys = s.c.YBound()
	} else {
		xs = s.c.XBound()
		ys = [2]float64{
			s.gradient*xs[0] + s.intercept,
			s.gradient*xs[1] + s.intercept,
		}
	}
	s.line.SetData(xs, ys)
	s.c.DrawArtist(s.line)
}
