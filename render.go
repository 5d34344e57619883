package annotate

import (
	"fmt"

	"github.com/gogpu/annotate/canvas"
)

// renderFunc draws one annotation kind. On failure it returns the primitives
// it managed to create together with the error so the caller can remove
// them.
type renderFunc func(d *drawer, c canvas.Canvas, p Payload, style canvas.Style) ([]canvas.Handle, error)

// renderers is the dispatch table, indexed by Kind.
var renderers = [numKinds]renderFunc{
	KindVLine:  (*drawer).drawVLine,
	KindHLine:  (*drawer).drawHLine,
	KindVSpan:  (*drawer).drawVSpan,
	KindHSpan:  (*drawer).drawHSpan,
	KindSlope:  (*drawer).drawSlope,
	KindText:   (*drawer).drawText,
	KindLabels: (*drawer).drawLabels,
	KindArrow:  (*drawer).drawArrow,
	KindSpline: (*drawer).drawSpline,
}

// drawer carries the per-plot settings the kind renderers depend on.
type drawer struct {
	opts   plotOptions
	ranges Ranges
}

// Draw renders spec onto c and returns the created primitives. The style is
// filtered against the kind's whitelist first. Unlike Plot, Draw reports
// failures to the caller; primitives created before a failure are removed.
func Draw(c canvas.Canvas, spec Spec, style canvas.Style, ranges Ranges, opts ...Option) ([]canvas.Handle, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	d := &drawer{opts: o, ranges: ranges}
	handles, err := d.draw(c, spec, FilterStyle(spec.Kind(), style))
	if err != nil {
		removeAll(handles)
		return nil, err
	}
	return handles, nil
}

func (d *drawer) draw(c canvas.Canvas, spec Spec, style canvas.Style) (handles []canvas.Handle, err error) {
	if c == nil {
		return nil, ErrNilCanvas
	}
	if spec.Data == nil {
		return nil, ErrNilPayload
	}
	kind := spec.Kind()
	if !kind.Valid() || renderers[kind] == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}

	defer func() {
		if r := recover(); r != nil {
			err = &drawError{kind: kind, err: fmt.Errorf("panic: %v", r)}
		}
	}()

	handles, err = renderers[kind](d, c, spec.Data, style)
	if err != nil {
		return handles, &drawError{kind: kind, err: err}
	}
	Logger().Debug("annotate: drew annotation", "kind", kind.String(), "primitives", len(handles))
	return handles, nil
}

// removeAll removes every handle, logging failures.
func removeAll(handles []canvas.Handle) {
	for _, h := range handles {
		if err := h.Remove(); err != nil {
			Logger().Warn("annotate: removing primitive", "error", err)
		}
	}
}

func one(h canvas.Handle, err error) ([]canvas.Handle, error) {
	if err != nil {
		return nil, err
	}
	return []canvas.Handle{h}, nil
}

// orientation returns o, swapped when axes are inverted.
func (d *drawer) orientation(o canvas.Orientation) canvas.Orientation {
	if d.opts.invertAxes {
		return o.Swap()
	}
	return o
}

func (d *drawer) drawVLine(c canvas.Canvas, p Payload, style canvas.Style) ([]canvas.Handle, error) {
	v := p.(VLine)
	return one(c.AxLine(d.orientation(canvas.Vertical), v.X, style))
}

func (d *drawer) drawHLine(c canvas.Canvas, p Payload, style canvas.Style) ([]canvas.Handle, error) {
	v := p.(HLine)
	return one(c.AxLine(d.orientation(canvas.Horizontal), v.Y, style))
}

func (d *drawer) drawVSpan(c canvas.Canvas, p Payload, style canvas.Style) ([]canvas.Handle, error) {
	v := p.(VSpan)
	return one(c.AxSpan(d.orientation(canvas.Vertical), v.X0, v.X1, style))
}

func (d *drawer) drawHSpan(c canvas.Canvas, p Payload, style canvas.Style) ([]canvas.Handle, error) {
	v := p.(HSpan)
	return one(c.AxSpan(d.orientation(canvas.Horizontal), v.Y0, v.Y1, style))
}

func (d *drawer) drawSlope(c canvas.Canvas, p Payload, style canvas.Style) ([]canvas.Handle, error) {
	v := p.(Slope)
	if d.opts.invertAxes && d.opts.invertSlope {
		// x = g*y + b, solved for y.
		if v.Gradient == 0 {
			return one(NewVerticalLine(c, v.Intercept, style))
		}
		return one(NewSlopeLine(c, 1/v.Gradient, -v.Intercept/v.Gradient, style))
	}
	return one(NewSlopeLine(c, v.Gradient, v.Intercept, style))
}

func (d *drawer) drawText(c canvas.Canvas, p Payload, style canvas.Style) ([]canvas.Handle, error) {
	v := p.(Text)
	x, y := v.X, v.Y
	if d.opts.invertAxes {
		x, y = y, x
	}
	st := style.Clone()
	if v.FontSize > 0 {
		st["fontsize"] = v.FontSize
	}
	if v.HAlign != "" {
		st["horizontalalignment"] = v.HAlign
	}
	if v.VAlign != "" {
		st["verticalalignment"] = v.VAlign
	}
	st["rotation"] = v.Rotation
	return one(c.AddText(canvas.Num(x), canvas.Num(y), v.Text, st))
}
