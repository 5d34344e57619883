package annotate

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/gogpu/annotate/canvas"
)

// defaultArrowStyle is used when an Arrow payload names no arrow style.
const defaultArrowStyle = "->"

// ArrowOffset returns the text offset, in points, for an arrow pointing in
// direction. The text sits on the side opposite to where the arrow points:
// an arrow pointing down ("v") has its text above the tip.
func ArrowOffset(direction string, points float64) (canvas.Point, error) {
	switch cases.Fold().String(strings.TrimSpace(direction)) {
	case "v", "down":
		return canvas.Pt(0, points), nil
	case "^", "up":
		return canvas.Pt(0, -points), nil
	case "<", "left":
		return canvas.Pt(points, 0), nil
	case ">", "right":
		return canvas.Pt(-points, 0), nil
	default:
		return canvas.Point{}, &DirectionError{Direction: direction}
	}
}

// arrowStyles splits an arrow's style into the options of the arrow and
// those of its text. The deprecated "fontsize" text option is accepted with
// a warning; "textsize" is passed on as "fontsize" and takes precedence.
func arrowStyles(style canvas.Style, arrowStyle string) (arrow, text canvas.Style) {
	arrow = pick(style, arrowOnlyStyleOpts)
	if arrowStyle == "" {
		arrowStyle = defaultArrowStyle
	}
	arrow["arrowstyle"] = arrowStyle

	text = pick(style, arrowTextStyleOpts)
	if text.Has("fontsize") {
		Logger().Warn("annotate: Arrow fontsize style option is deprecated, use textsize option instead")
	}
	if v, ok := text["textsize"]; ok {
		text["fontsize"] = v
		delete(text, "textsize")
	}
	text["horizontalalignment"] = "center"
	text["verticalalignment"] = "center"
	return arrow, text
}

func (d *drawer) drawArrow(c canvas.Canvas, p Payload, style canvas.Style) ([]canvas.Handle, error) {
	v := p.(Arrow)
	offset, err := ArrowOffset(v.Direction, v.Points)
	if err != nil {
		return nil, err
	}
	xy := canvas.Pt(v.X, v.Y)
	if d.opts.invertAxes {
		xy = xy.Swap()
		offset = offset.Swap()
	}
	arrow, text := arrowStyles(style, v.ArrowStyle)
	return one(c.AddArrow(xy, v.Text, offset, arrow, text))
}
