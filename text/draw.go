package text

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// DrawOptions control how Draw places a string.
type DrawOptions struct {
	Size     float64
	Color    color.Color
	HAlign   string
	VAlign   string
	Rotation float64 // degrees, counter-clockwise
}

// Draw renders s onto dst with its alignment point at (x, y).
// A zero Size uses 10 points and a nil Color draws black.
func (src *FontSource) Draw(dst draw.Image, s string, x, y float64, opts DrawOptions) error {
	if s == "" {
		return nil
	}
	if opts.Size <= 0 {
		opts.Size = 10
	}
	if opts.Color == nil {
		opts.Color = color.Black
	}
	face, err := src.Face(opts.Size)
	if err != nil {
		return err
	}
	ext := src.Measure(s, opts.Size)
	dx, dy := ext.Align(opts.HAlign, opts.VAlign)

	if math.Mod(opts.Rotation, 360) == 0 {
		d := font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(opts.Color),
			Face: face,
			Dot:  fixed.P(int(math.Round(x+dx)), int(math.Round(y+dy))),
		}
		d.DrawString(s)
		return nil
	}

	// Render unrotated into a scratch image, then map it onto dst.
	pad := 2
	w := int(math.Ceil(ext.Width)) + 2*pad
	h := int(math.Ceil(ext.Height())) + 2*pad
	scratch := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  scratch,
		Src:  image.NewUniform(opts.Color),
		Face: face,
		Dot:  fixed.P(pad, pad+int(math.Ceil(ext.Ascent))),
	}
	d.DrawString(s)

	// Scratch coordinates of the anchor.
	ax := float64(pad) - dx
	ay := float64(pad) + math.Ceil(ext.Ascent) - dy

	sin, cos := math.Sincos(-opts.Rotation * math.Pi / 180)
	// dst = R * (p - anchor) + (x, y)
	m := f64.Aff3{
		cos, -sin, x - cos*ax + sin*ay,
		sin, cos, y - sin*ax - cos*ay,
	}
	xdraw.BiLinear.Transform(dst, m, scratch, scratch.Bounds(), xdraw.Over, nil)
	return nil
}
