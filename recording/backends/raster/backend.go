// Package raster provides a raster backend for the recording system.
// It renders recordings to an RGBA image using golang.org/x/image/vector
// for coverage and the text package for labels.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/annotate/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("raster")
//
//	// Or create directly
//	backend := raster.NewBackend()
//
//	// Playback recording
//	rec.Playback(backend)
//
//	// Get output
//	backend.SavePNG("output.png")
//	img := backend.Image()
package raster

import (
	"bufio"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/annotate"
	"github.com/gogpu/annotate/canvas"
	"github.com/gogpu/annotate/recording"
	"github.com/gogpu/annotate/text"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// joinSegments is the number of edges used to approximate a round join.
const joinSegments = 12

// Option configures a Backend.
type Option func(*Backend)

// WithBackground sets the color the image is cleared to in Begin.
// The default is opaque white.
func WithBackground(c color.Color) Option {
	return func(b *Backend) { b.background = c }
}

// WithFont sets the font used for text. The default is Go Regular.
func WithFont(src *text.FontSource) Option {
	return func(b *Backend) { b.font = src }
}

// Backend renders recordings to a pixel image.
// It implements recording.Backend and recording.WriterBackend.
type Backend struct {
	img        *image.RGBA
	ras        *vector.Rasterizer
	background color.Color
	font       *text.FontSource
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{background: color.White}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin allocates a width × height image cleared to the background color.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return &SizeError{Width: width, Height: height}
	}
	b.img = image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(b.background), image.Point{}, draw.Src)
	b.ras = vector.NewRasterizer(width, height)
	if b.font == nil {
		b.font = text.Default()
	}
	return nil
}

// End finalizes the rendering.
// After End is called, output methods (WriteTo, SavePNG) can be used.
func (b *Backend) End() error {
	return nil
}

// Width returns the image width, or 0 before Begin.
func (b *Backend) Width() int {
	if b.img == nil {
		return 0
	}
	return b.img.Bounds().Dx()
}

// Height returns the image height, or 0 before Begin.
func (b *Backend) Height() int {
	if b.img == nil {
		return 0
	}
	return b.img.Bounds().Dy()
}

// Image returns the rendered image.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// StrokePolyline strokes pts as quads per segment with round joins.
func (b *Backend) StrokePolyline(pts []canvas.Point, s recording.Stroke) {
	if b.img == nil || len(pts) < 2 || transparent(s.Color) {
		return
	}
	half := s.Width / 2
	if half <= 0 {
		half = 0.5
	}
	b.ras.Reset(b.Width(), b.Height())
	for i := 1; i < len(pts); i++ {
		b.segment(pts[i-1], pts[i], half)
	}
	for i := 1; i < len(pts)-1; i++ {
		b.disc(pts[i], half)
	}
	b.ras.Draw(b.img, b.img.Bounds(), image.NewUniform(s.Color), image.Point{})
}

// FillPolygon fills the closed polygon through pts.
func (b *Backend) FillPolygon(pts []canvas.Point, fill color.Color) {
	if b.img == nil || len(pts) < 3 || transparent(fill) {
		return
	}
	b.ras.Reset(b.Width(), b.Height())
	b.ras.MoveTo(f32(pts[0].X), f32(pts[0].Y))
	for _, p := range pts[1:] {
		b.ras.LineTo(f32(p.X), f32(p.Y))
	}
	b.ras.ClosePath()
	b.ras.Draw(b.img, b.img.Bounds(), image.NewUniform(fill), image.Point{})
}

// DrawText draws s with the backend font.
func (b *Backend) DrawText(s string, at canvas.Point, style recording.TextStyle) {
	if b.img == nil || transparent(style.Color) {
		return
	}
	err := b.font.Draw(b.img, s, at.X, at.Y, text.DrawOptions{
		Size:     style.Size,
		Color:    style.Color,
		HAlign:   style.HAlign,
		VAlign:   style.VAlign,
		Rotation: style.Rotation,
	})
	if err != nil {
		annotate.Logger().Warn("raster: text not drawn", "text", s, "error", err)
	}
}

// segment adds the quad covering a-b at the given half width. All quads and
// discs share one winding so overlaps do not cancel.
func (b *Backend) segment(p0, p1 canvas.Point, half float64) {
	d := p1.Sub(p0)
	l := math.Hypot(d.X, d.Y)
	if l == 0 {
		b.disc(p0, half)
		return
	}
	n := canvas.Pt(-d.Y/l*half, d.X/l*half)
	quad := [4]canvas.Point{p0.Add(n), p1.Add(n), p1.Sub(n), p0.Sub(n)}
	b.ras.MoveTo(f32(quad[0].X), f32(quad[0].Y))
	for _, q := range quad[1:] {
		b.ras.LineTo(f32(q.X), f32(q.Y))
	}
	b.ras.ClosePath()
}

func (b *Backend) disc(c canvas.Point, r float64) {
	for i := 0; i <= joinSegments; i++ {
		sin, cos := math.Sincos(-2 * math.Pi * float64(i) / joinSegments)
		x, y := f32(c.X+r*cos), f32(c.Y+r*sin)
		if i == 0 {
			b.ras.MoveTo(x, y)
		} else {
			b.ras.LineTo(x, y)
		}
	}
	b.ras.ClosePath()
}

// WriteTo writes the rendered image as PNG to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, ErrNotStarted
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SavePNG writes the rendered image as PNG to path.
func (b *Backend) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if _, err := b.WriteTo(bw); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func transparent(c color.Color) bool {
	if c == nil {
		return true
	}
	_, _, _, a := c.RGBA()
	return a == 0
}

func f32(v float64) float32 { return float32(v) }
