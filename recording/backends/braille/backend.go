// Package braille provides a terminal backend for the recording system.
// Each character cell carries a 2×4 grid of braille dots, so a recorder of
// width × height pixels renders as ceil(width/2) × ceil(height/4) cells.
// Cells are colored with lipgloss; text is written one rune per cell.
//
//	import _ "github.com/gogpu/annotate/recording/backends/braille"
//
//	b, _ := recording.NewBackend("braille")
//	_ = rec.Playback(b)
//	fmt.Println(b.(*braille.Backend).String())
package braille

import (
	"image/color"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/annotate/canvas"
	"github.com/gogpu/annotate/recording"
)

func init() {
	recording.Register("braille", func() recording.Backend {
		return NewBackend()
	})
}

// Option configures a Backend.
type Option func(*Backend)

// WithPlain disables coloring, producing bare braille and text runes.
func WithPlain() Option {
	return func(b *Backend) { b.plain = true }
}

// Backend renders recordings as braille characters.
// It implements recording.Backend and recording.WriterBackend.
type Backend struct {
	buf   *buffer
	plain bool
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
)

// NewBackend creates a new braille backend.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin allocates the cell grid for a width × height dot surface.
func (b *Backend) Begin(width, height int) error {
	b.buf = newBuffer((max(width, 0)+1)/2, (max(height, 0)+3)/4)
	return nil
}

// End finalizes the rendering.
func (b *Backend) End() error {
	return nil
}

// Size returns the grid size in cells.
func (b *Backend) Size() (cols, rows int) {
	if b.buf == nil {
		return 0, 0
	}
	return b.buf.w, b.buf.h
}

// StrokePolyline draws pts as dot lines. Stroke width is ignored.
func (b *Backend) StrokePolyline(pts []canvas.Point, s recording.Stroke) {
	if b.buf == nil || invisible(s.Color) {
		return
	}
	for i := 1; i < len(pts); i++ {
		x0, y0 := dot(pts[i-1])
		x1, y1 := dot(pts[i])
		b.buf.line(x0, y0, x1, y1, s.Color)
	}
}

// FillPolygon fills the polygon with dots.
func (b *Backend) FillPolygon(pts []canvas.Point, fill color.Color) {
	if b.buf == nil || len(pts) < 3 || invisible(fill) {
		return
	}
	ring := make([][2]int, len(pts))
	for i, p := range pts {
		x, y := dot(p)
		ring[i] = [2]int{x, y}
	}
	b.buf.fill(ring, fill)
}

// DrawText writes s horizontally into the cell row containing at. Rotation
// is ignored.
func (b *Backend) DrawText(s string, at canvas.Point, style recording.TextStyle) {
	if b.buf == nil || invisible(style.Color) {
		return
	}
	n := utf8.RuneCountInString(s)
	cx := int(math.Floor(at.X / 2))
	switch style.HAlign {
	case "center":
		cx -= n / 2
	case "right":
		cx -= n
	}
	cy := int(math.Floor(at.Y / 4))
	b.buf.text(cx, cy, s, style.Color)
}

// Lines returns the rendered rows.
func (b *Backend) Lines() []string {
	if b.buf == nil {
		return nil
	}
	out := make([]string, b.buf.h)
	for y, row := range b.buf.cells {
		out[y] = b.renderRow(row)
	}
	return out
}

// String returns the rendered rows joined by newlines.
func (b *Backend) String() string {
	return strings.Join(b.Lines(), "\n")
}

// WriteTo writes the rendered rows, each terminated by a newline.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range b.Lines() {
		n, err := io.WriteString(w, line+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// renderRow groups runs of equally colored cells into one lipgloss render.
func (b *Backend) renderRow(row []cell) string {
	var (
		sb    strings.Builder
		run   []rune
		runFg string
	)
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runFg == "" || b.plain {
			sb.WriteString(string(run))
		} else {
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runFg)).Render(string(run)))
		}
		run = run[:0]
	}
	for _, cl := range row {
		fg := ""
		if cl.color != nil && cl.rune() != ' ' {
			fg = hex(cl.color)
		}
		if fg != runFg {
			flush()
			runFg = fg
		}
		run = append(run, cl.rune())
	}
	flush()
	return sb.String()
}

func hex(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return ""
	}
	return cf.Clamped().Hex()
}

func dot(p canvas.Point) (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

func invisible(c color.Color) bool {
	if c == nil {
		return true
	}
	_, _, _, a := c.RGBA()
	return a == 0
}
