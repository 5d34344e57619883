package recording

import (
	"github.com/gogpu/annotate/canvas"
)

// ArtistType identifies the type of a recorded primitive.
type ArtistType uint8

const (
	ArtistAxLine  ArtistType = iota // Full-span line
	ArtistAxSpan                    // Full-span band
	ArtistLine                      // Two-point line
	ArtistText                      // Text label
	ArtistArrow                     // Text with an arrow
	ArtistPatch                     // Path patch
	ArtistScatter                   // Point markers
)

// artistTypeNames maps ArtistType values to their string representation.
var artistTypeNames = [...]string{
	ArtistAxLine:  "AxLine",
	ArtistAxSpan:  "AxSpan",
	ArtistLine:    "Line",
	ArtistText:    "Text",
	ArtistArrow:   "Arrow",
	ArtistPatch:   "Patch",
	ArtistScatter: "Scatter",
}

// String returns the string representation of an ArtistType.
func (t ArtistType) String() string {
	if int(t) < len(artistTypeNames) {
		return artistTypeNames[t]
	}
	return "Unknown"
}

// Artist is one primitive held by a Recorder. It implements canvas.Handle
// and, for line artists, canvas.LineArtist.
//
// Which geometry accessors are meaningful depends on Type.
type Artist struct {
	rec   *Recorder
	id    uint64
	typ   ArtistType
	style canvas.Style

	orient canvas.Orientation
	lo, hi float64 // AxLine uses lo only

	xs, ys [2]float64

	x, y canvas.Coord
	text string

	xy, offset canvas.Point
	arrowStyle canvas.Style

	path *canvas.Path

	sx, sy []canvas.Coord

	draws   int
	removed bool
}

var (
	_ canvas.Handle     = (*Artist)(nil)
	_ canvas.LineArtist = (*Artist)(nil)
)

// ID returns the artist's identifier, unique within its Recorder.
func (a *Artist) ID() uint64 { return a.id }

// Type returns the artist type.
func (a *Artist) Type() ArtistType { return a.typ }

// Style returns the style the artist was created with.
func (a *Artist) Style() canvas.Style { return a.style }

// Removed reports whether the artist has been removed from its recorder.
func (a *Artist) Removed() bool { return a.removed }

// Draws returns how many times the artist was redrawn on its own.
func (a *Artist) Draws() int { return a.draws }

// Remove implements canvas.Handle.
func (a *Artist) Remove() error {
	if a.removed {
		return canvas.ErrRemoved
	}
	a.rec.remove(a)
	a.removed = true
	return nil
}

// SetData implements canvas.LineArtist.
func (a *Artist) SetData(xs, ys [2]float64) {
	a.xs, a.ys = xs, ys
}

// Data implements canvas.LineArtist.
func (a *Artist) Data() (xs, ys [2]float64) {
	return a.xs, a.ys
}

// Orientation returns the orientation of an AxLine or AxSpan.
func (a *Artist) Orientation() canvas.Orientation { return a.orient }

// Position returns the position of an AxLine.
func (a *Artist) Position() float64 { return a.lo }

// Extent returns the two edges of an AxSpan, lower first.
func (a *Artist) Extent() (lo, hi float64) { return a.lo, a.hi }

// Anchor returns the position of a Text artist.
func (a *Artist) Anchor() (x, y canvas.Coord) { return a.x, a.y }

// Text returns the string of a Text or Arrow artist.
func (a *Artist) Text() string { return a.text }

// Target returns the point an Arrow points at and the text offset in
// points.
func (a *Artist) Target() (xy, offset canvas.Point) { return a.xy, a.offset }

// ArrowStyle returns the arrow options of an Arrow artist.
func (a *Artist) ArrowStyle() canvas.Style { return a.arrowStyle }

// Path returns the path of a Patch artist.
func (a *Artist) Path() *canvas.Path { return a.path }

// Points returns the marker positions of a Scatter artist.
func (a *Artist) Points() (xs, ys []canvas.Coord) { return a.sx, a.sy }
