package recording

import (
	"fmt"

	"github.com/gogpu/annotate"
	"github.com/gogpu/annotate/canvas"
)

// Option configures a Recorder during creation.
type Option func(*Recorder)

// WithLimits sets the initial visible data rectangle.
func WithLimits(xlim, ylim [2]float64) Option {
	return func(r *Recorder) {
		r.xlim, r.ylim = xlim, ylim
	}
}

// WithCategories pre-registers category labels on the x and y axes.
func WithCategories(x, y []string) Option {
	return func(r *Recorder) {
		r.xunits.register(canvas.Cats(x...))
		r.yunits.register(canvas.Cats(y...))
	}
}

type callback struct {
	id canvas.ConnectionID
	fn func()
}

// Recorder is an in-memory canvas.Canvas. It keeps the primitives drawn on
// it in creation order, owns the viewport and the categorical units of both
// axes, and dispatches limit-change notifications synchronously.
//
// Recorded primitives can be rendered with Playback.
//
// A Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	xlim, ylim    [2]float64

	xunits, yunits *categoryAxis

	artists []*Artist
	nextID  uint64

	callbacks map[canvas.Event][]callback
	nextConn  canvas.ConnectionID
	notifying bool

	draws int
}

var _ canvas.Canvas = (*Recorder)(nil)

// NewRecorder creates a recorder for a width × height pixel surface showing
// the data rectangle [0, 1] × [0, 1] unless configured otherwise.
func NewRecorder(width, height int, opts ...Option) *Recorder {
	r := &Recorder{
		width:     width,
		height:    height,
		xlim:      [2]float64{0, 1},
		ylim:      [2]float64{0, 1},
		xunits:    newCategoryAxis("x"),
		yunits:    newCategoryAxis("y"),
		callbacks: make(map[canvas.Event][]callback),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Width returns the surface width in pixels.
func (r *Recorder) Width() int { return r.width }

// Height returns the surface height in pixels.
func (r *Recorder) Height() int { return r.height }

// Artists returns the live primitives in drawing order.
func (r *Recorder) Artists() []*Artist {
	return append([]*Artist(nil), r.artists...)
}

// Len returns the number of live primitives.
func (r *Recorder) Len() int { return len(r.artists) }

// Count returns the number of live primitives of type t.
func (r *Recorder) Count(t ArtistType) int {
	n := 0
	for _, a := range r.artists {
		if a.typ == t {
			n++
		}
	}
	return n
}

// Draws returns how many full redraws were requested.
func (r *Recorder) Draws() int { return r.draws }

// Categories returns the category labels registered on axis "x" or "y".
func (r *Recorder) Categories(axis string) []string {
	if axis == "y" {
		return r.yunits.categories()
	}
	return r.xunits.categories()
}

// XBound implements canvas.Canvas.
func (r *Recorder) XBound() [2]float64 { return r.xlim }

// YBound implements canvas.Canvas.
func (r *Recorder) YBound() [2]float64 { return r.ylim }

// SetXLim changes the visible x range and notifies XLimChanged subscribers.
func (r *Recorder) SetXLim(lo, hi float64) {
	r.xlim = [2]float64{lo, hi}
	annotate.Logger().Debug("recording: x limits changed", "lo", lo, "hi", hi)
	r.notify(canvas.XLimChanged)
}

// SetYLim changes the visible y range and notifies YLimChanged subscribers.
func (r *Recorder) SetYLim(lo, hi float64) {
	r.ylim = [2]float64{lo, hi}
	annotate.Logger().Debug("recording: y limits changed", "lo", lo, "hi", hi)
	r.notify(canvas.YLimChanged)
}

// Pan shifts the viewport by a fraction of its size along each axis.
func (r *Recorder) Pan(fx, fy float64) {
	if fx != 0 {
		d := (r.xlim[1] - r.xlim[0]) * fx
		r.SetXLim(r.xlim[0]+d, r.xlim[1]+d)
	}
	if fy != 0 {
		d := (r.ylim[1] - r.ylim[0]) * fy
		r.SetYLim(r.ylim[0]+d, r.ylim[1]+d)
	}
}

// Zoom scales the viewport about its center. A factor above 1 zooms in.
func (r *Recorder) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	zoom := func(lim [2]float64) (float64, float64) {
		c := (lim[0] + lim[1]) / 2
		half := (lim[1] - lim[0]) / 2 / factor
		return c - half, c + half
	}
	r.SetXLim(zoom(r.xlim))
	r.SetYLim(zoom(r.ylim))
}

// Connect implements canvas.Canvas.
func (r *Recorder) Connect(e canvas.Event, fn func()) canvas.ConnectionID {
	r.nextConn++
	id := r.nextConn
	r.callbacks[e] = append(r.callbacks[e], callback{id: id, fn: fn})
	return id
}

// Disconnect implements canvas.Canvas.
func (r *Recorder) Disconnect(id canvas.ConnectionID) {
	for e, cbs := range r.callbacks {
		for i, cb := range cbs {
			if cb.id == id {
				r.callbacks[e] = append(cbs[:i:i], cbs[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of callbacks connected to e.
func (r *Recorder) Subscribers(e canvas.Event) int {
	return len(r.callbacks[e])
}

func (r *Recorder) connected(e canvas.Event, id canvas.ConnectionID) bool {
	for _, cb := range r.callbacks[e] {
		if cb.id == id {
			return true
		}
	}
	return false
}

// notify runs the callbacks of e in registration order. Limit changes made
// by a callback update the viewport but are not dispatched again.
func (r *Recorder) notify(e canvas.Event) {
	if r.notifying {
		annotate.Logger().Warn("recording: limit change inside a notification was not dispatched",
			"event", e.String())
		return
	}
	r.notifying = true
	defer func() { r.notifying = false }()

	cbs := append([]callback(nil), r.callbacks[e]...)
	for _, cb := range cbs {
		if r.connected(e, cb.id) {
			cb.fn()
		}
	}
}

// Draw implements canvas.Canvas.
func (r *Recorder) Draw() {
	r.draws++
}

// DrawArtist implements canvas.Canvas. Handles that are not live artists
// of this recorder are ignored.
func (r *Recorder) DrawArtist(h canvas.Handle) {
	a, ok := h.(*Artist)
	if !ok || a.rec != r || a.removed {
		return
	}
	a.draws++
}

func (r *Recorder) add(a *Artist) *Artist {
	r.nextID++
	a.rec = r
	a.id = r.nextID
	a.style = a.style.Clone()
	r.artists = append(r.artists, a)
	return a
}

func (r *Recorder) remove(a *Artist) {
	for i, x := range r.artists {
		if x == a {
			r.artists = append(r.artists[:i], r.artists[i+1:]...)
			return
		}
	}
}

// AxLine implements canvas.Canvas.
func (r *Recorder) AxLine(o canvas.Orientation, pos float64, style canvas.Style) (canvas.Handle, error) {
	return r.add(&Artist{typ: ArtistAxLine, orient: o, lo: pos, style: style}), nil
}

// AxSpan implements canvas.Canvas.
func (r *Recorder) AxSpan(o canvas.Orientation, lo, hi float64, style canvas.Style) (canvas.Handle, error) {
	if lo > hi {
		lo, hi = hi, lo
	}
	return r.add(&Artist{typ: ArtistAxSpan, orient: o, lo: lo, hi: hi, style: style}), nil
}

// AddLine implements canvas.Canvas.
func (r *Recorder) AddLine(xs, ys [2]float64, style canvas.Style) (canvas.LineArtist, error) {
	return r.add(&Artist{typ: ArtistLine, xs: xs, ys: ys, style: style}), nil
}

// AddText implements canvas.Canvas. Categorical coordinates must already be
// registered on their axis.
func (r *Recorder) AddText(x, y canvas.Coord, text string, style canvas.Style) (canvas.Handle, error) {
	if _, err := r.xunits.convert(x); err != nil {
		return nil, err
	}
	if _, err := r.yunits.convert(y); err != nil {
		return nil, err
	}
	return r.add(&Artist{typ: ArtistText, x: x, y: y, text: text, style: style}), nil
}

// AddArrow implements canvas.Canvas.
func (r *Recorder) AddArrow(xy canvas.Point, text string, offset canvas.Point, arrow, textStyle canvas.Style) (canvas.Handle, error) {
	return r.add(&Artist{
		typ:        ArtistArrow,
		xy:         xy,
		text:       text,
		offset:     offset,
		arrowStyle: arrow.Clone(),
		style:      textStyle,
	}), nil
}

// AddPatch implements canvas.Canvas.
func (r *Recorder) AddPatch(path *canvas.Path, style canvas.Style) (canvas.Handle, error) {
	if path == nil {
		return nil, fmt.Errorf("recording: nil patch path")
	}
	return r.add(&Artist{typ: ArtistPatch, path: path.Clone(), style: style}), nil
}

// AddScatter implements canvas.Canvas. It registers every categorical
// coordinate with its axis.
func (r *Recorder) AddScatter(xs, ys []canvas.Coord, style canvas.Style) (canvas.Handle, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", canvas.ErrLengthMismatch, len(xs), len(ys))
	}
	r.xunits.register(xs)
	r.yunits.register(ys)
	return r.add(&Artist{
		typ:   ArtistScatter,
		sx:    append([]canvas.Coord(nil), xs...),
		sy:    append([]canvas.Coord(nil), ys...),
		style: style,
	}), nil
}
