package canvas

// Orientation selects the axis a full-span line or band runs across.
type Orientation uint8

const (
	// Vertical primitives sit at an x position and span the y viewport.
	Vertical Orientation = iota
	// Horizontal primitives sit at a y position and span the x viewport.
	Horizontal
)

// String returns "vertical" or "horizontal".
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Swap returns the other orientation.
func (o Orientation) Swap() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Event identifies a viewport notification.
type Event uint8

const (
	// XLimChanged fires after the visible x bounds change.
	XLimChanged Event = iota
	// YLimChanged fires after the visible y bounds change.
	YLimChanged
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case XLimChanged:
		return "xlim_changed"
	case YLimChanged:
		return "ylim_changed"
	default:
		return "unknown"
	}
}

// ConnectionID identifies a callback registered with Connect.
type ConnectionID uint64

// Handle references one primitive drawn on a canvas.
//
// Remove deletes the primitive from the canvas. Removing a primitive twice
// returns ErrRemoved.
type Handle interface {
	Remove() error
}

// LineArtist is a line primitive whose two endpoints can be changed after
// creation.
type LineArtist interface {
	Handle

	// SetData replaces the endpoints of the line.
	SetData(xs, ys [2]float64)

	// Data returns the current endpoints.
	Data() (xs, ys [2]float64)
}

// Canvas is the drawing surface of one plot axis.
//
// All methods are synchronous: a primitive is recorded by the time the call
// returns. Implementations are not required to be safe for concurrent use.
type Canvas interface {
	// AxLine draws a line across the whole viewport at pos.
	AxLine(o Orientation, pos float64, style Style) (Handle, error)

	// AxSpan fills a band across the whole viewport between lo and hi.
	AxSpan(o Orientation, lo, hi float64, style Style) (Handle, error)

	// AddLine registers a two-point line artist.
	AddLine(xs, ys [2]float64, style Style) (LineArtist, error)

	// AddText places text at (x, y). Alignment, rotation and font size are
	// read from style.
	AddText(x, y Coord, text string, style Style) (Handle, error)

	// AddArrow places text at an offset (in points) from xy with an arrow
	// pointing from the text to xy.
	AddArrow(xy Point, text string, offset Point, arrow, textStyle Style) (Handle, error)

	// AddPatch adds a path patch.
	AddPatch(path *Path, style Style) (Handle, error)

	// AddScatter adds one marker per (xs[i], ys[i]).
	AddScatter(xs, ys []Coord, style Style) (Handle, error)

	// XBound returns the visible x extent as (lower, upper).
	XBound() [2]float64

	// YBound returns the visible y extent as (lower, upper).
	YBound() [2]float64

	// Connect registers fn for event e.
	Connect(e Event, fn func()) ConnectionID

	// Disconnect removes a callback registered with Connect.
	Disconnect(id ConnectionID)

	// Draw redraws the whole canvas.
	Draw()

	// DrawArtist redraws a single primitive.
	DrawArtist(h Handle)
}
