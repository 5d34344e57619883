package text

import (
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/annotate/cache"
)

// measureCacheSize is the per-shard capacity of a source's extents cache.
const measureCacheSize = 512

type measureKey struct {
	s    string
	size float64
}

func hashMeasureKey(k measureKey) uint64 {
	return cache.StringHasher(k.s) ^ math.Float64bits(k.size)
}

// Extents are the metrics of a shaped single-line string, in pixels.
// Ascent is above the baseline and Descent below it; both are positive.
type Extents struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height returns Ascent + Descent.
func (e Extents) Height() float64 { return e.Ascent + e.Descent }

// Align returns the offset from an anchor point to the left end of the
// baseline for the given alignments, in pixel space with y down.
//
// halign is "left", "center" or "right"; valign is "top", "center",
// "baseline" or "bottom". Unknown values behave like "left" and "baseline".
func (e Extents) Align(halign, valign string) (dx, dy float64) {
	switch halign {
	case "center":
		dx = -e.Width / 2
	case "right":
		dx = -e.Width
	}
	switch valign {
	case "top":
		dy = e.Ascent
	case "center", "center_baseline":
		dy = (e.Ascent - e.Descent) / 2
	case "bottom":
		dy = -e.Descent
	}
	return dx, dy
}

// HarfbuzzShaper keeps internal buffers and is not safe for concurrent use.
var shaperPool = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

// Measure shapes s at size points and returns its extents. Results are
// cached per source.
func (src *FontSource) Measure(s string, size float64) Extents {
	return src.extents.GetOrCreate(measureKey{s, size}, func() Extents {
		return src.shape(s, size)
	})
}

// MeasureStats returns the counters of the extents cache.
func (src *FontSource) MeasureStats() cache.Stats {
	return src.extents.Stats()
}

func (src *FontSource) shape(s string, size float64) Extents {
	runes := []rune(s)
	if len(runes) == 0 {
		return Extents{}
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(src.shaping),
		Size:      toFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)

	return Extents{
		Width:   fromFixed(out.Advance),
		Ascent:  fromFixed(out.LineBounds.Ascent),
		Descent: -fromFixed(out.LineBounds.Descent),
	}
}

// Measure measures s with the default font.
func Measure(s string, size float64) Extents {
	return Default().Measure(s, size)
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func toFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(v * 64) }

func fromFixed(v fixed.Int26_6) float64 { return float64(v) / 64 }
