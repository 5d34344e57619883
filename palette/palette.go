// Package palette provides the color maps used to colorize annotation
// labels.
//
// A [Palette] turns a normalized value in [0, 1] into a color, or picks the
// color of one category out of n. [Linear] palettes interpolate between
// anchor colors in CIE L*a*b* space; [Listed] palettes hold a fixed set of
// colors and cycle through them.
//
// Palettes are looked up by name with [Get]; the built-in names are
// "viridis", "plasma", "gray", "coolwarm" and "category10".
package palette

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette maps values to colors.
type Palette interface {
	// Name returns the registered name of the palette.
	Name() string

	// At returns the color for t in [0, 1]. Values outside the interval
	// resolve to the end colors. NaN yields nil.
	At(t float64) color.Color

	// Category returns the color of category i out of n. A negative i
	// yields nil.
	Category(i, n int) color.Color
}

// Linear interpolates between anchor colors.
type Linear struct {
	name    string
	anchors []colorful.Color
}

// NewLinear builds a linear palette from hex anchors. At least two anchors
// are required.
func NewLinear(name string, hexes ...string) (*Linear, error) {
	if len(hexes) < 2 {
		return nil, fmt.Errorf("palette: %s needs at least two anchors, got %d", name, len(hexes))
	}
	anchors := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette: %s anchor %d: %w", name, i, err)
		}
		anchors[i] = c
	}
	return &Linear{name: name, anchors: anchors}, nil
}

// Name implements Palette.
func (p *Linear) Name() string { return p.name }

// At implements Palette.
func (p *Linear) At(t float64) color.Color {
	if math.IsNaN(t) {
		return nil
	}
	if t <= 0 {
		return toNRGBA(p.anchors[0])
	}
	if t >= 1 {
		return toNRGBA(p.anchors[len(p.anchors)-1])
	}
	pos := t * float64(len(p.anchors)-1)
	i := int(pos)
	return toNRGBA(p.anchors[i].BlendLab(p.anchors[i+1], pos-float64(i)).Clamped())
}

// Category implements Palette. Categories are spread evenly over the
// palette.
func (p *Linear) Category(i, n int) color.Color {
	if i < 0 {
		return nil
	}
	if n <= 1 {
		return p.At(0)
	}
	return p.At(float64(i) / float64(n-1))
}

// Listed is a fixed list of colors.
type Listed struct {
	name   string
	colors []color.NRGBA
}

// NewListed builds a listed palette from hex colors.
func NewListed(name string, hexes ...string) (*Listed, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("palette: %s has no colors", name)
	}
	colors := make([]color.NRGBA, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette: %s color %d: %w", name, i, err)
		}
		colors[i] = toNRGBA(c)
	}
	return &Listed{name: name, colors: colors}, nil
}

// Name implements Palette.
func (p *Listed) Name() string { return p.name }

// At implements Palette. The unit interval is divided into equal bins, one
// per color.
func (p *Listed) At(t float64) color.Color {
	if math.IsNaN(t) {
		return nil
	}
	i := int(t * float64(len(p.colors)))
	if i < 0 {
		i = 0
	}
	if i >= len(p.colors) {
		i = len(p.colors) - 1
	}
	return p.colors[i]
}

// Category implements Palette. Colors repeat once the list is exhausted.
func (p *Listed) Category(i, _ int) color.Color {
	if i < 0 {
		return nil
	}
	return p.colors[i%len(p.colors)]
}

// Len returns the number of colors.
func (p *Listed) Len() int { return len(p.colors) }

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Palette)
)

// Register makes a palette available by name.
//
// Register panics if p is nil or a palette with the same name is already
// registered.
func Register(p Palette) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if p == nil {
		panic("palette: Register palette is nil")
	}
	if _, dup := registry[p.Name()]; dup {
		panic("palette: Register called twice for " + p.Name())
	}
	registry[p.Name()] = p
}

// Get returns the palette registered under name.
func Get(name string) (Palette, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	p, ok := registry[name]
	return p, ok
}

// Names returns the registered palette names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the palette used when none is configured.
func Default() Palette {
	p, _ := Get("viridis")
	return p
}

func mustLinear(name string, hexes ...string) *Linear {
	p, err := NewLinear(name, hexes...)
	if err != nil {
		panic(err)
	}
	return p
}

func mustListed(name string, hexes ...string) *Listed {
	p, err := NewListed(name, hexes...)
	if err != nil {
		panic(err)
	}
	return p
}

func init() {
	Register(mustLinear("viridis", "#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"))
	Register(mustLinear("plasma", "#0d0887", "#7e03a8", "#cc4778", "#f89540", "#f0f921"))
	Register(mustLinear("gray", "#000000", "#ffffff"))
	Register(mustLinear("coolwarm", "#3b4cc0", "#dddddd", "#b40426"))
	Register(mustListed("category10",
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf"))
}
