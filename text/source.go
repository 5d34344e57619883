package text

import (
	"bytes"
	"fmt"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/annotate/cache"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	name string

	// shaping is the go-text font used for measurement. It is read-only
	// and safe for concurrent use, unlike the faces built from it.
	shaping *gtfont.Font
	drawing *opentype.Font

	mu    sync.Mutex
	faces map[float64]font.Face

	extents *cache.ShardedCache[measureKey, Extents]
}

// NewFontSource parses font data (TTF or OTF).
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	name, _ := otf.Name(nil, 1) // family name
	return &FontSource{
		name:    name,
		shaping: face.Font,
		drawing: otf,
		faces:   make(map[float64]font.Face),
		extents: cache.NewSharded[measureKey, Extents](measureCacheSize, hashMeasureKey),
	}, nil
}

// Name returns the font family name, if the font carries one.
func (s *FontSource) Name() string { return s.name }

// Face returns a drawing face at size points and 72 DPI, so one point is
// one pixel. Faces are cached per size.
//
// The returned face is not safe for concurrent use.
func (s *FontSource) Face(size float64) (font.Face, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(s.drawing, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	s.faces[size] = f
	return f, nil
}

var (
	defaultOnce sync.Once
	defaultSrc  *FontSource
)

// Default returns the Go Regular font bundled with golang.org/x/image.
func Default() *FontSource {
	defaultOnce.Do(func() {
		src, err := NewFontSource(goregular.TTF)
		if err != nil {
			panic("text: bundled font: " + err.Error())
		}
		defaultSrc = src
	})
	return defaultSrc
}
