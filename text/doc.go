// Package text measures and rasterizes annotation labels.
//
// A FontSource is a parsed font shared across the application; Face returns
// a lightweight drawing face at a given size. Measurement goes through
// HarfBuzz shaping (go-text/typesetting) so that kerning and ligatures are
// reflected in the reported advance, while glyph drawing uses
// golang.org/x/image/font/opentype.
//
//	src := text.Default()
//	ext := src.Measure("peak", 12)
//	dx, dy := ext.Align("center", "baseline")
package text
