package canvas

import (
	"fmt"
	"image/color"
	"strings"
)

// namedColors holds the single letter and CSS names accepted by ParseColor.
var namedColors = map[string]string{
	"b": "#0000ff", "g": "#008000", "r": "#ff0000", "c": "#00bfbf",
	"m": "#bf00bf", "y": "#bfbf00", "k": "#000000", "w": "#ffffff",
	"black": "#000000", "white": "#ffffff", "red": "#ff0000",
	"green": "#008000", "blue": "#0000ff", "yellow": "#ffff00",
	"cyan": "#00ffff", "magenta": "#ff00ff", "gray": "#808080",
	"grey": "#808080", "orange": "#ffa500", "purple": "#800080",
	"brown": "#a52a2a", "pink": "#ffc0cb", "navy": "#000080",
	"teal": "#008080", "olive": "#808000", "maroon": "#800000",
	"lightgray": "#d3d3d3", "darkgray": "#a9a9a9",
}

// cycleColors is the default property cycle addressed as "C0".."C9".
var cycleColors = [...]string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// ParseColor parses a color specification.
//
// Accepted forms are hex strings ("#rgb", "#rgba", "#rrggbb", "#rrggbbaa",
// with or without '#'), color names ("red", "k"), cycle references
// ("C0".."C9") and "none", which yields a fully transparent color.
func ParseColor(s string) (color.NRGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch {
	case name == "none":
		return color.NRGBA{}, nil
	case len(name) == 2 && name[0] == 'c' && name[1] >= '0' && name[1] <= '9':
		return parseHexColor(cycleColors[name[1]-'0'])
	}
	if hex, ok := namedColors[name]; ok {
		return parseHexColor(hex)
	}
	return parseHexColor(name)
}

func parseHexColor(hex string) (color.NRGBA, error) {
	orig := hex
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b, a uint32
	a = 255

	ok := true
	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) &&
			parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) &&
			parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return color.NRGBA{}, fmt.Errorf("canvas: invalid color %q", orig)
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// parseHex is a helper for hex parsing. It reports false on a non-hex digit.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// WithAlpha returns c with its alpha scaled by alpha in [0, 1].
func WithAlpha(c color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	n.A = uint8(float64(n.A)*alpha + 0.5)
	return n
}
