package canvas

import (
	"image/color"
	"sort"
	"strings"
)

// Style maps visual option names to values.
//
// A Style is treated as immutable once handed to a canvas: helpers that
// change options return a modified copy.
type Style map[string]any

// Clone returns a shallow copy of s. Cloning a nil Style returns an empty,
// non-nil Style.
func (s Style) Clone() Style {
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// With returns a copy of s with key set to v.
func (s Style) With(key string, v any) Style {
	out := s.Clone()
	out[key] = v
	return out
}

// Has reports whether key is present.
func (s Style) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Keys returns the option names in sorted order.
func (s Style) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Float returns a numeric option. Integer values are converted.
func (s Style) Float(key string) (float64, bool) {
	switch v := s[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	default:
		return 0, false
	}
}

// FloatOr returns a numeric option or def when it is missing.
func (s Style) FloatOr(key string, def float64) float64 {
	if v, ok := s.Float(key); ok {
		return v
	}
	return def
}

// String returns a string option.
func (s Style) String(key string) (string, bool) {
	v, ok := s[key].(string)
	return v, ok
}

// StringOr returns a string option or def when it is missing.
func (s Style) StringOr(key, def string) string {
	if v, ok := s.String(key); ok {
		return v
	}
	return def
}

// Visible reports the "visible" option, defaulting to true.
func (s Style) Visible() bool {
	if v, ok := s["visible"].(bool); ok {
		return v
	}
	return true
}

// Color returns a color option. Strings are parsed with ParseColor. The
// second result is false when the option is missing, is "none", or cannot
// be interpreted as a color.
func (s Style) Color(key string) (color.Color, bool) {
	switch v := s[key].(type) {
	case color.Color:
		return v, true
	case string:
		if strings.EqualFold(v, "none") {
			return nil, false
		}
		c, err := ParseColor(v)
		if err != nil {
			return nil, false
		}
		return c, true
	default:
		return nil, false
	}
}
