package annotate

import (
	"sort"

	"github.com/gogpu/annotate/canvas"
)

var (
	lineStyleOpts = []string{"alpha", "color", "linewidth", "linestyle", "visible"}
	spanStyleOpts = []string{"alpha", "color", "facecolor", "edgecolor", "linewidth", "linestyle", "visible"}
	textStyleOpts = []string{"alpha", "color", "family", "weight", "visible"}

	labelsStyleOpts = []string{
		"alpha", "color", "family", "weight", "size", "visible",
		"horizontalalignment", "verticalalignment", "cmap", "rotation",
	}

	// Arrow options are split between the arrow patch and the text.
	arrowOnlyStyleOpts = []string{"alpha", "color", "lw", "linewidth", "visible"}
	arrowTextStyleOpts = append(append([]string{}, textStyleOpts...), "textsize", "fontsize")

	splineStyleOpts = []string{"alpha", "edgecolor", "linewidth", "linestyle", "visible"}
)

// styleOpts is the per-kind whitelist of recognized style options.
var styleOpts = [numKinds][]string{
	KindVLine:  lineStyleOpts,
	KindHLine:  lineStyleOpts,
	KindVSpan:  spanStyleOpts,
	KindHSpan:  spanStyleOpts,
	KindSlope:  lineStyleOpts,
	KindText:   textStyleOpts,
	KindLabels: labelsStyleOpts,
	KindArrow:  union(arrowOnlyStyleOpts, arrowTextStyleOpts),
	KindSpline: splineStyleOpts,
}

// StyleOptions returns the style option names recognized for kind, sorted.
func StyleOptions(kind Kind) []string {
	if !kind.Valid() {
		return nil
	}
	out := append([]string(nil), styleOpts[kind]...)
	sort.Strings(out)
	return out
}

// FilterStyle returns the subset of style recognized for kind. Unrecognized
// options are dropped and reported as warnings; they never reach the canvas.
// The input is not modified.
func FilterStyle(kind Kind, style canvas.Style) canvas.Style {
	out := make(canvas.Style, len(style))
	if !kind.Valid() {
		return out
	}
	allowed := styleOpts[kind]
	for _, key := range style.Keys() {
		if contains(allowed, key) {
			out[key] = style[key]
			continue
		}
		Logger().Warn("annotate: dropping unsupported style option",
			"kind", kind.String(), "option", key)
	}
	return out
}

// pick returns the options of style named in keys.
func pick(style canvas.Style, keys []string) canvas.Style {
	out := make(canvas.Style, len(keys))
	for _, k := range keys {
		if v, ok := style[k]; ok {
			out[k] = v
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func union(a, b []string) []string {
	out := append([]string(nil), a...)
	for _, v := range b {
		if !contains(out, v) {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
