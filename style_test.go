package annotate

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/annotate/canvas"
)

func TestStyleOptions(t *testing.T) {
	tests := []struct {
		kind Kind
		want []string
	}{
		{KindVLine, []string{"alpha", "color", "linestyle", "linewidth", "visible"}},
		{KindSlope, []string{"alpha", "color", "linestyle", "linewidth", "visible"}},
		{KindHSpan, []string{"alpha", "color", "edgecolor", "facecolor", "linestyle", "linewidth", "visible"}},
		{KindText, []string{"alpha", "color", "family", "visible", "weight"}},
		{KindSpline, []string{"alpha", "edgecolor", "linestyle", "linewidth", "visible"}},
		{KindArrow, []string{"alpha", "color", "family", "fontsize", "linewidth", "lw", "textsize", "visible", "weight"}},
		{KindLabels, []string{
			"alpha", "cmap", "color", "family", "horizontalalignment", "rotation",
			"size", "verticalalignment", "visible", "weight",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := StyleOptions(tt.kind)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("StyleOptions(%v) mismatch (-want +got):\n%s", tt.kind, diff)
			}
			if !sort.StringsAreSorted(got) {
				t.Errorf("StyleOptions(%v) not sorted: %v", tt.kind, got)
			}
		})
	}
	if got := StyleOptions(numKinds); got != nil {
		t.Errorf("StyleOptions(invalid) = %v, want nil", got)
	}
}

func TestFilterStyle(t *testing.T) {
	logs := captureLogs(t)

	in := canvas.Style{"color": "red", "linewidth": 2.0, "marker": "o", "fontsize": 12}
	got := FilterStyle(KindVLine, in)

	want := canvas.Style{"color": "red", "linewidth": 2.0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FilterStyle mismatch (-want +got):\n%s", diff)
	}
	if len(in) != 4 {
		t.Errorf("FilterStyle modified its input: %v", in)
	}
	if diff := cmp.Diff([]string{"fontsize", "marker"}, logs.attrs("option")); diff != "" {
		t.Errorf("warned options mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterStyleNoWarningsWhenClean(t *testing.T) {
	logs := captureLogs(t)
	FilterStyle(KindSpline, canvas.Style{"edgecolor": "k", "alpha": 0.5})
	if w := logs.warnings(); len(w) != 0 {
		t.Errorf("unexpected warnings: %v", w)
	}
}

func TestFilterStyleNil(t *testing.T) {
	got := FilterStyle(KindText, nil)
	if got == nil || len(got) != 0 {
		t.Errorf("FilterStyle(nil) = %#v, want empty non-nil style", got)
	}
}
