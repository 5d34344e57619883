package annotate_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/annotate"
	"github.com/gogpu/annotate/canvas"
	"github.com/gogpu/annotate/recording"
)

// flakyCanvas fails every AddText call after the first okText.
type flakyCanvas struct {
	*recording.Recorder
	okText int
}

func (c *flakyCanvas) AddText(x, y canvas.Coord, text string, style canvas.Style) (canvas.Handle, error) {
	if c.okText <= 0 {
		return nil, errors.New("text backend unavailable")
	}
	c.okText--
	return c.Recorder.AddText(x, y, text, style)
}

func TestPlotInitialize(t *testing.T) {
	rec := newRecorder()
	host := &annotate.SimpleHost{
		Ranges: annotate.Ranges{"x": {Min: 0, Max: 10}, "z": {Min: 1, Max: 2}},
		Styles: []canvas.Style{{"color": "red"}, {"color": "blue"}},
	}
	p := annotate.NewPlot(host, rec, annotate.Key{1}, annotate.Spec{Data: annotate.VLine{X: 4}},
		annotate.WithCyclicIndex(3), annotate.WithInvertAxes(true))

	cfg := p.Initialize(annotate.Ranges{"x": {Min: -1, Max: 1}})

	want := annotate.AxisConfig{
		Key:      annotate.Key{1},
		Ranges:   annotate.Ranges{"x": {Min: -1, Max: 1}},
		Inverted: true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("AxisConfig mismatch (-want +got):\n%s", diff)
	}
	handles := p.Handles()
	if len(handles) != 1 {
		t.Fatalf("len(Handles()) = %d, want 1", len(handles))
	}
	a := artist(t, handles[0])
	if a.Style()["color"] != "blue" || a.Orientation() != canvas.Horizontal {
		t.Errorf("artist = %s with %v, want horizontal blue line", a.Orientation(), a.Style())
	}
}

func TestPlotShowLegend(t *testing.T) {
	p := annotate.NewPlot(&annotate.SimpleHost{}, newRecorder(), nil,
		annotate.Spec{Data: annotate.HLine{Y: 1}}, annotate.WithShowLegend(true))
	if cfg := p.Initialize(nil); !cfg.ShowLegend {
		t.Error("ShowLegend = false, want true")
	}
}

func TestPlotUpdateReplacesPrimitives(t *testing.T) {
	rec := newRecorder()
	labels := func(offset float64) annotate.Spec {
		return annotate.Spec{Data: annotate.Labels{
			X:    canvas.Nums(offset, offset+1),
			Y:    canvas.Nums(1, 2),
			Text: []string{"a", "b"},
		}}
	}
	p := annotate.NewPlot(&annotate.SimpleHost{}, rec, annotate.Key{0}, labels(0))
	p.Initialize(nil)

	for i := 1; i <= 3; i++ {
		p.Update(annotate.Key{i}, nil, labels(float64(i)), nil, nil)
		if rec.Len() != 2 {
			t.Fatalf("after update %d recorder holds %d artists, want 2", i, rec.Len())
		}
	}
	x, _ := artist(t, p.Handles()[0]).Anchor()
	if x.Float() != 3 {
		t.Errorf("first label x = %v, want 3", x)
	}
	if diff := cmp.Diff(annotate.Key{3}, p.Key()); diff != "" {
		t.Errorf("Key() mismatch (-want +got):\n%s", diff)
	}
	if p.Canvas() != canvas.Canvas(rec) {
		t.Error("nil axis replaced the canvas")
	}
}

func TestPlotUpdateSwitchesCanvas(t *testing.T) {
	first, second := newRecorder(), newRecorder()
	spec := annotate.Spec{Data: annotate.VLine{X: 1}}
	p := annotate.NewPlot(&annotate.SimpleHost{}, first, nil, spec)
	p.Initialize(nil)

	p.Update(nil, second, spec, nil, canvas.Style{"color": "green"})
	if first.Len() != 0 || second.Len() != 1 {
		t.Errorf("artists = %d, %d, want 0, 1", first.Len(), second.Len())
	}
	if p.Canvas() != canvas.Canvas(second) {
		t.Error("Canvas() did not switch to the new axis")
	}
}

func TestPlotDrawFailureRemovesPartial(t *testing.T) {
	logs := logBuffer(t)
	fc := &flakyCanvas{Recorder: newRecorder(), okText: 2}
	spec := annotate.Spec{Data: annotate.Labels{
		X:    canvas.Cats("a", "b", "c"),
		Y:    canvas.Nums(1, 2, 3),
		Text: []string{"1", "2", "3"},
	}}
	p := annotate.NewPlot(&annotate.SimpleHost{}, fc, nil, spec)
	p.Initialize(nil)

	if len(p.Handles()) != 0 {
		t.Errorf("len(Handles()) = %d, want 0 after a failed draw", len(p.Handles()))
	}
	if fc.Len() != 0 {
		t.Errorf("canvas holds %d artists, want partial primitives removed", fc.Len())
	}
	if !strings.Contains(logs.String(), "annotation not drawn") {
		t.Errorf("log = %q, want a draw failure warning", logs.String())
	}
}

func TestPlotDrawFailureKeepsPlotUsable(t *testing.T) {
	logBuffer(t)
	rec := newRecorder()
	p := annotate.NewPlot(&annotate.SimpleHost{}, rec, nil,
		annotate.Spec{Data: annotate.Arrow{Direction: "nowhere"}})
	p.Initialize(nil)
	if rec.Len() != 0 {
		t.Fatalf("recorder holds %d artists, want 0", rec.Len())
	}
	p.Update(nil, nil, annotate.Spec{Data: annotate.Arrow{Direction: "up", Points: 5}}, nil, nil)
	if rec.Len() != 1 {
		t.Errorf("recorder holds %d artists after a good update, want 1", rec.Len())
	}
}

func TestPlotTeardown(t *testing.T) {
	rec := newRecorder()
	p := annotate.NewPlot(&annotate.SimpleHost{}, rec, nil, annotate.Spec{Data: annotate.Slope{Gradient: 1}})
	p.Initialize(nil)
	if rec.Subscribers(canvas.XLimChanged) != 1 {
		t.Fatalf("Subscribers(xlim) = %d, want 1", rec.Subscribers(canvas.XLimChanged))
	}

	p.Teardown()
	p.Teardown()

	if rec.Len() != 0 || len(p.Handles()) != 0 {
		t.Errorf("after Teardown: %d artists, %d handles, want none", rec.Len(), len(p.Handles()))
	}
	if rec.Subscribers(canvas.XLimChanged) != 0 || rec.Subscribers(canvas.YLimChanged) != 0 {
		t.Error("Teardown left limit subscriptions behind")
	}
}

func TestSimpleHost(t *testing.T) {
	h := &annotate.SimpleHost{
		Ranges: annotate.Ranges{"x": {Min: 0, Max: 1}, "y": {Min: 2, Max: 3}},
		Styles: []canvas.Style{{"color": "a"}, {"color": "b"}},
	}
	got := h.MatchRanges(annotate.Spec{Data: annotate.VLine{}}, h.ComputeRanges(nil, nil))
	if diff := cmp.Diff(annotate.Ranges{"x": {Min: 0, Max: 1}}, got); diff != "" {
		t.Errorf("MatchRanges mismatch (-want +got):\n%s", diff)
	}
	if s := h.Style(-1); s["color"] != "b" {
		t.Errorf("Style(-1) = %v, want b", s)
	}
	if s := (&annotate.SimpleHost{}).Style(4); len(s) != 0 {
		t.Errorf("Style() on empty cycle = %v, want empty", s)
	}
}
