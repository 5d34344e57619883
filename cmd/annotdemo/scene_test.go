package main

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/annotate"
	"github.com/gogpu/annotate/recording"
)

func TestDefaultSceneBuilds(t *testing.T) {
	scene, err := ParseScene([]byte(defaultScene))
	if err != nil {
		t.Fatalf("ParseScene() = %v", err)
	}
	rec, plots, err := scene.Build()
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if len(plots) != 8 {
		t.Errorf("plots = %d, want 8", len(plots))
	}
	// 7 single-primitive kinds, 4 labels and their marker scatter.
	if rec.Len() != 12 {
		t.Errorf("Len() = %d, want 12", rec.Len())
	}
	if got := rec.Count(recording.ArtistScatter); got != 1 {
		t.Errorf("Count(Scatter) = %d, want 1", got)
	}

	teardown(plots)
	if rec.Len() != 0 {
		t.Errorf("Len() after teardown = %d, want 0", rec.Len())
	}
}

func TestParseSceneDefaults(t *testing.T) {
	scene, err := ParseScene([]byte("annotations: []\n"))
	if err != nil {
		t.Fatalf("ParseScene() = %v", err)
	}
	if scene.Width != 800 || scene.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", scene.Width, scene.Height)
	}
	if scene.XLim != [2]float64{0, 1} {
		t.Errorf("XLim = %v, want [0 1]", scene.XLim)
	}
}

func TestParseSceneUnknownField(t *testing.T) {
	if _, err := ParseScene([]byte("bogus: 1\n")); err == nil {
		t.Error("ParseScene(unknown field) = nil error")
	}
}

func TestBuildUnknownKind(t *testing.T) {
	scene, _ := ParseScene([]byte("annotations:\n  - kind: Circle\n"))
	if _, _, err := scene.Build(); !errors.Is(err, annotate.ErrUnknownKind) {
		t.Errorf("Build() = %v, want ErrUnknownKind", err)
	}
}

func TestEntryLabels(t *testing.T) {
	e := Entry{
		Kind:  "Labels",
		Xs:    []interface{}{"a", "b"},
		Ys:    []interface{}{1, 2.5},
		Texts: []string{"p", "q"},
		Dims:  map[string][]interface{}{"group": {"x", "y"}},
	}
	spec, err := e.Spec()
	if err != nil {
		t.Fatalf("Spec() = %v", err)
	}
	l := spec.Data.(annotate.Labels)
	if !l.X[0].IsCategorical() || l.Y[1].Float() != 2.5 {
		t.Errorf("coords = %v, %v", l.X, l.Y)
	}
	if d, ok := l.Dim("group"); !ok || !d.Categorical() {
		t.Errorf("Dim(group) = %+v, %v, want categorical", d, ok)
	}
}

func TestToStyleNormalizesNumbers(t *testing.T) {
	s := toStyle(map[string]interface{}{"linewidth": 2, "rotation": []interface{}{1, 2.5}})
	if v, ok := s["linewidth"].(float64); !ok || v != 2 {
		t.Errorf("linewidth = %#v, want float64 2", s["linewidth"])
	}
	if v, ok := s["rotation"].([]any); !ok || v[0] != 1.0 {
		t.Errorf("rotation = %#v, want []any{1.0, 2.5}", s["rotation"])
	}
}

func TestViewerPanMovesSlope(t *testing.T) {
	scene, _ := ParseScene([]byte(`
xlim: [0, 10]
ylim: [0, 10]
annotations:
  - kind: Slope
    gradient: 2
    intercept: 1
`))
	rec, _, err := scene.Build()
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	var m tea.Model = newViewer(rec)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})

	if got := rec.XBound(); got != [2]float64{1, 11} {
		t.Fatalf("XBound() = %v, want [1 11]", got)
	}
	line := rec.Artists()[0]
	xs, ys := line.Data()
	if xs != [2]float64{1, 11} || ys != [2]float64{3, 23} {
		t.Errorf("slope data = %v, %v, want [1 11], [3 23]", xs, ys)
	}
	if m.View() == "" {
		t.Error("View() is empty")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("q did not quit")
	}
}
