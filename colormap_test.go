package annotate

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/annotate/palette"
)

func TestNormalize(t *testing.T) {
	m := ColorMapping{Min: 0, Max: 10}
	tests := []struct {
		v, want float64
	}{
		{5, 0.5},
		{0, 0},
		{10, 1},
		{-5, -0.5},
		{15, 1.5},
	}
	for _, tt := range tests {
		if got := m.Normalize(tt.v); got != tt.want {
			t.Errorf("Normalize(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	m := ColorMapping{Min: 3, Max: 3}
	if got := m.Normalize(7); got != 0 {
		t.Errorf("Normalize() with max == min = %v, want 0", got)
	}
	if diff := cmp.Diff([]float64{0, 0}, m.NormalizeAll([]float64{1, 9})); diff != "" {
		t.Errorf("NormalizeAll mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeAll(t *testing.T) {
	m := ColorMapping{Min: 2, Max: 6}
	in := []float64{2, 4, 8}
	got := m.NormalizeAll(in)
	if diff := cmp.Diff([]float64{0, 0.5, 1.5}, got); diff != "" {
		t.Errorf("NormalizeAll mismatch (-want +got):\n%s", diff)
	}
	if in[1] != 4 {
		t.Error("NormalizeAll modified its input")
	}
}

func TestIndex(t *testing.T) {
	m := ColorMapping{Categories: []string{"a", "b", "c"}}
	for i, c := range m.Categories {
		if got := m.Index(c); got != float64(i) {
			t.Errorf("Index(%q) = %v, want %d", c, got, i)
		}
	}
	if got := m.Index("z"); !math.IsNaN(got) {
		t.Errorf("Index(z) = %v, want NaN", got)
	}
	if !m.Categorical() {
		t.Error("Categorical() = false")
	}
}

func TestCategoryColor(t *testing.T) {
	p, _ := palette.Get("category10")
	m := ColorMapping{Categories: []string{"a", "b"}, Palette: p}
	if m.CategoryColor("a") == nil {
		t.Error("CategoryColor(a) = nil")
	}
	if got := m.CategoryColor("missing"); got != nil {
		t.Errorf("CategoryColor(missing) = %v, want nil", got)
	}
	if got := (ColorMapping{Categories: []string{"a"}}).CategoryColor("a"); got != nil {
		t.Errorf("CategoryColor without palette = %v, want nil", got)
	}
}

func TestContinuousColor(t *testing.T) {
	m := ColorMapping{Min: 0, Max: 1, Palette: palette.Default()}
	if m.ContinuousColor(0.5) == nil {
		t.Error("ContinuousColor(0.5) = nil")
	}
	if got := m.ContinuousColor(math.NaN()); got != nil {
		t.Errorf("ContinuousColor(NaN) = %v, want nil", got)
	}
}

func TestMappingFor(t *testing.T) {
	t.Run("range", func(t *testing.T) {
		d := Dimension{Name: "z", Values: []float64{1, 2}}
		m := mappingFor(d, Range{Min: 0, Max: 10}, true, nil)
		if m.Min != 0 || m.Max != 10 {
			t.Errorf("domain = [%v, %v], want [0, 10]", m.Min, m.Max)
		}
	})
	t.Run("data", func(t *testing.T) {
		d := Dimension{Name: "z", Values: []float64{4, math.NaN(), -2, 7}}
		m := mappingFor(d, Range{}, false, nil)
		if m.Min != -2 || m.Max != 7 {
			t.Errorf("domain = [%v, %v], want [-2, 7]", m.Min, m.Max)
		}
	})
	t.Run("invalid range falls back to data", func(t *testing.T) {
		d := Dimension{Name: "z", Values: []float64{1, 3}}
		m := mappingFor(d, Range{Min: 5, Max: 1}, true, nil)
		if m.Min != 1 || m.Max != 3 {
			t.Errorf("domain = [%v, %v], want [1, 3]", m.Min, m.Max)
		}
	})
	t.Run("categorical", func(t *testing.T) {
		d := Dimension{Name: "g", Categories: []string{"b", "a", "b", "c"}}
		m := mappingFor(d, Range{}, false, nil)
		if diff := cmp.Diff([]string{"a", "b", "c"}, m.Categories); diff != "" {
			t.Errorf("categories mismatch (-want +got):\n%s", diff)
		}
	})
}
