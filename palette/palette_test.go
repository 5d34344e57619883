package palette

import (
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuiltinsRegistered(t *testing.T) {
	want := []string{"category10", "coolwarm", "gray", "plasma", "viridis"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if Default() == nil || Default().Name() != "viridis" {
		t.Errorf("Default() = %v, want viridis", Default())
	}
}

func TestLinearEndpoints(t *testing.T) {
	p, _ := Get("gray")
	tests := []struct {
		t    float64
		want color.Color
	}{
		{0, color.NRGBA{A: 255}},
		{1, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{-3, color.NRGBA{A: 255}},
		{7, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	}
	for _, tt := range tests {
		if got := p.At(tt.t); got != tt.want {
			t.Errorf("At(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
	if got := p.At(math.NaN()); got != nil {
		t.Errorf("At(NaN) = %v, want nil", got)
	}
}

func TestLinearMidpointIsBetweenAnchors(t *testing.T) {
	p, _ := Get("gray")
	c := p.At(0.5).(color.NRGBA)
	if c.R < 64 || c.R > 192 || absDiff(c.R, c.G) > 2 || absDiff(c.G, c.B) > 2 {
		t.Errorf("At(0.5) = %v, want a mid gray", c)
	}
}

func TestListedCategoryWraps(t *testing.T) {
	p, _ := Get("category10")
	l := p.(*Listed)
	if got, want := p.Category(10, 12), p.Category(0, 12); got != want {
		t.Errorf("Category(10) = %v, want %v", got, want)
	}
	if got := p.Category(-1, 3); got != nil {
		t.Errorf("Category(-1) = %v, want nil", got)
	}
	if l.Len() != 10 {
		t.Errorf("Len() = %d, want 10", l.Len())
	}
}

func TestLinearCategorySpread(t *testing.T) {
	p, _ := Get("gray")
	if got, want := p.Category(0, 3), p.At(0); got != want {
		t.Errorf("Category(0,3) = %v, want %v", got, want)
	}
	if got, want := p.Category(2, 3), p.At(1); got != want {
		t.Errorf("Category(2,3) = %v, want %v", got, want)
	}
}

func TestNewLinearErrors(t *testing.T) {
	if _, err := NewLinear("one", "#000000"); err == nil {
		t.Error("NewLinear with one anchor: error = nil")
	}
	if _, err := NewLinear("bad", "#000000", "nope"); err == nil {
		t.Error("NewLinear with bad hex: error = nil")
	}
	if _, err := NewListed("empty"); err == nil {
		t.Error("NewListed with no colors: error = nil")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register(duplicate) did not panic")
		}
	}()
	Register(mustLinear("gray", "#000000", "#ffffff"))
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
