package text

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSource(t *testing.T) {
	if _, err := NewFontSource(nil); err != ErrEmptyFontData {
		t.Errorf("NewFontSource(nil) = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte("not a font")); err == nil {
		t.Error("NewFontSource(garbage) = nil error")
	}
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource(goregular) = %v", err)
	}
	if src.Name() == "" {
		t.Error("Name() is empty")
	}
}

func TestMeasure(t *testing.T) {
	short := Measure("i", 12)
	long := Measure("iiii", 12)
	if short.Width <= 0 {
		t.Fatalf("Measure(i).Width = %v, want > 0", short.Width)
	}
	if long.Width <= short.Width*3 {
		t.Errorf("Measure(iiii).Width = %v, want about 4×%v", long.Width, short.Width)
	}
	if short.Ascent <= 0 || short.Descent <= 0 {
		t.Errorf("Measure(i) = %+v, want positive ascent and descent", short)
	}

	big := Measure("i", 24)
	if big.Width <= short.Width {
		t.Errorf("24pt width %v not larger than 12pt width %v", big.Width, short.Width)
	}
	if got := Measure("", 12).Width; got != 0 {
		t.Errorf("Measure(\"\").Width = %v, want 0", got)
	}
}

func TestExtentsAlign(t *testing.T) {
	e := Extents{Width: 10, Ascent: 8, Descent: 2}
	tests := []struct {
		h, v   string
		dx, dy float64
	}{
		{"left", "baseline", 0, 0},
		{"center", "top", -5, 8},
		{"right", "bottom", -10, -2},
		{"center", "center", -5, 3},
		{"bogus", "bogus", 0, 0},
	}
	for _, tt := range tests {
		dx, dy := e.Align(tt.h, tt.v)
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("Align(%q, %q) = (%v, %v), want (%v, %v)", tt.h, tt.v, dx, dy, tt.dx, tt.dy)
		}
	}
	if e.Height() != 10 {
		t.Errorf("Height() = %v, want 10", e.Height())
	}
}

func inked(img *image.RGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestDraw(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 80, 40))
	if err := Default().Draw(img, "Hi", 10, 30, DrawOptions{Size: 16, Color: color.Black}); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	if inked(img) == 0 {
		t.Error("Draw() left the image blank")
	}
}

func TestDrawRotated(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 80))
	err := Default().Draw(img, "Hi", 20, 40, DrawOptions{
		Size: 16, HAlign: "center", VAlign: "center", Rotation: 90,
	})
	if err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	if inked(img) == 0 {
		t.Error("rotated Draw() left the image blank")
	}
}

func TestDrawEmpty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if err := Default().Draw(img, "", 5, 5, DrawOptions{}); err != nil {
		t.Errorf("Draw(\"\") = %v", err)
	}
	if inked(img) != 0 {
		t.Error("Draw(\"\") changed the image")
	}
}

func TestMeasureCached(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	first := src.Measure("cached", 11)
	second := src.Measure("cached", 11)
	if first != second {
		t.Errorf("cached extents differ: %+v vs %+v", first, second)
	}
	st := src.MeasureStats()
	if st.Hits != 1 || st.Misses != 1 {
		t.Errorf("MeasureStats() = %+v, want 1 hit and 1 miss", st)
	}
}
