package colormap

import (
	"image/color"
	"math"
	"testing"

	mandel "github.com/jccutler/mathvis"
)

func TestInfernoEndpoints(t *testing.T) {
	tests := []struct {
		v    float64
		want color.RGBA
	}{
		{0, color.RGBA{0x00, 0x00, 0x04, 0xff}},
		{1, color.RGBA{0xfc, 0xff, 0xa4, 0xff}},
		{-3, color.RGBA{0x00, 0x00, 0x04, 0xff}},
		{7, color.RGBA{0xfc, 0xff, 0xa4, 0xff}},
		{math.NaN(), color.RGBA{0x00, 0x00, 0x04, 0xff}},
	}
	for _, tt := range tests {
		if got := Inferno.At(tt.v); got != tt.want {
			t.Errorf("At(%g): got %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestInfernoGetsBrighter(t *testing.T) {
	luma := func(c color.RGBA) float64 {
		return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
	}
	prev := luma(Inferno.At(0))
	for _, v := range []float64{0.25, 0.5, 0.75, 1} {
		l := luma(Inferno.At(v))
		if l <= prev {
			t.Errorf("luma(At(%g)) = %g, not above %g", v, l, prev)
		}
		prev = l
	}
}

func TestNewGradientErrors(t *testing.T) {
	if _, err := NewGradient("#000000"); err == nil {
		t.Errorf("single stop: got nil error")
	}
	if _, err := NewGradient("#000000", "not-a-colour"); err == nil {
		t.Errorf("bad hex: got nil error")
	}
}

func TestImageFlipsRows(t *testing.T) {
	g := &mandel.Grid{
		Rows:   2,
		Cols:   3,
		Values: []float64{0, 0, 0, 1, 1, 1},
	}
	img := Inferno.Image(g)
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds = %s, want 3x2", b)
	}
	for x := 0; x < 3; x++ {
		if got := img.RGBAAt(x, 0); got != Inferno.At(1) {
			t.Errorf("top pixel %d: got %v, want %v", x, got, Inferno.At(1))
		}
		if got := img.RGBAAt(x, 1); got != Inferno.At(0) {
			t.Errorf("bottom pixel %d: got %v, want %v", x, got, Inferno.At(0))
		}
	}
}
