package render

import "testing"

func TestIterateOriginNeverEscapes(t *testing.T) {
	for _, d := range []int{1, 2, 10, 100, 1000} {
		if got := Iterate(0, 0, d); got != d {
			t.Errorf("Iterate(0, 0, %d): got %d, want %d", d, got, d)
		}
	}
}

func TestIterateOutsideRadius(t *testing.T) {
	points := [][2]float64{
		{3, 0},
		{-3, 0},
		{0, 2.5},
		{1.5, 1.5},
		{-2, -0.5},
	}
	for _, p := range points {
		for _, d := range []int{1, 5, 100} {
			if got := Iterate(p[0], p[1], d); got != 0 {
				t.Errorf("Iterate(%g, %g, %d): got %d, want 0", p[0], p[1], d, got)
			}
		}
	}
}

func TestIterateKnownPoints(t *testing.T) {
	tests := []struct {
		x0, y0 float64
		depth  int
		want   int
	}{
		{-1, 0, 50, 50},     // period-2 cycle 0 -> -1 -> 0
		{-2, 0, 50, 50},     // tip of the set, lands on the fixed point 2
		{0.25, 0, 200, 200}, // cusp of the main cardioid
		{0, 1, 100, 100},    // cycle -1+i -> -i -> -1+i
		{1, 0, 10, 2},       // 1, 2, 5
		{0.5, 0, 100, 4},    // 0.5, 0.75, 1.0625, 1.6289, 3.1533
		{0, 0, 0, 0},
		{3, 0, 0, 0},
		{0, 0, -5, 0},
	}
	for _, tt := range tests {
		if got := Iterate(tt.x0, tt.y0, tt.depth); got != tt.want {
			t.Errorf("Iterate(%g, %g, %d): got %d, want %d", tt.x0, tt.y0, tt.depth, got, tt.want)
		}
	}
}

func TestIterateDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		x := -2 + float64(i)*0.03
		y := -1 + float64(i)*0.02
		a := Iterate(x, y, 500)
		for range 3 {
			if b := Iterate(x, y, 500); b != a {
				t.Fatalf("Iterate(%g, %g, 500): got %d then %d", x, y, a, b)
			}
		}
	}
}

func TestIterateBoundedByDepth(t *testing.T) {
	for i := 0; i < 400; i++ {
		x := -2.5 + float64(i%20)*0.18
		y := -1.5 + float64(i/20)*0.15
		for _, d := range []int{1, 7, 64} {
			if got := Iterate(x, y, d); got < 0 || got > d {
				t.Errorf("Iterate(%g, %g, %d): got %d, out of [0, %d]", x, y, d, got, d)
			}
		}
	}
}

func BenchmarkIterate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Iterate(-0.75, 0.1, 1000)
	}
}
