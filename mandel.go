package mandel

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Region within the Mandelbrot set: the real axis spans [Xmin, Xmax]
// and the imaginary axis spans [Ymin, Ymax].
type Region struct {
	Xmin float64 `json:"xmin"`
	Xmax float64 `json:"xmax"`
	Ymin float64 `json:"ymin"`
	Ymax float64 `json:"ymax"`
}

func (r Region) Width() float64  { return r.Xmax - r.Xmin }
func (r Region) Height() float64 { return r.Ymax - r.Ymin }

// Aspect is Width/Height. Only meaningful for a valid region.
func (r Region) Aspect() float64 { return r.Width() / r.Height() }

// Validate reports ErrInvalidViewport unless both extents are positive and finite.
func (r Region) Validate() error {
	w, h := r.Width(), r.Height()
	if !(w > 0) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: width %g (re %g..%g)", ErrInvalidViewport, w, r.Xmin, r.Xmax)
	}
	if !(h > 0) || math.IsInf(h, 0) {
		return fmt.Errorf("%w: height %g (im %g..%g)", ErrInvalidViewport, h, r.Ymin, r.Ymax)
	}
	return nil
}

func (r Region) String() string {
	return fmt.Sprintf("re %g..%g im %g..%g", r.Xmin, r.Xmax, r.Ymin, r.Ymax)
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Full – the whole set, as framed by the classic -2..1 x -1.5..1.5 window
	Full = Region{
		Xmin: -2.0,
		Xmax: 1.0,
		Ymin: -1.5,
		Ymax: 1.5,
	}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		Xmin: -0.7400,
		Xmax: -0.7350,
		Ymin: 0.1800,
		Ymax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Xmin: -1.7390,
		Xmax: -1.7375,
		Ymin: -0.0235,
		Ymax: -0.0220,
	}
)

var landmarks = map[string]Region{
	"full":                 Full,
	"seahorse-valley":      SeahorseValley,
	"elephant-valley":      ElephantValley,
	"spiral-minibrot":      SpiralMinibrot,
	"triple-spiral":        TripleSpiral,
	"valley-of-the-dragon": ValleyOfTheDragon,
	"minibrot-mini-spiral": MinibrotInMiniSpiral,
}

// LookupRegion finds a landmark region by name, ignoring case.
func LookupRegion(name string) (Region, bool) {
	r, ok := landmarks[strings.ToLower(strings.TrimSpace(name))]
	return r, ok
}

// RegionNames lists the landmark names in sorted order.
func RegionNames() []string {
	names := make([]string, 0, len(landmarks))
	for n := range landmarks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Landmarks returns a copy of the landmark table.
func Landmarks() map[string]Region {
	out := make(map[string]Region, len(landmarks))
	for n, r := range landmarks {
		out[n] = r
	}
	return out
}
