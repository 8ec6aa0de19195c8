// Package colormap maps normalized escape values to colours.
package colormap

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	mandel "github.com/jccutler/mathvis"
)

// Inferno approximates matplotlib's inferno map: black through purple and
// orange to pale yellow. Points inside the set (value 1) are pale yellow.
var Inferno = MustGradient(
	"#000004", "#1b0c41", "#4a0c6b", "#781c6d", "#a52c60",
	"#cf4446", "#ed6925", "#fb9b06", "#f7d13d", "#fcffa4",
)

// Gradient interpolates evenly spaced colour stops in CIE L*a*b*.
// Lookups go through a precomputed 256-entry table.
type Gradient struct {
	stops []colorful.Color
	lut   [256]color.RGBA
}

func NewGradient(hexes ...string) (*Gradient, error) {
	if len(hexes) < 2 {
		return nil, fmt.Errorf("gradient needs at least 2 stops, got %d", len(hexes))
	}
	g := &Gradient{stops: make([]colorful.Color, len(hexes))}
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		g.stops[i] = c
	}
	for i := range g.lut {
		r, gr, b := g.blend(float64(i) / 255).RGB255()
		g.lut[i] = color.RGBA{R: r, G: gr, B: b, A: 255}
	}
	return g, nil
}

func MustGradient(hexes ...string) *Gradient {
	g, err := NewGradient(hexes...)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Gradient) blend(t float64) colorful.Color {
	pos := t * float64(len(g.stops)-1)
	i := int(pos)
	if i >= len(g.stops)-1 {
		return g.stops[len(g.stops)-1]
	}
	f := pos - float64(i)
	if f == 0 {
		return g.stops[i]
	}
	return g.stops[i].BlendLab(g.stops[i+1], f).Clamped()
}

// At returns the colour for v; v is clamped to [0, 1] and NaN maps to 0.
func (g *Gradient) At(v float64) color.RGBA {
	if math.IsNaN(v) || v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return g.lut[int(math.Round(v*255))]
}

// Image paints one pixel per grid cell. Row 0 of the grid (minimum imaginary
// coordinate) becomes the bottom line of the image.
func (g *Gradient) Image(grid *mandel.Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, grid.Cols, grid.Rows))
	for row := 0; row < grid.Rows; row++ {
		y := grid.Rows - 1 - row
		for col, v := range grid.Row(row) {
			img.SetRGBA(col, y, g.At(v))
		}
	}
	return img
}
