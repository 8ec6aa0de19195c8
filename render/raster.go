// Package render turns a region of the complex plane into a grid of
// normalized escape values.
package render

import (
	"fmt"
	"math"

	mandel "github.com/jccutler/mathvis"
)

// MaxCells caps the number of grid cells a single render may allocate.
const MaxCells = 1 << 26

// GridSize validates a region and resolution and returns the grid dimensions:
// floor(width*resolution) columns by floor(height*resolution) rows.
func GridSize(r mandel.Region, resolution float64) (cols, rows int, err error) {
	if err := r.Validate(); err != nil {
		return 0, 0, err
	}
	if !(resolution > 0) || math.IsInf(resolution, 0) {
		return 0, 0, fmt.Errorf("%w: %g", mandel.ErrInvalidResolution, resolution)
	}
	fc := math.Floor(r.Width() * resolution)
	fr := math.Floor(r.Height() * resolution)
	if fc < 1 || fr < 1 {
		return 0, 0, fmt.Errorf("%w: %g yields a %gx%g grid for %s", mandel.ErrInvalidResolution, resolution, fc, fr, r)
	}
	if fc*fr > MaxCells {
		return 0, 0, fmt.Errorf("%w: %g yields %g cells, limit %d", mandel.ErrInvalidResolution, resolution, fc*fr, MaxCells)
	}
	return int(fc), int(fr), nil
}

// newGrid validates every input and allocates the output grid.
func newGrid(r mandel.Region, depth int, resolution float64) (*mandel.Grid, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: %d", mandel.ErrInvalidDepth, depth)
	}
	cols, rows, err := GridSize(r, resolution)
	if err != nil {
		return nil, err
	}
	return &mandel.Grid{
		Rows:       rows,
		Cols:       cols,
		Depth:      depth,
		Resolution: resolution,
		Region:     r,
		Values:     make([]float64, rows*cols),
	}, nil
}

// fillRow computes cells [col0, col1) of one grid row.
func fillRow(g *mandel.Grid, row, col0, col1 int) {
	y0 := g.Region.Ymin + float64(row)/g.Resolution
	depth := float64(g.Depth)
	out := g.Row(row)
	for col := col0; col < col1; col++ {
		x0 := g.Region.Xmin + float64(col)/g.Resolution
		out[col] = float64(Iterate(x0, y0, g.Depth)) / depth
	}
}

// Render computes the grid for r on the calling goroutine.
func Render(r mandel.Region, depth int, resolution float64) (*mandel.Grid, error) {
	g, err := newGrid(r, depth, resolution)
	if err != nil {
		return nil, err
	}
	for row := 0; row < g.Rows; row++ {
		fillRow(g, row, 0, g.Cols)
	}
	return g, nil
}

// FitToBounds returns the largest width x height with the region's aspect
// ratio that fits inside boundW x boundH. The full bound height is tried
// first; if the matching width overflows, width is pinned to boundW instead.
func FitToBounds(r mandel.Region, boundW, boundH float64) (w, h float64, err error) {
	if err := r.Validate(); err != nil {
		return 0, 0, err
	}
	if !(boundW > 0) || !(boundH > 0) || math.IsInf(boundW, 0) || math.IsInf(boundH, 0) {
		return 0, 0, fmt.Errorf("%w: %gx%g", mandel.ErrInvalidBounds, boundW, boundH)
	}
	aspect := r.Aspect()
	h = boundH
	w = h * aspect
	if w > boundW {
		w = boundW
		h = boundW / aspect
	}
	return w, h, nil
}
