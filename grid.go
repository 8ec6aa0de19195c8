package mandel

// Grid holds normalized escape values for one render call.
//
// Values is row-major: Values[row*Cols+col]. Row 0 is the minimum imaginary
// coordinate sampled and column 0 the minimum real one. A value of exactly 1
// means the sample did not escape within Depth iterations.
//
// Displays in this module draw row 0 at the bottom, so the maximum imaginary
// coordinate ends up on top.
type Grid struct {
	Rows       int       `json:"rows"`
	Cols       int       `json:"cols"`
	Depth      int       `json:"depth"`
	Resolution float64   `json:"resolution"`
	Region     Region    `json:"region"`
	Values     []float64 `json:"values"`
}

func (g *Grid) At(row, col int) float64 {
	return g.Values[row*g.Cols+col]
}

// Row returns a view of one row; it shares storage with the grid.
func (g *Grid) Row(row int) []float64 {
	return g.Values[row*g.Cols : (row+1)*g.Cols]
}

// Sample returns the complex-plane point evaluated for cell (row, col).
// Samples are anchored at the region's minimum corner, not at cell centres.
func (g *Grid) Sample(row, col int) (x0, y0 float64) {
	return g.Region.Xmin + float64(col)/g.Resolution, g.Region.Ymin + float64(row)/g.Resolution
}
