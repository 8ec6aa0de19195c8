package mandel

// Display consumes a finished grid, e.g. by drawing it or writing an image file.
type Display interface {
	Show(g *Grid) error
}
