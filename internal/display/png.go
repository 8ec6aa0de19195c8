// Package display holds the consumers of finished escape grids: a PNG writer
// and an interactive terminal view.
package display

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"

	mandel "github.com/jccutler/mathvis"
	"github.com/jccutler/mathvis/internal/colormap"
	"github.com/jccutler/mathvis/render"
)

// PNG writes the colour-mapped grid to Path. When a bounding box is set the
// image is scaled (bilinear) to the largest size with the region's aspect
// ratio that fits inside it; otherwise it is written at one pixel per cell.
type PNG struct {
	Path        string
	BoundWidth  float64
	BoundHeight float64
	Colors      *colormap.Gradient // nil means colormap.Inferno
}

var _ mandel.Display = PNG{}

func (p PNG) Show(g *mandel.Grid) error {
	f, err := os.Create(p.Path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := p.Encode(f, g); err != nil {
		return err
	}
	return f.Close()
}

// Encode writes the PNG to w.
func (p PNG) Encode(w io.Writer, g *mandel.Grid) error {
	img, err := p.Image(g)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// Image returns the colour-mapped, possibly rescaled image.
func (p PNG) Image(g *mandel.Grid) (*image.RGBA, error) {
	colors := p.Colors
	if colors == nil {
		colors = colormap.Inferno
	}
	img := colors.Image(g)
	if p.BoundWidth <= 0 && p.BoundHeight <= 0 {
		return img, nil
	}

	fw, fh, err := render.FitToBounds(g.Region, p.BoundWidth, p.BoundHeight)
	if err != nil {
		return nil, err
	}
	w := max(1, int(math.Round(fw)))
	h := max(1, int(math.Round(fh)))
	if w == img.Rect.Dx() && h == img.Rect.Dy() {
		return img, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
