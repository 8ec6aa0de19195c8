package display

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	mandel "github.com/jccutler/mathvis"
	"github.com/jccutler/mathvis/internal/colormap"
)

// Terminal shows a grid full-screen in the terminal using half-block glyphs,
// two pixels per character cell. The picture is refitted on every resize.
type Terminal struct {
	Colors *colormap.Gradient // nil means colormap.Inferno
}

var _ mandel.Display = Terminal{}

func (t Terminal) Show(g *mandel.Grid) error {
	colors := t.Colors
	if colors == nil {
		colors = colormap.Inferno
	}
	p := tea.NewProgram(newModel(g, colors), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal display: %w", err)
	}
	return nil
}

const (
	headerHeight = 1
	footerHeight = 2
)

type model struct {
	grid   *mandel.Grid
	colors *colormap.Gradient

	width  int
	height int

	// canvas is the rendered picture; it spans canvasW x canvasH cells and
	// pixW x pixH pixels, placed at (originX, originY) on screen.
	canvas           string
	canvasW, canvasH int
	pixW, pixH       int
	originX, originY int

	status string

	// hover state
	hoverHasPoint bool
	hoverRe       float64
	hoverIm       float64

	keys keyMap
	help help.Model
}

func newModel(g *mandel.Grid, colors *colormap.Gradient) model {
	return model{
		grid:   g,
		colors: colors,
		status: fmt.Sprintf("%s  depth %d  res %g  grid %dx%d", g.Region, g.Depth, g.Resolution, g.Cols, g.Rows),
		keys:   defaultKeys(),
		help:   help.New(),
	}
}

func (m model) Init() tea.Cmd { return nil }
