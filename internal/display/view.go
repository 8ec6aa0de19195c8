package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jccutler/mathvis/render"
)

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := titleStyle.Render(" mandelbrot ")

	body := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - headerHeight - footerHeight).
		PaddingLeft(m.originX).
		Render(m.canvas)

	coords := ""
	if m.hoverHasPoint {
		coords = dimStyle.Render(fmt.Sprintf("  re=%.8g im=%.8g  ", m.hoverRe, m.hoverIm))
	}
	status := dimStyle.Render(" " + m.status + " ")
	spacerW := max(0, m.width-lipgloss.Width(status)-lipgloss.Width(coords))
	statusLine := lipgloss.NewStyle().MaxWidth(m.width).
		Render(lipgloss.JoinHorizontal(lipgloss.Bottom, status, strings.Repeat(" ", spacerW), coords))
	helpLine := " " + m.help.View(m.keys)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, statusLine, helpLine)
	return appStyle.Width(m.width).Height(m.height).MaxHeight(m.height).Render(ui)
}

// layout refits the picture to the space left between header and footer and
// rebuilds the canvas. Each character cell holds two vertically stacked
// pixels, which are roughly square on common terminal fonts.
func (m *model) layout() {
	m.canvas = ""
	m.canvasW, m.canvasH, m.pixW, m.pixH = 0, 0, 0, 0

	rows := m.height - headerHeight - footerHeight
	if m.width < 1 || rows < 1 {
		return
	}
	fw, fh, err := render.FitToBounds(m.grid.Region, float64(m.width), float64(2*rows))
	if err != nil {
		m.status = "layout: " + err.Error()
		return
	}
	m.pixW = max(1, int(fw))
	m.pixH = max(1, int(fh))
	m.canvasW = m.pixW
	m.canvasH = (m.pixH + 1) / 2
	m.originX = (m.width - m.canvasW) / 2
	m.originY = headerHeight
	m.canvas = m.renderCanvas()
}

// pixelCell maps canvas pixel (px, py), with py counted from the top, to the
// grid cell drawn there. Scaling is nearest-neighbour.
func (m model) pixelCell(px, py int) (row, col int) {
	g := m.grid
	return g.Rows - 1 - py*g.Rows/m.pixH, px * g.Cols / m.pixW
}

func (m model) pixelValue(px, py int) float64 {
	return m.grid.At(m.pixelCell(px, py))
}

func (m model) renderCanvas() string {
	lines := make([]string, m.canvasH)
	var b strings.Builder
	for cy := 0; cy < m.canvasH; cy++ {
		b.Reset()
		top := 2 * cy
		bottom := top + 1
		for px := 0; px < m.pixW; px++ {
			fg := m.colors.At(m.pixelValue(px, top))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(fg.R, fg.G, fg.B)))
			if bottom < m.pixH {
				bg := m.colors.At(m.pixelValue(px, bottom))
				style = style.Background(lipgloss.Color(hexColor(bg.R, bg.G, bg.B)))
			}
			b.WriteString(style.Render("▀"))
		}
		lines[cy] = b.String()
	}
	return strings.Join(lines, "\n")
}

func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
