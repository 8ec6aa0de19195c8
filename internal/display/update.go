package display

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case tea.MouseMsg:
		m.hoverHasPoint = false
		px := msg.X - m.originX
		cy := msg.Y - m.originY
		if px < 0 || px >= m.pixW || cy < 0 || cy >= m.canvasH {
			break
		}
		// top half of the hovered cell
		py := 2 * cy
		if py >= m.pixH {
			break
		}
		// report the point the shown cell was evaluated at
		m.hoverHasPoint = true
		m.hoverRe, m.hoverIm = m.grid.Sample(m.pixelCell(px, py))
	}
	return m, nil
}

