package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"aviator/internal/game"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	headerHeight := 1
	footerHeight := 2
	canvasH := m.height - headerHeight - footerHeight
	if canvasH < 4 {
		canvasH = 4
	}
	canvasW := max(20, m.width)

	header := titleStyle.Render(" aviator ─ terminal flight ")
	header = lipgloss.NewStyle().Width(canvasW).Render(header)

	var body string
	switch m.world.State {
	case game.Menu:
		body = lipgloss.Place(canvasW, canvasH, lipgloss.Center, lipgloss.Center, m.menuBox())
	case game.GameOver:
		if len(m.world.Booms) > 0 {
			// let the crash burst finish before the summary
			body = drawScene(m.world, canvasW, canvasH).render()
		} else {
			body = lipgloss.Place(canvasW, canvasH, lipgloss.Center, lipgloss.Center, m.gameOverBox())
		}
	case game.Paused:
		body = lipgloss.Place(canvasW, canvasH, lipgloss.Center, lipgloss.Center, m.pausedBox())
	default:
		body = drawScene(m.world, canvasW, canvasH).render()
	}

	footer := lipgloss.NewStyle().Width(canvasW).Render(m.renderHUD())

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(canvasW).Height(m.height).Render(ui)
}

// renderHUD builds the two footer rows: fuel gauge plus score on the
// first, key help on the second.
func (m Model) renderHUD() string {
	fuelPct := m.world.Plane.Fuel / 100
	gauge := m.fuel.ViewAs(fuelPct)

	label := dimStyle.Render(" fuel ")
	if fuelPct < 0.25 {
		label = dangerStyle.Render(" fuel ")
	}
	stats := dimStyle.Render(fmt.Sprintf("  distance %dm  dodged %d", m.world.Distance, m.world.Dodged))
	if m.world.Plane.Boosting {
		stats += dangerStyle.Render("  BOOST")
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, label, gauge, stats)
	return lipgloss.JoinVertical(lipgloss.Left, row, m.help.View(m.keys))
}

func (m Model) menuBox() string {
	lines := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("AVIATOR"),
		"",
		"dodge the missiles, catch the fuel",
		"",
		dimStyle.Render("enter or space to take off"),
	)
	return boxStyle.Render(lines)
}

func (m Model) pausedBox() string {
	lines := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("PAUSED"),
		"",
		dimStyle.Render("p to resume"),
	)
	return boxStyle.Render(lines)
}

func (m Model) gameOverBox() string {
	lines := lipgloss.JoinVertical(lipgloss.Center,
		dangerStyle.Render("GAME OVER"),
		"",
		fmt.Sprintf("distance %dm", m.world.Distance),
		fmt.Sprintf("missiles dodged %d", m.world.Dodged),
		"",
		dimStyle.Render("enter to fly again, q to quit"),
	)
	return boxStyle.Render(lines)
}
