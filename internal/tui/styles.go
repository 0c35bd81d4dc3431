package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#3B9CFF")
	dangerFg  = lipgloss.Color("#FF4D1A")
	borderCol = lipgloss.Color("#243141")

	appStyle    = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 2)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
	dangerStyle = lipgloss.NewStyle().Foreground(dangerFg).Bold(true)
)

// Sky gradient endpoints, deep blue at the top to a paler horizon.
var (
	skyTop     = mustHex("#0B1420")
	skyHorizon = mustHex("#1C3A5E")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// skyRows returns one background color per canvas row, blended from
// skyTop to skyHorizon.
func skyRows(h int) []string {
	rows := make([]string, h)
	for y := range rows {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		rows[y] = skyTop.BlendRgb(skyHorizon, t).Hex()
	}
	return rows
}
