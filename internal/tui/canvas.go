package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// canvas is a braille micro-pixel buffer: each terminal cell holds a
// 2x4 dot grid encoded as an 8-bit mask on top of U+2800. Micro
// coordinates run x in [0, 2w) and y in [0, 4h), origin top-left.
// Cells remember the last color written to them.
type canvas struct {
	w, h  int // in cells
	mask  [][]uint8
	color [][]string
	bg    []string // background color per cell row, optional
}

func newCanvas(w, h int) *canvas {
	mask := make([][]uint8, h)
	color := make([][]string, h)
	for i := range mask {
		mask[i] = make([]uint8, w)
		color[i] = make([]string, w)
	}
	return &canvas{w: w, h: h, mask: mask, color: color}
}

// setBackground assigns a per-row background color (the sky gradient).
func (c *canvas) setBackground(rows []string) {
	c.bg = rows
}

var brailleBit = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// set lights a micro-pixel. Out-of-range coordinates are ignored so
// rasterizers can draw partially visible shapes without bounds checks.
func (c *canvas) set(mx, my int, color string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cx >= c.w || cy >= c.h {
		return
	}
	c.mask[cy][cx] |= brailleBit[ry][rx]
	c.color[cy][cx] = color
}

// plotter adapts the canvas to raster.Plotter with a fixed pen color.
type plotter struct {
	c     *canvas
	color string
}

func (p plotter) Set(x, y int) {
	p.c.set(x, y, p.color)
}

func (c *canvas) pen(color string) plotter {
	return plotter{c: c, color: color}
}

// render composes the buffer into styled terminal lines. Runs of
// identically colored cells share one style call.
func (c *canvas) render() string {
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		bg := ""
		if y < len(c.bg) {
			bg = c.bg[y]
		}
		x := 0
		for x < c.w {
			runColor := c.color[y][x]
			var run strings.Builder
			for x < c.w && c.color[y][x] == runColor {
				m := c.mask[y][x]
				if m == 0 {
					run.WriteRune(' ')
				} else {
					run.WriteRune(rune(0x2800 + int(m)))
				}
				x++
			}
			sb.WriteString(cellStyle(runColor, bg).Render(run.String()))
		}
		if y < c.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

var styleCache = map[string]lipgloss.Style{}

func cellStyle(fg, bg string) lipgloss.Style {
	key := fg + "/" + bg
	if s, ok := styleCache[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if fg != "" {
		s = s.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		s = s.Background(lipgloss.Color(bg))
	}
	styleCache[key] = s
	return s
}
