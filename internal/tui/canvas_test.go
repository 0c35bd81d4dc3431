package tui

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"aviator/internal/game"
	"aviator/internal/raster"
)

func TestCanvasSetLightsBrailleDots(t *testing.T) {
	c := newCanvas(2, 1)
	c.set(0, 0, "#FFFFFF")
	require.Equal(t, uint8(0x01), c.mask[0][0])
	c.set(1, 3, "#FFFFFF")
	require.Equal(t, uint8(0x81), c.mask[0][0])
	c.set(2, 0, "#FFFFFF") // second cell
	require.Equal(t, uint8(0x01), c.mask[0][1])
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := newCanvas(2, 2)
	c.set(-1, 0, "#FFFFFF")
	c.set(0, -5, "#FFFFFF")
	c.set(4, 0, "#FFFFFF") // micro x beyond 2 cells
	c.set(0, 8, "#FFFFFF")
	for y := range c.mask {
		for x := range c.mask[y] {
			require.Zero(t, c.mask[y][x])
		}
	}
}

func TestCanvasRenderRowsAndRunes(t *testing.T) {
	c := newCanvas(4, 3)
	raster.Line(c.pen("#FF0000"), 0, 0, 7, 0)
	out := c.render()
	rows := strings.Split(out, "\n")
	require.Len(t, rows, 3)
	require.Contains(t, rows[0], string(rune(0x2800+0x09)), "top dot pair lit across the row")
}

func TestCanvasPlotterImplementsRasterPlotter(t *testing.T) {
	var _ raster.Plotter = plotter{}
	c := newCanvas(3, 3)
	require.NoError(t, raster.Circle(c.pen("#00FF00"), 3, 6, 2, raster.Outline))
	lit := 0
	for y := range c.mask {
		for x := range c.mask[y] {
			if c.mask[y][x] != 0 {
				lit++
			}
		}
	}
	require.Greater(t, lit, 0)
}

func TestDrawSceneCoversCanvas(t *testing.T) {
	w := game.NewWorld(rand.New(rand.NewSource(7)))
	w.Start()
	w.Update(0.1, game.Input{})
	c := drawScene(w, 80, 24)
	require.Equal(t, 80, c.w)
	require.Equal(t, 24, c.h)
	lit := 0
	for y := range c.mask {
		for x := range c.mask[y] {
			if c.mask[y][x] != 0 {
				lit++
			}
		}
	}
	require.Greater(t, lit, 0, "the scene draws something")
	require.Len(t, c.bg, 24, "sky gradient covers every row")
}

func TestSkyRowsGradient(t *testing.T) {
	rows := skyRows(10)
	require.Len(t, rows, 10)
	require.Equal(t, skyTop.Hex(), rows[0])
	require.Equal(t, skyHorizon.Hex(), rows[9])
}
