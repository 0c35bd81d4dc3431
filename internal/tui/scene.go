package tui

import (
	"log"
	"math"

	"aviator/internal/clip"
	"aviator/internal/game"
	"aviator/internal/raster"
	"aviator/internal/xform"
)

// worldViewport is the clip rectangle in world coordinates. Entities
// spawn beyond the right edge and exit past the left, so partially
// visible geometry gets clipped every frame.
var worldViewport = clip.Viewport{MinX: 0, MinY: 0, MaxX: game.WorldW, MaxY: game.WorldH}

// drawScene rasterizes the world's draw list into a canvas cellsW x
// cellsH cells wide. World space is y-up; the view matrix flips it and
// scales onto the braille microgrid.
func drawScene(w *game.World, cellsW, cellsH int) *canvas {
	c := newCanvas(cellsW, cellsH)
	c.setBackground(skyRows(cellsH))

	micW := cellsW * 2
	micH := cellsH * 4
	sx := float64(micW-1) / game.WorldW
	sy := float64(micH-1) / game.WorldH
	view := xform.Translation(0, float64(micH-1)).Mul(xform.Scaling(sx, -sy))

	for _, s := range w.Shapes() {
		drawShape(c, s, view, sx, sy)
	}
	return c
}

func drawShape(c *canvas, s game.Shape, view xform.Mat3, sx, sy float64) {
	pen := c.pen(s.Color)
	switch s.Kind {
	case game.KindPolygon:
		clipped, err := clip.Polygon(s.Verts, worldViewport)
		if err != nil {
			log.Printf("scene: drop polygon: %v", err)
			return
		}
		if len(clipped) < 3 {
			return // fully outside
		}
		pts, err := view.ApplyAll(clipped)
		if err != nil {
			log.Printf("scene: view transform: %v", err)
			return
		}
		if s.Mode == raster.Filled {
			err = raster.FillPolygon(pen, pts)
		} else {
			err = raster.PolygonOutline(pen, pts)
		}
		if err != nil {
			log.Printf("scene: rasterize polygon: %v", err)
		}
	case game.KindSegment:
		seg, ok, err := clip.Line(clip.Segment{A: s.Verts[0], B: s.Verts[1]}, worldViewport)
		if err != nil {
			log.Printf("scene: clip segment: %v", err)
			return
		}
		if !ok {
			return
		}
		a, errA := view.Apply(seg.A)
		b, errB := view.Apply(seg.B)
		if errA != nil || errB != nil {
			return
		}
		raster.Line(pen, round(a.X), round(a.Y), round(b.X), round(b.Y))
	case game.KindCircle, game.KindEllipse:
		// Conics are not clipped in world space; the canvas discards
		// out-of-range pixels, which keeps partially visible discs cheap.
		center, err := view.Apply(s.Center)
		if err != nil {
			return
		}
		rx := round(s.Rx * sx)
		ry := round(s.Ry * sy)
		if rx == ry {
			err = raster.Circle(pen, round(center.X), round(center.Y), rx, s.Mode)
		} else {
			err = raster.Ellipse(pen, round(center.X), round(center.Y), rx, ry, s.Mode)
		}
		if err != nil {
			log.Printf("scene: rasterize conic: %v", err)
		}
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
