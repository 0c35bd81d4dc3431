// Package raster converts geometry into integer pixels using the
// classic incremental algorithms: Bresenham lines, midpoint circles
// and ellipses, and even-odd scanline polygon fill. Everything is
// integer arithmetic except where the input is inherently float
// (polygon vertices coming out of a transform).
package raster

import "errors"

// ErrInvalidInput is returned for geometric inputs outside the
// contract (negative radius, polygon with fewer than 3 vertices).
var ErrInvalidInput = errors.New("raster: invalid input")

// Pt is an integer pixel coordinate.
type Pt struct {
	X int
	Y int
}

// Plotter receives rasterized pixels. Implementations own the output
// buffer; the rasterizers never retain it between calls.
type Plotter interface {
	Set(x, y int)
}

// PointBuf collects pixels into a slice. The zero value is ready to use.
type PointBuf struct {
	Pts []Pt
}

func (b *PointBuf) Set(x, y int) {
	b.Pts = append(b.Pts, Pt{X: x, Y: y})
}

// Mode selects between outline and filled rasterization.
type Mode int

const (
	Outline Mode = iota
	Filled
)

// Line rasterizes the segment from (x0, y0) to (x1, y1) with
// Bresenham's algorithm. All octants are handled by the sign-stepped
// error term; both endpoints are emitted exactly once.
func Line(p Plotter, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		p.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// LinePoints is Line collected into a slice.
func LinePoints(x0, y0, x1, y1 int) []Pt {
	var buf PointBuf
	Line(&buf, x0, y0, x1, y1)
	return buf.Pts
}

// hspan emits the horizontal run from x0 to x1 inclusive at row y.
func hspan(p Plotter, x0, x1, y int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		p.Set(x, y)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
