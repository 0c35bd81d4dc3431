package raster

import (
	"math"
	"sort"

	"aviator/internal/xform"
)

// PolygonOutline rasterizes the closed outline of a polygon, one
// Bresenham line per edge including the closing edge. Vertices are
// rounded to the pixel grid. Fewer than 3 vertices is ErrInvalidInput.
func PolygonOutline(p Plotter, verts []xform.Pt) error {
	if len(verts) < 3 {
		return ErrInvalidInput
	}
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		Line(p, round(a.X), round(a.Y), round(b.X), round(b.Y))
	}
	return nil
}

// FillPolygon rasterizes the interior of a polygon with an even-odd
// scanline fill. Horizontal edges are skipped; each edge contributes
// to rows min(y) <= y < max(y) so shared vertices count once. Fewer
// than 3 vertices is ErrInvalidInput.
func FillPolygon(p Plotter, verts []xform.Pt) error {
	if len(verts) < 3 {
		return ErrInvalidInput
	}
	minY, maxY := verts[0].Y, verts[0].Y
	for _, v := range verts[1:] {
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		fy := float64(y)
		var xs []float64
		for i := range verts {
			a := verts[i]
			b := verts[(i+1)%len(verts)]
			if a.Y == b.Y {
				continue
			}
			if math.Min(a.Y, b.Y) <= fy && fy < math.Max(a.Y, b.Y) {
				xs = append(xs, a.X+(fy-a.Y)*(b.X-a.X)/(b.Y-a.Y))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			hspan(p, int(xs[i]), int(xs[i+1]), y)
		}
	}
	return nil
}

func round(v float64) int {
	return int(math.Round(v))
}
