package game

import (
	"math"

	"aviator/internal/xform"
)

const (
	groundColor = "#6B4F2A"
	grassColor  = "#3FA34D"
)

// Ground is the scrolling terrain strip along the bottom of the world.
// The height map is two superposed sine waves sampled every 10 units
// over twice the world width; ScrollX wraps to keep it seamless.
type Ground struct {
	Width   float64
	ScrollX float64
	terrain []xform.Pt
}

func NewGround(width float64) *Ground {
	g := &Ground{Width: width}
	for x := 0.0; x < width*2; x += 10 {
		y := 30 + 15*math.Sin(x*0.02) + 10*math.Sin(x*0.05)
		g.terrain = append(g.terrain, xform.Pt{X: x, Y: y})
	}
	return g
}

func (g *Ground) Update(dt, speed float64) {
	g.ScrollX += speed * dt
	if g.ScrollX > g.Width {
		g.ScrollX -= g.Width
	}
}

// visible returns terrain points shifted by the scroll offset that fall
// near the visible range.
func (g *Ground) visible() []xform.Pt {
	shift := xform.Translation(-g.ScrollX, 0)
	var out []xform.Pt
	for _, p := range g.terrain {
		q := mustApplyPt(shift, p)
		if q.X > -50 && q.X < g.Width+50 {
			out = append(out, q)
		}
	}
	return out
}

func (g *Ground) Shapes() []Shape {
	pts := g.visible()
	if len(pts) < 2 {
		return nil
	}
	// close the strip down to y=0 to make a fillable polygon
	poly := append(append([]xform.Pt{}, pts...),
		xform.Pt{X: pts[len(pts)-1].X, Y: 0},
		xform.Pt{X: pts[0].X, Y: 0},
	)
	out := []Shape{fillPoly(poly, groundColor)}
	for i := 0; i+1 < len(pts); i++ {
		out = append(out, segment(pts[i], pts[i+1], grassColor))
	}
	return out
}
