package game

import (
	"math"

	"aviator/internal/xform"
)

const (
	canisterColor       = "#2ECC40"
	canisterSymbolColor = "#FFFFFF"
)

// Canister is a collectible fuel tank that bobs as it drifts left.
type Canister struct {
	X, Y float64
	VelX float64
	Fuel float64
}

func NewCanister(x, y float64) *Canister {
	return &Canister{X: x, Y: y, VelX: -100, Fuel: 25}
}

func canisterVerts() []xform.Pt {
	return []xform.Pt{
		{X: -10, Y: -15},
		{X: 10, Y: -15},
		{X: 10, Y: 15},
		{X: -10, Y: 15},
	}
}

// matrix folds the bobbing offset into the canister's transform so the
// drawn geometry and the collision box stay in sync.
func (c *Canister) matrix() xform.Mat3 {
	bob := 5 * math.Sin(c.X*0.05)
	return xform.Translation(c.X, c.Y).Mul(xform.Translation(0, bob))
}

func (c *Canister) Update(dt float64) {
	c.X += c.VelX * dt
}

func (c *Canister) Offscreen() bool {
	return c.X < -50
}

func (c *Canister) Bounds() AABB {
	return boundsOf(mustApply(c.matrix(), canisterVerts()))
}

func (c *Canister) Shapes() []Shape {
	m := c.matrix()
	center := mustApplyPt(m, xform.Pt{})
	return []Shape{
		fillPoly(mustApply(m, canisterVerts()), canisterColor),
		disc(mustApplyPt(m, xform.Pt{X: 0, Y: -18}), 6, canisterColor),
		// plus symbol
		segment(xform.Pt{X: center.X - 5, Y: center.Y}, xform.Pt{X: center.X + 5, Y: center.Y}, canisterSymbolColor),
		segment(xform.Pt{X: center.X, Y: center.Y - 5}, xform.Pt{X: center.X, Y: center.Y + 5}, canisterSymbolColor),
	}
}
