package game

import (
	"math/rand"

	"aviator/internal/xform"
)

const cloudColor = "#F2F5F7"

// cloudPuff is one circle of a cloud, offset from the cloud's center.
type cloudPuff struct {
	dx, dy float64
	r      float64
}

// Cloud is a background decoration built from 3-6 overlapping discs,
// drifting slowly left.
type Cloud struct {
	X, Y  float64
	VelX  float64
	puffs []cloudPuff
}

func NewCloud(x, y float64, rng *rand.Rand) *Cloud {
	n := 3 + rng.Intn(4)
	puffs := make([]cloudPuff, n)
	for i := range puffs {
		puffs[i] = cloudPuff{
			dx: float64(rng.Intn(61) - 30),
			dy: float64(rng.Intn(21) - 10),
			r:  float64(15 + rng.Intn(16)),
		}
	}
	return &Cloud{
		X:     x,
		Y:     y,
		VelX:  -(20 + rng.Float64()*30),
		puffs: puffs,
	}
}

func (c *Cloud) Update(dt float64) {
	c.X += c.VelX * dt
}

func (c *Cloud) Offscreen() bool {
	return c.X < -100
}

func (c *Cloud) Shapes() []Shape {
	m := xform.Translation(c.X, c.Y)
	out := make([]Shape, 0, len(c.puffs))
	for _, p := range c.puffs {
		out = append(out, disc(mustApplyPt(m, xform.Pt{X: p.dx, Y: p.dy}), p.r, cloudColor))
	}
	return out
}
