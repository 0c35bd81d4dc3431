package game

import (
	"math"
	"math/rand"

	"aviator/internal/xform"
)

const (
	missileBodyColor  = "#9AA0A6"
	missileNoseColor  = "#FF3333"
	missileFlameColor = "#FFB347"
)

// Missile flies right-to-left with a slight vertical wave. The body is
// a fin-tailed polygon; the nose cone is a filled ellipse and the
// exhaust is a bundle of jittered flame segments.
type Missile struct {
	X, Y   float64
	VelX   float64
	VelY   float64
	Length float64
	Height float64
	rng    *rand.Rand
}

func NewMissile(x, y float64, rng *rand.Rand) *Missile {
	return &Missile{
		X:      x,
		Y:      y,
		VelX:   -(150 + rng.Float64()*150),
		VelY:   rng.Float64()*100 - 50,
		Length: float64(30 + rng.Intn(21)),
		Height: 8,
		rng:    rng,
	}
}

// bodyVerts returns the missile polygon, nose pointing left (the
// direction of travel), fins at the back.
func (m *Missile) bodyVerts() []xform.Pt {
	l, h := m.Length, m.Height
	return []xform.Pt{
		{X: -l / 2, Y: 0},
		{X: -l / 4, Y: h / 2},
		{X: l / 2, Y: h / 2},
		{X: l/2 + 5, Y: h},
		{X: l / 2, Y: 0},
		{X: l/2 + 5, Y: -h},
		{X: l / 2, Y: -h / 2},
		{X: -l / 4, Y: -h / 2},
	}
}

func (m *Missile) matrix() xform.Mat3 {
	return xform.Translation(m.X, m.Y)
}

func (m *Missile) Update(dt float64) {
	m.X += m.VelX * dt
	m.Y += m.VelY * dt
	// wave motion keyed off horizontal position
	m.VelY = 30 * math.Sin(m.X*0.02)
}

// Offscreen reports whether the missile has left the world to the left.
func (m *Missile) Offscreen() bool {
	return m.X < -100
}

func (m *Missile) Bounds() AABB {
	return boundsOf(mustApply(m.matrix(), m.bodyVerts()))
}

func (m *Missile) Shapes() []Shape {
	mat := m.matrix()
	body := mustApply(mat, m.bodyVerts())

	out := []Shape{
		fillPoly(body, missileBodyColor),
		strokePoly(body, missileNoseColor),
		filledEllipse(mustApplyPt(mat, xform.Pt{X: -m.Length/2 + 5, Y: 0}), 8, 4, missileNoseColor),
	}

	flame := mustApplyPt(mat, xform.Pt{X: m.Length/2 + 5, Y: 0})
	flameLen := 10 + m.rng.Float64()*10
	for i := 0; i < 3; i++ {
		jitter := float64(m.rng.Intn(7) - 3)
		out = append(out, segment(
			flame,
			xform.Pt{X: flame.X + flameLen + float64(i*5), Y: flame.Y + jitter},
			missileFlameColor,
		))
	}
	return out
}
