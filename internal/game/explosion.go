package game

import (
	"math"
	"math/rand"

	"aviator/internal/xform"
)

var explosionPalette = []string{
	"#FFCC00",
	"#FF8000",
	"#FF3300",
	"#FFFFFF",
}

const explosionLifetime = 0.5 // seconds

type particle struct {
	x, y   float64
	vx, vy float64
	size   float64
	color  string
}

// Explosion is a burst of shrinking particles under gravity, spawned
// when the plane crashes or runs dry.
type Explosion struct {
	age       float64
	particles []particle
}

func NewExplosion(x, y float64, rng *rand.Rand) *Explosion {
	e := &Explosion{particles: make([]particle, 20)}
	for i := range e.particles {
		angle := rng.Float64() * 2 * math.Pi
		speed := 50 + rng.Float64()*150
		e.particles[i] = particle{
			x:     x,
			y:     y,
			vx:    speed * math.Cos(angle),
			vy:    speed * math.Sin(angle),
			size:  float64(2 + rng.Intn(5)),
			color: explosionPalette[rng.Intn(len(explosionPalette))],
		}
	}
	return e
}

func (e *Explosion) Update(dt float64) {
	e.age += dt
	if e.Done() {
		return
	}
	for i := range e.particles {
		p := &e.particles[i]
		p.x += p.vx * dt
		p.y += p.vy * dt
		p.vy -= 200 * dt // gravity
		p.size = math.Max(1, p.size-5*dt)
	}
}

func (e *Explosion) Done() bool {
	return e.age >= explosionLifetime
}

func (e *Explosion) Shapes() []Shape {
	alpha := 1 - e.age/explosionLifetime
	out := make([]Shape, 0, len(e.particles))
	for _, p := range e.particles {
		if p.size < 1 {
			continue
		}
		out = append(out, disc(xform.Pt{X: p.x, Y: p.y}, p.size, fadeOut(p.color, alpha)))
	}
	return out
}
