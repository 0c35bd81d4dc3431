package game

import (
	"math"

	"aviator/internal/xform"
)

const (
	planeBodyColor   = "#E3E5E8"
	planeWingColor   = "#3B9CFF"
	planeAccentColor = "#FF4D1A"
	planeGlassColor  = "#9BD1FF"
)

const (
	planeMaxFuel       = 100.0
	planeVerticalSpeed = 150.0
	planeMaxTilt       = 15.0 // degrees
	planeMinY          = 50.0
	planeMaxY          = 550.0
	boostFuelPerSec    = 20.0
	idleFuelPerSec     = 2.0
)

// Plane is the player's airplane. X stays fixed; the world scrolls past.
type Plane struct {
	X, Y      float64
	VelY      float64
	Tilt      float64 // degrees, positive = nose up
	Scale     float64
	Fuel      float64
	Boosting  bool
	propAngle float64 // radians
}

func NewPlane(x, y float64) *Plane {
	return &Plane{X: x, Y: y, Scale: 1.0, Fuel: planeMaxFuel}
}

// Fuselage vertices, nose pointing right, centered at the origin.
func fuselageVerts() []xform.Pt {
	return []xform.Pt{
		{X: 30, Y: 0},
		{X: 20, Y: 8},
		{X: -25, Y: 8},
		{X: -30, Y: 15},
		{X: -30, Y: -5},
		{X: -25, Y: -8},
		{X: 20, Y: -8},
	}
}

func wingVerts() []xform.Pt {
	return []xform.Pt{
		{X: 5, Y: 0},
		{X: 15, Y: 20},
		{X: -10, Y: 20},
		{X: -15, Y: 0},
	}
}

func tailVerts() []xform.Pt {
	return []xform.Pt{
		{X: -22, Y: 5},
		{X: -18, Y: 12},
		{X: -30, Y: 12},
		{X: -32, Y: 5},
	}
}

// matrix is the plane's model transform: translate to position, tilt,
// then scale, composed into a single matrix.
func (p *Plane) matrix() xform.Mat3 {
	return xform.Translation(p.X, p.Y).
		Mul(xform.RotationDeg(p.Tilt)).
		Mul(xform.Scaling(p.Scale, p.Scale))
}

// Update advances the plane one tick from the held keys. Climbing and
// diving tilt the nose; releasing both damps the motion back to level.
// Boost drains fuel on top of the ambient burn.
func (p *Plane) Update(dt float64, in Input) {
	switch {
	case in.Up:
		p.VelY = planeVerticalSpeed
		p.Tilt = math.Min(p.Tilt+100*dt, planeMaxTilt)
	case in.Down:
		p.VelY = -planeVerticalSpeed
		p.Tilt = math.Max(p.Tilt-100*dt, -planeMaxTilt)
	default:
		p.VelY *= 0.9
		if math.Abs(p.Tilt) > 0.5 {
			p.Tilt *= 0.95
		} else {
			p.Tilt = 0
		}
	}

	p.Boosting = in.Boost && p.Fuel > 0
	if p.Boosting {
		p.Fuel -= boostFuelPerSec * dt
	}
	p.Fuel = math.Max(0, p.Fuel-idleFuelPerSec*dt)

	p.Y += p.VelY * dt
	p.Y = math.Max(planeMinY, math.Min(planeMaxY, p.Y))

	p.propAngle += 15 * math.Pi / 180 // spin regardless of dt, like a strobe
}

// Refuel adds fuel up to the tank limit.
func (p *Plane) Refuel(amount float64) {
	p.Fuel = math.Min(planeMaxFuel, p.Fuel+amount)
}

// Bounds returns the collision box of the transformed fuselage.
func (p *Plane) Bounds() AABB {
	return boundsOf(mustApply(p.matrix(), fuselageVerts()))
}

// Shapes returns the plane's world-space draw list: fuselage, mirrored
// wing and tail pairs, cockpit ellipse, engine disc, and the two
// spinning propeller blades.
func (p *Plane) Shapes() []Shape {
	m := p.matrix()
	mirror := m.Mul(xform.ReflectX())

	body := mustApply(m, fuselageVerts())
	out := []Shape{
		fillPoly(body, planeBodyColor),
		strokePoly(body, planeAccentColor),
		fillPoly(mustApply(m, wingVerts()), planeWingColor),
		fillPoly(mustApply(mirror, wingVerts()), planeWingColor),
		fillPoly(mustApply(m, tailVerts()), planeWingColor),
		fillPoly(mustApply(mirror, tailVerts()), planeWingColor),
		filledEllipse(mustApplyPt(m, xform.Pt{X: 10, Y: 3}), 8*p.Scale, 5*p.Scale, planeGlassColor),
		disc(mustApplyPt(m, xform.Pt{X: 25, Y: 0}), 6*p.Scale, planeAccentColor),
	}

	prop := mustApplyPt(m, xform.Pt{X: 32, Y: 0})
	const bladeLen = 12.0
	for _, offset := range []float64{0, math.Pi / 2} {
		a := p.propAngle + offset + p.Tilt*math.Pi/180
		dx := bladeLen * math.Cos(a) * p.Scale
		dy := bladeLen * math.Sin(a) * p.Scale
		out = append(out, segment(
			xform.Pt{X: prop.X - dx, Y: prop.Y - dy},
			xform.Pt{X: prop.X + dx, Y: prop.Y + dy},
			planeBodyColor,
		))
	}
	return out
}
