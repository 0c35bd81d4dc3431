package game

import (
	"math"
	"math/rand"

	"aviator/internal/raster"
	"aviator/internal/xform"
)

// Star is a parallax background dot. Layer 0 is farthest and slowest;
// higher layers move faster and may be drawn larger.
type Star struct {
	X, Y    float64
	Layer   int
	Size    int
	VelX    float64
	bright  float64
	twinkle float64
}

func NewStar(x, y float64, layer int, rng *rand.Rand) *Star {
	return &Star{
		X:       x,
		Y:       y,
		Layer:   layer,
		Size:    1 + rng.Intn(2+layer),
		VelX:    -20 * float64(layer+1),
		bright:  0.3 + rng.Float64()*0.7,
		twinkle: rng.Float64() * 2 * math.Pi,
	}
}

func (s *Star) Update(dt float64) {
	s.X += s.VelX * dt
	s.twinkle += 0.1
}

// Brightness is the twinkle-modulated intensity in [0, 1].
func (s *Star) Brightness() float64 {
	return s.bright * (0.5 + 0.5*math.Sin(s.twinkle))
}

// Wrapped reports whether the star has scrolled off the left edge and
// should re-enter from the right.
func (s *Star) Wrapped() bool {
	return s.X < 0
}

func (s *Star) Shapes() []Shape {
	color := starColor(s.Brightness())
	if s.Size <= 1 {
		// single pixel: a zero-radius circle
		return []Shape{{Kind: KindCircle, Mode: raster.Outline, Center: xform.Pt{X: s.X, Y: s.Y}, Color: color}}
	}
	return []Shape{disc(xform.Pt{X: s.X, Y: s.Y}, float64(s.Size), color)}
}
