package game

import (
	"math"
	"math/rand"
)

// State is the coarse game state.
type State int

const (
	Menu State = iota
	Playing
	Paused
	GameOver
)

const (
	baseScrollSpeed     = 100.0
	missileBaseInterval = 2.0
	missileMinInterval  = 0.5
	fuelSpawnInterval   = 8.0
	maxTickSeconds      = 0.1
)

// World owns every entity plus the spawn timers and score bookkeeping.
type World struct {
	State State
	Plane *Plane

	Missiles  []*Missile
	Canisters []*Canister
	Clouds    []*Cloud
	Stars     []*Star
	Booms     []*Explosion
	Ground    *Ground

	Distance    int
	Dodged      int
	ScrollSpeed float64

	missileTimer    float64
	missileInterval float64
	fuelTimer       float64

	rng *rand.Rand
}

// NewWorld builds a world in the Menu state. The rng drives all
// spawning so a fixed seed replays the same run.
func NewWorld(rng *rand.Rand) *World {
	w := &World{rng: rng}
	w.Reset()
	w.State = Menu
	return w
}

// Reset rebuilds the entities for a fresh run.
func (w *World) Reset() {
	w.Plane = NewPlane(150, WorldH/2)
	w.Missiles = nil
	w.Canisters = nil
	w.Booms = nil
	w.Ground = NewGround(WorldW)

	w.Clouds = nil
	for i := 0; i < 5; i++ {
		x := w.rng.Float64() * WorldW
		y := WorldH/2 + w.rng.Float64()*(WorldH/2-50)
		w.Clouds = append(w.Clouds, NewCloud(x, y, w.rng))
	}

	w.Stars = nil
	for layer := 0; layer < 3; layer++ {
		for i := 0; i < 20; i++ {
			x := w.rng.Float64() * WorldW
			y := 100 + w.rng.Float64()*(WorldH-150)
			w.Stars = append(w.Stars, NewStar(x, y, layer, w.rng))
		}
	}

	w.Distance = 0
	w.Dodged = 0
	w.ScrollSpeed = baseScrollSpeed
	w.missileTimer = 0
	w.missileInterval = missileBaseInterval
	w.fuelTimer = 0
	w.State = Playing
}

// Start begins play from the menu or restarts after game over.
func (w *World) Start() {
	w.Reset()
}

// TogglePause flips between Playing and Paused.
func (w *World) TogglePause() {
	switch w.State {
	case Playing:
		w.State = Paused
	case Paused:
		w.State = Playing
	}
}

func (w *World) crash() {
	w.Booms = append(w.Booms, NewExplosion(w.Plane.X, w.Plane.Y, w.rng))
	w.State = GameOver
}

// Update advances the world by dt seconds. Outside Playing only the
// explosions keep animating so the crash burst finishes on the game
// over screen.
func (w *World) Update(dt float64, in Input) {
	dt = math.Min(dt, maxTickSeconds)

	live := w.Booms[:0]
	for _, b := range w.Booms {
		b.Update(dt)
		if !b.Done() {
			live = append(live, b)
		}
	}
	w.Booms = live

	if w.State != Playing {
		return
	}

	w.Plane.Update(dt, in)
	if w.Plane.Fuel <= 0 {
		w.crash()
		return
	}

	speed := w.ScrollSpeed
	if w.Plane.Boosting {
		speed *= 1.5
	}
	w.Distance += int(speed * dt)

	// difficulty ramps with distance travelled
	w.ScrollSpeed = baseScrollSpeed + float64(w.Distance/500)
	w.missileInterval = math.Max(missileMinInterval, missileBaseInterval-float64(w.Distance)/5000)

	w.missileTimer += dt
	if w.missileTimer >= w.missileInterval {
		w.missileTimer = 0
		w.spawnMissile()
		if w.rng.Float64() < 0.3 {
			w.spawnMissile()
		}
	}

	w.fuelTimer += dt
	if w.fuelTimer >= fuelSpawnInterval {
		w.fuelTimer = 0
		y := 100 + w.rng.Float64()*(WorldH-200)
		w.Canisters = append(w.Canisters, NewCanister(WorldW+30, y))
	}

	planeBox := w.Plane.Bounds()

	missiles := w.Missiles[:0]
	for _, m := range w.Missiles {
		m.Update(dt)
		if m.Bounds().Intersects(planeBox) {
			w.crash()
			return
		}
		if m.Offscreen() {
			w.Dodged++
			continue
		}
		missiles = append(missiles, m)
	}
	w.Missiles = missiles

	canisters := w.Canisters[:0]
	for _, c := range w.Canisters {
		c.Update(dt)
		if c.Bounds().Intersects(planeBox) {
			w.Plane.Refuel(c.Fuel)
			continue
		}
		if c.Offscreen() {
			continue
		}
		canisters = append(canisters, c)
	}
	w.Canisters = canisters

	clouds := w.Clouds[:0]
	for _, c := range w.Clouds {
		c.Update(dt)
		if !c.Offscreen() {
			clouds = append(clouds, c)
		}
	}
	w.Clouds = clouds
	if w.rng.Float64() < 0.02 {
		y := WorldH/2 + w.rng.Float64()*(WorldH/2-50)
		w.Clouds = append(w.Clouds, NewCloud(WorldW+50, y, w.rng))
	}

	for _, s := range w.Stars {
		s.Update(dt)
		if s.Wrapped() {
			s.X = WorldW
			s.Y = 100 + w.rng.Float64()*(WorldH-150)
		}
	}

	w.Ground.Update(dt, speed)
}

func (w *World) spawnMissile() {
	y := 80 + w.rng.Float64()*(WorldH-160)
	w.Missiles = append(w.Missiles, NewMissile(WorldW+50, y, w.rng))
}

// Shapes flattens every visible entity's draw list back-to-front:
// stars, clouds, ground, canisters, missiles, plane, explosions.
func (w *World) Shapes() []Shape {
	var out []Shape
	for _, s := range w.Stars {
		out = append(out, s.Shapes()...)
	}
	for _, c := range w.Clouds {
		out = append(out, c.Shapes()...)
	}
	out = append(out, w.Ground.Shapes()...)
	for _, c := range w.Canisters {
		out = append(out, c.Shapes()...)
	}
	for _, m := range w.Missiles {
		out = append(out, m.Shapes()...)
	}
	if w.State != GameOver {
		out = append(out, w.Plane.Shapes()...)
	}
	for _, b := range w.Booms {
		out = append(out, b.Shapes()...)
	}
	return out
}
