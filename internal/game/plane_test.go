package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"aviator/internal/game"
)

func TestPlaneClimbAndTiltClamp(t *testing.T) {
	p := game.NewPlane(150, 300)
	for i := 0; i < 100; i++ {
		p.Update(0.05, game.Input{Up: true})
	}
	require.Equal(t, 15.0, p.Tilt, "tilt clamps at 15 degrees")
	require.Equal(t, 550.0, p.Y, "altitude clamps at the ceiling")

	for i := 0; i < 200; i++ {
		p.Update(0.05, game.Input{Down: true})
	}
	require.Equal(t, -15.0, p.Tilt)
	require.Equal(t, 50.0, p.Y, "altitude clamps at the floor")
}

func TestPlaneLevelsOffWhenIdle(t *testing.T) {
	p := game.NewPlane(150, 300)
	p.Update(0.1, game.Input{Up: true})
	require.Greater(t, p.Tilt, 0.0)
	for i := 0; i < 300; i++ {
		p.Update(0.05, game.Input{})
	}
	require.Equal(t, 0.0, p.Tilt, "tilt damps back to level")
}

func TestPlaneFuelDrain(t *testing.T) {
	p := game.NewPlane(150, 300)
	p.Update(1.0, game.Input{})
	require.InDelta(t, 98.0, p.Fuel, 1e-9, "idle burn is 2 per second")

	p = game.NewPlane(150, 300)
	p.Update(1.0, game.Input{Boost: true})
	require.InDelta(t, 78.0, p.Fuel, 1e-9, "boost adds 20 per second")
	require.True(t, p.Boosting)
}

func TestPlaneCannotBoostOnEmptyTank(t *testing.T) {
	p := game.NewPlane(150, 300)
	for p.Fuel > 0 {
		p.Update(1.0, game.Input{Boost: true})
	}
	p.Update(1.0, game.Input{Boost: true})
	require.False(t, p.Boosting)
	require.Equal(t, 0.0, p.Fuel, "fuel never goes negative")
}

func TestPlaneRefuelCapped(t *testing.T) {
	p := game.NewPlane(150, 300)
	p.Update(1.0, game.Input{})
	p.Refuel(25)
	require.Equal(t, 100.0, p.Fuel, "refuel caps at the tank size")
}

func TestPlaneShapesAndBounds(t *testing.T) {
	p := game.NewPlane(150, 300)
	shapes := p.Shapes()
	require.NotEmpty(t, shapes)

	box := p.Bounds()
	require.Less(t, box.MinX, box.MaxX)
	require.Less(t, box.MinY, box.MaxY)
	// fuselage spans x in [-30, 30] around the plane's position
	require.InDelta(t, 120.0, box.MinX, 1e-9)
	require.InDelta(t, 180.0, box.MaxX, 1e-9)
}
