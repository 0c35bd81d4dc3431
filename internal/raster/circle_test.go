package raster_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"aviator/internal/raster"
)

func TestCircleRejectsNegativeRadius(t *testing.T) {
	_, err := raster.CirclePoints(0, 0, -1, raster.Outline)
	require.ErrorIs(t, err, raster.ErrInvalidInput)
	_, err = raster.CirclePoints(0, 0, -1, raster.Filled)
	require.ErrorIs(t, err, raster.ErrInvalidInput)
}

func TestCircleZeroRadiusIsSinglePixel(t *testing.T) {
	pts, err := raster.CirclePoints(3, -2, 0, raster.Outline)
	require.NoError(t, err)
	require.Equal(t, []raster.Pt{{X: 3, Y: -2}}, pts)
}

func TestCircleOutlineRadiusFive(t *testing.T) {
	pts, err := raster.CirclePoints(0, 0, 5, raster.Outline)
	require.NoError(t, err)
	set := pixelSet(pts)

	for _, p := range []raster.Pt{{X: 5}, {X: -5}, {Y: 5}, {Y: -5}} {
		require.True(t, set[p], "axis pixel %v missing", p)
	}
	for p := range set {
		d := math.Sqrt(float64(p.X*p.X + p.Y*p.Y))
		require.Equal(t, 5, int(math.Round(d)), "pixel %v is off the circle", p)
	}
}

func TestCircleOutlineSymmetry(t *testing.T) {
	for _, r := range []int{1, 2, 5, 13, 40} {
		pts, err := raster.CirclePoints(0, 0, r, raster.Outline)
		require.NoError(t, err)
		set := pixelSet(pts)
		for p := range set {
			// reflections across both axes and both diagonals
			require.True(t, set[raster.Pt{X: -p.X, Y: p.Y}])
			require.True(t, set[raster.Pt{X: p.X, Y: -p.Y}])
			require.True(t, set[raster.Pt{X: p.Y, Y: p.X}])
			require.True(t, set[raster.Pt{X: -p.Y, Y: -p.X}])
		}
	}
}

func TestCircleFilledCoversInterior(t *testing.T) {
	pts, err := raster.CirclePoints(0, 0, 6, raster.Filled)
	require.NoError(t, err)
	set := pixelSet(pts)
	require.True(t, set[raster.Pt{X: 0, Y: 0}])
	require.True(t, set[raster.Pt{X: 3, Y: 3}])
	require.True(t, set[raster.Pt{X: 6, Y: 0}])
	require.False(t, set[raster.Pt{X: 6, Y: 6}], "corner outside the disc")
	// every row of the disc is a contiguous span
	rows := map[int][]int{}
	for p := range set {
		rows[p.Y] = append(rows[p.Y], p.X)
	}
	for y := -6; y <= 6; y++ {
		require.NotEmpty(t, rows[y], "row %d empty", y)
	}
}

func TestCircleFilledOffsetCenter(t *testing.T) {
	pts, err := raster.CirclePoints(10, 20, 3, raster.Filled)
	require.NoError(t, err)
	set := pixelSet(pts)
	require.True(t, set[raster.Pt{X: 10, Y: 20}])
	require.True(t, set[raster.Pt{X: 13, Y: 20}])
	require.True(t, set[raster.Pt{X: 10, Y: 23}])
	require.False(t, set[raster.Pt{X: 14, Y: 20}])
}
