package raster_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"aviator/internal/raster"
)

func TestEllipseRejectsNegativeAxes(t *testing.T) {
	_, err := raster.EllipsePoints(0, 0, -1, 4, raster.Outline)
	require.ErrorIs(t, err, raster.ErrInvalidInput)
	_, err = raster.EllipsePoints(0, 0, 4, -1, raster.Filled)
	require.ErrorIs(t, err, raster.ErrInvalidInput)
}

func TestEllipseDegenerateAxes(t *testing.T) {
	// rx = 0: vertical segment
	pts, err := raster.EllipsePoints(2, 3, 0, 4, raster.Outline)
	require.NoError(t, err)
	set := pixelSet(pts)
	require.Len(t, set, 9)
	for y := -4; y <= 4; y++ {
		require.True(t, set[raster.Pt{X: 2, Y: 3 + y}])
	}

	// ry = 0: horizontal segment
	pts, err = raster.EllipsePoints(2, 3, 4, 0, raster.Outline)
	require.NoError(t, err)
	set = pixelSet(pts)
	require.Len(t, set, 9)
	for x := -4; x <= 4; x++ {
		require.True(t, set[raster.Pt{X: 2 + x, Y: 3}])
	}

	// both zero: a single pixel
	pts, err = raster.EllipsePoints(2, 3, 0, 0, raster.Filled)
	require.NoError(t, err)
	require.Equal(t, []raster.Pt{{X: 2, Y: 3}}, pts)
}

func TestEllipseOutlineAxisExtremes(t *testing.T) {
	pts, err := raster.EllipsePoints(0, 0, 8, 4, raster.Outline)
	require.NoError(t, err)
	set := pixelSet(pts)
	for _, p := range []raster.Pt{{X: 8}, {X: -8}, {Y: 4}, {Y: -4}} {
		require.True(t, set[p], "extreme %v missing", p)
	}
	for p := range set {
		require.LessOrEqual(t, abs(p.X), 8)
		require.LessOrEqual(t, abs(p.Y), 4)
	}
}

func TestEllipseFourWaySymmetry(t *testing.T) {
	cases := [][2]int{{8, 4}, {3, 9}, {5, 5}, {1, 7}}
	for _, c := range cases {
		pts, err := raster.EllipsePoints(0, 0, c[0], c[1], raster.Outline)
		require.NoError(t, err)
		set := pixelSet(pts)
		for p := range set {
			require.True(t, set[raster.Pt{X: -p.X, Y: p.Y}], "rx=%d ry=%d", c[0], c[1])
			require.True(t, set[raster.Pt{X: p.X, Y: -p.Y}], "rx=%d ry=%d", c[0], c[1])
		}
	}
}

func TestEllipseEqualAxesMatchesCircleExtent(t *testing.T) {
	pts, err := raster.EllipsePoints(0, 0, 5, 5, raster.Outline)
	require.NoError(t, err)
	set := pixelSet(pts)
	for _, p := range []raster.Pt{{X: 5}, {X: -5}, {Y: 5}, {Y: -5}} {
		require.True(t, set[p])
	}
}

func TestEllipseFilledCoversInterior(t *testing.T) {
	pts, err := raster.EllipsePoints(0, 0, 6, 3, raster.Filled)
	require.NoError(t, err)
	set := pixelSet(pts)
	require.True(t, set[raster.Pt{X: 0, Y: 0}])
	require.True(t, set[raster.Pt{X: 6, Y: 0}])
	require.True(t, set[raster.Pt{X: 0, Y: 3}])
	require.True(t, set[raster.Pt{X: 0, Y: -3}])
	require.False(t, set[raster.Pt{X: 6, Y: 3}])
	for y := -3; y <= 3; y++ {
		require.True(t, set[raster.Pt{X: 0, Y: y}], "column at x=0 must be solid")
	}
}
