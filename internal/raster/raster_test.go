package raster_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"aviator/internal/raster"
)

func pixelSet(pts []raster.Pt) map[raster.Pt]bool {
	set := make(map[raster.Pt]bool, len(pts))
	for _, p := range pts {
		set[p] = true
	}
	return set
}

func TestLineSlopeTwoFifths(t *testing.T) {
	pts := raster.LinePoints(0, 0, 5, 2)
	require.Len(t, pts, 6)
	for i, p := range pts {
		require.Equal(t, i, p.X, "x must advance by one each step")
		if i > 0 {
			require.GreaterOrEqual(t, p.Y, pts[i-1].Y, "y must be non-decreasing")
		}
	}
	require.Equal(t, raster.Pt{X: 0, Y: 0}, pts[0])
	require.Equal(t, raster.Pt{X: 5, Y: 2}, pts[5])
}

func TestLineEndpointsIncludedOnce(t *testing.T) {
	cases := [][4]int{
		{0, 0, 10, 0},   // horizontal
		{0, 0, 0, 10},   // vertical
		{0, 0, 7, 7},    // diagonal
		{5, 5, -5, -2},  // negative direction
		{0, 0, 2, 9},    // steep
		{3, -4, 3, -4},  // single point
		{10, 2, 0, 8},   // right to left
	}
	for _, c := range cases {
		pts := raster.LinePoints(c[0], c[1], c[2], c[3])
		require.NotEmpty(t, pts)
		set := pixelSet(pts)
		require.Len(t, set, len(pts), "no duplicate pixels for %v", c)
		require.True(t, set[raster.Pt{X: c[0], Y: c[1]}], "start included for %v", c)
		require.True(t, set[raster.Pt{X: c[2], Y: c[3]}], "end included for %v", c)
	}
}

func TestLineEightConnected(t *testing.T) {
	pts := raster.LinePoints(-3, 7, 11, -2)
	for i := 1; i < len(pts); i++ {
		dx := pts[i].X - pts[i-1].X
		dy := pts[i].Y - pts[i-1].Y
		require.LessOrEqual(t, abs(dx), 1)
		require.LessOrEqual(t, abs(dy), 1)
		require.False(t, dx == 0 && dy == 0)
	}
}

func TestLineSymmetricUnderReversal(t *testing.T) {
	fwd := pixelSet(raster.LinePoints(1, 2, 9, 6))
	rev := pixelSet(raster.LinePoints(9, 6, 1, 2))
	require.Equal(t, len(fwd), len(rev))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
