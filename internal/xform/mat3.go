// Package xform implements 2D affine transforms in homogeneous
// coordinates. Points are column vectors (x, y, 1); matrices are 3x3
// with the bottom row held at (0, 0, 1).
package xform

import (
	"errors"
	"math"
)

// ErrInvalidTransform is returned when applying a matrix does not keep
// the homogeneous factor at 1.
var ErrInvalidTransform = errors.New("xform: homogeneous factor deviated from 1")

// ErrSingular is returned by Inverse for non-invertible matrices.
var ErrSingular = errors.New("xform: matrix is singular")

// Pt is a 2D point in world coordinates.
type Pt struct {
	X float64
	Y float64
}

// Mat3 is a row-major 3x3 matrix:
//
//	| m[0] m[1] m[2] |
//	| m[3] m[4] m[5] |
//	| m[6] m[7] m[8] |
type Mat3 [9]float64

// Identity returns the identity transform.
func Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Translation returns a matrix moving points by (dx, dy).
func Translation(dx, dy float64) Mat3 {
	return Mat3{
		1, 0, dx,
		0, 1, dy,
		0, 0, 1,
	}
}

// Scaling returns a matrix scaling about the origin.
func Scaling(sx, sy float64) Mat3 {
	return Mat3{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}
}

// Rotation returns a counter-clockwise rotation about the origin.
// theta is in radians.
func Rotation(theta float64) Mat3 {
	c := math.Cos(theta)
	s := math.Sin(theta)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// RotationDeg is Rotation with the angle given in degrees. Degrees only
// exist at this boundary; everything internal works in radians.
func RotationDeg(deg float64) Mat3 {
	return Rotation(deg * math.Pi / 180)
}

// Shear returns a shear matrix with factors shx (x by y) and shy (y by x).
func Shear(shx, shy float64) Mat3 {
	return Mat3{
		1, shx, 0,
		shy, 1, 0,
		0, 0, 1,
	}
}

// ReflectX mirrors across the x axis.
func ReflectX() Mat3 { return Scaling(1, -1) }

// ReflectY mirrors across the y axis.
func ReflectY() Mat3 { return Scaling(-1, 1) }

// ReflectOrigin mirrors through the origin.
func ReflectOrigin() Mat3 { return Scaling(-1, -1) }

// Mul returns a*b. With column-vector points b applies first and a
// second, so a pipeline that translates, then rotates, then scales is
// built as Translation(...).Mul(Rotation(...)).Mul(Scaling(...)).
func (a Mat3) Mul(b Mat3) Mat3 {
	var r Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r[row*3+col] = a[row*3]*b[col] + a[row*3+1]*b[3+col] + a[row*3+2]*b[6+col]
		}
	}
	return r
}

// RotationAbout rotates by theta radians about (cx, cy). Translate,
// rotate and untranslate are composed into a single matrix so repeated
// application cannot skip a stage.
func RotationAbout(theta, cx, cy float64) Mat3 {
	return Translation(cx, cy).Mul(Rotation(theta)).Mul(Translation(-cx, -cy))
}

// ScalingAbout scales by (sx, sy) about (cx, cy).
func ScalingAbout(sx, sy, cx, cy float64) Mat3 {
	return Translation(cx, cy).Mul(Scaling(sx, sy)).Mul(Translation(-cx, -cy))
}

const homogeneousTol = 1e-9

// Apply transforms p by m. The point is lifted to (x, y, 1); if the
// resulting homogeneous factor is not 1 the matrix is not affine and
// ErrInvalidTransform is returned.
func (m Mat3) Apply(p Pt) (Pt, error) {
	w := m[6]*p.X + m[7]*p.Y + m[8]
	if math.Abs(w-1) > homogeneousTol {
		return Pt{}, ErrInvalidTransform
	}
	return Pt{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}, nil
}

// ApplyAll transforms every point in pts, returning a new slice.
func (m Mat3) ApplyAll(pts []Pt) ([]Pt, error) {
	out := make([]Pt, len(pts))
	for i, p := range pts {
		q, err := m.Apply(p)
		if err != nil {
			return nil, err
		}
		out[i] = q
	}
	return out, nil
}

// Inverse returns the inverse of m, or ErrSingular when the
// determinant is zero.
func (m Mat3) Inverse() (Mat3, error) {
	det := m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
	if math.Abs(det) < 1e-12 {
		return Mat3{}, ErrSingular
	}
	inv := 1 / det
	return Mat3{
		(m[4]*m[8] - m[5]*m[7]) * inv,
		(m[2]*m[7] - m[1]*m[8]) * inv,
		(m[1]*m[5] - m[2]*m[4]) * inv,
		(m[5]*m[6] - m[3]*m[8]) * inv,
		(m[0]*m[8] - m[2]*m[6]) * inv,
		(m[2]*m[3] - m[0]*m[5]) * inv,
		(m[3]*m[7] - m[4]*m[6]) * inv,
		(m[1]*m[6] - m[0]*m[7]) * inv,
		(m[0]*m[4] - m[1]*m[3]) * inv,
	}, nil
}
