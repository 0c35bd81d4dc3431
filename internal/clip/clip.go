// Package clip clips segments and polygons against an axis-aligned
// rectangular viewport: Cohen-Sutherland for segments, Sutherland-
// Hodgman for polygons. Clipping happens in world (float) coordinates,
// before rasterization.
package clip

import (
	"errors"

	"aviator/internal/xform"
)

// ErrInvalidViewport is returned for viewports with min > max.
var ErrInvalidViewport = errors.New("clip: degenerate viewport")

// ErrInvalidPolygon is returned when a polygon has fewer than 3 vertices.
var ErrInvalidPolygon = errors.New("clip: polygon needs at least 3 vertices")

// Viewport is the axis-aligned clip rectangle.
type Viewport struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Valid reports whether the viewport spans a non-negative area.
func (v Viewport) Valid() bool {
	return v.MinX <= v.MaxX && v.MinY <= v.MaxY
}

// Segment is a line segment between two world-space points.
type Segment struct {
	A xform.Pt
	B xform.Pt
}

// Outcode classifies a point against the viewport's four half-planes.
type Outcode uint8

const (
	Left Outcode = 1 << iota
	Right
	Bottom
	Top

	Inside Outcode = 0
)

func (v Viewport) outcode(p xform.Pt) Outcode {
	code := Inside
	if p.X < v.MinX {
		code |= Left
	} else if p.X > v.MaxX {
		code |= Right
	}
	if p.Y < v.MinY {
		code |= Bottom
	} else if p.Y > v.MaxY {
		code |= Top
	}
	return code
}

// Line clips seg against vp with Cohen-Sutherland. The second return
// is false when the segment lies fully outside; callers must branch on
// it rather than assume a segment survives. A degenerate viewport is
// ErrInvalidViewport.
func Line(seg Segment, vp Viewport) (Segment, bool, error) {
	if !vp.Valid() {
		return Segment{}, false, ErrInvalidViewport
	}
	a, b := seg.A, seg.B
	codeA := vp.outcode(a)
	codeB := vp.outcode(b)
	for {
		switch {
		case codeA|codeB == Inside:
			return Segment{A: a, B: b}, true, nil
		case codeA&codeB != Inside:
			return Segment{}, false, nil
		}
		// Push the endpoint with a set bit onto the violated boundary.
		out := codeA
		if out == Inside {
			out = codeB
		}
		var p xform.Pt
		switch {
		case out&Top != 0:
			p.X = a.X + (b.X-a.X)*(vp.MaxY-a.Y)/(b.Y-a.Y)
			p.Y = vp.MaxY
		case out&Bottom != 0:
			p.X = a.X + (b.X-a.X)*(vp.MinY-a.Y)/(b.Y-a.Y)
			p.Y = vp.MinY
		case out&Right != 0:
			p.Y = a.Y + (b.Y-a.Y)*(vp.MaxX-a.X)/(b.X-a.X)
			p.X = vp.MaxX
		case out&Left != 0:
			p.Y = a.Y + (b.Y-a.Y)*(vp.MinX-a.X)/(b.X-a.X)
			p.X = vp.MinX
		}
		if out == codeA {
			a = p
			codeA = vp.outcode(a)
		} else {
			b = p
			codeB = vp.outcode(b)
		}
	}
}
