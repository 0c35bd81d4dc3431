// Package game simulates the side-scroller world: the player plane,
// missiles, clouds, fuel canisters, parallax stars, explosions, and the
// scrolling ground. Entities expose their geometry as world-space draw
// shapes built through composed homogeneous transforms; the front end
// clips and rasterizes them.
package game

import (
	"aviator/internal/raster"
	"aviator/internal/xform"
)

// World dimensions in world units, matching the coordinate ranges the
// entity tables were authored for. Y points up.
const (
	WorldW = 1024.0
	WorldH = 600.0
)

// ShapeKind tags a draw-list entry.
type ShapeKind int

const (
	KindPolygon ShapeKind = iota
	KindSegment
	KindCircle
	KindEllipse
)

// Shape is one world-space primitive to draw. Which fields are set
// depends on Kind: polygons and segments use Verts, circles and
// ellipses use Center plus Rx/Ry (Rx == Ry for circles).
type Shape struct {
	Kind   ShapeKind
	Mode   raster.Mode
	Verts  []xform.Pt
	Center xform.Pt
	Rx     float64
	Ry     float64
	Color  string
}

func fillPoly(verts []xform.Pt, color string) Shape {
	return Shape{Kind: KindPolygon, Mode: raster.Filled, Verts: verts, Color: color}
}

func strokePoly(verts []xform.Pt, color string) Shape {
	return Shape{Kind: KindPolygon, Mode: raster.Outline, Verts: verts, Color: color}
}

func segment(a, b xform.Pt, color string) Shape {
	return Shape{Kind: KindSegment, Verts: []xform.Pt{a, b}, Color: color}
}

func disc(c xform.Pt, r float64, color string) Shape {
	return Shape{Kind: KindCircle, Mode: raster.Filled, Center: c, Rx: r, Ry: r, Color: color}
}

func filledEllipse(c xform.Pt, rx, ry float64, color string) Shape {
	return Shape{Kind: KindEllipse, Mode: raster.Filled, Center: c, Rx: rx, Ry: ry, Color: color}
}

// AABB is an axis-aligned bounding box used for collision.
type AABB struct {
	MinX, MinY, MaxX, MaxY float64
}

// Intersects reports whether two boxes overlap.
func (a AABB) Intersects(b AABB) bool {
	return !(a.MaxX < b.MinX || a.MinX > b.MaxX || a.MaxY < b.MinY || a.MinY > b.MaxY)
}

func boundsOf(verts []xform.Pt) AABB {
	box := AABB{MinX: verts[0].X, MinY: verts[0].Y, MaxX: verts[0].X, MaxY: verts[0].Y}
	for _, v := range verts[1:] {
		if v.X < box.MinX {
			box.MinX = v.X
		}
		if v.Y < box.MinY {
			box.MinY = v.Y
		}
		if v.X > box.MaxX {
			box.MaxX = v.X
		}
		if v.Y > box.MaxY {
			box.MaxY = v.Y
		}
	}
	return box
}

// mustApply transforms pts by m. Matrices built from the xform
// constructors are always affine, so a failure here is a programming
// error worth stopping on.
func mustApply(m xform.Mat3, pts []xform.Pt) []xform.Pt {
	out, err := m.ApplyAll(pts)
	if err != nil {
		panic(err)
	}
	return out
}

func mustApplyPt(m xform.Mat3, p xform.Pt) xform.Pt {
	q, err := m.Apply(p)
	if err != nil {
		panic(err)
	}
	return q
}

// Input is the held-key state fed into the plane each tick.
type Input struct {
	Up    bool
	Down  bool
	Boost bool
}
