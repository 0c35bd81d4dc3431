package clip

import "aviator/internal/xform"

// boundary is one of the viewport's four half-planes.
type boundary struct {
	inside    func(xform.Pt) bool
	intersect func(a, b xform.Pt) xform.Pt
}

func (v Viewport) boundaries() [4]boundary {
	atX := func(x float64) func(a, b xform.Pt) xform.Pt {
		return func(a, b xform.Pt) xform.Pt {
			t := (x - a.X) / (b.X - a.X)
			return xform.Pt{X: x, Y: a.Y + t*(b.Y-a.Y)}
		}
	}
	atY := func(y float64) func(a, b xform.Pt) xform.Pt {
		return func(a, b xform.Pt) xform.Pt {
			t := (y - a.Y) / (b.Y - a.Y)
			return xform.Pt{X: a.X + t*(b.X-a.X), Y: y}
		}
	}
	return [4]boundary{
		{func(p xform.Pt) bool { return p.X >= v.MinX }, atX(v.MinX)},
		{func(p xform.Pt) bool { return p.X <= v.MaxX }, atX(v.MaxX)},
		{func(p xform.Pt) bool { return p.Y >= v.MinY }, atY(v.MinY)},
		{func(p xform.Pt) bool { return p.Y <= v.MaxY }, atY(v.MaxY)},
	}
}

// Polygon clips poly against vp with Sutherland-Hodgman, one pass per
// viewport edge in the fixed order left, right, bottom, top. The
// output keeps the input's vertex order and may be empty when the
// polygon is fully clipped away; an empty result is not an error.
func Polygon(poly []xform.Pt, vp Viewport) ([]xform.Pt, error) {
	if len(poly) < 3 {
		return nil, ErrInvalidPolygon
	}
	if !vp.Valid() {
		return nil, ErrInvalidViewport
	}
	out := poly
	for _, b := range vp.boundaries() {
		if len(out) == 0 {
			break
		}
		out = clipEdge(out, b)
	}
	return out, nil
}

// clipEdge runs one Sutherland-Hodgman pass: walk the polygon's edges
// (wrapping), emit each inside vertex and an intersection point
// wherever an edge crosses the boundary. Emitting the current vertex
// rather than the next keeps a fully inside polygon's vertex list
// byte-for-byte unchanged.
func clipEdge(poly []xform.Pt, b boundary) []xform.Pt {
	var out []xform.Pt
	for i := range poly {
		cur := poly[i]
		next := poly[(i+1)%len(poly)]
		curIn := b.inside(cur)
		nextIn := b.inside(next)
		switch {
		case curIn:
			out = append(out, cur)
			if !nextIn {
				out = append(out, b.intersect(cur, next))
			}
		case nextIn:
			out = append(out, b.intersect(cur, next))
		}
	}
	return out
}
