package raster

// Ellipse rasterizes an axis-aligned ellipse centered at (cx, cy) with
// semi-axes rx and ry using the two-region midpoint algorithm. Region 1
// steps along x while the tangent slope magnitude stays below 1, region
// 2 steps along y for the rest; each computed offset is mirrored into
// the four quadrants. A zero semi-axis degenerates to a line segment;
// a negative one is ErrInvalidInput.
func Ellipse(p Plotter, cx, cy, rx, ry int, mode Mode) error {
	if rx < 0 || ry < 0 {
		return ErrInvalidInput
	}
	switch {
	case rx == 0 && ry == 0:
		p.Set(cx, cy)
		return nil
	case rx == 0:
		Line(p, cx, cy-ry, cx, cy+ry)
		return nil
	case ry == 0:
		Line(p, cx-rx, cy, cx+rx, cy)
		return nil
	}

	rx2 := float64(rx * rx)
	ry2 := float64(ry * ry)
	twoRx2 := 2 * rx2
	twoRy2 := 2 * ry2

	x, y := 0, ry
	px := 0.0
	py := twoRx2 * float64(y)

	emit := func(x, y int) {
		if mode == Filled {
			hspan(p, cx-x, cx+x, cy+y)
			hspan(p, cx-x, cx+x, cy-y)
		} else {
			plotQuadrants(p, cx, cy, x, y)
		}
	}

	// Region 1: |dy/dx| <= 1.
	emit(x, y)
	p1 := ry2 - rx2*float64(ry) + 0.25*rx2
	for px < py {
		x++
		px += twoRy2
		if p1 < 0 {
			p1 += ry2 + px
		} else {
			y--
			py -= twoRx2
			p1 += ry2 + px - py
		}
		emit(x, y)
	}

	// Region 2: |dy/dx| > 1, stepping y down to the major axis.
	fx := float64(x) + 0.5
	fy := float64(y) - 1
	p2 := ry2*fx*fx + rx2*fy*fy - rx2*ry2
	for y > 0 {
		y--
		py -= twoRx2
		if p2 > 0 {
			p2 += rx2 - py
		} else {
			x++
			px += twoRy2
			p2 += rx2 - py + px
		}
		emit(x, y)
	}
	return nil
}

// EllipsePoints is Ellipse collected into a slice.
func EllipsePoints(cx, cy, rx, ry int, mode Mode) ([]Pt, error) {
	var buf PointBuf
	if err := Ellipse(&buf, cx, cy, rx, ry, mode); err != nil {
		return nil, err
	}
	return buf.Pts, nil
}

func plotQuadrants(p Plotter, cx, cy, x, y int) {
	p.Set(cx+x, cy+y)
	p.Set(cx-x, cy+y)
	p.Set(cx+x, cy-y)
	p.Set(cx-x, cy-y)
}
