package raster

// Circle rasterizes a circle of radius r centered at (cx, cy) with the
// midpoint algorithm: one octant is walked with the integer decision
// parameter p0 = 1 - r, each step mirrored into the other seven by
// symmetry. Outline mode emits pixels landing on the symmetry axes
// once per mirroring branch (duplicates are not filtered); filled mode
// emits one horizontal span per mirrored row per step. r < 0 is
// ErrInvalidInput; r == 0 degenerates to the center pixel.
func Circle(p Plotter, cx, cy, r int, mode Mode) error {
	if r < 0 {
		return ErrInvalidInput
	}
	if r == 0 {
		p.Set(cx, cy)
		return nil
	}
	x, y := 0, r
	d := 1 - r
	if mode == Filled {
		for x <= y {
			hspan(p, cx-x, cx+x, cy+y)
			hspan(p, cx-x, cx+x, cy-y)
			hspan(p, cx-y, cx+y, cy+x)
			hspan(p, cx-y, cx+y, cy-x)
			x++
			if d < 0 {
				d += 2*x + 1
			} else {
				y--
				d += 2*(x-y) + 1
			}
		}
		return nil
	}
	plotOctants(p, cx, cy, x, y)
	for x < y {
		x++
		if d < 0 {
			d += 2*x + 1
		} else {
			y--
			d += 2*(x-y) + 1
		}
		plotOctants(p, cx, cy, x, y)
	}
	return nil
}

// CirclePoints is Circle collected into a slice.
func CirclePoints(cx, cy, r int, mode Mode) ([]Pt, error) {
	var buf PointBuf
	if err := Circle(&buf, cx, cy, r, mode); err != nil {
		return nil, err
	}
	return buf.Pts, nil
}

func plotOctants(p Plotter, cx, cy, x, y int) {
	p.Set(cx+x, cy+y)
	p.Set(cx-x, cy+y)
	p.Set(cx+x, cy-y)
	p.Set(cx-x, cy-y)
	p.Set(cx+y, cy+x)
	p.Set(cx-y, cy+x)
	p.Set(cx+y, cy-x)
	p.Set(cx-y, cy-x)
}
