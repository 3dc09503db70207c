package render

import "math"

// Circles are rasterized by solving for the outline once per visible row and
// once per visible column, so the cost is bounded by the surface size even
// when the zoom makes an orbit millions of pixels wide.

func roundInt(v float64) int { return int(math.Floor(v + 0.5)) }

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// visible reports whether any part of the circle's outline or disc can land
// on the surface. With outline set, circles that fully contain the surface
// are culled too.
func (s *Surface) visible(cx, cy, r float64, outline bool) bool {
	if s.w <= 0 || s.h <= 0 {
		return false
	}
	if cx+r < 0 || cx-r > float64(s.w) || cy+r < 0 || cy-r > float64(s.h) {
		return false
	}
	if !outline {
		return true
	}
	far := 0.0
	for _, p := range [4][2]float64{{0, 0}, {float64(s.w), 0}, {0, float64(s.h)}, {float64(s.w), float64(s.h)}} {
		if d := math.Hypot(p[0]-cx, p[1]-cy); d > far {
			far = d
		}
	}
	return far >= r-1
}

func strokeCircle(s *Surface, cx, cy, r float64, pixel uint16) {
	if !finite(cx, cy, r) || r < 0 {
		return
	}
	if r < 0.5 {
		s.set(roundInt(cx), roundInt(cy), pixel)
		return
	}
	if !s.visible(cx, cy, r, true) {
		return
	}
	rr := r * r

	y0, y1 := s.spanRows(cy, r)
	for py := y0; py <= y1; py++ {
		dy := float64(py) - cy
		d2 := rr - dy*dy
		if d2 < 0 {
			continue
		}
		dx := math.Sqrt(d2)
		s.set(roundInt(cx-dx), py, pixel)
		s.set(roundInt(cx+dx), py, pixel)
	}

	x0 := clampInt(int(math.Ceil(cx-r)), 0, s.w-1)
	x1 := clampInt(int(math.Floor(cx+r)), 0, s.w-1)
	for px := x0; px <= x1; px++ {
		dx := float64(px) - cx
		d2 := rr - dx*dx
		if d2 < 0 {
			continue
		}
		dy := math.Sqrt(d2)
		s.set(px, roundInt(cy-dy), pixel)
		s.set(px, roundInt(cy+dy), pixel)
	}
}

func fillCircle(s *Surface, cx, cy, r float64, pixel uint16) {
	if !finite(cx, cy, r) || r < 0 {
		return
	}
	if r < 0.5 {
		s.set(roundInt(cx), roundInt(cy), pixel)
		return
	}
	if !s.visible(cx, cy, r, false) {
		return
	}
	rr := r * r

	y0, y1 := s.spanRows(cy, r)
	for py := y0; py <= y1; py++ {
		dy := float64(py) - cy
		d2 := rr - dy*dy
		if d2 < 0 {
			continue
		}
		dx := math.Sqrt(d2)
		x0 := clampInt(int(math.Ceil(cx-dx)), 0, s.w)
		x1 := clampInt(int(math.Floor(cx+dx)), -1, s.w-1)
		for px := x0; px <= x1; px++ {
			s.set(px, py, pixel)
		}
	}
}
